// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/redhat/wine-cellar/pkg/defaults"
	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"github.com/redhat/wine-cellar/pkg/wine"
	"k8s.io/utils/ptr"
)

// PostgresSchema creates the table PostgresStore reads. region_key holds
// NormalizeRegion(region) so lookups stay an indexed equality match.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS wines (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL,
    region      TEXT NOT NULL,
    region_key  TEXT NOT NULL,
    country     TEXT NOT NULL DEFAULT '',
    producer    TEXT NOT NULL DEFAULT '',
    grapes      TEXT[] NOT NULL DEFAULT '{}',
    vintage     INTEGER,
    pairings    TEXT[] NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS wines_type_region_key_idx ON wines (type, region_key);
`

const (
	selectWinesQuery = `
        SELECT name, type, region, country, producer, grapes, vintage, pairings
        FROM wines
        WHERE type = $1 AND region_key = $2
        ORDER BY name, vintage NULLS FIRST, producer`

	selectRegionsQuery = `
        SELECT DISTINCT ON (region_key) region
        FROM wines
        ORDER BY region_key, region`

	insertWineQuery = `
        INSERT INTO wines (name, type, region, region_key, country, producer, grapes, vintage, pairings)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
)

// PostgresStore is a Store backed by PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens dsn and verifies the connection.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to open postgres db", err)
	}
	db.SetConnMaxLifetime(defaults.DatabaseConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, defaults.DatabasePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to ping postgres db", err)
	}

	return NewPostgresStoreFromDB(db), nil
}

// NewPostgresStoreFromDB wraps an already opened database handle.
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Ping implements Pinger.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to ping postgres db", err)
	}
	return nil
}

// Wines implements Store.
func (s *PostgresStore) Wines(ctx context.Context, t wine.Type, region string) ([]wine.Wine, error) {
	rows, err := s.db.QueryContext(ctx, selectWinesQuery, string(t), NormalizeRegion(region))
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to query wines", err)
	}
	defer rows.Close()

	wines := []wine.Wine{}
	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to scan wine", err)
		}
		wines = append(wines, w)
	}
	if err := rows.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to read wines", err)
	}
	return wines, nil
}

// Regions implements Store.
func (s *PostgresStore) Regions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, selectRegionsQuery)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to query regions", err)
	}
	defer rows.Close()

	regions := []string{}
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to scan region", err)
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "failed to read regions", err)
	}
	sortRegions(regions)
	return regions, nil
}

// Seed creates the schema if needed and replaces the table content with
// the wines of c in one transaction.
func (s *PostgresStore) Seed(ctx context.Context, c *Catalog) error {
	if err := c.Validate(); err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid catalog", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM wines"); err != nil {
		return fmt.Errorf("failed to clear wines: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertWineQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range c.Wines {
		if _, err := stmt.ExecContext(ctx, wineArgs(w)...); err != nil {
			return fmt.Errorf("failed to insert wine %q: %w", w.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWine(row rowScanner) (wine.Wine, error) {
	var (
		w        wine.Wine
		wineType string
		vintage  sql.NullInt64
		grapes   pq.StringArray
		pairings pq.StringArray
	)
	if err := row.Scan(&w.Name, &wineType, &w.Region, &w.Country, &w.Producer,
		&grapes, &vintage, &pairings); err != nil {
		return wine.Wine{}, err
	}

	t, err := wine.ParseType(wineType)
	if err != nil {
		return wine.Wine{}, err
	}
	w.Type = t
	if vintage.Valid {
		w.Vintage = ptr.To(int(vintage.Int64))
	}
	if len(grapes) > 0 {
		w.Grapes = []string(grapes)
	}
	if len(pairings) > 0 {
		w.Pairings = []string(pairings)
	}
	return w, nil
}

func wineArgs(w wine.Wine) []any {
	var vintage sql.NullInt64
	if w.Vintage != nil {
		vintage = sql.NullInt64{Int64: int64(*w.Vintage), Valid: true}
	}
	return []any{
		w.Name,
		string(w.Type),
		w.Region,
		NormalizeRegion(w.Region),
		w.Country,
		w.Producer,
		pq.Array(nonNil(w.Grapes)),
		vintage,
		pq.Array(nonNil(w.Pairings)),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
