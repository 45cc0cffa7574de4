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
	"fmt"
	"log/slog"
	"strings"

	"github.com/redhat/wine-cellar/pkg/wine"
)

// Store answers the queries a Service needs. Implementations must be safe
// for concurrent use.
type Store interface {
	// Wines returns the wines of type t whose normalized region equals the
	// normalized form of region. No match is an empty slice, not an error.
	Wines(ctx context.Context, t wine.Type, region string) ([]wine.Wine, error)

	// Regions returns the distinct region names in the store, sorted.
	Regions(ctx context.Context) ([]string, error)

	// Close releases the store's resources.
	Close() error
}

// Pinger is implemented by stores that hold a remote connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreConfig selects and configures a Store.
type StoreConfig struct {
	// DatabaseURL is a PostgreSQL DSN. When set it wins over Source.
	DatabaseURL string

	// Source is a catalog location for LoadCatalog; empty means embedded.
	Source string

	// Kubeconfig is used for cm:// sources only.
	Kubeconfig string

	// PlainHTTP talks to oci:// registries over HTTP.
	PlainHTTP bool

	// InsecureTLS skips certificate verification for oci:// registries.
	InsecureTLS bool
}

// String returns a description of the configured backend with any database
// credentials left out.
func (c StoreConfig) String() string {
	if c.DatabaseURL != "" {
		return "postgres"
	}
	if strings.TrimSpace(c.Source) == "" {
		return "embedded"
	}
	return c.Source
}

// loadOptions carries the catalog access settings of c.
func (c StoreConfig) loadOptions() LoadOptions {
	return LoadOptions{
		Kubeconfig:  c.Kubeconfig,
		PlainHTTP:   c.PlainHTTP,
		InsecureTLS: c.InsecureTLS,
	}
}

// OpenStore returns the Store described by cfg.
//
// A non-empty DatabaseURL wins: the result is a PostgresStore whose
// connection has already been pinged. Otherwise the catalog at cfg.Source
// (the embedded one when empty) is loaded with cfg's registry and
// kubeconfig settings and indexed into a MemoryStore.
//
// Returns:
//   - Store: ready for lookups; the caller owns it and must Close it
//   - error: SERVICE_UNAVAILABLE when the database or catalog source cannot
//     be reached, INVALID_REQUEST when the catalog fails validation
func OpenStore(ctx context.Context, cfg StoreConfig) (Store, error) {
	if cfg.DatabaseURL != "" {
		slog.Debug("opening postgres store")
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	}

	cat, err := LoadCatalogWithOptions(ctx, cfg.Source, cfg.loadOptions())
	if err != nil {
		return nil, err
	}
	store, err := NewMemoryStore(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to index catalog from %s: %w", cfg, err)
	}
	slog.Debug("opened memory store", "source", cfg.String(), "wines", store.Len())
	return store, nil
}
