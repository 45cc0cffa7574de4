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
	stderrors "errors"
	"log/slog"
	"sort"
	"time"

	"github.com/redhat/wine-cellar/pkg/defaults"
	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"github.com/redhat/wine-cellar/pkg/wine"
)

// Service performs wine lookups against a Store.
type Service struct {
	store        Store
	allowList    *AllowList
	storeTimeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithAllowList restricts the wine types the service answers for.
func WithAllowList(a *AllowList) Option {
	return func(s *Service) {
		s.allowList = a
	}
}

// WithStoreTimeout bounds each store query. Zero disables the bound.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.storeTimeout = d
	}
}

// NewService creates a Service reading from store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:        store,
		storeTimeout: defaults.LookupStoreTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup returns the wines of q.WineType found in q.Region.
//
// An invalid query, or a type outside the allowlist, is an INVALID_REQUEST
// error. A region with no wines is a success with an empty list. A passed
// deadline is a TIMEOUT error.
func (s *Service) Lookup(ctx context.Context, q *wine.Query) (*wine.Result, error) {
	start := time.Now()
	label := "invalid"
	if q != nil && q.WineType.IsValid() {
		label = string(q.WineType)
	}

	result, err := s.lookup(ctx, q)
	lookupDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		lookupErrors.WithLabelValues(string(cnserrors.CodeOf(err))).Inc()
		return nil, err
	}
	lookupResultSize.Observe(float64(len(result.Wines)))
	return result, nil
}

func (s *Service) lookup(ctx context.Context, q *wine.Query) (*wine.Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.allowList.ValidateQuery(q); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	storeCtx := ctx
	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		storeCtx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}

	wines, err := s.store.Wines(storeCtx, q.WineType, q.Region)
	if err != nil {
		if ctxErr := storeCtx.Err(); ctxErr != nil {
			return nil, contextError(ctxErr)
		}
		var se *cnserrors.StructuredError
		if stderrors.As(err, &se) {
			return nil, err
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to look up wines", err)
	}

	sortWines(wines)
	slog.Debug("wine lookup",
		"wine_type", string(q.WineType),
		"region", q.Region,
		"matches", len(wines))

	return wine.Success(wines), nil
}

// Types returns the wine types this service answers for, in declaration order.
func (s *Service) Types() []wine.Type {
	return s.allowList.Filter(wine.SupportedTypes())
}

// Regions returns the distinct regions in the store, sorted.
func (s *Service) Regions(ctx context.Context) ([]string, error) {
	regions, err := s.store.Regions(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, contextError(ctxErr)
		}
		var se *cnserrors.StructuredError
		if stderrors.As(err, &se) {
			return nil, err
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to list regions", err)
	}
	if regions == nil {
		regions = []string{}
	}
	return regions, nil
}

// Ping checks that the store can answer. Stores that do not implement
// Pinger, such as MemoryStore, are always reachable.
func (s *Service) Ping(ctx context.Context) error {
	p, ok := s.store.(Pinger)
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}

// Close closes the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}

func contextError(err error) error {
	if stderrors.Is(err, context.Canceled) {
		return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "wine lookup canceled", err)
	}
	return cnserrors.Wrap(cnserrors.ErrCodeTimeout, "wine lookup timed out", err)
}

// sortWines orders by name, then vintage with non-vintage first, then producer.
func sortWines(wines []wine.Wine) {
	sort.SliceStable(wines, func(i, j int) bool {
		a, b := wines[i], wines[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		switch {
		case a.Vintage == nil && b.Vintage != nil:
			return true
		case a.Vintage != nil && b.Vintage == nil:
			return false
		case a.Vintage != nil && b.Vintage != nil && *a.Vintage != *b.Vintage:
			return *a.Vintage < *b.Vintage
		}
		return a.Producer < b.Producer
	})
}

func sortRegions(regions []string) {
	sort.Strings(regions)
}
