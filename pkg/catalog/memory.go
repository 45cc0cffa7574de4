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

	"github.com/redhat/wine-cellar/pkg/wine"
)

type storeKey struct {
	wineType wine.Type
	region   string
}

// MemoryStore is a read-only Store built from a Catalog.
type MemoryStore struct {
	index   map[storeKey][]wine.Wine
	regions []string
	count   int
}

// NewMemoryStore validates every wine in c and indexes it by type and
// normalized region.
func NewMemoryStore(c *Catalog) (*MemoryStore, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &MemoryStore{
		index: make(map[storeKey][]wine.Wine),
	}

	// first spelling seen wins as the display name
	display := make(map[string]string)
	for _, w := range c.Wines {
		key := NormalizeRegion(w.Region)
		if _, ok := display[key]; !ok {
			display[key] = w.Region
		}
		k := storeKey{wineType: w.Type, region: key}
		s.index[k] = append(s.index[k], w.Clone())
		s.count++
	}

	for _, name := range display {
		s.regions = append(s.regions, name)
	}
	sortRegions(s.regions)

	return s, nil
}

// Wines implements Store. Returned wines are copies.
func (s *MemoryStore) Wines(ctx context.Context, t wine.Type, region string) ([]wine.Wine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("wine lookup aborted: %w", err)
	}

	matches := s.index[storeKey{wineType: t, region: NormalizeRegion(region)}]
	out := make([]wine.Wine, 0, len(matches))
	for _, w := range matches {
		out = append(out, w.Clone())
	}
	return out, nil
}

// Regions implements Store.
func (s *MemoryStore) Regions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("region listing aborted: %w", err)
	}
	return append([]string(nil), s.regions...), nil
}

// Len returns the number of indexed wines.
func (s *MemoryStore) Len() int {
	return s.count
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
