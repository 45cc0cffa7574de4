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

package wine

import (
	"fmt"
	"strings"
)

// Wine is a single catalog entry.
type Wine struct {
	// Name is the label name of the wine.
	Name string `json:"name" yaml:"name"`

	// Type is the style category.
	Type Type `json:"type" yaml:"type"`

	// Region is the geographic origin as written on the label (e.g. "Rioja").
	Region string `json:"region" yaml:"region"`

	// Country of origin.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// Producer is the winery or house.
	Producer string `json:"producer,omitempty" yaml:"producer,omitempty"`

	// Grapes lists the grape varieties.
	Grapes []string `json:"grapes,omitempty" yaml:"grapes,omitempty"`

	// Vintage is the harvest year; nil for non-vintage wines.
	Vintage *int `json:"vintage,omitempty" yaml:"vintage,omitempty"`

	// Pairings lists foods the wine goes well with.
	Pairings []string `json:"pairings,omitempty" yaml:"pairings,omitempty"`
}

// Validate checks the fields every catalog entry must carry.
func (w *Wine) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("wine name is required")
	}
	if !w.Type.IsValid() {
		return fmt.Errorf("wine %q: invalid type %q", w.Name, w.Type)
	}
	if strings.TrimSpace(w.Region) == "" {
		return fmt.Errorf("wine %q: region is required", w.Name)
	}
	if w.Vintage != nil && *w.Vintage <= 0 {
		return fmt.Errorf("wine %q: invalid vintage %d", w.Name, *w.Vintage)
	}
	return nil
}

// Clone returns a deep copy so callers can never mutate shared catalog data.
func (w Wine) Clone() Wine {
	c := w
	if w.Grapes != nil {
		c.Grapes = append([]string(nil), w.Grapes...)
	}
	if w.Pairings != nil {
		c.Pairings = append([]string(nil), w.Pairings...)
	}
	if w.Vintage != nil {
		v := *w.Vintage
		c.Vintage = &v
	}
	return c
}
