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
	"fmt"

	"github.com/redhat/wine-cellar/pkg/header"
	"github.com/redhat/wine-cellar/pkg/wine"
)

// Catalog is the document wines are loaded from.
//
//	kind: WineCatalog
//	apiVersion: cellar.redhat.com/v1alpha1
//	metadata:
//	  version: "2025.1"
//	wines:
//	  - name: Gran Reserva
//	    type: BOLD_RED
//	    region: Rioja
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Wines []wine.Wine `json:"wines" yaml:"wines"`
}

// NewCatalog returns an initialized catalog document holding wines.
func NewCatalog(version string, wines []wine.Wine) *Catalog {
	c := &Catalog{Wines: wines}
	c.Init(header.KindWineCatalog, header.APIVersion, version)
	return c
}

// Validate checks the header, when set, and every wine.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("catalog is nil")
	}
	if err := c.Check(header.KindWineCatalog); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	for i := range c.Wines {
		if err := c.Wines[i].Validate(); err != nil {
			return fmt.Errorf("wines[%d]: %w", i, err)
		}
	}
	return nil
}

// TableHeader implements serializer.TableRenderer.
func (c *Catalog) TableHeader() []string {
	return wine.TableColumns
}

// TableRows implements serializer.TableRenderer.
func (c *Catalog) TableRows() [][]string {
	return wine.TableRows(c.Wines)
}
