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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Query parameter names accepted by the lookup endpoint.
const (
	ParamWineType = "wineType"
	ParamRegion   = "region"
)

// Query holds the inputs of a single lookup.
type Query struct {
	// WineType is the required style category.
	WineType Type `json:"wineType" yaml:"wineType"`

	// Region is the required free-form origin filter.
	Region string `json:"region" yaml:"region"`
}

// String returns a human-readable representation of the query.
func (q *Query) String() string {
	return fmt.Sprintf("query(wineType=%s, region=%s)", q.WineType, q.Region)
}

// Validate checks that both inputs are present and the type is supported.
// Failures are INVALID_REQUEST structured errors.
func (q *Query) Validate() error {
	if q == nil {
		return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "query cannot be nil")
	}
	if q.WineType == "" {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"wineType is required", map[string]any{
				"parameter": ParamWineType,
				"supported": SupportedTypeStrings(),
			})
	}
	if !q.WineType.IsValid() {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"invalid wineType", map[string]any{
				"parameter": ParamWineType,
				"requested": string(q.WineType),
				"supported": SupportedTypeStrings(),
			})
	}
	if strings.TrimSpace(q.Region) == "" {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"region is required", map[string]any{
				"parameter": ParamRegion,
			})
	}
	return nil
}

// NewQuery parses the raw inputs into a validated Query.
func NewQuery(wineType, region string) (*Query, error) {
	q := &Query{Region: strings.TrimSpace(region)}

	if strings.TrimSpace(wineType) != "" {
		t, err := ParseType(wineType)
		if err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				"invalid wineType", err, map[string]any{
					"parameter": ParamWineType,
					"requested": wineType,
					"supported": SupportedTypeStrings(),
				})
		}
		q.WineType = t
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseQueryFromRequest parses a query from HTTP query parameters.
func ParseQueryFromRequest(r *http.Request) (*Query, error) {
	if r == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	return ParseQueryFromValues(r.URL.Query())
}

// ParseQueryFromValues parses a query from URL values.
func ParseQueryFromValues(values url.Values) (*Query, error) {
	return NewQuery(values.Get(ParamWineType), values.Get(ParamRegion))
}

// ParseQueryFromBody parses a query from a request body.
//
// Supported Content-Types:
//   - application/json
//   - application/x-yaml, application/yaml, text/yaml
//
// If Content-Type is empty or unrecognized, JSON is assumed.
func ParseQueryFromBody(body io.Reader, contentType string) (*Query, error) {
	if body == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(data) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "request body is empty")
	}

	// raw keeps the type as a string so an invalid value gets the same
	// error as the query string path.
	var raw struct {
		WineType string `json:"wineType" yaml:"wineType"`
		Region   string `json:"region" yaml:"region"`
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to parse YAML body", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to parse JSON body", err)
		}
	}

	return NewQuery(raw.WineType, raw.Region)
}
