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
	"log/slog"
	"os"
	"slices"
	"strings"

	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"github.com/redhat/wine-cellar/pkg/wine"
)

// EnvAllowedWineTypes restricts which wine types the API server serves.
const EnvAllowedWineTypes = "CELLAR_ALLOWED_WINE_TYPES"

// AllowList restricts the wine types that may be looked up. An empty list
// allows every type. The API server reads it from the environment; the CLI
// never restricts.
type AllowList struct {
	WineTypes []wine.Type
}

// IsEmpty returns true if nothing is restricted.
func (a *AllowList) IsEmpty() bool {
	return a == nil || len(a.WineTypes) == 0
}

// Allows reports whether t may be looked up.
func (a *AllowList) Allows(t wine.Type) bool {
	return a.IsEmpty() || slices.Contains(a.WineTypes, t)
}

// Filter returns the members of types that may be looked up, in order.
// types is never modified.
func (a *AllowList) Filter(types []wine.Type) []wine.Type {
	if a.IsEmpty() {
		return types
	}
	out := make([]wine.Type, 0, len(types))
	for _, t := range types {
		if a.Allows(t) {
			out = append(out, t)
		}
	}
	return out
}

// WineTypeStrings returns the allowed types as strings.
func (a *AllowList) WineTypeStrings() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.WineTypes))
	for _, t := range a.WineTypes {
		out = append(out, string(t))
	}
	return out
}

// ValidateQuery returns an INVALID_REQUEST error when q asks for a type
// outside the list.
func (a *AllowList) ValidateQuery(q *wine.Query) error {
	if a.IsEmpty() || q == nil {
		return nil
	}

	slog.Debug("evaluating query against allowlist",
		"wine_type", string(q.WineType),
		"allowed_wine_types", a.WineTypeStrings())

	if !a.Allows(q.WineType) {
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"wine type not allowed", map[string]any{
				"parameter": wine.ParamWineType,
				"requested": string(q.WineType),
				"allowed":   a.WineTypeStrings(),
			})
	}
	return nil
}

// ParseAllowListFromEnv reads EnvAllowedWineTypes, a comma separated list
// such as "BOLD_RED,rose". It returns nil when the variable is unset or
// empty, and an error naming the bad entry otherwise.
func ParseAllowListFromEnv() (*AllowList, error) {
	v := strings.TrimSpace(os.Getenv(EnvAllowedWineTypes))
	if v == "" {
		return nil, nil
	}

	al := &AllowList{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := wine.ParseType(part)
		if err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
				"invalid "+EnvAllowedWineTypes, err, map[string]any{
					"value": part,
				})
		}
		if !slices.Contains(al.WineTypes, t) {
			al.WineTypes = append(al.WineTypes, t)
		}
	}

	if al.IsEmpty() {
		return nil, nil
	}
	slog.Info("wine type allowlist configured", "allowed", al.WineTypeStrings())
	return al, nil
}
