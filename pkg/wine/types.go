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

// Type is a wine style category used as the primary lookup key.
type Type string

// Supported wine types.
const (
	TypeBoldRed       Type = "BOLD_RED"
	TypeMediumRed     Type = "MEDIUM_RED"
	TypeLightRed      Type = "LIGHT_RED"
	TypeRose          Type = "ROSE"
	TypeRichWhite     Type = "RICH_WHITE"
	TypeLightWhite    Type = "LIGHT_WHITE"
	TypeAromaticWhite Type = "AROMATIC_WHITE"
	TypeSparkling     Type = "SPARKLING"
	TypeDessert       Type = "DESSERT"
)

var supportedTypes = []Type{
	TypeBoldRed,
	TypeMediumRed,
	TypeLightRed,
	TypeRose,
	TypeRichWhite,
	TypeLightWhite,
	TypeAromaticWhite,
	TypeSparkling,
	TypeDessert,
}

// SupportedTypes returns all wine types in declaration order.
func SupportedTypes() []Type {
	out := make([]Type, len(supportedTypes))
	copy(out, supportedTypes)
	return out
}

// SupportedTypeStrings returns all wine types as strings in declaration order.
func SupportedTypeStrings() []string {
	out := make([]string, 0, len(supportedTypes))
	for _, t := range supportedTypes {
		out = append(out, string(t))
	}
	return out
}

// ParseType parses s into a Type. Matching ignores case and surrounding
// whitespace; "-" and inner spaces are read as "_".
func ParseType(s string) (Type, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, t := range supportedTypes {
		if string(t) == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid wine type: %q (supported values: %s)", s,
		strings.Join(SupportedTypeStrings(), ", "))
}

// IsValid reports whether t is a member of the enumeration.
func (t Type) IsValid() bool {
	for _, st := range supportedTypes {
		if st == t {
			return true
		}
	}
	return false
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// UnmarshalText implements encoding.TextUnmarshaler so catalog documents in
// JSON or YAML are validated while decoding.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t), nil
}
