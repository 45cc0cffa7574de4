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

package header

import (
	"testing"
	"time"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"catalog", KindWineCatalog, true},
		{"query result", KindWineQueryResult, true},
		{"empty", Kind(""), false},
		{"unknown", Kind("Recipe"), false},
		{"case sensitive", Kind("winecatalog"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("Kind.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	h := New(
		WithKind(KindWineCatalog),
		WithAPIVersion(APIVersion),
		WithMetadata("source", "embedded"),
	)

	if h.GetKind() != KindWineCatalog {
		t.Errorf("expected kind %s, got %s", KindWineCatalog, h.GetKind())
	}
	if h.APIVersion != APIVersion {
		t.Errorf("expected apiVersion %s, got %s", APIVersion, h.APIVersion)
	}
	if h.GetMetadata()["source"] != "embedded" {
		t.Errorf("expected metadata source=embedded, got %v", h.GetMetadata())
	}
}

func TestWithMetadata_InitializesNilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	if h.Metadata["k"] != "v" {
		t.Errorf("expected k=v, got %v", h.Metadata)
	}
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "yes"))
	h.Init(KindWineCatalog, APIVersion, "v1.0.0")

	if _, ok := h.Metadata["stale"]; ok {
		t.Error("expected Init to reset metadata")
	}
	if h.Metadata["version"] != "v1.0.0" {
		t.Errorf("expected version v1.0.0, got %q", h.Metadata["version"])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata["timestamp"]); err != nil {
		t.Errorf("expected RFC3339 timestamp, got %q", h.Metadata["timestamp"])
	}

	h.Init(KindWineCatalog, APIVersion, "")
	if _, ok := h.Metadata["version"]; ok {
		t.Error("expected no version key for empty version")
	}
}

func TestVersion(t *testing.T) {
	h := &Header{}
	if got := h.Version(); got != "" {
		t.Errorf("Version() on empty header = %q", got)
	}
	h.Init(KindWineCatalog, APIVersion, "2025.1")
	if got := h.Version(); got != "2025.1" {
		t.Errorf("Version() = %q, want 2025.1", got)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		wantErr bool
	}{
		{"empty header", Header{}, false},
		{"matching", Header{Kind: KindWineCatalog, APIVersion: APIVersion}, false},
		{"kind only", Header{Kind: KindWineCatalog}, false},
		{"wrong kind", Header{Kind: KindWineQueryResult}, true},
		{"wrong apiVersion", Header{Kind: KindWineCatalog, APIVersion: "cellar.redhat.com/v2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.header.Check(KindWineCatalog)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
