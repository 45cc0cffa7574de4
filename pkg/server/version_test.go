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

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty accept defaults", "", DefaultAPIVersion},
		{"plain json defaults", "application/json", DefaultAPIVersion},
		{"vendor v1", "application/vnd.redhat.cellar.v1+json", "v1"},
		{"vendor v1 with params", "application/vnd.redhat.cellar.v1+json; q=0.9", "v1"},
		{"vendor in list", "text/html, application/vnd.redhat.cellar.v1+json", "v1"},
		{"vendor v2 unsupported", "application/vnd.redhat.cellar.v2+json", DefaultAPIVersion},
		{"vendor malformed", "application/vnd.redhat.cellar.vBAD+json", DefaultAPIVersion},
		{"other vendor", "application/vnd.example.v1+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/wine", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Fatalf("negotiateAPIVersion(Accept=%q) = %q, want %q", tt.accept, got, tt.want)
			}
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	for version, want := range map[string]bool{"v1": true, "v2": false, "": false, "nope": false} {
		if got := isValidAPIVersion(version); got != want {
			t.Errorf("isValidAPIVersion(%q) = %v, want %v", version, got, want)
		}
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	w := httptest.NewRecorder()
	SetAPIVersionHeader(w, "v1")
	if got := w.Header().Get("X-API-Version"); got != "v1" {
		t.Fatalf("X-API-Version = %q, want v1", got)
	}
}
