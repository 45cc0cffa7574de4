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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/redhat/wine-cellar/pkg/wine"
)

// isolateEnv clears environment that would redirect commands away from the
// built-in catalog.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CELLAR_CATALOG", "CELLAR_DATABASE_URL", "CELLAR_ALLOWED_WINE_TYPES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_LEVEL", "error")
}

func runCellar(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name}, args...))
}

func readResult(t *testing.T, path string) wine.Result {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var res wine.Result
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("failed to decode output %s: %v", data, err)
	}
	return res
}

func TestRootCmd_CommandStructure(t *testing.T) {
	root := newRootCmd()

	if root.Name != name {
		t.Errorf("Name = %v, want %v", root.Name, name)
	}

	for _, sub := range []string{"lookup", "types", "regions", "catalog"} {
		if findCommand(root.Commands, sub) == nil {
			t.Errorf("subcommand %q not found", sub)
		}
	}

	cat := findCommand(root.Commands, "catalog")
	for _, sub := range []string{"export", "push", "seed"} {
		if findCommand(cat.Commands, sub) == nil {
			t.Errorf("catalog subcommand %q not found", sub)
		}
	}
}

func TestLookupCmd_CommandStructure(t *testing.T) {
	cmd := lookupCmd()

	if cmd.Name != "lookup" {
		t.Errorf("Name = %v, want lookup", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"wine-type", "region", "catalog", "database-url", "kubeconfig", "output", "format"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestLookupCmd_BuiltinCatalog(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "result.json")

	if err := runCellar(t, "lookup", "--wine-type", "bold_red", "--region", " RIOJA ", "--output", out); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	res := readResult(t, out)
	if res.Status != wine.StatusSuccess || res.Description != wine.StatusSuccess {
		t.Errorf("status = %q, description = %q", res.Status, res.Description)
	}
	if len(res.Wines) != 3 {
		t.Fatalf("got %d wines, want 3", len(res.Wines))
	}
	for _, w := range res.Wines {
		if w.Type != wine.TypeBoldRed || w.Region != "Rioja" {
			t.Errorf("unexpected wine %+v", w)
		}
	}
}

func TestLookupCmd_NoMatch(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "result.json")

	if err := runCellar(t, "lookup", "--wine-type", "DESSERT", "--region", "Atlantis", "--output", out); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	res := readResult(t, out)
	if res.Status != wine.StatusSuccess {
		t.Errorf("status = %q, want %q", res.Status, wine.StatusSuccess)
	}
	if res.Wines == nil || len(res.Wines) != 0 {
		t.Errorf("wines = %v, want empty list", res.Wines)
	}
}

func TestLookupCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown type", args: []string{"lookup", "--wine-type", "BLUE", "--region", "rioja"}},
		{name: "blank region", args: []string{"lookup", "--wine-type", "ROSE", "--region", "  "}},
		{name: "missing region", args: []string{"lookup", "--wine-type", "ROSE"}},
		{name: "bad format", args: []string{"lookup", "--wine-type", "ROSE", "--region", "x", "--format", "xml"}},
		{name: "missing catalog", args: []string{"lookup", "--wine-type", "ROSE", "--region", "x", "--catalog", "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			if err := runCellar(t, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestTypesCmd(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "types.txt")

	if err := runCellar(t, "types", "--format", "table", "--output", out); err != nil {
		t.Fatalf("types failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	for _, want := range []string{"BOLD_RED", "Bold Red", "SPARKLING", "DESSERT"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}
}

func TestTypesCmd_AllowList(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CELLAR_ALLOWED_WINE_TYPES", "ROSE,SPARKLING")
	out := filepath.Join(t.TempDir(), "types.json")

	if err := runCellar(t, "types", "--output", out); err != nil {
		t.Fatalf("types failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var got []wine.Type
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to decode %s: %v", data, err)
	}
	if len(got) != 2 || got[0] != wine.TypeRose || got[1] != wine.TypeSparkling {
		t.Errorf("types = %v, want [ROSE SPARKLING]", got)
	}
}

func TestRegionsCmd(t *testing.T) {
	isolateEnv(t)
	out := filepath.Join(t.TempDir(), "regions.json")

	if err := runCellar(t, "regions", "--output", out); err != nil {
		t.Fatalf("regions failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	var got []string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to decode %s: %v", data, err)
	}
	found := false
	for _, r := range got {
		if r == "Rioja" {
			found = true
		}
	}
	if !found {
		t.Errorf("regions %v missing Rioja", got)
	}
}

func TestCatalogExport_RoundTripThroughLookup(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	exported := filepath.Join(dir, "wines.yaml")

	if err := runCellar(t, "catalog", "export", "--format", "yaml", "--output", exported); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := filepath.Join(dir, "result.json")
	if err := runCellar(t, "lookup", "--catalog", exported, "--wine-type", "BOLD_RED", "--region", "rioja", "--output", out); err != nil {
		t.Fatalf("lookup against exported catalog failed: %v", err)
	}

	if res := readResult(t, out); len(res.Wines) != 3 {
		t.Errorf("got %d wines from exported catalog, want 3", len(res.Wines))
	}
}

func TestCatalogPush_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing output", args: []string{"catalog", "push"}},
		{name: "local path output", args: []string{"catalog", "push", "--output", "./wines"}},
		{name: "invalid reference", args: []string{"catalog", "push", "--output", "oci://Not A Ref"}},
		{name: "unsupported layer format", args: []string{"catalog", "push", "--output", "oci://localhost:5000/wines:v1", "--format", "table"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			if err := runCellar(t, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestCatalogSeed_RequiresDatabaseURL(t *testing.T) {
	isolateEnv(t)
	if err := runCellar(t, "catalog", "seed"); err == nil {
		t.Error("expected error without --database-url")
	}
}
