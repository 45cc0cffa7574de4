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
	"slices"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/redhat/wine-cellar/pkg/catalog"
	"github.com/redhat/wine-cellar/pkg/serializer"
	"github.com/redhat/wine-cellar/pkg/wine"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{name: "valid yaml format", format: "yaml", wantFormat: serializer.FormatYAML},
		{name: "valid json format", format: "json", wantFormat: serializer.FormatJSON},
		{name: "valid table format", format: "table", wantFormat: serializer.FormatTable},
		{name: "mixed case", format: " YAML ", wantFormat: serializer.FormatYAML},
		{name: "invalid format xml", format: "xml", wantErr: true},
		{name: "invalid format csv", format: "csv", wantErr: true},
		{name: "empty format", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   wine.Type
		want string
	}{
		{wine.TypeBoldRed, "Bold Red"},
		{wine.TypeRose, "Rose"},
		{wine.TypeAromaticWhite, "Aromatic White"},
		{wine.TypeDessert, "Dessert"},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := displayName(tt.in); got != tt.want {
				t.Errorf("displayName(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypeListTable(t *testing.T) {
	l := typeList{wine.TypeBoldRed, wine.TypeSparkling}

	if got := l.TableHeader(); !slices.Equal(got, []string{"TYPE", "NAME"}) {
		t.Errorf("TableHeader() = %v", got)
	}
	rows := l.TableRows()
	if len(rows) != 2 {
		t.Fatalf("TableRows() returned %d rows, want 2", len(rows))
	}
	if !slices.Equal(rows[1], []string{"SPARKLING", "Sparkling"}) {
		t.Errorf("TableRows()[1] = %v", rows[1])
	}
}

func TestRegionListTable(t *testing.T) {
	rows := regionList{"Rioja", "Rías Baixas"}.TableRows()
	if len(rows) != 2 || rows[1][0] != "Rías Baixas" {
		t.Errorf("TableRows() = %v", rows)
	}
}

func hasName(flag cli.Flag, name string) bool {
	return slices.Contains(flag.Names(), name)
}

func findCommand(cmds []*cli.Command, name string) *cli.Command {
	for _, c := range cmds {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestStoreConfig_RegistryFlags(t *testing.T) {
	for _, sub := range []*cli.Command{lookupCmd(), regionsCmd()} {
		t.Run(sub.Name, func(t *testing.T) {
			var got catalog.StoreConfig
			cmd := &cli.Command{
				Name:  sub.Name,
				Flags: sub.Flags,
				Action: func(_ context.Context, c *cli.Command) error {
					got = storeConfig(c)
					return nil
				},
			}

			args := []string{sub.Name, "--catalog", "oci://registry.local/wines:v1", "--plain-http", "--insecure-tls"}
			if sub.Name == "lookup" {
				args = append(args, "--wine-type", "ROSE", "--region", "provence")
			}
			if err := cmd.Run(context.Background(), args); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}

			if !got.InsecureTLS || !got.PlainHTTP {
				t.Errorf("registry flags not forwarded: %+v", got)
			}
			if got.Source != "oci://registry.local/wines:v1" {
				t.Errorf("Source = %q", got.Source)
			}
		})
	}
}
