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
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/redhat/wine-cellar/pkg/catalog"
	"github.com/redhat/wine-cellar/pkg/wine"
)

// typeList renders wine types with a display name.
type typeList []wine.Type

func (l typeList) TableHeader() []string {
	return []string{"TYPE", "NAME"}
}

func (l typeList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, t := range l {
		rows = append(rows, []string{string(t), displayName(t)})
	}
	return rows
}

var titleCaser = cases.Title(language.English)

// displayName turns BOLD_RED into "Bold Red".
func displayName(t wine.Type) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(string(t)), "_", " "))
}

func typesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "types",
		EnableShellCompletion: true,
		Usage:                 "List the supported wine types.",
		Description: `Lists the wine types accepted by lookup. Set CELLAR_ALLOWED_WINE_TYPES to
see the subset a restricted deployment answers for.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			allow, err := catalog.ParseAllowListFromEnv()
			if err != nil {
				return err
			}

			types := allow.Filter(wine.SupportedTypes())
			return writeOutput(ctx, outFormat, cmd.String("output"), typeList(types))
		},
	}
}
