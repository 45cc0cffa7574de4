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
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/redhat/wine-cellar/pkg/wine"
)

func lookupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lookup",
		EnableShellCompletion: true,
		Usage:                 "Find wines of a given type from a region.",
		Description: `Looks up wines in the catalog by wine type and region. Region matching
ignores case, accents and surrounding whitespace. A lookup with no matches
succeeds with an empty list.

Examples:

  cellar lookup --wine-type BOLD_RED --region rioja
  cellar lookup --wine-type sparkling --region Penedès --format table
  cellar lookup --wine-type ROSE --region provence --catalog cm://cellar/wines`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "wine-type",
				Aliases:  []string{"w"},
				Required: true,
				Usage:    fmt.Sprintf("Wine type (e.g. %s)", strings.Join(wine.SupportedTypeStrings(), ", ")),
			},
			&cli.StringFlag{
				Name:     "region",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Region to search (e.g. rioja)",
			},
			catalogFlag(),
			databaseURLFlag(false),
			kubeconfigFlag(),
			plainHTTPFlag(),
			insecureTLSFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			q, err := wine.NewQuery(cmd.String("wine-type"), cmd.String("region"))
			if err != nil {
				return fmt.Errorf("invalid lookup: %w", err)
			}

			svc, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := svc.Close(); cerr != nil {
					slog.Warn("failed to close catalog", "error", cerr)
				}
			}()

			result, err := svc.Lookup(ctx, q)
			if err != nil {
				return fmt.Errorf("lookup %s failed: %w", q, err)
			}

			slog.Debug("lookup complete", "query", q.String(), "wines", len(result.Wines))

			return writeOutput(ctx, outFormat, cmd.String("output"), result)
		},
	}
}
