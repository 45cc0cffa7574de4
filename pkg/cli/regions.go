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

	"github.com/urfave/cli/v3"
)

// regionList renders region names as a single column table.
type regionList []string

func (l regionList) TableHeader() []string {
	return []string{"REGION"}
}

func (l regionList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{r})
	}
	return rows
}

func regionsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "regions",
		EnableShellCompletion: true,
		Usage:                 "List the regions present in the catalog.",
		Flags: []cli.Flag{
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

			svc, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := svc.Close(); cerr != nil {
					slog.Warn("failed to close catalog", "error", cerr)
				}
			}()

			regions, err := svc.Regions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}

			return writeOutput(ctx, outFormat, cmd.String("output"), regionList(regions))
		},
	}
}
