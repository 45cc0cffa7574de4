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
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/redhat/wine-cellar/pkg/catalog"
	"github.com/redhat/wine-cellar/pkg/oci"
	"github.com/redhat/wine-cellar/pkg/serializer"
)

const defaultCatalogTag = "latest"

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Distribute wine catalogs.",
		Description: `Exports, publishes and seeds wine catalogs. Every subcommand reads the
catalog named by --catalog, or the built-in catalog when it is not set.`,
		Commands: []*cli.Command{
			catalogExportCmd(),
			catalogPushCmd(),
			catalogSeedCmd(),
		},
	}
}

// loadCatalog reads and validates the catalog selected by --catalog.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Catalog, error) {
	source := cmd.String("catalog")
	c, err := catalog.LoadCatalogWithOptions(ctx, source, loadOptions(cmd))
	if err != nil {
		return nil, err
	}
	slog.Debug("catalog loaded", "source", source, "wines", len(c.Wines))
	return c, nil
}

func catalogExportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "export",
		EnableShellCompletion: true,
		Usage:                 "Write a catalog to a file, stdout or a ConfigMap.",
		Description: `Examples:

  cellar catalog export --format yaml --output wines.yaml
  cellar catalog export --catalog https://example.com/wines.yaml --output cm://cellar/wines`,
		Flags: []cli.Flag{
			catalogFlag(),
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
			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, outFormat, cmd.String("output"), c)
		},
	}
}

func catalogPushCmd() *cli.Command {
	return &cli.Command{
		Name:                  "push",
		EnableShellCompletion: true,
		Usage:                 "Publish a catalog to an OCI registry.",
		Description: `Packages the catalog as a single-layer OCI artifact and pushes it. Without
a tag in the reference the catalog's metadata version is used, then "latest".
Published catalogs can be served with --catalog oci://... or CELLAR_CATALOG.

Examples:

  cellar catalog push --catalog wines.yaml --output oci://ghcr.io/redhat/wine-catalog:2025.1
  cellar catalog push --output oci://localhost:5000/wine-catalog --plain-http`,
		Flags: []cli.Flag{
			catalogFlag(),
			kubeconfigFlag(),
			plainHTTPFlag(),
			insecureTLSFlag(),
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Required: true,
				Usage:    "OCI reference to push to (oci://registry/repository[:tag])",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: string(serializer.FormatYAML),
				Usage: "Catalog layer encoding (yaml, json)",
			},
			&cli.StringFlag{
				Name:  "oci-dir",
				Usage: "Keep the OCI Image Layout in this directory instead of a temporary one",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ref, err := oci.ParseReference(cmd.String("output"))
			if err != nil {
				return err
			}
			if !ref.IsOCI {
				return fmt.Errorf("--output must be an OCI reference (%sregistry/repository:tag), got %q",
					oci.URIScheme, cmd.String("output"))
			}
			if ref.Digest != "" {
				return fmt.Errorf("--output must not pin a digest, the registry assigns it: %q", cmd.String("output"))
			}

			layerFormat := serializer.Format(strings.ToLower(cmd.String("format")))
			var mediaType, fileName string
			switch layerFormat {
			case serializer.FormatYAML:
				mediaType, fileName = oci.CatalogMediaTypeYAML, oci.DefaultCatalogFileName
			case serializer.FormatJSON:
				mediaType, fileName = oci.CatalogMediaTypeJSON, "wines.json"
			default:
				return fmt.Errorf("unsupported catalog layer format %q (supported values: yaml, json)", cmd.String("format"))
			}

			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			content, err := serializer.Marshal(layerFormat, c)
			if err != nil {
				return err
			}

			catalogVersion := c.Version()
			if ref.Tag == "" {
				ref.Tag = catalogVersion
				if ref.Tag == "" {
					ref.Tag = defaultCatalogTag
				}
			}
			if catalogVersion == "" {
				catalogVersion = ref.Tag
			}

			result, err := oci.PackageAndPush(ctx, oci.OutputConfig{
				Content:     content,
				MediaType:   mediaType,
				FileName:    fileName,
				OutputDir:   cmd.String("oci-dir"),
				Reference:   ref,
				Version:     catalogVersion,
				PlainHTTP:   cmd.Bool("plain-http"),
				InsecureTLS: cmd.Bool("insecure-tls"),
			})
			if err != nil {
				return err
			}

			slog.Info("catalog pushed",
				"reference", result.Reference,
				"digest", result.Digest,
				"wines", len(c.Wines))
			fmt.Fprintf(os.Stdout, "%s@%s\n", result.Reference, result.Digest)
			return nil
		},
	}
}

func catalogSeedCmd() *cli.Command {
	return &cli.Command{
		Name:                  "seed",
		EnableShellCompletion: true,
		Usage:                 "Load a catalog into PostgreSQL.",
		Description: `Creates the wines table when missing and replaces its rows with the
catalog. cellard serves the table when CELLAR_DATABASE_URL is set.

Example:

  cellar catalog seed --catalog wines.yaml --database-url postgres://cellar@localhost/cellar?sslmode=disable`,
		Flags: []cli.Flag{
			catalogFlag(),
			databaseURLFlag(true),
			kubeconfigFlag(),
			plainHTTPFlag(),
			insecureTLSFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			store, err := catalog.NewPostgresStore(ctx, cmd.String("database-url"))
			if err != nil {
				return err
			}
			defer func() {
				if cerr := store.Close(); cerr != nil {
					slog.Warn("failed to close database", "error", cerr)
				}
			}()

			if err := store.Seed(ctx, c); err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}

			slog.Info("catalog seeded", "wines", len(c.Wines))
			return nil
		},
	}
}
