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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/redhat/wine-cellar/pkg/catalog"
	"github.com/redhat/wine-cellar/pkg/logging"
	"github.com/redhat/wine-cellar/pkg/server"
)

const (
	name           = "cellard"
	versionDefault = "dev"
)

// Environment variables read by Serve.
const (
	EnvCatalog           = "CELLAR_CATALOG"
	EnvDatabaseURL       = "CELLAR_DATABASE_URL"
	EnvRegistryPlainHTTP = "CELLAR_REGISTRY_PLAIN_HTTP"
)

// API routes.
const (
	PathWine        = "/wine"
	PathWineTypes   = "/wine/types"
	PathWineRegions = "/wine/regions"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/redhat/wine-cellar/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, opens the wine store, sets up routes, and handles
// graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	svc, err := newService(ctx, storeConfigFromEnv())
	if err != nil {
		slog.Error("failed to initialize wine service", "error", err)
		return err
	}
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			slog.Warn("failed to close wine store", "error", cerr)
		}
	}()

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(catalog.NewHandler(svc))),
		server.WithReadinessCheck(svc.Ping),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func storeConfigFromEnv() catalog.StoreConfig {
	plainHTTP, _ := strconv.ParseBool(os.Getenv(EnvRegistryPlainHTTP))
	return catalog.StoreConfig{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		Source:      os.Getenv(EnvCatalog),
		PlainHTTP:   plainHTTP,
	}
}

// newService opens the store described by cfg and applies the allowlist
// from the environment.
func newService(ctx context.Context, cfg catalog.StoreConfig) (*catalog.Service, error) {
	allowList, err := catalog.ParseAllowListFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to parse allowlist: %w", err)
	}

	store, err := catalog.OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg, err)
	}
	slog.Info("wine store ready", "store", cfg.String())

	return catalog.NewService(store, catalog.WithAllowList(allowList)), nil
}

func routes(h *catalog.Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathWine:        h.HandleWines,
		PathWineTypes:   h.HandleTypes,
		PathWineRegions: h.HandleRegions,
	}
}
