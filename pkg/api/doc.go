// Package api provides the HTTP API layer of the wine cellar service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// opens the wine store, builds the catalog handlers and registers them as
// routes.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/redhat/wine-cellar/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /wine          - Look up wines by wineType and region query parameters
//   - POST /wine         - Look up wines from a JSON or YAML body
//   - GET /wine/types    - List the supported wine types
//   - GET /wine/regions  - List the regions in the catalog
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness check
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl "http://localhost:8080/wine?wineType=BOLD_RED&region=rioja"
//
//	{"status":"SUCCESS","description":"SUCCESS","wines":[...]}
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - CELLAR_CATALOG: catalog file, http(s) URL, cm://namespace/name or
//     oci://registry/repository:tag (default: embedded)
//   - CELLAR_REGISTRY_PLAIN_HTTP: pull oci:// catalogs over HTTP
//   - CELLAR_DATABASE_URL: PostgreSQL DSN, used instead of the catalog when set
//   - CELLAR_ALLOWED_WINE_TYPES: comma separated wine types to serve
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/redhat/wine-cellar/pkg/api.version=1.0.0'"
package api
