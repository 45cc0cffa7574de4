// Package cli implements the command-line interface of the cellar tool.
//
// # Overview
//
// The cellar CLI looks up wines by type and region against the same catalog
// the cellard API serves, and manages catalog distribution: exporting a
// catalog to a file or ConfigMap, publishing it as an OCI artifact, and
// seeding a PostgreSQL database from it.
//
// # Commands
//
// lookup - Find wines of a type in a region:
//
//	cellar lookup --wine-type BOLD_RED --region rioja [--catalog SRC] [--output PATH] [--format json|yaml|table]
//
// types - List the supported wine types:
//
//	cellar types [--format table]
//
// regions - List the regions in a catalog:
//
//	cellar regions [--catalog SRC]
//
// catalog export - Write a catalog to a file or ConfigMap:
//
//	cellar catalog export --catalog wines.yaml --output cm://cellar/wines --format yaml
//
// catalog push - Publish a catalog as an OCI artifact:
//
//	cellar catalog push --catalog wines.yaml --output oci://ghcr.io/redhat/wine-catalog:2025.1
//
// catalog seed - Load a catalog into PostgreSQL:
//
//	cellar catalog seed --catalog wines.yaml --database-url postgres://...
//
// # Catalog Sources
//
// --catalog accepts a file path, an http(s) URL, a ConfigMap URI
// (cm://namespace/name) or an OCI reference (oci://registry/repository:tag).
// Without it the catalog compiled into the binary is used. --database-url
// reads wines from PostgreSQL instead.
//
// # Global Flags
//
//   - --log-level: debug, info, warn, error (env LOG_LEVEL)
//   - --debug: shorthand for --log-level debug
package cli
