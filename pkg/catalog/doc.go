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

// Package catalog implements wine lookup by type and region.
//
// A Service validates a wine.Query, checks it against the optional
// allowlist and asks a Store for matching wines. Results are sorted so the
// same query always yields the same body.
//
// # Stores
//
//   - MemoryStore, indexed from a catalog document. LoadCatalog reads the
//     embedded default catalog, a file, an http(s) URL, a
//     cm://namespace/name ConfigMap or an oci:// registry artifact.
//   - PostgresStore, backed by the wines table (see PostgresSchema). It
//     implements Pinger, which Service.Ping uses for readiness.
//
// OpenStore picks between them from a StoreConfig.
//
// Regions are compared after NormalizeRegion, so "rioja", " RIOJA " and
// "Rioja" all name the same region and "rias baixas" matches "Rías Baixas".
//
// # Allowlist
//
// CELLAR_ALLOWED_WINE_TYPES limits the types a deployment answers for.
// Queries for other types fail with INVALID_REQUEST and /wine/types lists
// only the allowed ones.
//
// # HTTP
//
// Handler exposes the service over HTTP:
//
//	GET  /wine?wineType=BOLD_RED&region=rioja
//	POST /wine            {"wineType":"BOLD_RED","region":"rioja"}
//	GET  /wine/types
//	GET  /wine/regions
//
// POST bodies over defaults.MaxRequestBodyBytes are rejected with 413.
// A lookup that matches nothing is still a success with an empty wines array.
package catalog
