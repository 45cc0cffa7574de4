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

// Package defaults provides centralized configuration constants for the wine
// cellar service.
//
// # Timeout Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Store timeouts: For catalog loading and database queries
//   - Server timeouts: For HTTP server configuration
//   - Kubernetes timeouts: For ConfigMap reads and writes
//   - HTTP client timeouts: For fetching remote catalogs
//   - OCI timeouts: For pushing catalog artifacts
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.LookupHandlerTimeout)
//	defer cancel()
package defaults
