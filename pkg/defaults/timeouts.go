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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// LookupHandlerTimeout is the timeout for a single wine lookup request.
	LookupHandlerTimeout = 15 * time.Second

	// LookupStoreTimeout bounds the store query made for one lookup.
	// Must stay below LookupHandlerTimeout so the handler can still respond.
	LookupStoreTimeout = 10 * time.Second

	// LookupCacheTTL is the Cache-Control max-age advertised on lookup responses.
	LookupCacheTTL = 5 * time.Minute

	// MaxRequestBodyBytes caps POST /wine bodies.
	MaxRequestBodyBytes = 1 << 20
)

// Store timeouts for catalog backends.
const (
	// CatalogLoadTimeout is the timeout for loading a catalog from a file, URL or ConfigMap.
	CatalogLoadTimeout = 30 * time.Second

	// DatabasePingTimeout is the timeout for the initial database ping.
	DatabasePingTimeout = 5 * time.Second

	// ReadinessCheckTimeout bounds the store check made by /ready.
	ReadinessCheckTimeout = 2 * time.Second

	// DatabaseConnMaxLifetime recycles pooled database connections.
	DatabaseConnMaxLifetime = 30 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapReadTimeout is the timeout for reading catalogs from ConfigMaps.
	ConfigMapReadTimeout = 30 * time.Second

	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// OCI timeouts for registry operations.
const (
	// OCIPushTimeout is the timeout for pushing a catalog artifact.
	OCIPushTimeout = 2 * time.Minute
)
