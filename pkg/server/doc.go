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

// Package server provides the HTTP server the cellar API runs on.
//
// # Architecture
//
// Callers register handlers by path; each one is wrapped in the middleware
// chain below, outermost first:
//
//   - metrics: Prometheus RED metrics per method, route, status and API version
//   - version: Accept header negotiation, X-API-Version response header
//   - request id: X-Request-Id, generated when absent or not a UUID
//   - panic recovery: converts panics into 500 INTERNAL responses
//   - rate limit: token bucket shared by all API routes, 429 with Retry-After
//   - logging: one record per request, level by status class, with the
//     wineType and region query parameters when present
//
// /health, /ready and /metrics are served without middleware. A "/" handler
// listing the routes is added unless the caller registers its own.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cellard"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/wine": h.HandleWines,
//	    }),
//	    server.WithReadinessCheck(svc.Ping),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or SIGINT/SIGTERM arrives, then drains
// in-flight requests for at most ShutdownTimeout.
//
// Configuration comes from NewConfig: PORT (default 8080) and
// SHUTDOWN_TIMEOUT_SECONDS.
//
// # Health and Readiness
//
// GET /health is the liveness endpoint. It always answers 200:
//
//	{"status": "healthy", "name": "cellard", "version": "1.0.0", "timestamp": "..."}
//
// GET /ready answers 503 with status "not_ready" until Run is serving and
// again once shutdown begins. When a ReadinessCheck is configured it runs on
// every request, bounded by defaults.ReadinessCheckTimeout, and a failure
// also yields 503. cellard uses it to ping PostgreSQL, so an instance that
// lost its database drops out of the Service endpoints without restarting.
//
// # Rate Limiting
//
// Allowed requests carry:
//
//	X-RateLimit-Limit: requests per second
//	X-RateLimit-Remaining: tokens left in the bucket
//	X-RateLimit-Reset: Unix time of the next refill
//
// The headers are omitted when the limit is rate.Inf. Rejected requests get
// 429 RATE_LIMIT_EXCEEDED with Retry-After.
//
// # Error Handling
//
// Errors are written as ErrorResponse bodies:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "Invalid wine query",
//	  "details": {"parameter": "wineType", "value": "BLUE"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps a pkg/errors code to its HTTP status and copies the
// error context into details:
//   - INVALID_REQUEST: 400
//   - UNAUTHORIZED: 401
//   - NOT_FOUND: 404
//   - METHOD_NOT_ALLOWED: 405
//   - RATE_LIMIT_EXCEEDED: 429
//   - INTERNAL: 500
//   - SERVICE_UNAVAILABLE: 503
//   - TIMEOUT: 504
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
package server
