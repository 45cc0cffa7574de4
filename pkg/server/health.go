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

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redhat/wine-cellar/pkg/defaults"
	"github.com/redhat/wine-cellar/pkg/serializer"
)

// States reported in HealthResponse.Status.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// ReadinessCheck reports whether a backing dependency, typically the wine
// store, can answer lookups. A non-nil error keeps /ready at 503.
type ReadinessCheck func(ctx context.Context) error

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty"`
	Version   string    `json:"version,omitempty" yaml:"version,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth reports liveness. It never consults dependencies so a slow
// database does not get the process restarted.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	s.writeHealth(w, http.StatusOK, StatusHealthy, "")
}

// handleReady reports readiness. It answers 503 until Run has begun
// serving, again once shutdown starts, and whenever the configured
// ReadinessCheck fails.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	if !s.isReady() {
		s.writeHealth(w, http.StatusServiceUnavailable, StatusNotReady, "service is not accepting traffic")
		return
	}

	if s.readinessCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), defaults.ReadinessCheckTimeout)
		defer cancel()
		if err := s.readinessCheck(ctx); err != nil {
			slog.Warn("readiness check failed", "error", err)
			s.writeHealth(w, http.StatusServiceUnavailable, StatusNotReady, "wine store unavailable")
			return
		}
	}

	s.writeHealth(w, http.StatusOK, StatusReady, "")
}

func (s *Server) writeHealth(w http.ResponseWriter, code int, status, reason string) {
	serializer.RespondJSON(w, code, HealthResponse{
		Status:    status,
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}

// requireGet answers 405 for anything but GET and reports whether the
// caller may continue.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", false, nil)
	return false
}
