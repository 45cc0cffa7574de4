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

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redhat/wine-cellar/pkg/defaults"
	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"github.com/redhat/wine-cellar/pkg/serializer"
	"github.com/redhat/wine-cellar/pkg/server"
	"github.com/redhat/wine-cellar/pkg/wine"
)

// Handler serves the wine lookup endpoints.
type Handler struct {
	service  *Service
	cacheTTL time.Duration
	timeout  time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCacheTTL sets the Cache-Control max-age of successful responses.
func WithCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.cacheTTL = ttl
	}
}

// WithRequestTimeout bounds each request.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.timeout = d
	}
}

// NewHandler creates a Handler for service.
func NewHandler(service *Service, opts ...HandlerOption) *Handler {
	h := &Handler{
		service:  service,
		cacheTTL: defaults.LookupCacheTTL,
		timeout:  defaults.LookupHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// TypesResponse is the body of GET /wine/types.
type TypesResponse struct {
	Types []wine.Type `json:"types"`
}

// RegionsResponse is the body of GET /wine/regions.
type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// HandleWines serves /wine. GET reads wineType and region from the query
// string; POST reads the same fields from a JSON or YAML body.
func (h *Handler) HandleWines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var (
		query *wine.Query
		err   error
	)

	switch r.Method {
	case http.MethodGet:
		query, err = wine.ParseQueryFromRequest(r)
	case http.MethodPost:
		defer func() {
			if r.Body != nil {
				r.Body.Close()
			}
		}()
		body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
		query, err = wine.ParseQueryFromBody(body, r.Header.Get("Content-Type"))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, cnserrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return
		}
		server.WriteErrorFromErr(w, r, err, "Invalid wine query", nil)
		return
	}

	slog.Debug("wine query",
		"wine_type", string(query.WineType),
		"region", query.Region)

	result, err := h.service.Lookup(ctx, query)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to look up wines", nil)
		return
	}

	h.setCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleTypes serves GET /wine/types.
func (h *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	h.setCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, TypesResponse{Types: h.service.Types()})
}

// HandleRegions serves GET /wine/regions.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	regions, err := h.service.Regions(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list regions", nil)
		return
	}

	h.setCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, RegionsResponse{Regions: regions})
}

func (h *Handler) setCacheHeader(w http.ResponseWriter) {
	if h.cacheTTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheTTL.Seconds())))
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}
