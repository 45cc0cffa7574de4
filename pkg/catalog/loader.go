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
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/redhat/wine-cellar/pkg/defaults"
	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"github.com/redhat/wine-cellar/pkg/oci"
	"github.com/redhat/wine-cellar/pkg/serializer"
	"gopkg.in/yaml.v3"
)

//go:embed data/wines.yaml
var catalogFS embed.FS

const embeddedCatalogPath = "data/wines.yaml"

var (
	embeddedOnce    sync.Once
	embeddedCatalog *Catalog
	embeddedErr     error
)

// EmbeddedCatalog returns the catalog compiled into the binary. It is
// parsed on first use and shared afterwards; callers must not modify it.
func EmbeddedCatalog() (*Catalog, error) {
	loaded := false
	embeddedOnce.Do(func() {
		loaded = true
		catalogCacheMisses.Inc()

		content, err := catalogFS.ReadFile(embeddedCatalogPath)
		if err != nil {
			embeddedErr = fmt.Errorf("failed to read %s: %w", embeddedCatalogPath, err)
			return
		}

		var c Catalog
		if err := yaml.Unmarshal(content, &c); err != nil {
			embeddedErr = fmt.Errorf("failed to parse %s: %w", embeddedCatalogPath, err)
			return
		}
		if err := c.Validate(); err != nil {
			embeddedErr = cnserrors.Wrap(cnserrors.ErrCodeInternal, "embedded catalog is invalid", err)
			return
		}
		embeddedCatalog = &c
	})

	if embeddedErr != nil {
		return nil, embeddedErr
	}
	if !loaded {
		catalogCacheHits.Inc()
	}
	return embeddedCatalog, nil
}

// LoadOptions configures LoadCatalogWithOptions.
type LoadOptions struct {
	// Kubeconfig is used for cm:// sources.
	Kubeconfig string

	// PlainHTTP talks to oci:// registries over HTTP.
	PlainHTTP bool

	// InsecureTLS skips certificate verification for oci:// registries.
	InsecureTLS bool
}

// LoadCatalog reads a catalog from source. An empty source returns the
// embedded catalog; otherwise source is a file path, an http(s) URL, a
// cm://namespace/name ConfigMap URI or an oci://registry/repository:tag
// artifact.
func LoadCatalog(ctx context.Context, source string) (*Catalog, error) {
	return LoadCatalogWithOptions(ctx, source, LoadOptions{})
}

// LoadCatalogWithOptions is LoadCatalog with explicit access settings for
// ConfigMap and registry sources.
//
// Parameters:
//   - source: "" for the embedded catalog, a file path, an http(s) URL,
//     cm://namespace/name or oci://registry/repository[:tag|@digest]
//   - opts: Kubeconfig is used for cm:// sources; PlainHTTP and
//     InsecureTLS apply to oci:// sources only
//
// Loading is bounded by defaults.CatalogLoadTimeout. The loaded catalog is
// validated before it is returned, so every wine has a name, a known type
// and a non-empty region.
func LoadCatalogWithOptions(ctx context.Context, source string, opts LoadOptions) (*Catalog, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return EmbeddedCatalog()
	}

	loadCtx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	var (
		c   *Catalog
		err error
	)
	if oci.IsURI(source) {
		c, err = pullCatalog(loadCtx, source, opts)
	} else {
		c, err = serializer.FromFileWithContext[Catalog](loadCtx, source, opts.Kubeconfig)
	}
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeUnavailable,
			"failed to load catalog", err, map[string]any{"source": source})
	}
	if err := c.Validate(); err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"invalid catalog", err, map[string]any{"source": source})
	}
	return c, nil
}

func pullCatalog(ctx context.Context, source string, opts LoadOptions) (*Catalog, error) {
	artifact, err := oci.PullCatalog(ctx, source, oci.PullOptions{
		PlainHTTP:   opts.PlainHTTP,
		InsecureTLS: opts.InsecureTLS,
	})
	if err != nil {
		return nil, err
	}
	return decodeCatalog(artifact)
}

// decodeCatalog parses a pulled catalog layer according to its media type.
func decodeCatalog(artifact *oci.Catalog) (*Catalog, error) {
	var c Catalog
	if artifact.IsJSON() {
		if err := json.Unmarshal(artifact.Content, &c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog artifact %s: %w", artifact.Digest, err)
		}
		return &c, nil
	}
	if err := yaml.Unmarshal(artifact.Content, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog artifact %s: %w", artifact.Digest, err)
	}
	return &c, nil
}
