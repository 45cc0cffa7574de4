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

package oci

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
)

// PullOptions configures fetching a catalog artifact from a registry.
type PullOptions struct {
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// Catalog is a catalog layer fetched from an OCI artifact.
type Catalog struct {
	// Content is the raw catalog document.
	Content []byte
	// MediaType is the layer media type.
	MediaType string
	// Digest is the manifest digest.
	Digest string
}

// IsJSON reports whether the layer holds a JSON document.
func (c *Catalog) IsJSON() bool {
	return strings.HasSuffix(c.MediaType, "+json")
}

// PullCatalog fetches the catalog layer of the artifact at uri, an
// oci://registry/repository[:tag][@digest] reference. A reference with
// neither tag nor digest pulls DefaultTag.
func PullCatalog(ctx context.Context, uri string, opts PullOptions) (*Catalog, error) {
	ref, err := ParseReference(uri)
	if err != nil {
		return nil, err
	}
	if !ref.IsOCI {
		return nil, fmt.Errorf("not an OCI reference: %q", uri)
	}

	repo, err := newRepository(ref.Registry, ref.Repository, opts.PlainHTTP, opts.InsecureTLS)
	if err != nil {
		return nil, err
	}

	return fetchCatalog(ctx, repo, ref.Target())
}

// fetchCatalog copies the artifact at target, a tag or digest, from src
// into memory and returns its catalog layer.
func fetchCatalog(ctx context.Context, src oras.ReadOnlyTarget, target string) (*Catalog, error) {
	store := memory.New()
	manifestDesc, err := oras.Copy(ctx, src, target, store, target, oras.DefaultCopyOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to pull artifact %q: %w", target, err)
	}

	manifestBytes, err := content.FetchAll(ctx, store, manifestDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest ociv1.Manifest
	if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if manifest.ArtifactType != ArtifactType {
		return nil, fmt.Errorf("unexpected artifact type %q, want %q", manifest.ArtifactType, ArtifactType)
	}

	for _, layer := range manifest.Layers {
		if layer.MediaType != CatalogMediaTypeYAML && layer.MediaType != CatalogMediaTypeJSON {
			continue
		}
		data, err := content.FetchAll(ctx, store, layer)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog layer: %w", err)
		}
		return &Catalog{
			Content:   data,
			MediaType: layer.MediaType,
			Digest:    manifestDesc.Digest.String(),
		}, nil
	}

	return nil, fmt.Errorf("artifact %s has no catalog layer", manifestDesc.Digest)
}
