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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/oci"
)

const (
	// ArtifactType is the artifact type of wine catalog manifests.
	ArtifactType = "application/vnd.redhat.cellar.catalog.v1"

	// CatalogMediaTypeYAML is the layer media type of a YAML catalog.
	CatalogMediaTypeYAML = "application/vnd.redhat.cellar.catalog.v1+yaml"

	// CatalogMediaTypeJSON is the layer media type of a JSON catalog.
	CatalogMediaTypeJSON = "application/vnd.redhat.cellar.catalog.v1+json"

	// DefaultCatalogFileName is the title annotation of the catalog layer.
	DefaultCatalogFileName = "wines.yaml"
)

// PackageOptions configures local OCI packaging of a catalog document.
type PackageOptions struct {
	// Content is the serialized catalog.
	Content []byte
	// MediaType is the layer media type; defaults to CatalogMediaTypeYAML.
	MediaType string
	// FileName is recorded as the layer title; defaults to DefaultCatalogFileName.
	FileName string
	// OutputDir is where the OCI Image Layout directory is created.
	OutputDir string
	// Registry is the OCI registry host the artifact is intended for.
	Registry string
	// Repository is the image repository path.
	Repository string
	// Tag is the image tag.
	Tag string
	// Annotations are added to the manifest.
	Annotations map[string]string
	// ReproducibleTimestamp sets a fixed created annotation so identical
	// content yields an identical digest.
	ReproducibleTimestamp string
}

// PackageResult contains the result of local OCI packaging.
type PackageResult struct {
	// Digest is the SHA256 digest of the manifest.
	Digest string
	// Reference is the image reference (registry/repository:tag).
	Reference string
	// StorePath is the path to the OCI Image Layout directory.
	StorePath string
}

// Package writes a catalog document into an OCI Image Layout under
// OutputDir and tags the manifest with opts.Tag.
func Package(ctx context.Context, opts PackageOptions) (*PackageResult, error) {
	if opts.Tag == "" {
		return nil, fmt.Errorf("tag is required for OCI packaging")
	}
	if opts.Registry == "" {
		return nil, fmt.Errorf("registry is required for OCI packaging")
	}
	if opts.Repository == "" {
		return nil, fmt.Errorf("repository is required for OCI packaging")
	}
	if len(opts.Content) == 0 {
		return nil, fmt.Errorf("content is required for OCI packaging")
	}

	refString := fmt.Sprintf("%s/%s:%s", stripProtocol(opts.Registry), opts.Repository, opts.Tag)
	if err := ValidateRegistryReference(opts.Registry, opts.Repository); err != nil {
		return nil, err
	}

	mediaType := opts.MediaType
	if mediaType == "" {
		mediaType = CatalogMediaTypeYAML
	}
	fileName := opts.FileName
	if fileName == "" {
		fileName = DefaultCatalogFileName
	}

	storePath := filepath.Join(opts.OutputDir, "oci-layout")
	if err := os.MkdirAll(storePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create OCI layout directory: %w", err)
	}

	store, err := oci.New(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create OCI layout store: %w", err)
	}

	layerDesc := content.NewDescriptorFromBytes(mediaType, opts.Content)
	layerDesc.Annotations = map[string]string{
		ociv1.AnnotationTitle: fileName,
	}
	if err := pushIfMissing(ctx, store, layerDesc, opts.Content); err != nil {
		return nil, fmt.Errorf("failed to store catalog layer: %w", err)
	}

	packOpts := oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layerDesc},
		ManifestAnnotations: map[string]string{},
	}
	for k, v := range opts.Annotations {
		packOpts.ManifestAnnotations[k] = v
	}
	if opts.ReproducibleTimestamp != "" {
		packOpts.ManifestAnnotations[ociv1.AnnotationCreated] = opts.ReproducibleTimestamp
	}

	manifestDesc, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := store.Tag(ctx, manifestDesc, opts.Tag); err != nil {
		return nil, fmt.Errorf("failed to tag manifest in local store: %w", err)
	}

	return &PackageResult{
		Digest:    manifestDesc.Digest.String(),
		Reference: refString,
		StorePath: storePath,
	}, nil
}

func pushIfMissing(ctx context.Context, store content.Storage, desc ociv1.Descriptor, data []byte) error {
	exists, err := store.Exists(ctx, desc)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return store.Push(ctx, desc, bytes.NewReader(data))
}
