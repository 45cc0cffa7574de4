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

package header

import (
	"fmt"
	"time"
)

// APIVersion is the schema version written into wine cellar documents.
const APIVersion = "cellar.redhat.com/v1alpha1"

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// Kind names a wine cellar document type.
type Kind string

const (
	KindWineCatalog     Kind = "WineCatalog"
	KindWineQueryResult Kind = "WineQueryResult"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known document kind. Matching is case
// sensitive.
func (k Kind) IsValid() bool {
	return k == KindWineCatalog || k == KindWineQueryResult
}

// Header is embedded inline by documents so they read like Kubernetes
// objects.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option configures a Header built with New.
type Option func(*Header)

// WithKind sets the document kind.
func WithKind(kind Kind) Option {
	return func(h *Header) { h.Kind = kind }
}

// WithAPIVersion sets the schema version.
func WithAPIVersion(version string) Option {
	return func(h *Header) { h.APIVersion = version }
}

// WithMetadata adds one metadata entry.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New builds a Header from opts.
func New(opts ...Option) *Header {
	h := &Header{Metadata: make(map[string]string)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetKind returns the document kind. Serializers use it to label ConfigMaps.
func (h *Header) GetKind() Kind {
	return h.Kind
}

// GetMetadata returns the metadata map, which may be nil.
func (h *Header) GetMetadata() map[string]string {
	return h.Metadata
}

// Version returns the document version recorded in metadata, or "".
func (h *Header) Version() string {
	return h.Metadata[MetadataVersion]
}

// Init stamps h as a new document of kind. Existing metadata is replaced by
// a creation timestamp and, when non-empty, version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// Check verifies that a header, when present, declares kind and the
// supported APIVersion. Hand-written documents may omit both.
func (h *Header) Check(kind Kind) error {
	if h.Kind != "" && h.Kind != kind {
		return fmt.Errorf("unexpected document kind %q, want %q", h.Kind, kind)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	return nil
}
