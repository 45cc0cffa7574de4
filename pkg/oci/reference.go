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
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/redhat/wine-cellar/pkg/errors"
)

// URIScheme prefixes catalog locations held in a registry, as in
// oci://ghcr.io/redhat/wine-catalog:2025.1.
const URIScheme = "oci://"

// DefaultTag is pulled when a reference names neither tag nor digest.
const DefaultTag = "latest"

// Reference is a catalog location: a registry artifact or a local path.
type Reference struct {
	// IsOCI is true for oci:// locations; Registry, Repository, Tag and
	// Digest are only set then.
	IsOCI bool

	Registry   string // "ghcr.io", "localhost:5000"
	Repository string // "redhat/wine-catalog"

	// Tag is empty when the location did not name one.
	Tag string

	// Digest pins the artifact, as in repo@sha256:...; it wins over Tag.
	Digest string

	// LocalPath is the location when IsOCI is false.
	LocalPath string
}

// IsURI reports whether target uses the oci:// scheme.
func IsURI(target string) bool {
	return strings.HasPrefix(target, URIScheme)
}

// ParseReference splits an oci://registry/repository[:tag][@digest]
// location into its parts. Anything without the scheme is a local path.
// A missing tag is left empty so callers can pick their own default.
func ParseReference(target string) (*Reference, error) {
	if !IsURI(target) {
		return &Reference{LocalPath: target}, nil
	}

	named, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid OCI reference", err, map[string]any{"reference": target})
	}

	ref := &Reference{
		IsOCI:      true,
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		ref.Digest = digested.Digest().String()
	}

	if err := ValidateRegistryReference(ref.Registry, ref.Repository); err != nil {
		return nil, err
	}
	return ref, nil
}

// ValidateRegistryReference checks that registry and repository form a
// valid image name.
func ValidateRegistryReference(registry, repository string) error {
	switch {
	case registry == "":
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "registry is required")
	case repository == "":
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "repository is required")
	}
	name := stripProtocol(registry) + "/" + repository
	if _, err := reference.ParseNormalizedNamed(name); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid registry reference", err, map[string]any{"reference": name})
	}
	return nil
}

// String renders the location back in the form ParseReference accepts.
func (r *Reference) String() string {
	if !r.IsOCI {
		return r.LocalPath
	}
	return URIScheme + r.ImageReference()
}

// ImageReference is the location without the oci:// scheme, or "" for
// local paths.
func (r *Reference) ImageReference() string {
	if !r.IsOCI {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s", r.Registry, r.Repository)
	if r.Tag != "" {
		b.WriteString(":" + r.Tag)
	}
	if r.Digest != "" {
		b.WriteString("@" + r.Digest)
	}
	return b.String()
}

// Target is what to resolve in the repository: the digest when pinned,
// otherwise the tag, otherwise DefaultTag.
func (r *Reference) Target() string {
	switch {
	case r.Digest != "":
		return r.Digest
	case r.Tag != "":
		return r.Tag
	default:
		return DefaultTag
	}
}

// WithTag returns a copy tagged tag. Local references are returned as is.
func (r *Reference) WithTag(tag string) *Reference {
	if !r.IsOCI {
		return r
	}
	out := *r
	out.Tag = tag
	return &out
}
