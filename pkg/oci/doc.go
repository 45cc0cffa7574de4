// Package oci publishes and fetches wine catalogs as OCI artifacts.
//
// A catalog document (YAML or JSON) is stored as the single layer of an
// OCI 1.1 manifest with artifact type ArtifactType, so any OCI-compliant
// registry (GHCR, Quay, ECR, a local registry) can distribute it. The
// package uses the ORAS (OCI Registry As Storage) library.
//
// # Operations
//
//   - Package: writes a catalog into a local OCI Image Layout
//   - PushFromStore: pushes a previously packaged artifact to a registry
//   - PackageAndPush: both of the above
//   - PullCatalog: fetches the catalog layer of a remote artifact
//
// # Usage
//
//	ref, err := oci.ParseReference("oci://ghcr.io/redhat/wine-catalog:2025.1")
//	if err != nil {
//	    return err
//	}
//	result, err := oci.PackageAndPush(ctx, oci.OutputConfig{
//	    Content:   data,
//	    Reference: ref,
//	    Version:   "2025.1",
//	})
//
// Serving instances pull the catalog back, optionally pinned by digest:
//
//	artifact, err := oci.PullCatalog(ctx,
//	    "oci://ghcr.io/redhat/wine-catalog@sha256:...", oci.PullOptions{})
//
// Registry credentials are read from the Docker credential store
// (~/.docker/config.json and its helpers).
package oci
