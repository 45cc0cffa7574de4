/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/redhat/wine-cellar/pkg/errors"
)

func TestStripProtocol(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"https prefix", "https://ghcr.io", "ghcr.io"},
		{"http prefix", "http://localhost:5000", "localhost:5000"},
		{"no prefix", "registry.example.com", "registry.example.com"},
		{"with port no prefix", "localhost:5000", "localhost:5000"},
		{"https with path", "https://ghcr.io/redhat", "ghcr.io/redhat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripProtocol(tt.input)
			if got != tt.expected {
				t.Errorf("stripProtocol(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPushFromStore_EmptyTag(t *testing.T) {
	_, err := PushFromStore(context.Background(), "/nonexistent", PushOptions{
		Registry:   "localhost:5000",
		Repository: "cellar/catalog",
	})
	if err == nil {
		t.Fatal("PushFromStore() expected error for empty tag, got nil")
	}
	if err.Error() != "tag is required to push OCI image" {
		t.Errorf("PushFromStore() error = %q", err.Error())
	}
}

func TestPushFromStore_InvalidReference(t *testing.T) {
	_, err := PushFromStore(context.Background(), "/nonexistent", PushOptions{
		Registry:   "invalid registry with spaces",
		Repository: "cellar/catalog",
		Tag:        "v1",
	})
	if err == nil {
		t.Error("PushFromStore() expected error for invalid registry, got nil")
	}
}

func TestPackageAndPush_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  OutputConfig
	}{
		{"nil reference", OutputConfig{Content: []byte(testCatalog)}},
		{"local reference", OutputConfig{Content: []byte(testCatalog), Reference: &Reference{LocalPath: "./out"}}},
		{"missing tag", OutputConfig{Content: []byte(testCatalog), Reference: &Reference{IsOCI: true, Registry: "ghcr.io", Repository: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PackageAndPush(context.Background(), tt.cfg)
			if err == nil {
				t.Fatal("PackageAndPush() expected error")
			}
			var se *apperrors.StructuredError
			if !errors.As(err, &se) || se.Code != apperrors.ErrCodeInvalidRequest {
				t.Errorf("expected INVALID_REQUEST, got %v", err)
			}
		})
	}
}

func TestPackageAndPush_UnreachableRegistry(t *testing.T) {
	ref := &Reference{IsOCI: true, Registry: "127.0.0.1:1", Repository: "cellar/catalog", Tag: "v1"}

	_, err := PackageAndPush(context.Background(), OutputConfig{
		Content:   []byte(testCatalog),
		OutputDir: t.TempDir(),
		Reference: ref,
		PlainHTTP: true,
	})
	if err == nil {
		t.Fatal("PackageAndPush() expected error for unreachable registry")
	}
	if code := apperrors.CodeOf(err); code != apperrors.ErrCodeUnavailable {
		t.Errorf("code = %s, want %s", code, apperrors.ErrCodeUnavailable)
	}
}

func TestCreateAuthClient(t *testing.T) {
	c := createAuthClient(false, true)
	if c == nil || c.Client == nil {
		t.Fatal("expected auth client with http client")
	}
	if createAuthClient(true, false) == nil {
		t.Fatal("expected auth client for plain HTTP")
	}
}
