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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redhat/wine-cellar/pkg/defaults"
	"github.com/redhat/wine-cellar/pkg/header"
	"github.com/redhat/wine-cellar/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap locations: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// ConfigMapDataKeyPrefix is the data key stem; the full key is
	// catalog.json or catalog.yaml.
	ConfigMapDataKeyPrefix = "catalog"

	// ConfigMapFieldManager owns the fields written by Server-Side Apply.
	ConfigMapFieldManager = "cellar"

	configMapAppLabel = "cellar"
)

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap,
// creating it if needed.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// ConfigMapWriterOption configures a ConfigMapWriter.
type ConfigMapWriterOption func(*ConfigMapWriter)

// WithKubeClient sets the client used instead of the shared one.
func WithKubeClient(c client.Interface) ConfigMapWriterOption {
	return func(w *ConfigMapWriter) {
		w.client = c
	}
}

// NewConfigMapWriter creates a writer for namespace/name.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapWriterOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize applies v to the ConfigMap. The resulting data holds:
//   - catalog.{json|yaml|txt}: the serialized content
//   - format: the format used
//   - timestamp: taken from the document header when present
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	k8sClient := w.client
	if k8sClient == nil {
		c, _, err := client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		k8sClient = c
	}

	content, err := Marshal(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kind := header.KindWineQueryResult.String()
	version := "unknown"
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k.String()
		}
		if md := h.GetMetadata(); md != nil {
			if val := md["version"]; val != "" {
				version = val
			}
			if ts := md["timestamp"]; ts != "" {
				timestamp = ts
			}
		}
	}

	data := map[string]string{
		configMapDataKey(w.format): string(content),
		"format":                   string(w.format),
		"timestamp":                timestamp,
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      configMapAppLabel,
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(data)

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format,
		"kind", kind)

	// Force takes ownership from earlier managers (the CLI vs the server).
	_, err = k8sClient.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: ConfigMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// FromConfigMap reads namespace/name and decodes its catalog data into a T.
//
// The data key is chosen from the "format" entry when present; otherwise the
// first of catalog.yaml and catalog.json that exists is used.
func FromConfigMap[T any](ctx context.Context, k8sClient client.Interface, namespace, name string) (*T, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := k8sClient.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	var (
		format  Format
		content string
		found   bool
	)
	if f := Format(cm.Data["format"]); f == FormatJSON || f == FormatYAML {
		format = f
		content, found = cm.Data[configMapDataKey(f)]
	}
	if !found {
		for _, f := range []Format{FormatYAML, FormatJSON} {
			if c, ok := cm.Data[configMapDataKey(f)]; ok {
				format, content, found = f, c, true
				break
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, ConfigMapDataKeyPrefix)
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"size", len(content))

	reader, err := NewReader(format, strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for ConfigMap data: %w", err)
	}

	var v T
	if err := reader.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize ConfigMap data: %w", err)
	}
	return &v, nil
}

func configMapDataKey(f Format) string {
	return ConfigMapDataKeyPrefix + "." + f.Extension()
}

// ParseConfigMapURI splits cm://namespace/name into its parts.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
