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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{name: "valid", uri: "cm://wines/cellar-catalog", wantNamespace: "wines", wantName: "cellar-catalog"},
		{name: "spaces trimmed", uri: "cm://wines / cellar-catalog ", wantNamespace: "wines", wantName: "cellar-catalog"},
		{name: "missing scheme", uri: "wines/cellar-catalog", wantErr: true},
		{name: "wrong scheme", uri: "http://wines/cellar-catalog", wantErr: true},
		{name: "missing name", uri: "cm://wines/", wantErr: true},
		{name: "missing namespace", uri: "cm:///cellar-catalog", wantErr: true},
		{name: "missing separator", uri: "cm://wines", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, name, err := ParseConfigMapURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNamespace, ns)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestFromConfigMap(t *testing.T) {
	client := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "wines", Name: "yaml-catalog"},
			Data:       map[string]string{"catalog.yaml": "name: Reserva\nregion: Rioja\n"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "wines", Name: "json-catalog"},
			Data: map[string]string{
				"format":       "json",
				"catalog.json": `{"name":"Brut","region":"Champagne"}`,
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: "wines", Name: "empty"},
			Data:       map[string]string{"other": "x"},
		},
	)
	ctx := context.Background()

	b, err := FromConfigMap[bottle](ctx, client, "wines", "yaml-catalog")
	require.NoError(t, err)
	assert.Equal(t, "Rioja", b.Region)

	b, err = FromConfigMap[bottle](ctx, client, "wines", "json-catalog")
	require.NoError(t, err)
	assert.Equal(t, "Champagne", b.Region)

	_, err = FromConfigMap[bottle](ctx, client, "wines", "empty")
	assert.ErrorContains(t, err, "no catalog data")

	_, err = FromConfigMap[bottle](ctx, client, "wines", "missing")
	assert.Error(t, err)
}

func TestConfigMapWriter_RoundTrip(t *testing.T) {
	client := fake.NewClientset()
	ctx := context.Background()

	w := NewConfigMapWriter("wines", "results", FormatYAML, WithKubeClient(client))
	require.NoError(t, w.Serialize(ctx, bottle{Name: "Tokaji", Region: "Tokaj"}))
	require.NoError(t, w.Close())

	cm, err := client.CoreV1().ConfigMaps("wines").Get(ctx, "results", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Contains(t, cm.Data["catalog.yaml"], "region: Tokaj")
	assert.NotEmpty(t, cm.Data["timestamp"])
	assert.Equal(t, "cellar", cm.Labels["app.kubernetes.io/name"])

	b, err := FromConfigMap[bottle](ctx, client, "wines", "results")
	require.NoError(t, err)
	assert.Equal(t, "Tokaji", b.Name)
}
