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

package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetClientCache() {
	clientOnce = sync.Once{}
	cachedClient = nil
	cachedConfig = nil
	clientErr = nil
}

func TestResolveKubeconfig(t *testing.T) {
	t.Run("explicit wins over env", func(t *testing.T) {
		t.Setenv(EnvKubeconfig, "/from/env")
		assert.Equal(t, "/explicit", resolveKubeconfig("/explicit"))
	})

	t.Run("env used when no explicit path", func(t *testing.T) {
		t.Setenv(EnvKubeconfig, "/from/env")
		assert.Equal(t, "/from/env", resolveKubeconfig(""))
	})

	t.Run("home config used when present", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".kube"), 0o755))
		cfg := filepath.Join(home, ".kube", "config")
		require.NoError(t, os.WriteFile(cfg, []byte("apiVersion: v1\n"), 0o600))

		t.Setenv(EnvKubeconfig, "")
		t.Setenv("HOME", home)
		assert.Equal(t, cfg, resolveKubeconfig(""))
	})

	t.Run("in-cluster when nothing found", func(t *testing.T) {
		t.Setenv(EnvKubeconfig, "")
		t.Setenv("HOME", t.TempDir())
		assert.Empty(t, resolveKubeconfig(""))
	})
}

func TestBuildKubeClient_InvalidPaths(t *testing.T) {
	t.Setenv(EnvKubeconfig, "")

	_, _, err := BuildKubeClient("/nonexistent/path/to/kubeconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")

	bad := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(bad, []byte("invalid yaml content"), 0o600))
	_, _, err = BuildKubeClient(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")
}

func TestGetKubeClientWithConfig_ExplicitPathNotCached(t *testing.T) {
	resetClientCache()
	t.Cleanup(resetClientCache)

	_, _, err := GetKubeClientWithConfig("/nonexistent/kubeconfig")
	require.Error(t, err)

	// the singleton must still be unbuilt
	assert.Nil(t, cachedClient)
	assert.NoError(t, clientErr)
}

func TestGetKubeClient_Singleton(t *testing.T) {
	resetClientCache()
	t.Cleanup(resetClientCache)

	c1, cfg1, err1 := GetKubeClient()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c2, cfg2, err2 := GetKubeClient()
			assert.Equal(t, c1, c2)
			assert.Equal(t, cfg1, cfg2)
			assert.Equal(t, err1 != nil, err2 != nil)
		}()
	}
	wg.Wait()
}
