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

// Package k8s holds Kubernetes integration for the wine cellar.
//
// # Sub-packages
//
// client: shared Kubernetes client with automatic authentication, used to
// read catalogs from and write them to ConfigMaps.
//
//	import "github.com/redhat/wine-cellar/pkg/k8s/client"
//
//	clientset, _, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//
// The client detects whether it runs in-cluster (service account) or
// out-of-cluster (kubeconfig), and is created once per kubeconfig path.
package k8s
