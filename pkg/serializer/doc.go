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

// Package serializer reads and writes wine cellar documents.
//
// Catalogs and lookup results move between the CLI, the API server and
// storage as JSON or YAML. Results can also be rendered as a table for
// terminals.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// Outputs:
//   - "" or "-": stdout
//   - a file path
//   - cm://namespace/name: a Kubernetes ConfigMap, applied with Server-Side Apply
//
// Values implementing TableRenderer control their own table columns. Any
// other value is flattened into FIELD/VALUE rows.
//
// # Reading
//
//	cat, err := serializer.FromFileWithContext[catalog.Catalog](ctx, source, kubeconfig)
//
// Sources:
//   - a local file; the format comes from the extension
//   - an http(s) URL, fetched with HttpReader
//   - cm://namespace/name, read from the ConfigMap data key catalog.{yaml|json}
//
// # HTTP
//
// RespondJSON buffers the encoded body before writing headers so an encoding
// failure never leaves a partial response on the wire.
package serializer
