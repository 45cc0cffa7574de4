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

// Package wine defines the domain model of the wine cellar lookup service.
//
// A lookup is described by a Query (wine type plus region) and answered with
// a Result:
//
//	{
//	  "status": "SUCCESS",
//	  "description": "SUCCESS",
//	  "wines": [ ... ]
//	}
//
// The wines array is always present, even when nothing matched.
//
// # Wine Types
//
// Type is a closed enumeration. Values are written in upper snake case
// (BOLD_RED, LIGHT_WHITE, ...). ParseType accepts any letter case and
// tolerates "-" or spaces in place of underscores.
//
// # Query Parameters
//
// GET /wine?wineType=BOLD_RED&region=rioja
//
// Both parameters are required. POST bodies carry the same two fields in JSON
// or YAML.
package wine
