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

package wine

import (
	"encoding/json"
)

// StatusSuccess is reported as both status and description when a lookup
// was well formed and resolved, regardless of how many wines matched.
const StatusSuccess = "SUCCESS"

// Result is the response to a lookup.
type Result struct {
	Status      string `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
	Wines       []Wine `json:"wines" yaml:"wines"`
}

// NewResult builds a Result; a nil wines slice is replaced with an empty one.
func NewResult(status, description string, wines []Wine) *Result {
	if wines == nil {
		wines = []Wine{}
	}
	return &Result{
		Status:      status,
		Description: description,
		Wines:       wines,
	}
}

// Success builds the result of a resolved lookup.
func Success(wines []Wine) *Result {
	return NewResult(StatusSuccess, StatusSuccess, wines)
}

// MarshalJSON keeps "wines" an array even for zero-value results.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	p := plain(r)
	if p.Wines == nil {
		p.Wines = []Wine{}
	}
	return json.Marshal(p)
}
