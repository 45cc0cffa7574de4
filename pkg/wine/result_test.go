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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_StatusEqualsDescription(t *testing.T) {
	r := Success(nil)

	assert.Equal(t, StatusSuccess, r.Status)
	assert.Equal(t, r.Status, r.Description)
	require.NotNil(t, r.Wines)
	assert.Empty(t, r.Wines)
}

func TestResult_WinesAlwaysArray(t *testing.T) {
	tests := []struct {
		name   string
		result Result
	}{
		{"zero value", Result{Status: StatusSuccess, Description: StatusSuccess}},
		{"constructed empty", *Success(nil)},
		{"populated", *Success([]Wine{{Name: "Reserva", Type: TypeBoldRed, Region: "Rioja"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.result)
			require.NoError(t, err)

			var body map[string]any
			require.NoError(t, json.Unmarshal(data, &body))

			wines, ok := body["wines"].([]any)
			require.True(t, ok, "wines must decode as an array, got %T", body["wines"])
			assert.Len(t, wines, len(tt.result.Wines))

			assert.IsType(t, "", body["status"])
			assert.IsType(t, "", body["description"])
		})
	}
}

func TestResult_PointerMarshalUsesArray(t *testing.T) {
	data, err := json.Marshal(&Result{Status: StatusSuccess, Description: StatusSuccess})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"SUCCESS","description":"SUCCESS","wines":[]}`, string(data))
}

func TestResult_TableRows(t *testing.T) {
	vintage := 2015
	r := Success([]Wine{
		{Name: "Gran Reserva", Type: TypeBoldRed, Region: "Rioja", Grapes: []string{"Tempranillo", "Graciano"}, Vintage: &vintage},
		{Name: "Brut", Type: TypeSparkling, Region: "Champagne"},
	})

	assert.Equal(t, TableColumns, r.TableHeader())
	rows := r.TableRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Gran Reserva", "BOLD_RED", "Rioja", "", "", "2015", "Tempranillo, Graciano"}, rows[0])
	assert.Equal(t, "NV", rows[1][5])
}
