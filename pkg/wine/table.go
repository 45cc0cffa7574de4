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
	"strconv"
	"strings"
)

// TableColumns are the column headings used when wines are rendered as a table.
var TableColumns = []string{"NAME", "TYPE", "REGION", "COUNTRY", "PRODUCER", "VINTAGE", "GRAPES"}

// TableRows renders one row per wine in TableColumns order. Non-vintage
// wines show "NV".
func TableRows(wines []Wine) [][]string {
	rows := make([][]string, 0, len(wines))
	for _, w := range wines {
		vintage := "NV"
		if w.Vintage != nil {
			vintage = strconv.Itoa(*w.Vintage)
		}
		rows = append(rows, []string{
			w.Name,
			w.Type.String(),
			w.Region,
			w.Country,
			w.Producer,
			vintage,
			strings.Join(w.Grapes, ", "),
		})
	}
	return rows
}

// TableHeader returns the table columns for a lookup result.
func (r *Result) TableHeader() []string {
	return TableColumns
}

// TableRows returns one row per wine in the result.
func (r *Result) TableRows() [][]string {
	return TableRows(r.Wines)
}
