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

package catalog

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/redhat/wine-cellar/pkg/wine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

// fakeRow feeds driver values through the same Scan conversions database/sql uses.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		if s, ok := d.(sql.Scanner); ok {
			if err := s.Scan(r.values[i]); err != nil {
				return err
			}
			continue
		}
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestScanWine(t *testing.T) {
	row := fakeRow{values: []any{
		"Gran Reserva 904", "BOLD_RED", "Rioja", "Spain", "La Rioja Alta",
		[]byte(`{Tempranillo,Graciano}`), int64(2015), []byte(`{"roast lamb"}`),
	}}

	w, err := scanWine(row)
	require.NoError(t, err)
	assert.Equal(t, "Gran Reserva 904", w.Name)
	assert.Equal(t, wine.TypeBoldRed, w.Type)
	assert.Equal(t, []string{"Tempranillo", "Graciano"}, w.Grapes)
	assert.Equal(t, []string{"roast lamb"}, w.Pairings)
	require.NotNil(t, w.Vintage)
	assert.Equal(t, 2015, *w.Vintage)
}

func TestScanWine_NonVintage(t *testing.T) {
	row := fakeRow{values: []any{
		"Brut Nature", "SPARKLING", "Penedès", "", "", []byte(`{}`), nil, []byte(`{}`),
	}}

	w, err := scanWine(row)
	require.NoError(t, err)
	assert.Nil(t, w.Vintage)
	assert.Nil(t, w.Grapes)
	assert.Nil(t, w.Pairings)
}

func TestScanWine_Errors(t *testing.T) {
	_, err := scanWine(fakeRow{err: errors.New("boom")})
	assert.Error(t, err)

	_, err = scanWine(fakeRow{values: []any{
		"x", "PURPLE", "Rioja", "", "", []byte(`{}`), nil, []byte(`{}`),
	}})
	assert.Error(t, err)
}

func TestWineArgs(t *testing.T) {
	args := wineArgs(wine.Wine{
		Name:    "Albariño",
		Type:    wine.TypeAromaticWhite,
		Region:  "Rías Baixas",
		Vintage: ptr.To(2022),
	})
	require.Len(t, args, 9)
	assert.Equal(t, "AROMATIC_WHITE", args[1])
	assert.Equal(t, "rias baixas", args[3])

	grapes, ok := args[6].(driver.Valuer)
	require.True(t, ok)
	v, err := grapes.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	assert.Equal(t, sql.NullInt64{Int64: 2022, Valid: true}, args[7])

	nv := wineArgs(wine.Wine{Name: "NV", Type: wine.TypeSparkling, Region: "Champagne"})
	assert.Equal(t, sql.NullInt64{}, nv[7])
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, pq.StringArray{"a"}, pq.StringArray(nonNil([]string{"a"})))
}
