package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constTable(wavelengths []float64, value float64) *Table {
	t := &Table{
		Wavelength: wavelengths,
		Irradiance: make(map[string][]float64, len(Columns)),
	}
	for _, col := range Columns {
		rows := make([]float64, len(wavelengths))
		for i := range rows {
			rows[i] = value
		}
		t.Irradiance[col] = rows
	}
	return t
}

// TestIntegrateConstant verifies the trapezoidal integral of a constant
// spectrum: value times wavelength span, per column.
func TestIntegrateConstant(t *testing.T) {
	broadband, err := Integrate(constTable([]float64{0.5, 0.6}, 1000.0))
	require.NoError(t, err)

	for _, col := range Columns {
		assert.InDeltaf(t, 100.0, broadband[col], 1e-9, "column %s", col)
	}
}

// TestIntegrateLinear verifies an exact trapezoid result on a ramp, with
// non-uniform wavelength spacing.
func TestIntegrateLinear(t *testing.T) {
	table := &Table{
		Wavelength: []float64{0.3, 0.4, 0.6},
		Irradiance: map[string][]float64{
			"direct_normal": {0.0, 100.0, 300.0},
			"diffuse":       {0.0, 0.0, 0.0},
			"global":        {0.0, 100.0, 300.0},
			"direct":        {0.0, 100.0, 300.0},
		},
	}

	broadband, err := Integrate(table)
	require.NoError(t, err)

	// 0.1*(0+100)/2 + 0.2*(100+300)/2 = 5 + 40.
	assert.InDelta(t, 45.0, broadband["direct_normal"], 1e-9)
	assert.InDelta(t, 0.0, broadband["diffuse"], 1e-12)
}

// TestIntegrateTooFewRows verifies the degenerate-range sentinel for
// empty and single-row tables.
func TestIntegrateTooFewRows(t *testing.T) {
	_, err := Integrate(constTable(nil, 0))
	assert.ErrorIs(t, err, ErrTooFewRows)

	_, err = Integrate(constTable([]float64{0.5}, 1000.0))
	assert.ErrorIs(t, err, ErrTooFewRows)
}
