package spectrum

import (
	"errors"

	"gonum.org/v1/gonum/integrate"
)

// ErrTooFewRows is returned by Integrate when the table has fewer than
// two wavelength rows. A single sample has no width to integrate over;
// rather than silently reporting zero, the condition is surfaced so
// callers can detect a degenerate spectral range.
var ErrTooFewRows = errors.New("spectral table has fewer than 2 rows; integral is undefined")

// Broadband holds the wavelength-integrated irradiance in W·m⁻², one
// value per Table column, keyed by the Columns names.
type Broadband map[string]float64

// Integrate computes the definite integral of each irradiance column over
// the table's wavelength index using the trapezoidal rule. Columns are
// integrated independently; the result carries one broadband value per
// column.
func Integrate(t *Table) (Broadband, error) {
	if t.Len() < 2 {
		return nil, ErrTooFewRows
	}

	out := make(Broadband, len(Columns))
	for _, col := range Columns {
		out[col] = integrate.Trapezoidal(t.Wavelength, t.Irradiance[col])
	}
	return out, nil
}
