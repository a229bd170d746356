package spectrum

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns lists the irradiance components of a Table in output-file
// order. The names match the solver quantities selected by the fixed
// output-column card (direct normal, diffuse, global, direct horizontal).
var Columns = []string{"direct_normal", "diffuse", "global", "direct"}

// headerLines is the number of header lines preceding the data in the
// solver's output file.
const headerLines = 1

// Table is a spectral irradiance table: rows indexed by strictly
// ascending wavelength, one value per irradiance component per row. It is
// produced once per run and not mutated afterward.
type Table struct {
	// Wavelength holds the row index in micrometers, ascending. The
	// ordering is guaranteed by the solver; this layer does not re-sort.
	Wavelength []float64

	// Irradiance maps each Columns entry to its per-row spectral
	// irradiance in W·m⁻²·µm⁻¹.
	Irradiance map[string][]float64
}

// Len returns the number of wavelength rows.
func (t *Table) Len() int {
	return len(t.Wavelength)
}

// Parse reads the solver's spectral output lines into a Table, skipping
// the single header line and applying the unit normalization: the
// wavelength column is divided by 1000 (nm → µm) and every irradiance
// column is multiplied by 1000 (native units → W·m⁻²·µm⁻¹).
func Parse(lines []string) (*Table, error) {
	if len(lines) < headerLines {
		return nil, fmt.Errorf("spectral output is empty")
	}

	t := &Table{
		Irradiance: make(map[string][]float64, len(Columns)),
	}

	for i, line := range lines[headerLines:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 1+len(Columns) {
			return nil, fmt.Errorf("spectral output line %d: expected %d columns, got %d",
				i+headerLines+1, 1+len(Columns), len(fields))
		}

		values := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("spectral output line %d: %w", i+headerLines+1, err)
			}
			values[j] = v
		}

		t.Wavelength = append(t.Wavelength, values[0]/1000)
		for j, col := range Columns {
			t.Irradiance[col] = append(t.Irradiance[col], values[j+1]*1000)
		}
	}

	return t, nil
}
