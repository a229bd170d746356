// Package cli — spectrum.go implements the "atmospec spectrum" command.
//
// spectrum performs a full solver run and prints the wavelength-indexed
// spectral irradiance table, as CSV (default) or JSON (--json).
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aoyama-geo/atmospec/internal/spectrum"
)

// NewSpectrumCommand creates the "spectrum" cobra command.
func NewSpectrumCommand() *cobra.Command {
	flags := &modelFlags{}

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Run the solver and print the spectral irradiance table",
		Long: `Run the SMARTS solver for the configured scene and print the resulting
spectrum: one row per wavelength (micrometers), with direct-normal,
diffuse, global and direct-horizontal irradiance in W·m⁻²·µm⁻¹.

Default output is CSV with a header row; --json emits a column-oriented
JSON object instead.

Examples:
  atmospec spectrum --resources /opt/smarts/data --lat 44 --lon 2 --time 2020-02-11T12:00:00Z
  atmospec spectrum --params scene.yaml --preset severe --json
  atmospec spectrum --params scene.jsonc --docker-image smarts:2.9.5`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpectrum(cmd, flags)
		},
	}

	addModelFlags(cmd, flags)

	return cmd
}

// runSpectrum builds the model, executes the run and writes the table.
func runSpectrum(cmd *cobra.Command, flags *modelFlags) error {
	m, cleanup, err := flags.buildModel(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	table, err := m.Spectrum(cmd.Context())
	if err != nil {
		return err
	}

	VerboseLog("parsed %d spectral rows", table.Len())

	if IsJSONOutput() {
		return writeTableJSON(cmd.OutOrStdout(), table)
	}
	return writeTableCSV(cmd.OutOrStdout(), table)
}

// writeTableCSV writes the table as CSV: a header row naming the
// wavelength index and the four irradiance columns, then one data row per
// wavelength.
func writeTableCSV(w io.Writer, t *spectrum.Table) error {
	if _, err := fmt.Fprint(w, "wavelength"); err != nil {
		return err
	}
	for _, col := range spectrum.Columns {
		if _, err := fmt.Fprintf(w, ",%s", col); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for i := 0; i < t.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%g", t.Wavelength[i]); err != nil {
			return err
		}
		for _, col := range spectrum.Columns {
			if _, err := fmt.Fprintf(w, ",%g", t.Irradiance[col][i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeTableJSON writes the table as a column-oriented JSON object:
// {"wavelength": [...], "direct_normal": [...], ...}.
func writeTableJSON(w io.Writer, t *spectrum.Table) error {
	obj := make(map[string][]float64, 1+len(spectrum.Columns))
	obj["wavelength"] = t.Wavelength
	for _, col := range spectrum.Columns {
		obj[col] = t.Irradiance[col]
	}

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
