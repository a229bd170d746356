// Package cli — irradiance.go implements the "atmospec irradiance"
// command.
//
// irradiance performs a full solver run and integrates the spectrum over
// wavelength, printing one broadband value per irradiance component.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aoyama-geo/atmospec/internal/spectrum"
)

// NewIrradianceCommand creates the "irradiance" cobra command.
func NewIrradianceCommand() *cobra.Command {
	flags := &modelFlags{}

	cmd := &cobra.Command{
		Use:   "irradiance",
		Short: "Run the solver and print broadband irradiance",
		Long: `Run the SMARTS solver for the configured scene, integrate the resulting
spectrum over wavelength with the trapezoidal rule, and print the broadband
irradiance (W·m⁻²) for each component: direct normal, diffuse, global and
direct horizontal.

Examples:
  atmospec irradiance --resources /opt/smarts/data --lat 44 --lon 2 --time 2020-02-11T12:00:00Z
  atmospec irradiance --params scene.yaml --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runIrradiance(cmd, flags)
		},
	}

	addModelFlags(cmd, flags)

	return cmd
}

// runIrradiance builds the model, runs it and prints the integrated row.
func runIrradiance(cmd *cobra.Command, flags *modelFlags) error {
	m, cleanup, err := flags.buildModel(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	broadband, err := m.Irradiance(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		data, err := json.MarshalIndent(broadband, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	// Text output keeps the fixed column order rather than map order.
	for _, col := range spectrum.Columns {
		if _, err := fmt.Fprintf(out, "%-15s %10.3f W/m^2\n", col, broadband[col]); err != nil {
			return err
		}
	}
	return nil
}
