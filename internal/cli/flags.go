// Package cli — flags.go defines the parameter/model flags shared by the
// cards, spectrum and irradiance commands and the logic that assembles a
// solver Model from them.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aoyama-geo/atmospec/internal/docker"
	"github.com/aoyama-geo/atmospec/internal/model"
	"github.com/aoyama-geo/atmospec/internal/params"
	"github.com/aoyama-geo/atmospec/internal/smarts"
	"github.com/aoyama-geo/atmospec/internal/workdir"
)

// resourcesEnv is the environment variable consulted when --resources is
// not given.
const resourcesEnv = "ATMOSPEC_RESOURCES"

// modelFlags holds the flag values shared by all solver-facing commands.
// These are bound to cobra flags in addModelFlags.
type modelFlags struct {
	paramsFile  string  // --params: JSONC or YAML parameter file
	preset      string  // --preset: pollution preset name
	resources   string  // --resources: static resource tree root
	command     string  // --command: solver command line
	dockerImage string  // --docker-image: run the solver in this image
	lat         float64 // --lat: latitude override
	lon         float64 // --lon: longitude override
	timeStr     string  // --time: RFC 3339 timestamp override
}

// addModelFlags registers the shared flags on a command.
func addModelFlags(cmd *cobra.Command, f *modelFlags) {
	cmd.Flags().StringVar(&f.paramsFile, "params", "", "Parameter file (.json/.jsonc/.yaml/.yml)")
	cmd.Flags().StringVar(&f.preset, "preset", "", fmt.Sprintf("Pollution preset (%v)", params.PresetNames()))
	cmd.Flags().StringVar(&f.resources, "resources", "", "Resource data root (default: $"+resourcesEnv+")")
	cmd.Flags().StringVar(&f.command, "command", "", "Solver command line (default: "+smarts.DefaultCommand+")")
	cmd.Flags().StringVar(&f.dockerImage, "docker-image", "", "Run the solver inside this container image")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "Latitude override, degrees north")
	cmd.Flags().Float64Var(&f.lon, "lon", 0, "Longitude override, degrees east")
	cmd.Flags().StringVar(&f.timeStr, "time", "", "Timestamp override, RFC 3339 (e.g. 2020-02-11T12:00:00Z)")
}

// buildSet assembles the caller's parameter Set in precedence order:
// pollution preset first, then the parameter file, then individual flag
// overrides. Defaults are merged underneath later, during translation.
func (f *modelFlags) buildSet(cmd *cobra.Command) (params.Set, error) {
	set := params.Set{}

	if f.preset != "" {
		preset, err := params.Preset(f.preset)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitBadParameters, "invalid preset", err)
		}
		set = set.Merge(preset)
	}

	if f.paramsFile != "" {
		fromFile, err := params.LoadFile(f.paramsFile)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitBadParameters, "failed to load parameters", err)
		}
		set = set.Merge(fromFile)
	}

	// Flag overrides beat both the preset and the file. Changed() is
	// used so an explicit --lat 0 still counts as an override.
	if cmd.Flags().Changed("lat") {
		set["latitude"] = f.lat
	}
	if cmd.Flags().Changed("lon") {
		set["longitude"] = f.lon
	}
	if f.timeStr != "" {
		t, err := time.Parse(time.RFC3339, f.timeStr)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitBadParameters, "invalid --time value", err)
		}
		set["time"] = t
	}

	return set, nil
}

// buildModel assembles the solver Model and, when the docker backend is
// selected, returns a cleanup function that closes the Docker client.
// The cleanup function is never nil.
func (f *modelFlags) buildModel(cmd *cobra.Command) (*smarts.Model, func(), error) {
	set, err := f.buildSet(cmd)
	if err != nil {
		return nil, nil, err
	}

	resources := f.resources
	if resources == "" {
		resources = os.Getenv(resourcesEnv)
	}
	if resources == "" {
		return nil, nil, model.NewCLIError(model.ExitGeneralError,
			"no resource root configured (use --resources or $"+resourcesEnv+")")
	}

	cfg := smarts.Config{
		Params:       set,
		ResourceRoot: resources,
		Command:      f.command,
		WarnUnknown: func(name string) {
			VerboseLog("unknown parameter %q ignored", name)
		},
	}

	cleanup := func() {}
	if f.dockerImage != "" {
		cli, err := docker.NewClient()
		if err != nil {
			return nil, nil, model.WrapCLIError(model.ExitGeneralError, "docker backend unavailable", err)
		}
		if err := cli.Ping(cmd.Context()); err != nil {
			cli.Close()
			return nil, nil, model.WrapCLIError(model.ExitGeneralError, "docker backend unavailable", err)
		}
		cfg.Runner = docker.NewRunner(cli, f.dockerImage, resources)
		cleanup = func() { cli.Close() }
		VerboseLog("running solver in container image %s", f.dockerImage)
	} else {
		cfg.Runner = workdir.ExecRunner{}
	}

	return smarts.New(cfg), cleanup, nil
}
