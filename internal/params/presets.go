package params

import (
	"fmt"
	"sort"
	"strings"
)

// pollution holds the named gas-loading presets. Each preset overrides the
// trace-gas and tropospheric-ozone defaults with concentrations typical of
// the named air-quality regime. Concentrations are ppmv except
// tropospheric_ozone, which is a column abundance in atm-cm.
var pollution = map[string]Set{
	"pristine": {
		"formaldehyde":       0.0,
		"methane":            1.6,
		"carbon_monoxide":    0.05,
		"nitrous_acid":       0.0,
		"nitric_acid":        0.0,
		"nitric_oxide":       0.0,
		"nitrogen_dioxide":   0.0,
		"nitrogen_trioxide":  0.0,
		"sulphur_dioxide":    0.0,
		"tropospheric_ozone": 0.01,
	},
	"light": {
		"formaldehyde":       0.001,
		"methane":            1.8,
		"carbon_monoxide":    0.11,
		"nitrous_acid":       0.0005,
		"nitric_acid":        0.001,
		"nitric_oxide":       0.075,
		"nitrogen_dioxide":   0.005,
		"nitrogen_trioxide":  0.00005,
		"sulphur_dioxide":    0.003,
		"tropospheric_ozone": 0.02,
	},
	"moderate": {
		"formaldehyde":       0.003,
		"methane":            2.0,
		"carbon_monoxide":    0.35,
		"nitrous_acid":       0.001,
		"nitric_acid":        0.005,
		"nitric_oxide":       0.2,
		"nitrogen_dioxide":   0.02,
		"nitrogen_trioxide":  0.0001,
		"sulphur_dioxide":    0.01,
		"tropospheric_ozone": 0.035,
	},
	"severe": {
		"formaldehyde":       0.01,
		"methane":            2.3,
		"carbon_monoxide":    1.0,
		"nitrous_acid":       0.002,
		"nitric_acid":        0.01,
		"nitric_oxide":       0.5,
		"nitrogen_dioxide":   0.2,
		"nitrogen_trioxide":  0.0005,
		"sulphur_dioxide":    0.05,
		"tropospheric_ozone": 0.08,
	},
}

// Preset returns a copy of the named pollution preset. The returned Set
// contains only the gas parameters the preset overrides; callers merge it
// over Defaults and under their own values.
func Preset(name string) (Set, error) {
	preset, ok := pollution[name]
	if !ok {
		return nil, fmt.Errorf("unknown pollution preset %q (valid: %s)",
			name, strings.Join(PresetNames(), ", "))
	}
	// Copy so callers cannot mutate the shared table.
	out := make(Set, len(preset))
	for k, v := range preset {
		out[k] = v
	}
	return out, nil
}

// PresetNames returns the available pollution preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(pollution))
	for name := range pollution {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
