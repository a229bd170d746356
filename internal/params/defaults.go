package params

import "time"

// Defaults returns the process-wide default parameter table. Every run
// starts from this table with caller-supplied values merged on top, so a
// minimal configuration (say, just latitude, longitude and time) still
// produces a complete solver input.
//
// The table intentionally includes parameters that SMARTS cannot use
// (cloud geometry, bulk gases) because the same configuration objects are
// shared with other radiative-transfer backends; the translator drops them
// silently.
//
// The defaults describe a clear mid-latitude summer sky over vegetation
// with light continental aerosol loading. Gas concentrations are ambient
// background values in ppmv; ozone columns are in atm-cm.
func Defaults() Set {
	return Set{
		"description": "atmospec default configuration",

		// Location and time. The default timestamp is a fixed summer
		// solstice noon (UTC) so that default runs are deterministic.
		"latitude":  44.0,
		"longitude": 2.0,
		"elevation": 0.0,
		"time":      time.Date(2020, time.June, 21, 12, 0, 0, 0, time.UTC),

		// Solar and spectral range. Wavelength limits and resolution are
		// in micrometers; solar_constant in W/m^2.
		"solar_constant": 1367.0,
		"lower_limit":    0.28,
		"upper_limit":    2.8,
		"resolution":     0.01,

		// Surface meteorology.
		"temperature":               20.0, // degrees C at run time
		"average_daily_temperature": 15.0, // degrees C
		"pressure":                  1013.25,
		"relative_humidity":         35.0,

		// Atmospheric profile selection. When smarts_use_standard_atmos
		// is true the named reference atmosphere is used; otherwise the
		// profile is synthesized from the surface meteorology and season.
		"season":                   "summer",
		"atmosphere":               "mid-latitude summer",
		"smarts_use_standard_atmos": false,

		// Surface reflectance.
		"surface_type": "vegetation",

		// Aerosol optics.
		"angstroms_coefficient":    0.08,
		"angstroms_exponent":       1.1977,
		"aerosol_asymmetry":        0.65,
		"single_scattering_albedo": 0.92,

		// Ozone. boundary_layer_ozone and tropospheric_ozone are column
		// abundances in atm-cm.
		"boundary_layer_ozone": 0.3,
		"tropospheric_ozone":   0.02,

		// Trace gas concentrations, ppmv.
		"carbon_dioxide":    390.0,
		"formaldehyde":      0.001,
		"methane":           1.8,
		"carbon_monoxide":   0.11,
		"nitrous_acid":      0.0005,
		"nitric_acid":       0.001,
		"nitric_oxide":      0.075,
		"nitrogen_dioxide":  0.005,
		"nitrogen_trioxide": 0.00005,
		"sulphur_dioxide":   0.003,

		// Accepted for cross-backend compatibility; not used by SMARTS.
		"cloud_altitude":      2.0,  // km
		"cloud_thickness":     1.0,  // km
		"cloud_optical_depth": 5.0,
		"nitrogen":            781000.0, // ppmv
		"oxygen":              209000.0, // ppmv
		"ammonia":             0.01,     // ppmv
		"nitrous_oxide":       0.32,     // ppmv
	}
}
