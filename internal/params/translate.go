package params

import (
	"fmt"
	"sort"
	"strings"
)

// Translated maps SMARTS short-code parameter names (the solver's fixed
// internal vocabulary, e.g. "LATIT", "SOLARC") to primitive values ready
// for card formatting. Values are numbers or strings only.
type Translated map[string]any

// EnumValueError reports a parameter value that falls outside its closed
// enumeration. The enumerations (season, surface type, standard
// atmosphere) are closed by the solver's input format: there is no
// pass-through for unlisted values, so translation fails early, before
// any process is spawned.
type EnumValueError struct {
	// Param is the semantic parameter name, e.g. "surface_type".
	Param string

	// Value is the rejected value.
	Value string

	// Valid lists the accepted enumeration members, sorted.
	Valid []string
}

// Error satisfies the error interface.
func (e *EnumValueError) Error() string {
	return fmt.Sprintf("unsupported value %q for parameter %q (valid: %s)",
		e.Value, e.Param, strings.Join(e.Valid, ", "))
}

// unsupported lists semantic parameters that are accepted but never
// translated. These exist so that configuration objects shared with other
// radiative-transfer backends (which model clouds and bulk gases) pass
// through without complaint.
var unsupported = map[string]bool{
	"cloud_altitude":      true,
	"cloud_thickness":     true,
	"cloud_optical_depth": true,
	"nitrogen":            true,
	"oxygen":              true,
	"ammonia":             true,
	"nitrous_oxide":       true,
}

// direct maps semantic parameter names to short-codes whose values pass
// through unchanged (same unit, same representation).
var direct = map[string]string{
	"solar_constant":            "SOLARC",
	"longitude":                 "LONGIT",
	"latitude":                  "LATIT",
	"elevation":                 "ALTIT",
	"average_daily_temperature": "TAIR",
	"temperature":               "TDAY",
	"pressure":                  "SPR",
	"relative_humidity":         "RH",
	"carbon_dioxide":            "qCO2",
	"single_scattering_albedo":  "OMEGL",
	"angstroms_coefficient":     "TAU550",
	"aerosol_asymmetry":         "GG",
	"boundary_layer_ozone":      "AbO3",

	"formaldehyde":      "ApCH2O",
	"methane":           "ApCh4",
	"carbon_monoxide":   "ApCO",
	"nitrous_acid":      "ApHNO2",
	"nitric_acid":       "ApHNO3",
	"nitric_oxide":      "ApNO",
	"nitrogen_dioxide":  "ApNO2",
	"nitrogen_trioxide": "ApNO3",
	"sulphur_dioxide":   "ApSO2",
}

// seasonCodes is the closed season enumeration. SMARTS only distinguishes
// the two pressure/temperature regimes.
var seasonCodes = map[string]string{
	"winter": "WINTER",
	"summer": "SUMMER",
}

// surfaceCodes is the closed surface-type enumeration, mapping to SMARTS
// albedo table indices (IALBDX). Lake, sea and ocean water share one
// reflectance table.
var surfaceCodes = map[string]int{
	"snow":        3,
	"clear water": 2,
	"lake water":  35,
	"sea water":   35,
	"sand":        6,
	"vegetation":  17,
	"ocean water": 35,
}

// atmosphereCodes is the closed standard-atmosphere enumeration, mapping
// to SMARTS reference atmosphere identifiers.
var atmosphereCodes = map[string]string{
	"tropical":            "TRL",
	"mid-latitude summer": "MLS",
	"mid-latitude winter": "MLW",
	"sub-arctic summer":   "SAS",
	"sub-arctic winter":   "SAW",
	"us62":                "USSA",
}

// conversion is one node of the derived-parameter dependency graph. Deps
// are visited before the conversion runs; convert consumes the raw value
// and inserts one or more short-code/value pairs into the output.
type conversion struct {
	deps    []string
	convert func(out Translated, v any) error
}

// derived maps semantic parameter names to their conversions. None of the
// current conversions reference other parameters, so the dependency lists
// are empty, but the resolution order is defined by the graph rather than
// by map iteration so future cross-parameter conversions slot in without
// changing the traversal.
var derived = map[string]conversion{
	"description": {convert: func(out Translated, v any) error {
		s, err := asString("description", v)
		if err != nil {
			return err
		}
		// The comment card holds at most 64 characters; whitespace is
		// collapsed to underscores because the card is read as a single
		// quoted token.
		runes := []rune(s)
		if len(runes) > 64 {
			runes = runes[:64]
		}
		out["COMNT"] = strings.Join(strings.Fields(string(runes)), "_")
		return nil
	}},

	"time": {convert: func(out Translated, v any) error {
		t, err := asTime("time", v)
		if err != nil {
			return err
		}
		// The solver takes local standard time plus a zone offset; we
		// always hand it UTC with a zero zone (see the hard-coded ZONE
		// short-code), so the decomposition is done in UTC.
		utc := t.UTC()
		out["YEAR"] = utc.Year()
		out["MONTH"] = int(utc.Month())
		out["DAY"] = utc.Day()
		out["HOUR"] = float64(utc.Hour()) +
			float64(utc.Minute())/60.0 +
			float64(utc.Second())/3600.0
		return nil
	}},

	"season": {convert: func(out Translated, v any) error {
		s, err := asString("season", v)
		if err != nil {
			return err
		}
		code, ok := seasonCodes[s]
		if !ok {
			return &EnumValueError{Param: "season", Value: s, Valid: enumKeys(seasonCodes)}
		}
		out["SEASON"] = code
		return nil
	}},

	"surface_type": {convert: func(out Translated, v any) error {
		s, err := asString("surface_type", v)
		if err != nil {
			return err
		}
		code, ok := surfaceCodes[s]
		if !ok {
			return &EnumValueError{Param: "surface_type", Value: s, Valid: enumKeys(surfaceCodes)}
		}
		out["IALBDX"] = code
		return nil
	}},

	"atmosphere": {convert: func(out Translated, v any) error {
		s, err := asString("atmosphere", v)
		if err != nil {
			return err
		}
		code, ok := atmosphereCodes[s]
		if !ok {
			return &EnumValueError{Param: "atmosphere", Value: s, Valid: enumKeys(atmosphereCodes)}
		}
		out["ATMOS"] = code
		return nil
	}},

	// A single Angstrom exponent is applied to both SMARTS wavelength
	// regimes (below and above 500 nm).
	"angstroms_exponent": {convert: func(out Translated, v any) error {
		f, err := asFloat("angstroms_exponent", v)
		if err != nil {
			return err
		}
		out["ALPHA1"] = f
		out["ALPHA2"] = f
		return nil
	}},

	"tropospheric_ozone": {convert: func(out Translated, v any) error {
		f, err := asFloat("tropospheric_ozone", v)
		if err != nil {
			return err
		}
		out["ApO3"] = f * 10 // atm-cm -> ppmv
		return nil
	}},

	// Wavelength limits feed both the computation range (card 11) and the
	// print range (card 12), hence the fan-out into two short-codes each.
	"lower_limit": {convert: func(out Translated, v any) error {
		f, err := asFloat("lower_limit", v)
		if err != nil {
			return err
		}
		out["WLMN"] = f * 1000 // um -> nm
		out["WPMN"] = f * 1000
		return nil
	}},

	"upper_limit": {convert: func(out Translated, v any) error {
		f, err := asFloat("upper_limit", v)
		if err != nil {
			return err
		}
		out["WLMX"] = f * 1000 // um -> nm
		out["WPMX"] = f * 1000
		return nil
	}},

	"resolution": {convert: func(out Translated, v any) error {
		f, err := asFloat("resolution", v)
		if err != nil {
			return err
		}
		out["INTVL"] = f * 1000 // um -> nm
		return nil
	}},

	"smarts_use_standard_atmos": {convert: func(out Translated, v any) error {
		b, err := asBool("smarts_use_standard_atmos", v)
		if err != nil {
			return err
		}
		if b {
			out["IATMOS"] = 1
		} else {
			out["IATMOS"] = 0
		}
		return nil
	}},
}

// Translate converts a semantic parameter Set into the solver's short-code
// vocabulary. The caller's values are merged over the defaults table, then
// each parameter is routed through exactly one of three paths: dropped
// (unsupported), renamed (direct), or converted (derived). Derived
// conversions are resolved with a visited-set depth-first traversal of the
// dependency graph, so dependencies are processed before dependents and
// each parameter at most once.
//
// The second return value lists parameter names that matched none of the
// three paths, sorted. Unknown names are a diagnostic, not an error:
// translation stays permissive of superset configuration objects.
func Translate(caller Set) (Translated, []string, error) {
	p := Defaults().Merge(caller)

	out := Translated{
		// Hard-coded short-codes, independent of input:
		"HEIGHT": 0, // card 2 mode 1: height above ground elevation
		"ZONE":   0, // card 17 mode 3: times are converted to UTC
		"SUNCOR": 1, // placeholder; the solver recomputes it from the date
	}

	visited := make(map[string]bool, len(p))
	var unknown []string

	var visit func(name string) error
	visit = func(name string) error {
		if visited[name] {
			return nil
		}
		visited[name] = true

		if unsupported[name] {
			return nil
		}
		if code, ok := direct[name]; ok {
			out[code] = p[name]
			return nil
		}
		if conv, ok := derived[name]; ok {
			for _, dep := range conv.deps {
				if err := visit(dep); err != nil {
					return err
				}
			}
			return conv.convert(out, p[name])
		}

		unknown = append(unknown, name)
		return nil
	}

	// Iterate in sorted key order so diagnostics and any future
	// order-sensitive conversions are deterministic.
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, nil, err
		}
	}

	sort.Strings(unknown)
	return out, unknown, nil
}

// enumKeys returns the sorted keys of a closed enumeration table, for
// error messages.
func enumKeys[V any](table map[string]V) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
