package card

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aoyama-geo/atmospec/internal/params"
)

// ModeError reports an internal consistency violation between related
// short-codes detected during formatting, such as an atmosphere-profile
// mode selector outside its valid range.
type ModeError struct {
	// Code is the offending short-code name.
	Code string

	// Value is the rejected value.
	Value any

	// Reason describes the constraint that was violated.
	Reason string
}

// Error satisfies the error interface.
func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid mode combination: %s=%v (%s)", e.Code, e.Value, e.Reason)
}

// MissingCodesError reports short-codes the formatter needed but the
// translated parameter set did not contain. Every code required by the
// card schema must be present after translation, or formatting fails.
type MissingCodesError struct {
	// Codes lists the absent short-codes, sorted.
	Codes []string
}

// Error satisfies the error interface.
func (e *MissingCodesError) Error() string {
	return fmt.Sprintf("translated parameter set is missing short-codes: %s",
		strings.Join(e.Codes, ", "))
}

// writer accumulates deck lines while tracking short-code lookups that
// failed, so a single formatting pass can report every missing code at
// once instead of stopping at the first.
type writer struct {
	deck    Deck
	params  params.Translated
	missing map[string]bool
}

// val returns the raw value of a short-code, recording it as missing if
// absent. The zero value it returns for missing codes is never emitted:
// Format fails before rendering when any code was missing.
func (w *writer) val(code string) any {
	v, ok := w.params[code]
	if !ok {
		w.missing[code] = true
		return nil
	}
	return v
}

// s returns a short-code's value in its plain text form: integers without
// a decimal point, floats in their shortest exact representation, strings
// verbatim.
func (w *writer) s(code string) string {
	return plain(w.val(code))
}

// f returns a short-code's numeric value formatted with six decimal
// places, the fixed-point form used on the gas and ozone cards.
func (w *writer) f(code string) string {
	v := w.val(code)
	if v == nil {
		return ""
	}
	fv, ok := toFloat(v)
	if !ok {
		// Non-numeric value where a number is required; treat as missing
		// rather than emitting garbage into the deck.
		w.missing[code] = true
		return ""
	}
	return fmt.Sprintf("%f", fv)
}

// plain renders a primitive value as solver-readable text.
func plain(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", n)
	}
}

// toFloat widens any numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toInt narrows a numeric value to int, accepting the float forms that
// JSON decoding produces for whole numbers.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// Format serializes a translated parameter set into the SMARTS card deck.
//
// The card sequence is fixed by the solver's positional input format and
// must never be reordered. Constant cards select the solver modes this
// adapter is built around:
//   - card 2 mode 1: site pressure + altitude supplied directly
//   - card 4 mode 2: precipitable water from the atmospheric profile
//   - card 9 mode 5: aerosol optical depth given at 550 nm
//   - card 12 mode 2 with the literal output selector "2 3 4 5": the four
//     spectral quantities (direct normal, diffuse, global, direct
//     horizontal) that the output parser's column contract depends on
//   - card 17 mode 3: solar geometry computed from date, time and place
//
// Formatting is deterministic: the same input always yields a
// byte-identical deck.
func Format(t params.Translated) (*Deck, error) {
	w := &writer{params: t, missing: make(map[string]bool)}

	// Card 3's shape depends on the atmosphere-profile mode selector, so
	// it is validated up front. Any present value that is not the integer
	// 0 or 1 is rejected, whatever its type: a selector the solver cannot
	// read as one of its two modes would silently shift every following
	// card. Only a genuinely absent code falls through, to be reported
	// with the other missing codes.
	var iatmos int
	if raw, present := t["IATMOS"]; present {
		n, numeric := toInt(raw)
		if !numeric || (n != 0 && n != 1) {
			return nil, &ModeError{Code: "IATMOS", Value: raw, Reason: "atmosphere-profile mode must be 0 or 1"}
		}
		iatmos = n
	}

	// Card 1: comment/description.
	w.deck.add(fmt.Sprintf("'%s'", w.s("COMNT")), "1 COMNT")

	// Card 2: site pressure mode 1, then pressure, altitude, height.
	w.deck.add("1", "2 ISPR mode select")
	w.deck.add(fmt.Sprintf("%s %s %s", w.s("SPR"), w.s("ALTIT"), w.s("HEIGHT")), "")

	// Card 3: atmosphere from surface meteorology (mode 0) or a named
	// reference atmosphere (mode 1).
	w.deck.add(w.s("IATMOS"), "3 IATMOS mode select")
	if iatmos == 0 {
		w.deck.add(fmt.Sprintf("%s %s '%s' %s", w.s("TAIR"), w.s("RH"), w.s("SEASON"), w.s("TDAY")), "")
	} else {
		w.deck.add(fmt.Sprintf("'%s'", w.s("ATMOS")), "")
	}

	// Card 4: precipitable water from the profile.
	w.deck.add("2", "4 IH2O mode select")

	// Card 5: default ozone mode, followed by the boundary-layer ozone
	// column on card 5a.
	w.deck.add("0", "5 IO3 mode select")
	w.deck.add(fmt.Sprintf("%d %s", 0, w.f("AbO3")), "ozone column")

	// Card 6: explicit gas concentrations.
	w.deck.add("0", "6 IGAS")
	w.deck.add("0", "ILOAD")
	gases := []string{"ApCH2O", "ApCh4", "ApCO", "ApHNO2", "ApHNO3", "ApNO", "ApNO2", "ApNO3", "ApO3", "ApSO2"}
	fields := make([]string, len(gases))
	for i, g := range gases {
		fields[i] = w.f(g)
	}
	w.deck.add(strings.Join(fields, " "), "gasses")

	// Card 7: CO2 concentration and the Gueymard 2004 solar spectrum.
	w.deck.add(w.s("qCO2"), "7 qCO2 ppm")
	w.deck.add("0", "")

	// Card 8: user-supplied aerosol optics.
	w.deck.add("'USER'", "8 AEROS")
	w.deck.add(fmt.Sprintf("%s %s %s %s", w.s("ALPHA1"), w.s("ALPHA2"), w.s("OMEGL"), w.s("GG")), "")

	// Card 9: turbidity given as aerosol optical depth at 550 nm.
	w.deck.add("5", "9 ITURB")
	w.deck.add(w.s("TAU550"), "")

	// Card 10: surface albedo table index; no tilted surface.
	w.deck.add(w.s("IALBDX"), "10 IALBDX")
	w.deck.add("0", "")

	// Card 11: computation wavelength range, sun-earth distance
	// correction and solar constant.
	w.deck.add(fmt.Sprintf("%s %s %s %s", w.s("WLMN"), w.s("WLMX"), w.s("SUNCOR"), w.s("SOLARC")), "11 WLMN WLMX SUNCOR SOLARC")

	// Card 12: print mode 2 (spreadsheet output file), the print range
	// and interval, then the literal output-column selector. The selector
	// must stay exactly "4" columns "2 3 4 5" (direct normal, diffuse,
	// global, direct horizontal): the output parser assumes this layout.
	w.deck.add("2", "12 IPRT")
	w.deck.add(fmt.Sprintf("%s %s %s", w.s("WPMN"), w.s("WPMX"), w.s("INTVL")), "")
	w.deck.add("4", "")
	w.deck.add("2 3 4 5", "")

	// Cards 13-16: circumsolar, smoothing, illuminance and UV blocks all
	// disabled.
	w.deck.add("0", "13 ICIRC")
	w.deck.add("0", "14 ISCAN")
	w.deck.add("0", "15 ILLUM")
	w.deck.add("0", "16 IUV")

	// Card 17: solar geometry from date, time and place (mode 3).
	w.deck.add("3", "17 IMASS")
	w.deck.add(fmt.Sprintf("%s %s %s %s %s %s %s",
		w.s("YEAR"), w.s("MONTH"), w.s("DAY"), w.s("HOUR"),
		w.s("LATIT"), w.s("LONGIT"), w.s("ZONE")), "")

	if len(w.missing) > 0 {
		codes := make([]string, 0, len(w.missing))
		for code := range w.missing {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		return nil, &MissingCodesError{Codes: codes}
	}

	return &w.deck, nil
}
