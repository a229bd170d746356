// Package spectrum parses the SMARTS spectral output file into a
// wavelength-indexed table and integrates it into broadband irradiance.
//
// The solver writes whitespace-delimited text with one header line and
// five fixed columns: wavelength (nm) followed by direct-normal, diffuse,
// global and direct-horizontal spectral irradiance in the solver's native
// units. Parsing normalizes wavelengths to micrometers and irradiances to
// W·m⁻²·µm⁻¹. Both transforms are pure; no file I/O happens here.
package spectrum
