package dxf

import (
	"strconv"
	"strings"
)

// inchesPerUnit maps a $INSUNITS code to the number of inches in one
// drawing unit. Code 0 (unitless) isn't in this table — unitScale
// branches it on useMillimeters instead of a fixed value. Unknown or
// missing codes otherwise fall back to millimeters, same as the
// source this table was taken from.
var inchesPerUnit = map[int]float64{
	1:  1.0, // inches
	2:  1.0 / 12.0,        // feet
	3:  63360.0,           // miles
	4:  0.039370078740157, // millimeters
	5:  0.393700787401575, // centimeters
	6:  39.3700787401575,  // meters
	7:  39370.0787401575,  // kilometers
	8:  1e-6,              // microinches
	9:  1e-3,              // mils
	10: 36.0,              // yards
	11: 3.937007874015748e-9, // angstroms
	12: 3.937007874015748e-8, // nanometers
	13: 3.937007874015748e-5, // microns
	14: 0.3937007874015748,   // decimeters
	15: 393.7007874015748,    // decameters
	16: 3937.007874015748,    // hectometers
	17: 3.937007874015748e10, // gigameters
	18: 5.889679948818897e12, // astronomical units
	19: 3.72461748e17,        // light years
	20: 1.21483359e18,        // parsecs
}

const defaultInchesPerUnit = 0.039370078740157

// unitLabel maps a $INSUNITS code to the Document.Units() string.
var unitLabel = map[int]string{
	1:  "inches",
	2:  "feet",
	3:  "miles",
	4:  "millimeters",
	5:  "centimeters",
	6:  "meters",
	7:  "kilometers",
	8:  "microinches",
	9:  "mils",
	10: "yards",
	11: "angstroms",
	12: "nanometers",
	13: "microns",
	14: "decimeters",
	15: "decameters",
	16: "hectometers",
	17: "gigameters",
	18: "astronomical units",
	19: "light years",
	20: "parsecs",
}

// resolveUnits picks the inches-per-unit scale and label from the
// HEADER section's $INSUNITS (falling back to $LUNITS), defaulting to
// millimeters when neither is present or the code is out of range.
// Code 0 ("unitless") carries no fixed scale of its own: it defers to
// useMillimeters.
func resolveUnits(header map[string]string, useMillimeters bool) (scale float64, label string) {
	if raw, ok := header["$INSUNITS"]; ok {
		if code, ok := parseUnitCode(raw); ok {
			if s, label, ok := unitScale(code, useMillimeters); ok {
				return s, label
			}
		}
	}
	if raw, ok := header["$LUNITS"]; ok {
		if code, ok := parseUnitCode(raw); ok {
			if s, label, ok := unitScale(code, useMillimeters); ok {
				return s, label
			}
		}
	}
	return defaultInchesPerUnit, "millimeters"
}

// unitScale resolves a $INSUNITS/$LUNITS code to its inches-per-unit
// factor and label. Code 0 is unitless and branches on useMillimeters
// rather than the fixed table value.
func unitScale(code int, useMillimeters bool) (scale float64, label string, ok bool) {
	if code == 0 {
		if useMillimeters {
			return defaultInchesPerUnit, "millimeters", true
		}
		return 1.0, "inches", true
	}
	if s, ok := inchesPerUnit[code]; ok {
		return s, unitLabel[code], true
	}
	return 0, "", false
}

func parseUnitCode(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
