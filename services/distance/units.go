package distance

import (
	"fmt"
	"math"
	"strings"
)

const (
	kmToMiles = 0.621371
	milesToKm = 1.60934
)

// Unit is a unit of measure for displayed distances.
type Unit string

const (
	Kilometers Unit = "kilometers"
	Miles      Unit = "miles"
)

// ParseUnit accepts "kilometers", "km", "miles" or "mi" in any case. An empty
// string is kilometers.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kilometers", "kilometres", "km":
		return Kilometers, nil
	case "miles", "mi":
		return Miles, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// Abbrev is the short label used next to a number.
func (u Unit) Abbrev() string {
	if u == Miles {
		return "miles"
	}
	return "km"
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToggleUnit rescales an already displayed distance into the target unit.
// The value is assumed to be in the other unit. Rounding happens on every
// call, so repeated toggles drift by up to a hundredth.
func ToggleUnit(current float64, target Unit) float64 {
	if target == Miles {
		return Round2(current * kmToMiles)
	}
	return Round2(current * milesToKm)
}

// Convert expresses a distance in kilometers in the given unit, rounded for
// display.
func Convert(km float64, unit Unit) float64 {
	if unit == Miles {
		return Round2(km * kmToMiles)
	}
	return Round2(km)
}

// FormulaByName resolves the configured surface formula. Empty and "legacy"
// select LegacyHaversine.
func FormulaByName(name string) (SurfaceFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "legacy":
		return LegacyHaversine, nil
	case "haversine", "corrected":
		return Haversine, nil
	}
	return nil, fmt.Errorf("unknown distance formula %q", name)
}
