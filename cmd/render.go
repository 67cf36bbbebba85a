package main

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/voltworks/voltcalc/internal/circuit"
)

// undefinedPlaceholder is printed for quantities that could not be resolved.
const undefinedPlaceholder = "–"

// parseOptional reads a string flag as an optional number. Empty or
// unparseable input means absent, never zero.
func parseOptional(f *pflag.FlagSet, name string) *float64 {
	s, err := f.GetString(name)
	if err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formatField renders a resolved quantity at a fixed number of decimal
// places, or the placeholder when it is undefined.
func formatField(f circuit.Field, places int) string {
	if !f.Defined {
		return undefinedPlaceholder
	}
	return strconv.FormatFloat(circuit.Round(f.Value, places), 'f', places, 64)
}

// formatFixed renders a plain value at a fixed number of decimal places.
func formatFixed(v float64, places int) string {
	return strconv.FormatFloat(circuit.Round(v, places), 'f', places, 64)
}
