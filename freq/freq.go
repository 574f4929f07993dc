package freq

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal places used by each output schema. All values are megahertz.
const (
	ChirpPlaces = 6
	RTPlaces    = 5
	WebPlaces   = 4
)

// DefaultFrequency is substituted for receive frequencies that cannot be parsed.
const DefaultFrequency = 147.12

// Format renders mhz with exactly places decimals and no separators.
func Format(mhz float64, places int) string {
	return strconv.FormatFloat(mhz, 'f', places, 64)
}

func Parse(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a frequency: %q", raw)
	}
	return v, nil
}

// ParseOr returns fallback and false when raw is not a number.
func ParseOr(raw string, fallback float64) (float64, bool) {
	v, err := Parse(raw)
	if err != nil {
		return fallback, false
	}
	return v, true
}
