package freq

import (
	"fmt"
	"math"
	"strings"
)

type Direction int

const (
	Simplex Direction = iota
	Plus
	Minus
)

func (d Direction) String() string {
	switch d {
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	default:
		return "Simplex"
	}
}

// Sign is the CHIRP duplex column value.
func (d Direction) Sign() string {
	switch d {
	case Plus:
		return "+"
	case Minus:
		return "-"
	default:
		return ""
	}
}

func ParseDuplex(s string) Direction {
	switch strings.TrimSpace(s) {
	case "+":
		return Plus
	case "-":
		return Minus
	default:
		return Simplex
	}
}

// Offset is a repeater shift. Magnitude is always non-negative MHz.
type Offset struct {
	Direction Direction
	Magnitude float64
}

// SignedOffset converts the signed offset used by ICS-217A sheets.
func SignedOffset(v float64) Offset {
	switch {
	case v > 0:
		return Offset{Direction: Plus, Magnitude: v}
	case v < 0:
		return Offset{Direction: Minus, Magnitude: -v}
	default:
		return Offset{Direction: Simplex}
	}
}

// Resolve computes the transmit frequency for a receive frequency rx.
// A zero magnitude is always simplex regardless of dir.
func Resolve(rx float64, dir Direction, magnitude float64) (float64, Direction) {
	if magnitude == 0 {
		return rx, Simplex
	}
	switch dir {
	case Plus:
		return rx + magnitude, Plus
	case Minus:
		return rx - magnitude, Minus
	default:
		return rx, Simplex
	}
}

// Resolve applies o to rx.
func (o Offset) Resolve(rx float64) (float64, Direction) {
	return Resolve(rx, o.Direction, o.Magnitude)
}

// VendorOffset renders an offset the way RT Systems expects it: whole kHz
// below 1 MHz, two decimal MHz otherwise and empty for no offset.
func VendorOffset(magnitude float64) string {
	magnitude = math.Abs(magnitude)
	switch {
	case magnitude == 0:
		return ""
	case magnitude < 1.0:
		// 1e-9 keeps values like 0.57 from truncating to 569
		return fmt.Sprintf("%d kHz", int(math.Floor(magnitude*1000+1e-9)))
	default:
		return fmt.Sprintf("%.2f MHz", magnitude)
	}
}
