package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_Format(t *testing.T) {
	assert.Equal(t, "147.120000", Format(147.12, ChirpPlaces))
	assert.Equal(t, "147.12000", Format(147.12, RTPlaces))
	assert.Equal(t, "147.1200", Format(147.12, WebPlaces))
	assert.Equal(t, "1296.0000", Format(1296, WebPlaces))
}

func Test_Parse(t *testing.T) {
	var v, err = Parse("  146.52 ")
	require.NoError(t, err)
	assert.InDelta(t, 146.52, v, 1e-9)

	_, err = Parse("one-four-six")
	assert.Error(t, err)

	for _, raw := range []string{"nan", "NaN", "inf", "+Inf", "-inf", "1e400"} {
		_, err = Parse(raw)
		assert.Error(t, err, raw)
	}

	v, ok := ParseOr("", DefaultFrequency)
	assert.False(t, ok)
	assert.Equal(t, DefaultFrequency, v)

	v, ok = ParseOr("nan", DefaultFrequency)
	assert.False(t, ok)
	assert.Equal(t, DefaultFrequency, v)

	v, ok = ParseOr("446.000", DefaultFrequency)
	assert.True(t, ok)
	assert.Equal(t, 446.0, v)
}

func Test_ParseDuplex(t *testing.T) {
	assert.Equal(t, Plus, ParseDuplex("+"))
	assert.Equal(t, Minus, ParseDuplex(" - "))
	assert.Equal(t, Simplex, ParseDuplex(""))
	assert.Equal(t, Simplex, ParseDuplex("split"))
	assert.Equal(t, "+", Plus.Sign())
	assert.Equal(t, "", Simplex.Sign())
	assert.Equal(t, "Minus", Minus.String())
}

func Test_SignedOffset(t *testing.T) {
	assert.Equal(t, Offset{Direction: Plus, Magnitude: 0.6}, SignedOffset(0.6))
	assert.Equal(t, Offset{Direction: Minus, Magnitude: 5}, SignedOffset(-5))
	assert.Equal(t, Offset{Direction: Simplex}, SignedOffset(0))
}

func Test_Resolve(t *testing.T) {
	var tx, dir = Resolve(147.12, Plus, 0.6)
	assert.Equal(t, Plus, dir)
	assert.Equal(t, "147.720000", Format(tx, ChirpPlaces))
	assert.Equal(t, "147.72000", Format(tx, RTPlaces))

	tx, dir = Resolve(444.95, Minus, 5)
	assert.Equal(t, Minus, dir)
	assert.Equal(t, "439.95000", Format(tx, RTPlaces))

	tx, dir = Resolve(146.52, Simplex, 0.6)
	assert.Equal(t, Simplex, dir)
	assert.Equal(t, 146.52, tx)

	tx, dir = SignedOffset(-0.6).Resolve(146.94)
	assert.Equal(t, Minus, dir)
	assert.Equal(t, "146.340000", Format(tx, ChirpPlaces))
}

func Test_ResolveZeroMagnitudeIsSimplex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var rx = rapid.Float64Range(1.8, 1300).Draw(t, "rx")
		var dir = Direction(rapid.IntRange(0, 2).Draw(t, "dir"))

		var tx, got = Resolve(rx, dir, 0)

		assert.Equal(t, Simplex, got)
		assert.Equal(t, rx, tx)
	})
}

func Test_VendorOffset(t *testing.T) {
	assert.Equal(t, "600 kHz", VendorOffset(0.6))
	assert.Equal(t, "5.00 MHz", VendorOffset(5.0))
	assert.Equal(t, "", VendorOffset(0))
	assert.Equal(t, "1.00 MHz", VendorOffset(1.0))
	assert.Equal(t, "570 kHz", VendorOffset(0.57))
	assert.Equal(t, "100 kHz", VendorOffset(0.1))
	assert.Equal(t, "1.60 MHz", VendorOffset(-1.6))
}

func Test_BandOf(t *testing.T) {
	assert.Equal(t, Band2m, BandOf(147.12).Name)
	assert.Equal(t, Band70cm, BandOf(442.5).Name)
	assert.Equal(t, BandGMRS, BandOf(462.5625+0.1).Name)
	assert.Equal(t, Band6m, BandOf(52.525).Name)
	assert.Equal(t, Band40m, BandOf(7.2).Name)
	assert.Equal(t, BandUnknown, BandOf(162.55).Name)
}
