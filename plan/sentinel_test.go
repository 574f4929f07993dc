package plan

import (
	"testing"

	"github.com/jrwynneiii/freqplantools/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sentinel(t *testing.T) {
	var s = Sentinel(0, "V42", config.Default().Chirp)
	assert.Equal(t, ChirpChannel{
		Location:     "0",
		Name:         "V42",
		Frequency:    "147.120000",
		Duplex:       "+",
		Offset:       "0.600000",
		Tone:         "Tone",
		RToneFreq:    "100.0",
		CToneFreq:    "100.0",
		DtcsCode:     "023",
		DtcsPolarity: "NN",
		Mode:         "FM",
		TStep:        "5.00",
	}, *s)
}

func Test_WithSentinels(t *testing.T) {
	var conf = config.Default().Chirp

	var out = WithSentinels([]*ChirpChannel{{Location: "1"}, {Location: "9"}}, "T", conf, quietLogger())
	require.Len(t, out, 4)
	assert.Equal(t, "0", out[0].Location)
	assert.Equal(t, "10", out[3].Location)

	out = WithSentinels([]*ChirpChannel{{Location: "1"}, {Location: "X"}}, "T", conf, quietLogger())
	assert.Equal(t, "3", out[3].Location)

	out = WithSentinels(nil, "T", conf, quietLogger())
	require.Len(t, out, 2)
	assert.Equal(t, "1", out[1].Location)
}
