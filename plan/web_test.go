package plan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jrwynneiii/freqplantools/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebMapper() WebMapper {
	return NewWebMapper(config.Default().Web, quietLogger())
}

func Test_WebMapSquelch(t *testing.T) {
	var cases = []struct {
		row      ChirpChannel
		squelch  string
		toneFreq string
	}{
		{ChirpChannel{Tone: ""}, "", ""},
		{ChirpChannel{Tone: "Tone", RToneFreq: "100"}, "Tone", "100.0"},
		{ChirpChannel{Tone: "TSQL", RToneFreq: "100.0", CToneFreq: "123.0"}, "TSQL", "Tx: 100.0; Rx: 123.0"},
		{ChirpChannel{Tone: "TSQL", RToneFreq: "100.0"}, "TSQL", "Tx: 100.0; Rx: 100.0"},
		{ChirpChannel{Tone: "DTCS", DtcsCode: "23"}, "DCS", "023"},
		{ChirpChannel{Tone: "Cross"}, "N/A", ""},
	}
	var m = newWebMapper()
	for _, c := range cases {
		var row = c.row
		row.Frequency = "146.52"
		var out = m.MapRow(&row)
		assert.Equal(t, c.squelch, out.SquelchType, c.row.Tone)
		assert.Equal(t, c.toneFreq, out.ToneFreq, c.row.Tone)
	}
}

func Test_WebMapRow(t *testing.T) {
	var out = newWebMapper().MapRow(&ChirpChannel{
		Location:  " 2 ",
		Name:      " RPT1 ",
		Frequency: "146.940000",
		Duplex:    "+",
		Offset:    "0.600000",
		Comment:   " Repeater ",
	})
	assert.Equal(t, WebChannel{
		Channel:   "2",
		Name:      "RPT1",
		Frequency: "146.9400",
		Duplex:    "+",
		Offset:    "0.6",
		Comment:   "Repeater",
	}, *out)
}

func Test_WebMapOffset(t *testing.T) {
	var m = newWebMapper()
	assert.Equal(t, "", m.offset("", "A"))
	assert.Equal(t, "", m.offset("0.000000", "A"))
	assert.Equal(t, "5.0", m.offset("5.000000", "A"))
	assert.Equal(t, "odd", m.offset("odd", "A"))
}

func Test_ConvertWeb(t *testing.T) {
	var buf bytes.Buffer
	var n, err = ConvertWeb(strings.NewReader(chirpPlan), &buf, newWebMapper(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, WebHeader, lines[0])
	assert.Equal(t, "2,RPT1,146.9400,+,0.6,TSQL,Tx: 100.0; Rx: 100.0,Repeater", lines[1])
	assert.Equal(t, "3,DIGI,442.5000,-,5.0,DCS,071,", lines[2])
}
