package plan

import (
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/config"
	"github.com/jrwynneiii/freqplantools/freq"
	"github.com/jrwynneiii/freqplantools/tone"
)

const (
	sentinelOffset = 0.6
	sentinelTone   = "100.0"
)

// Sentinel is the control channel written at both ends of a generated plan.
// Its name is the version token so a programmed radio shows which plan it holds.
func Sentinel(location int, token string, conf config.ChirpConf) *ChirpChannel {
	dcs, polarity := conf.DefaultDCS, conf.DCSPolarity
	if dcs == "" {
		dcs = tone.DefaultDCSCode
	}
	if polarity == "" {
		polarity = tone.DefaultDCSPolarity
	}
	return &ChirpChannel{
		Location:     strconv.Itoa(location),
		Name:         token,
		Frequency:    freq.Format(conf.SentinelFreq, freq.ChirpPlaces),
		Duplex:       freq.Plus.Sign(),
		Offset:       freq.Format(sentinelOffset, freq.ChirpPlaces),
		Tone:         tone.ModeTone.Chirp(),
		RToneFreq:    sentinelTone,
		CToneFreq:    sentinelTone,
		DtcsCode:     dcs,
		DtcsPolarity: polarity,
		Mode:         conf.Modulation,
		TStep:        conf.TuneStep,
	}
}

// WithSentinels brackets rows with control channels at location 0 and one
// past the last location.
func WithSentinels(rows []*ChirpChannel, token string, conf config.ChirpConf, logger *log.Logger) []*ChirpChannel {
	tail := len(rows) + 1
	if n := len(rows); n > 0 {
		last, err := strconv.Atoi(rows[n-1].Location)
		if err != nil {
			orDefault(logger).Warnf("Last location %q is not a number. Placing the control channel at %d",
				rows[n-1].Location, tail)
		} else {
			tail = last + 1
		}
	}

	out := make([]*ChirpChannel, 0, len(rows)+2)
	out = append(out, Sentinel(0, token, conf))
	out = append(out, rows...)
	return append(out, Sentinel(tail, token, conf))
}
