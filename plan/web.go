package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/config"
	"github.com/jrwynneiii/freqplantools/freq"
	"github.com/jrwynneiii/freqplantools/tone"
)

const notApplicable = "N/A"

// WebMapper builds the simplified table published on the website.
type WebMapper struct {
	Conf   config.WebConf
	Tones  tone.Classifier
	Logger *log.Logger
}

func NewWebMapper(conf config.WebConf, logger *log.Logger) WebMapper {
	return WebMapper{
		Conf:   conf,
		Tones:  tone.Classifier{DefaultCTCSS: conf.DefaultCTCSS, Logger: logger},
		Logger: logger,
	}
}

func (m WebMapper) Map(rows []*ChirpChannel) []*WebChannel {
	out := make([]*WebChannel, 0, len(rows))
	for _, row := range rows {
		out = append(out, m.MapRow(row))
	}
	return out
}

func (m WebMapper) MapRow(row *ChirpChannel) *WebChannel {
	logger := orDefault(m.Logger)
	name := strings.TrimSpace(row.Name)

	rx, ok := freq.ParseOr(row.Frequency, m.Conf.DefaultFrequency)
	if !ok {
		logger.Warnf("Unrecognisable frequency value %q for %s. Using %s",
			row.Frequency, name, freq.Format(rx, freq.WebPlaces))
	}

	squelch, toneFreq := m.squelch(row, name)

	return &WebChannel{
		Channel:     strings.TrimSpace(row.Location),
		Name:        name,
		Frequency:   freq.Format(rx, freq.WebPlaces),
		Duplex:      strings.TrimSpace(row.Duplex),
		Offset:      m.offset(row.Offset, name),
		SquelchType: squelch,
		ToneFreq:    toneFreq,
		Comment:     strings.TrimSpace(row.Comment),
	}
}

// offset is blank for simplex channels, whose offset CHIRP stores as zero.
func (m WebMapper) offset(raw, name string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	v, err := freq.Parse(raw)
	if err != nil {
		orDefault(m.Logger).Warnf("Unrecognisable offset %q for %s. Copying it unchanged", raw, name)
		return raw
	}
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", v)
}

func (m WebMapper) squelch(row *ChirpChannel, name string) (string, string) {
	mode, ok := tone.ParseChirpMode(row.Tone)
	if !ok {
		orDefault(m.Logger).Warnf("Uninterpretable tone mode %q for %s", row.Tone, name)
		return notApplicable, ""
	}
	switch mode {
	case tone.ModeTone:
		return "Tone", m.ctcss(row.RToneFreq)
	case tone.ModeTSQL:
		tx := m.ctcss(row.RToneFreq)
		rx := tx
		if strings.TrimSpace(row.CToneFreq) != "" {
			if c := m.Tones.Classify(row.CToneFreq); c.Kind.IsCTCSS() {
				rx = c.Value
			}
		}
		return "TSQL", fmt.Sprintf("Tx: %s; Rx: %s", tx, rx)
	case tone.ModeDCS:
		code := strings.TrimSpace(row.DtcsCode)
		if r := m.Tones.Classify(code); r.Kind == tone.DCS {
			code = r.Value
		}
		return "DCS", code
	}
	return "", ""
}

func (m WebMapper) ctcss(raw string) string {
	if r := m.Tones.Classify(raw); r.Kind.IsCTCSS() {
		return r.Value
	}
	return strings.TrimSpace(raw)
}
