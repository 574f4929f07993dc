package plan

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/config"
	"github.com/jrwynneiii/freqplantools/freq"
	"github.com/jrwynneiii/freqplantools/tone"
)

// ICSRow is one positional record of an ICS-217A export.
type ICSRow []string

func (r ICSRow) field(i int) string {
	if i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

func (r ICSRow) Channel() string { return r.field(icsChannel) }
func (r ICSRow) Name() string    { return r.field(icsName) }

// ICSMapper builds CHIRP channels from ICS-217A rows.
type ICSMapper struct {
	Conf   config.ChirpConf
	Tones  tone.Classifier
	Logger *log.Logger
}

func NewICSMapper(conf config.ChirpConf, logger *log.Logger) ICSMapper {
	return ICSMapper{
		Conf: conf,
		Tones: tone.Classifier{
			DefaultCTCSS: conf.DefaultCTCSS,
			DefaultDCS:   conf.DefaultDCS,
			Logger:       logger,
		},
		Logger: logger,
	}
}

// Map converts rows in order. Short rows and rows without a channel name are
// dropped with a warning.
func (m ICSMapper) Map(rows []ICSRow) []*ChirpChannel {
	logger := orDefault(m.Logger)
	out := make([]*ChirpChannel, 0, len(rows))
	for i, row := range rows {
		if len(row) < icsMinColumns {
			logger.Warnf("Row %d has %d columns, expected at least %d. Skipping", i+1, len(row), icsMinColumns)
			continue
		}
		if row.Name() == "" {
			logger.Warnf("Row %d has no channel name. Skipping", i+1)
			continue
		}
		out = append(out, m.MapRow(row))
	}
	logger.Debugf("Mapped %d of %d ICS-217A rows", len(out), len(rows))
	return out
}

// MapRow converts a single row that is known to be long enough.
func (m ICSMapper) MapRow(row ICSRow) *ChirpChannel {
	logger := orDefault(m.Logger)

	rx, ok := freq.ParseOr(row.field(icsRxFreq), m.Conf.DefaultFrequency)
	if !ok {
		logger.Warnf("Unrecognisable frequency value %q for %s. Using %s",
			row.field(icsRxFreq), row.Name(), freq.Format(rx, freq.ChirpPlaces))
	}

	var shift freq.Offset
	if raw := row.field(icsOffset); raw != "" {
		v, err := freq.Parse(raw)
		if err != nil {
			logger.Warnf("Unrecognisable offset %q for %s. Treating as simplex", raw, row.Name())
		} else {
			shift = freq.SignedOffset(v)
		}
	}

	t := m.Tones.Resolve(row.field(icsTxTone), row.field(icsRxTone))

	return &ChirpChannel{
		Location:     row.Channel(),
		Name:         row.Name(),
		Frequency:    freq.Format(rx, freq.ChirpPlaces),
		Duplex:       shift.Direction.Sign(),
		Offset:       freq.Format(shift.Magnitude, freq.ChirpPlaces),
		Tone:         t.Mode.Chirp(),
		RToneFreq:    t.TxCTCSS,
		CToneFreq:    t.RxCTCSS,
		DtcsCode:     t.TxDCS,
		DtcsPolarity: m.Conf.DCSPolarity,
		Mode:         m.Conf.Modulation,
		TStep:        m.Conf.TuneStep,
		Comment:      row.field(icsRemarks),
	}
}
