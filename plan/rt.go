package plan

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/config"
	"github.com/jrwynneiii/freqplantools/freq"
	"github.com/jrwynneiii/freqplantools/tone"
)

// rtToneMode is the RT Systems name for a squelch mode.
func rtToneMode(m tone.Mode) string {
	switch m {
	case tone.ModeTone:
		return "Tone"
	case tone.ModeTSQL:
		return "T Sql"
	case tone.ModeDCS:
		return "DCS"
	default:
		return "None"
	}
}

// RTMapper builds RT Systems rows from CHIRP channels.
type RTMapper struct {
	Conf             config.RTConf
	DefaultFrequency float64
	Tones            tone.Classifier
	Logger           *log.Logger
}

func NewRTMapper(conf config.RTConf, chirp config.ChirpConf, logger *log.Logger) RTMapper {
	return RTMapper{
		Conf:             conf,
		DefaultFrequency: chirp.DefaultFrequency,
		Tones: tone.Classifier{
			DefaultCTCSS: chirp.DefaultCTCSS,
			DefaultDCS:   chirp.DefaultDCS,
			Logger:       logger,
		},
		Logger: logger,
	}
}

// Map converts rows in order, numbering them from Conf.FirstChannel. The only
// error is an out of range comment maximum.
func (m RTMapper) Map(rows []*ChirpChannel) ([]*RTChannel, error) {
	if _, err := TruncateComment("", m.Conf.CommentMax); err != nil {
		return nil, err
	}
	out := make([]*RTChannel, 0, len(rows))
	for i, row := range rows {
		rt, err := m.MapRow(m.Conf.FirstChannel+i, row)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, nil
}

func (m RTMapper) MapRow(number int, row *ChirpChannel) (*RTChannel, error) {
	logger := orDefault(m.Logger)

	rx, ok := freq.ParseOr(row.Frequency, m.DefaultFrequency)
	if !ok {
		logger.Warnf("Unrecognisable frequency value %q for %s. Using %s",
			row.Frequency, row.Name, freq.Format(rx, freq.RTPlaces))
	}

	var magnitude float64
	if raw := strings.TrimSpace(row.Offset); raw != "" {
		v, err := freq.Parse(raw)
		if err != nil {
			logger.Warnf("Unrecognisable offset %q for %s. Treating as simplex", raw, row.Name)
		} else {
			magnitude = v
		}
	}
	tx, dir := freq.Resolve(rx, freq.ParseDuplex(row.Duplex), magnitude)

	offset := ""
	if dir != freq.Simplex {
		offset = freq.VendorOffset(magnitude)
	}

	mode, ok := tone.ParseChirpMode(row.Tone)
	if !ok {
		logger.Warnf("Unknown tone mode %q for %s. Writing None", row.Tone, row.Name)
	}

	var ctcss, dcs string
	switch mode {
	case tone.ModeTone, tone.ModeTSQL:
		ctcss = m.ctcss(row) + " Hz"
	case tone.ModeDCS:
		dcs = m.dcs(row)
	}

	comment, err := TruncateComment(row.Comment, m.Conf.CommentMax)
	if err != nil {
		return nil, err
	}

	step := strings.TrimSpace(row.TStep)
	if step != "" {
		step += " kHz"
	}

	return &RTChannel{
		ChannelNumber:     strconv.Itoa(number),
		ReceiveFrequency:  freq.Format(rx, freq.RTPlaces),
		TransmitFrequency: freq.Format(tx, freq.RTPlaces),
		OffsetFrequency:   offset,
		OffsetDirection:   dir.String(),
		OperatingMode:     strings.TrimSpace(row.Mode),
		Name:              row.Name,
		ToneMode:          rtToneMode(mode),
		CTCSS:             ctcss,
		DCS:               dcs,
		PRFreq:            m.Conf.PRFreq,
		TxPower:           m.Conf.TxPower,
		Skip:              m.Conf.Skip,
		Step:              step,
		ClockShift:        m.Conf.ClockShift,
		Comment:           comment,
	}, nil
}

// ctcss is the access tone of row, normalized when it is a known tone and
// passed through untouched otherwise.
func (m RTMapper) ctcss(row *ChirpChannel) string {
	r := m.Tones.Classify(row.RToneFreq)
	if r.Kind.IsCTCSS() {
		return r.Value
	}
	return strings.TrimSpace(row.RToneFreq)
}

func (m RTMapper) dcs(row *ChirpChannel) string {
	r := m.Tones.Classify(row.DtcsCode)
	if r.Kind == tone.DCS {
		return r.Value
	}
	return strings.TrimSpace(row.DtcsCode)
}
