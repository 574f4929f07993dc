package tone

import "strings"

// Mode is the channel-level squelch mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeTone
	ModeTSQL
	ModeDCS
)

func (m Mode) String() string {
	switch m {
	case ModeTone:
		return "Tone"
	case ModeTSQL:
		return "TSQL"
	case ModeDCS:
		return "DCS"
	default:
		return "None"
	}
}

// Chirp is the value of CHIRP's Tone column.
func (m Mode) Chirp() string {
	switch m {
	case ModeTone:
		return "Tone"
	case ModeTSQL:
		return "TSQL"
	case ModeDCS:
		return "DTCS"
	default:
		return ""
	}
}

// ParseChirpMode reads CHIRP's Tone column. ok is false for values CHIRP
// would not write.
func ParseChirpMode(s string) (Mode, bool) {
	switch strings.TrimSpace(s) {
	case "":
		return ModeNone, true
	case "Tone":
		return ModeTone, true
	case "TSQL":
		return ModeTSQL, true
	case "DTCS":
		return ModeDCS, true
	}
	return ModeNone, false
}

// Tones is the squelch setup of one channel. Values not used by Mode hold
// defaults so every schema column has something to print.
type Tones struct {
	Mode    Mode
	TxCTCSS string
	RxCTCSS string
	TxDCS   string
	RxDCS   string
}

// Resolve derives the channel mode from the local station's transmit and
// receive tone tokens. The transmit (access) tone decides the mode; the
// receive tone only upgrades Tone to TSQL.
func (c Classifier) Resolve(tx, rx string) Tones {
	t := Tones{
		Mode:    ModeNone,
		TxCTCSS: c.DefaultCTCSS,
		RxCTCSS: c.DefaultCTCSS,
		TxDCS:   c.defaultDCS(),
		RxDCS:   c.defaultDCS(),
	}

	txr := c.Classify(tx)
	rxr := c.Classify(rx)

	switch {
	case txr.Kind.IsCTCSS():
		t.TxCTCSS = txr.Value
		if rxr.Kind.IsCTCSS() {
			t.Mode = ModeTSQL
			t.RxCTCSS = rxr.Value
		} else {
			t.Mode = ModeTone
		}
	case txr.Kind == DCS:
		t.Mode = ModeDCS
		t.TxDCS = txr.Value
		if rxr.Kind == DCS {
			t.RxDCS = rxr.Value
		}
	}
	return t
}
