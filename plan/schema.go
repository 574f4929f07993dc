package plan

import "github.com/charmbracelet/log"

// ChirpChannel is one row of a CHIRP CSV. The field order is the header order
// CHIRP expects.
type ChirpChannel struct {
	Location     string `csv:"Location"`
	Name         string `csv:"Name"`
	Frequency    string `csv:"Frequency"`
	Duplex       string `csv:"Duplex"`
	Offset       string `csv:"Offset"`
	Tone         string `csv:"Tone"`
	RToneFreq    string `csv:"rToneFreq"`
	CToneFreq    string `csv:"cToneFreq"`
	DtcsCode     string `csv:"DtcsCode"`
	DtcsPolarity string `csv:"DtcsPolarity"`
	Mode         string `csv:"Mode"`
	TStep        string `csv:"TStep"`
	Skip         string `csv:"Skip"`
	Comment      string `csv:"Comment"`
	URCALL       string `csv:"URCALL"`
	RPT1CALL     string `csv:"RPT1CALL"`
	RPT2CALL     string `csv:"RPT2CALL"`
}

// RTChannel is one row of an RT Systems import file for Yaesu radios.
type RTChannel struct {
	ChannelNumber     string `csv:"Channel Number"`
	ReceiveFrequency  string `csv:"Receive Frequency"`
	TransmitFrequency string `csv:"Transmit Frequency"`
	OffsetFrequency   string `csv:"Offset Frequency"`
	OffsetDirection   string `csv:"Offset Direction"`
	OperatingMode     string `csv:"Operating Mode"`
	Name              string `csv:"Name"`
	ToneMode          string `csv:"Tone Mode"`
	CTCSS             string `csv:"CTCSS"`
	DCS               string `csv:"DCS"`
	PRFreq            string `csv:"PR Freq"`
	TxPower           string `csv:"Tx Power"`
	Skip              string `csv:"Skip"`
	Step              string `csv:"Step"`
	ClockShift        string `csv:"Clock Shift"`
	Comment           string `csv:"Comment"`
}

// WebHeader is written verbatim ahead of the website table rows.
const WebHeader = "Channel, Name, Frequency, Duplex, Offset, Squelch Type, Tone Freq, Comment"

// WebChannel is one row of the table published on the website.
type WebChannel struct {
	Channel     string `csv:"Channel"`
	Name        string `csv:"Name"`
	Frequency   string `csv:"Frequency"`
	Duplex      string `csv:"Duplex"`
	Offset      string `csv:"Offset"`
	SquelchType string `csv:"Squelch Type"`
	ToneFreq    string `csv:"Tone Freq"`
	Comment     string `csv:"Comment"`
}

// ICS-217A export columns. The transmit frequency is derived, never read.
const (
	icsChannel = iota
	icsName
	icsRxFreq
	icsTxFreq
	icsOffset
	icsReserved
	icsTxTone
	icsRxTone
	icsRemarks
	icsChanges

	icsMinColumns
)

func orDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
