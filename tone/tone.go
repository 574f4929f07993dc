package tone

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	DefaultCTCSS       = "88.5"
	DefaultDCSCode     = "023"
	DefaultDCSPolarity = "NN"
)

type Kind int

const (
	None Kind = iota
	Standard
	Extended
	DCS
	Unrecognized
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Standard:
		return "standard CTCSS"
	case Extended:
		return "extended CTCSS"
	case DCS:
		return "DCS"
	default:
		return "unrecognized"
	}
}

// IsCTCSS reports whether k is a standard or extended sub-audible tone.
func (k Kind) IsCTCSS() bool {
	return k == Standard || k == Extended
}

// Result is a classified tone token. Value is normalized: one decimal place
// for CTCSS, a bare 3-digit code for DCS and the untouched token otherwise.
type Result struct {
	Kind    Kind
	Value   string
	Warning bool
}

var (
	ctcssPattern = regexp.MustCompile(`^[126789][0-9]{1,2}(\.[0-9])?$`)
	dcsPattern   = regexp.MustCompile(`^[dD]?[0-7]?[0-7][1-7]$`)
)

// Classifier turns raw tone tokens into Results. The zero value is usable;
// DefaultCTCSS is then empty and logging goes to the default logger.
type Classifier struct {
	DefaultCTCSS string
	DefaultDCS   string
	Logger       *log.Logger
}

func (c Classifier) log() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

func (c Classifier) defaultDCS() string {
	if c.DefaultDCS == "" {
		return DefaultDCSCode
	}
	return c.DefaultDCS
}

// Classify tries CTCSS first and DCS second. CTCSS tokens carry a decimal
// point or a value DCS codes can't have, so the order only matters for
// integers such as "131" that are not tones but are codes.
func (c Classifier) Classify(token string) Result {
	raw := strings.TrimSpace(token)
	if raw == "" {
		c.log().Warnf("Tone string was empty. Reverting to default %q", c.DefaultCTCSS)
		return Result{Kind: None, Value: c.DefaultCTCSS, Warning: true}
	}

	if r, ok := c.classifyCTCSS(raw); ok {
		return r
	}
	if r, ok := c.classifyDCS(raw); ok {
		return r
	}

	c.log().Warnf("Unrecognised tone value: %q", token)
	return Result{Kind: Unrecognized, Value: token, Warning: true}
}

func (c Classifier) classifyCTCSS(raw string) (Result, bool) {
	if !ctcssPattern.MatchString(raw) {
		return Result{}, false
	}
	hz, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Result{}, false
	}
	value := strconv.FormatFloat(hz, 'f', 1, 64)
	switch {
	case IsStandardCTCSS(hz):
		c.log().Debugf("Registered a valid CTCSS tone: %sHz", value)
		return Result{Kind: Standard, Value: value}, true
	case IsExtendedCTCSS(hz):
		c.log().Warnf("Extended CTCSS tone encountered: %sHz", value)
		return Result{Kind: Extended, Value: value, Warning: true}, true
	}
	c.log().Debugf("%q looks like a CTCSS tone but is not a known value", raw)
	return Result{}, false
}

func (c Classifier) classifyDCS(raw string) (Result, bool) {
	if !dcsPattern.MatchString(raw) {
		return Result{}, false
	}
	code := strings.TrimLeft(raw, "dD")
	if len(code) == 2 {
		code = "0" + code
	}
	if !IsDCSCode(code) {
		c.log().Debugf("%q looks like a DCS code but is not a known value", raw)
		return Result{}, false
	}
	c.log().Debugf("Registered a valid DCS code: %s", code)
	return Result{Kind: DCS, Value: code}, true
}
