package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix selects environment overrides. Sections are split by a double
// underscore: FREQPLAN_RT__COMMENT_MAX sets rt.comment_max.
const EnvPrefix = "FREQPLAN_"

// ErrInvalid marks a setting whose value does not fit its type.
var ErrInvalid = errors.New("invalid config")

type Conf struct {
	TokenFile string     `koanf:"token_file"`
	Chirp     ChirpConf  `koanf:"chirp"`
	RT        RTConf     `koanf:"rt"`
	Web       WebConf    `koanf:"web"`
	Viewer    ViewerConf `koanf:"viewer"`
}

type ChirpConf struct {
	DefaultCTCSS     string  `koanf:"default_ctcss_tone"`
	DefaultDCS       string  `koanf:"default_dcs_code"`
	DCSPolarity      string  `koanf:"dcs_polarity"`
	DefaultFrequency float64 `koanf:"default_frequency"`
	Modulation       string  `koanf:"modulation"`
	TuneStep         string  `koanf:"tune_step"`
	SentinelFreq     float64 `koanf:"sentinel_frequency"`
}

type RTConf struct {
	FirstChannel int    `koanf:"first_channel"`
	CommentMax   int    `koanf:"comment_max"`
	PRFreq       string `koanf:"pr_freq"`
	TxPower      string `koanf:"tx_power"`
	Skip         string `koanf:"skip"`
	ClockShift   string `koanf:"clock_shift"`
}

type WebConf struct {
	DefaultCTCSS     string  `koanf:"default_ctcss_tone"`
	DefaultFrequency float64 `koanf:"default_frequency"`
}

type ViewerConf struct {
	Pattern string `koanf:"pattern"`
}

// Default is the configuration used when no file or environment overrides are given.
func Default() Conf {
	return Conf{
		TokenFile: "../CURRENT_VERSION_TOKEN.txt",
		Chirp: ChirpConf{
			DefaultCTCSS:     "88.5",
			DefaultDCS:       "023",
			DCSPolarity:      "NN",
			DefaultFrequency: 147.12,
			Modulation:       "FM",
			TuneStep:         "5.00",
			SentinelFreq:     147.12,
		},
		RT: RTConf{
			FirstChannel: 1,
			CommentMax:   50,
			PRFreq:       "1500 Hz",
			TxPower:      "High",
			Skip:         "Off",
			ClockShift:   "Off",
		},
		Web: WebConf{
			DefaultCTCSS:     "",
			DefaultFrequency: 147.12,
		},
		Viewer: ViewerConf{
			Pattern: "*.csv",
		},
	}
}

// Load layers an optional HCL file and FREQPLAN_ environment variables over
// Default. An empty path skips the file.
func Load(path string) (*Conf, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), hcl.Parser(true)); err != nil {
			return nil, fmt.Errorf("could not load config %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			return strings.ReplaceAll(key, "__", "."), value
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	conf := Default()
	if err := k.Unmarshal("", &conf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return &conf, nil
}
