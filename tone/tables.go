package tone

import "math"

// StandardCTCSS is the regular set of sub-audible tones in Hz.
var StandardCTCSS = []float64{
	67.0, 69.3, 71.9, 74.4, 77.0,
	79.7, 82.5, 85.4, 88.5, 91.5,
	94.8, 97.4, 100.0, 103.5, 107.2,
	110.9, 114.8, 118.8, 123.0, 127.3,
	131.8, 136.5, 141.3, 146.2, 151.4,
	156.7, 162.2, 167.9, 173.8, 179.9,
	186.2, 192.8, 203.5, 206.5, 210.7,
	218.1, 225.7, 229.1, 233.6, 241.8,
	250.3, 254.1,
}

// ExtendedCTCSS are tones some radios support outside the standard set.
var ExtendedCTCSS = []float64{159.8, 165.5, 171.3, 177.3, 183.5, 189.9, 196.6, 199.5}

// DCSCodes is the set of valid 3-digit digital coded squelch codes.
var DCSCodes = []string{
	"023", "025", "026", "031", "032", "036", "043", "047",
	"051", "053", "054", "065", "071", "072", "073", "074",
	"114", "115", "116", "122", "125", "131", "132", "134",
	"143", "145", "152", "155", "156", "162", "165", "172",
	"174", "205", "212", "223", "226", "243", "244", "245",
	"246", "251", "252", "255", "261", "263", "265", "266",
	"271", "274", "306", "311", "315", "325", "331", "332",
	"343", "346", "351", "356", "364", "365", "371", "411",
	"412", "413", "423", "431", "432", "445", "446", "452",
	"454", "455", "462", "464", "465", "466", "503", "506",
	"516", "523", "532", "546", "565", "606", "612", "624",
	"627", "631", "632", "654", "662", "664", "703", "712",
	"723", "731", "732", "734", "743", "754",
}

var (
	standardSet = tenthsSet(StandardCTCSS)
	extendedSet = tenthsSet(ExtendedCTCSS)
	dcsSet      = map[string]struct{}{}
)

func init() {
	for _, c := range DCSCodes {
		dcsSet[c] = struct{}{}
	}
}

// Tones are compared in tenths of a hertz to stay clear of float equality.
func tenths(hz float64) int {
	return int(math.Round(hz * 10))
}

func tenthsSet(tones []float64) map[int]struct{} {
	s := make(map[int]struct{}, len(tones))
	for _, t := range tones {
		s[tenths(t)] = struct{}{}
	}
	return s
}

func IsStandardCTCSS(hz float64) bool {
	_, ok := standardSet[tenths(hz)]
	return ok
}

func IsExtendedCTCSS(hz float64) bool {
	_, ok := extendedSet[tenths(hz)]
	return ok
}

// IsDCSCode expects a bare 3-digit code.
func IsDCSCode(code string) bool {
	_, ok := dcsSet[code]
	return ok
}
