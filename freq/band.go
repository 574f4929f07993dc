package freq

// BandName is the name of a frequency band.
type BandName string

const (
	BandUnknown BandName = "Unknown"
	Band160m    BandName = "160m"
	Band80m     BandName = "80m"
	Band60m     BandName = "60m"
	Band40m     BandName = "40m"
	Band30m     BandName = "30m"
	Band20m     BandName = "20m"
	Band17m     BandName = "17m"
	Band15m     BandName = "15m"
	Band12m     BandName = "12m"
	Band10m     BandName = "10m"
	Band6m      BandName = "6m"
	Band2m      BandName = "2m"
	Band125cm   BandName = "1.25m"
	Band70cm    BandName = "70cm"
	BandGMRS    BandName = "GMRS"
	Band33cm    BandName = "33cm"
	Band23cm    BandName = "23cm"
)

// Band is an inclusive range in MHz.
type Band struct {
	Name BandName
	From float64
	To   float64
}

func (b Band) Contains(mhz float64) bool {
	return mhz >= b.From && mhz <= b.To
}

var UnknownBand = Band{Name: BandUnknown}

// USBands is ordered by frequency; BandOf and the viewer rely on that.
var USBands = []Band{
	{Name: Band160m, From: 1.8, To: 2.0},
	{Name: Band80m, From: 3.5, To: 4.0},
	{Name: Band60m, From: 5.3305, To: 5.4065},
	{Name: Band40m, From: 7.0, To: 7.3},
	{Name: Band30m, From: 10.1, To: 10.15},
	{Name: Band20m, From: 14.0, To: 14.35},
	{Name: Band17m, From: 18.068, To: 18.168},
	{Name: Band15m, From: 21.0, To: 21.45},
	{Name: Band12m, From: 24.89, To: 24.99},
	{Name: Band10m, From: 28.0, To: 29.7},
	{Name: Band6m, From: 50.0, To: 54.0},
	{Name: Band2m, From: 144.0, To: 148.0},
	{Name: Band125cm, From: 222.0, To: 225.0},
	{Name: Band70cm, From: 420.0, To: 450.0},
	{Name: BandGMRS, From: 462.55, To: 467.725},
	{Name: Band33cm, From: 902.0, To: 928.0},
	{Name: Band23cm, From: 1240.0, To: 1300.0},
}

// BandOf returns the band containing mhz, or UnknownBand.
func BandOf(mhz float64) Band {
	for _, b := range USBands {
		if b.Contains(mhz) {
			return b
		}
	}
	return UnknownBand
}
