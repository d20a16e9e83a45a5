package export

// Profile is one set of print parameters. Exports try profiles in order until one succeeds.
type Profile struct {
	Name              string
	DeviceScale       float64
	PrintBackground   bool
	MarginMM          float64
	PreferCSSPageSize bool
}

// A4 paper, in the units the printer expects.
const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0
	a4WidthPx  = 794
	a4HeightPx = 1123
	mmPerInch  = 25.4
)

var (
	// Primary renders at double device scale with backgrounds and the page's own @page size.
	Primary = Profile{
		Name:              "primary",
		DeviceScale:       2,
		PrintBackground:   true,
		MarginMM:          10,
		PreferCSSPageSize: true,
	}
	// Fallback is the plain single-scale attempt.
	Fallback = Profile{
		Name:        "fallback",
		DeviceScale: 1,
		MarginMM:    10,
	}
)

// DefaultProfiles returns the primary profile followed by its single fallback.
func DefaultProfiles() []Profile {
	return []Profile{Primary, Fallback}
}

func (p Profile) marginInches() float64 {
	return p.MarginMM / mmPerInch
}
