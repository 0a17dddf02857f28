package muscles

import "strings"

// Muscle is one of the 14 tracked muscle groups.
type Muscle string

const (
	Chest      Muscle = "Chest"
	Lats       Muscle = "Lats"
	Traps      Muscle = "Traps"
	FrontDelts Muscle = "Front Delts"
	SideDelts  Muscle = "Side Delts"
	RearDelts  Muscle = "Rear Delts"
	Biceps     Muscle = "Biceps"
	Triceps    Muscle = "Triceps"
	Forearms   Muscle = "Forearms"
	Quads      Muscle = "Quads"
	Hamstrings Muscle = "Hamstrings"
	Glutes     Muscle = "Glutes"
	Calves     Muscle = "Calves"
	Abs        Muscle = "Abs"
)

// Tracked lists every muscle group in display order.
var Tracked = []Muscle{
	Chest, Lats, Traps, FrontDelts, SideDelts, RearDelts, Biceps,
	Triceps, Forearms, Quads, Hamstrings, Glutes, Calves, Abs,
}

// byLowerName maps the lowercased display name to the muscle.
var byLowerName = func() map[string]Muscle {
	m := make(map[string]Muscle, len(Tracked))
	for _, mu := range Tracked {
		m[strings.ToLower(string(mu))] = mu
	}
	return m
}()

// Parse matches a free-text muscle name against the tracked set,
// ignoring case and surrounding whitespace.
func Parse(name string) (Muscle, bool) {
	m, ok := byLowerName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Region is a fixed display bucket of muscles.
type Region string

const (
	RegionPush Region = "Push"
	RegionPull Region = "Pull"
	RegionLegs Region = "Legs"
	RegionCore Region = "Core"
)

var (
	Push = []Muscle{Chest, FrontDelts, SideDelts, Triceps}
	Pull = []Muscle{Lats, Traps, RearDelts, Biceps, Forearms}
	Legs = []Muscle{Quads, Hamstrings, Glutes, Calves}
	Core = []Muscle{Abs}
)

// Regions returns the display buckets in order.
func Regions() []Region {
	return []Region{RegionPush, RegionPull, RegionLegs, RegionCore}
}

// Members returns the muscles belonging to r.
func (r Region) Members() []Muscle {
	switch r {
	case RegionPush:
		return Push
	case RegionPull:
		return Pull
	case RegionLegs:
		return Legs
	case RegionCore:
		return Core
	}
	return nil
}

// RegionOf returns the display bucket m belongs to.
func RegionOf(m Muscle) (Region, bool) {
	for _, r := range Regions() {
		for _, member := range r.Members() {
			if member == m {
				return r, true
			}
		}
	}
	return "", false
}

// Threshold holds the weekly set landmarks for one muscle.
type Threshold struct {
	MEV float64 `json:"mev" yaml:"mev"`
	MRV float64 `json:"mrv" yaml:"mrv"`
}

// FallbackThreshold applies to a muscle with no entry in any table.
var FallbackThreshold = Threshold{MEV: 0, MRV: 20}

// Valid reports whether 0 <= MEV <= MRV.
func (t Threshold) Valid() bool {
	return t.MEV >= 0 && t.MRV >= t.MEV
}

// defaultThresholds are weekly MEV/MRV landmarks based on the RP volume
// landmarks (Israetel).
var defaultThresholds = map[Muscle]Threshold{
	Chest:      {6, 22},
	Lats:       {10, 25},
	Traps:      {0, 26},
	FrontDelts: {0, 12},
	SideDelts:  {8, 26},
	RearDelts:  {8, 26},
	Biceps:     {8, 26},
	Triceps:    {6, 18},
	Forearms:   {2, 12},
	Quads:      {8, 20},
	Hamstrings: {6, 20},
	Glutes:     {0, 16},
	Calves:     {8, 20},
	Abs:        {0, 25},
}

// DefaultThresholds returns a fresh copy of the catalog defaults.
func DefaultThresholds() map[Muscle]Threshold {
	out := make(map[Muscle]Threshold, len(defaultThresholds))
	for m, t := range defaultThresholds {
		out[m] = t
	}
	return out
}

// MergeThresholds layers override tables over the defaults. Later layers win,
// and an override always replaces the whole (MEV, MRV) pair.
func MergeThresholds(layers ...map[Muscle]Threshold) map[Muscle]Threshold {
	out := DefaultThresholds()
	for _, layer := range layers {
		for m, t := range layer {
			out[m] = t
		}
	}
	return out
}

// ThresholdFor looks m up in table, falling back to FallbackThreshold.
func ThresholdFor(table map[Muscle]Threshold, m Muscle) Threshold {
	if t, ok := table[m]; ok {
		return t
	}
	return FallbackThreshold
}

// Entry describes one tracked muscle with its region and effective landmarks.
type Entry struct {
	Muscle    Muscle    `json:"muscle"`
	Region    Region    `json:"region"`
	Threshold Threshold `json:"threshold"`
	Default   Threshold `json:"default"`
}

// Entries lists every tracked muscle in display order, with thresholds taken
// from table.
func Entries(table map[Muscle]Threshold) []Entry {
	out := make([]Entry, 0, len(Tracked))
	for _, m := range Tracked {
		region, _ := RegionOf(m)
		out = append(out, Entry{
			Muscle:    m,
			Region:    region,
			Threshold: ThresholdFor(table, m),
			Default:   ThresholdFor(defaultThresholds, m),
		})
	}
	return out
}
