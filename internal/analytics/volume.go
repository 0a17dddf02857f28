package analytics

import (
	"github.com/claude/trainload/internal/muscles"
)

// VolumeWindowDays is the span of the weekly volume, push/pull and balance checks.
const VolumeWindowDays = 7

// VolumeStatus places a weekly set count relative to MEV and MRV.
type VolumeStatus string

const (
	VolumeNone    VolumeStatus = "none"
	VolumeUnder   VolumeStatus = "under"
	VolumeOptimal VolumeStatus = "optimal"
	VolumeOver    VolumeStatus = "over"
)

// ClassifyVolume applies the checks in order; both landmarks count as optimal.
func ClassifyVolume(sets float64, t muscles.Threshold) VolumeStatus {
	switch {
	case sets <= 0:
		return VolumeNone
	case sets < t.MEV:
		return VolumeUnder
	case sets <= t.MRV:
		return VolumeOptimal
	default:
		return VolumeOver
	}
}

// MuscleVolume is one muscle's effective sets over the last week.
type MuscleVolume struct {
	Muscle muscles.Muscle `json:"muscle"`
	Region muscles.Region `json:"region"`
	Sets   float64        `json:"sets"`
	MEV    float64        `json:"mev"`
	MRV    float64        `json:"mrv"`
	Status VolumeStatus   `json:"status"`
}

// VolumeBalance classifies all 14 muscles, in catalog order, against the
// merged thresholds.
func VolumeBalance(s Snapshot) []MuscleVolume {
	sets := aggregate(s.Workouts, s.Catalog, LastDays(s.Today, VolumeWindowDays))

	out := make([]MuscleVolume, 0, len(muscles.Tracked))
	for _, m := range muscles.Tracked {
		v := sets[m]
		t := s.threshold(m)
		region, _ := muscles.RegionOf(m)
		out = append(out, MuscleVolume{
			Muscle: m,
			Region: region,
			Sets:   v,
			MEV:    t.MEV,
			MRV:    t.MRV,
			Status: ClassifyVolume(v, t),
		})
	}
	return out
}

// RegionVolume groups muscle volumes under a display bucket.
type RegionVolume struct {
	Region  muscles.Region `json:"region"`
	Muscles []MuscleVolume `json:"muscles"`
}

// GroupByRegion buckets volumes into Push, Pull, Legs and Core, keeping the
// member order of each bucket.
func GroupByRegion(volumes []MuscleVolume) []RegionVolume {
	byMuscle := make(map[muscles.Muscle]MuscleVolume, len(volumes))
	for _, v := range volumes {
		byMuscle[v.Muscle] = v
	}

	out := make([]RegionVolume, 0, 4)
	for _, r := range muscles.Regions() {
		rv := RegionVolume{Region: r}
		for _, m := range r.Members() {
			if v, ok := byMuscle[m]; ok {
				rv.Muscles = append(rv.Muscles, v)
			}
		}
		out = append(out, rv)
	}
	return out
}

// BalanceSummary counts muscles trained below MEV or above MRV this week.
type BalanceSummary struct {
	Undertrained int `json:"undertrained"`
	Overtrained  int `json:"overtrained"`
}

// SummarizeBalance counts a muscle as undertrained only when it has a
// non-zero MEV and was trained at all.
func SummarizeBalance(volumes []MuscleVolume) BalanceSummary {
	var b BalanceSummary
	for _, v := range volumes {
		switch {
		case v.MEV > 0 && v.Sets > 0 && v.Sets < v.MEV:
			b.Undertrained++
		case v.Sets > v.MRV:
			b.Overtrained++
		}
	}
	return b
}
