package analytics

import "github.com/claude/trainload/internal/models"

// Report bundles every analyzer's output for one snapshot. Sections without
// enough data are nil.
type Report struct {
	Today          string            `json:"today"`
	Volume         []MuscleVolume    `json:"volume"`
	Regions        []RegionVolume    `json:"regions"`
	Balance        BalanceSummary    `json:"balance"`
	Frequency      []MuscleFrequency `json:"frequency,omitempty"`
	Overload       []OverloadEntry   `json:"overload,omitempty"`
	StagnationHint bool              `json:"stagnation_hint"`
	Deload         *DeloadAdvice     `json:"deload,omitempty"`
	RepRanges      *RepRangeProfile  `json:"rep_ranges,omitempty"`
	PushPull       *PushPullBalance  `json:"push_pull,omitempty"`
	SessionVolume  []SessionFlag     `json:"session_volume,omitempty"`
	Recovery       []RecoveryEntry   `json:"recovery,omitempty"`
}

// BuildReport runs every analyzer over s.
func BuildReport(s Snapshot) Report {
	volume := VolumeBalance(s)
	r := Report{
		Today:         CalendarDay(s.Today).Format(models.DateLayout),
		Volume:        volume,
		Regions:       GroupByRegion(volume),
		Balance:       SummarizeBalance(volume),
		Frequency:     Frequency(s),
		Overload:      OverloadTrends(s),
		SessionVolume: SessionVolume(s),
		Recovery:      Recovery(s),
	}
	r.StagnationHint = HasStagnant(r.Overload)

	if d, ok := DeloadCheck(s); ok {
		r.Deload = &d
	}
	if p, ok := RepRanges(s); ok {
		r.RepRanges = &p
	}
	if pp := PushPull(s); pp.State != RatioNoData {
		r.PushPull = &pp
	}
	return r
}
