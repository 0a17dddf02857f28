package analytics

import (
	"fmt"

	"github.com/claude/trainload/internal/muscles"
)

// RatioState distinguishes a computable push/pull ratio from the cases that
// have none.
type RatioState string

const (
	RatioNoData   RatioState = "no_data"
	RatioFinite   RatioState = "finite"
	RatioPushOnly RatioState = "push_only"
)

// BalanceStatus rates a push/pull ratio.
type BalanceStatus string

const (
	BalanceBalanced   BalanceStatus = "balanced"
	BalanceCaution    BalanceStatus = "caution"
	BalanceImbalanced BalanceStatus = "imbalanced"
	BalanceNeutral    BalanceStatus = "neutral"
)

const (
	pushDominantMessage = "Push-dominant imbalance. Add more pulling exercises (rows, face pulls) to protect shoulder health."
	pullDominantMessage = "Pull-dominant imbalance. Consider adding more pushing exercises."
)

// PushPullBalance compares weekly effective sets of the push and pull groups.
// Ratio is only meaningful when State is RatioFinite.
type PushPullBalance struct {
	State     RatioState    `json:"state"`
	Push      float64       `json:"push_sets"`
	Pull      float64       `json:"pull_sets"`
	Ratio     float64       `json:"ratio,omitempty"`
	Status    BalanceStatus `json:"status,omitempty"`
	Zone      Zone          `json:"zone,omitempty"`
	Dominance string        `json:"dominance,omitempty"`
	Message   string        `json:"message,omitempty"`
	PushPct   int           `json:"push_pct"`
	PullPct   int           `json:"pull_pct"`
}

// RatioText renders the ratio as "1.2:1", or "N/A" when there is no finite ratio.
func (b PushPullBalance) RatioText() string {
	if b.State != RatioFinite {
		return "N/A"
	}
	return fmt.Sprintf("%.1f:1", b.Ratio)
}

// PushPull totals the last 7 days of effective sets over the push and pull groups.
func PushPull(s Snapshot) PushPullBalance {
	sets := aggregate(s.Workouts, s.Catalog, LastDays(s.Today, VolumeWindowDays))
	return ClassifyPushPull(sumOver(sets, muscles.Push), sumOver(sets, muscles.Pull))
}

func sumOver(sets map[muscles.Muscle]float64, group []muscles.Muscle) float64 {
	var total float64
	for _, m := range group {
		total += sets[m]
	}
	return total
}

// ClassifyPushPull rates push/pull totals: [0.8, 1.2] is balanced, outside
// [0.6, 1.5] is imbalanced, anything between is caution. Pull-free weeks
// report RatioPushOnly instead of an infinite ratio.
func ClassifyPushPull(push, pull float64) PushPullBalance {
	b := PushPullBalance{Push: push, Pull: pull}
	if push == 0 && pull == 0 {
		b.State = RatioNoData
		return b
	}

	b.PushPct = int(push / (push + pull) * 100)
	b.PullPct = 100 - b.PushPct

	if pull <= 0 {
		b.State = RatioPushOnly
		b.Status = BalanceNeutral
		b.Zone = ZoneNeutral
		return b
	}

	b.State = RatioFinite
	b.Ratio = push / pull
	switch {
	case b.Ratio >= 0.8 && b.Ratio <= 1.2:
		b.Status, b.Zone = BalanceBalanced, ZoneGreen
	case b.Ratio < 0.6:
		b.Status, b.Zone = BalanceImbalanced, ZoneRed
		b.Dominance, b.Message = "pull", pullDominantMessage
	case b.Ratio > 1.5:
		b.Status, b.Zone = BalanceImbalanced, ZoneRed
		b.Dominance, b.Message = "push", pushDominantMessage
	default:
		b.Status, b.Zone = BalanceCaution, ZoneYellow
	}
	return b
}
