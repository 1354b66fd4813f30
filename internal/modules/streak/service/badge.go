package service

import "math"

// Badge is the cosmetic tier a streak length unlocks.
// Color is the gradient token the popup header is painted with.
type Badge struct {
	Threshold int    `json:"threshold"`
	Emoji     string `json:"emoji"`
	Label     string `json:"label"`
	Color     string `json:"color"`
}

// Badge tiers ordered by threshold. The first entry applies to every streak
// below the second threshold.
var badgeTiers = []Badge{
	{Threshold: 0, Emoji: "✨", Label: "Inicio", Color: "from-primary to-teal-400"},
	{Threshold: 3, Emoji: "🔥", Label: "En racha", Color: "from-orange-300 to-red-400"},
	{Threshold: 7, Emoji: "🏅", Label: "Constante", Color: "from-amber-300 to-yellow-500"},
	{Threshold: 14, Emoji: "🌟", Label: "Estrella", Color: "from-yellow-300 to-orange-400"},
	{Threshold: 30, Emoji: "⚡", Label: "Rayo", Color: "from-primary to-emerald-400"},
	{Threshold: 60, Emoji: "🔥", Label: "Imparable", Color: "from-orange-400 to-red-500"},
	{Threshold: 100, Emoji: "👑", Label: "Leyenda", Color: "from-yellow-400 to-amber-500"},
	{Threshold: 365, Emoji: "💎", Label: "Diamante", Color: "from-cyan-400 to-blue-500"},
}

// Milestones are the streak lengths that unlock a badge, ascending.
var Milestones = []int{3, 7, 14, 30, 60, 100, 365}

// ClampDays maps a negative streak to zero.
func ClampDays(days int) int {
	return max(days, 0)
}

// ResolveBadge returns the tier with the greatest threshold not above days.
func ResolveBadge(days int) Badge {
	days = ClampDays(days)
	for i := len(badgeTiers) - 1; i > 0; i-- {
		if days >= badgeTiers[i].Threshold {
			return badgeTiers[i]
		}
	}
	return badgeTiers[0]
}

// NextMilestone returns the smallest milestone strictly greater than days.
// ok is false once days reached the last milestone.
func NextMilestone(days int) (next int, ok bool) {
	for _, m := range Milestones {
		if m > days {
			return m, true
		}
	}
	return 0, false
}

// IsMilestone reports whether days is exactly a milestone. A streak that jumps
// over a milestone value never matches it; see MilestonesBetween.
func IsMilestone(days int) bool {
	for _, m := range Milestones {
		if m == days {
			return true
		}
	}
	return false
}

// MilestonesBetween lists the milestones m with from < m <= to.
func MilestonesBetween(from, to int) []int {
	var crossed []int
	for _, m := range Milestones {
		if m > from && m <= to {
			crossed = append(crossed, m)
		}
	}
	return crossed
}

// Progress is the "next badge in N days" bar of the popup.
type Progress struct {
	HasNext   bool    `json:"has_next"`
	Next      int     `json:"next,omitempty"`
	Remaining int     `json:"remaining,omitempty"`
	Percent   float64 `json:"percent"`
}

// MilestoneProgress computes how far days is on its way to the next milestone.
func MilestoneProgress(days int) Progress {
	days = ClampDays(days)
	next, ok := NextMilestone(days)
	if !ok {
		return Progress{Percent: 100}
	}

	percent := math.Min(float64(days)/float64(next)*100, 100)
	return Progress{
		HasNext:   true,
		Next:      next,
		Remaining: next - days,
		Percent:   math.Round(percent*100) / 100,
	}
}
