package service

import "spanischmitbelu.com/gamification/pkg/display"

// MessageTier is the qualitative verdict of a round.
type MessageTier string

const (
	TierPerfect        MessageTier = "perfect"
	TierExcellent      MessageTier = "excellent"
	TierGood           MessageTier = "good"
	TierKeepPracticing MessageTier = "keep_practicing"
	TierDontGiveUp     MessageTier = "dont_give_up"
)

// ConfettiPercent is the score from which the screen rains confetti.
const ConfettiPercent = 80

// tiers is ordered by descending lower bound; the first match wins.
var tiers = []struct {
	minPercent int
	tier       MessageTier
	message    string
}{
	{100, TierPerfect, "¡Perfecto! 🎉"},
	{80, TierExcellent, "¡Excelente! 🌟"},
	{60, TierGood, "¡Muy bien! 💪"},
	{40, TierKeepPracticing, "¡Sigue practicando! 📚"},
	{0, TierDontGiveUp, "¡No te rindas! 🔥"},
}

// Percentage of correct answers, rounded; 0 when no question was asked.
func Percentage(correct, total int) int {
	return display.Percentage(correct, total)
}

func Classify(correct, total int) MessageTier {
	return ClassifyPercent(Percentage(correct, total))
}

func ClassifyPercent(percent int) MessageTier {
	for _, t := range tiers {
		if percent >= t.minPercent {
			return t.tier
		}
	}
	return TierDontGiveUp
}

func Message(tier MessageTier) string {
	for _, t := range tiers {
		if t.tier == tier {
			return t.message
		}
	}
	return tiers[len(tiers)-1].message
}
