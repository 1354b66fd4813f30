package service

import (
	"fmt"

	"spanischmitbelu.com/gamification/internal/modules/ranking/dto"
	"spanischmitbelu.com/gamification/pkg/display"
)

const (
	XPPerCorrect = 10
	BonusXP      = 5
	// BonusPercent is the round accuracy from which BonusXP is added.
	BonusPercent = 80
)

// XPForRound is the XP a finished round is worth. Correct answers outside
// [0, total] are clamped.
func XPForRound(correct, total int) int {
	if total <= 0 {
		return 0
	}
	correct = max(0, min(correct, total))

	xp := correct * XPPerCorrect
	if display.Percentage(correct, total) >= BonusPercent {
		xp += BonusXP
	}
	return xp
}

// Rules renders the "how the ranking works" explainer.
func Rules() *dto.RulesView {
	return &dto.RulesView{
		Title: "¿Cómo funciona el ranking?",
		Rules: []dto.Rule{
			{Icon: "⚡", Text: fmt.Sprintf("Ganas %d XP por cada respuesta correcta.", XPPerCorrect)},
			{Icon: "🎯", Text: fmt.Sprintf("+%d XP de bonus si aciertas al menos el %d%% de la ronda.", BonusXP, BonusPercent)},
			{Icon: "📅", Text: "El ranking se reinicia cada lunes."},
			{Icon: "🏆", Text: "Solo cuenta el XP de la semana actual."},
			{Icon: "🔥", Text: "Tu racha diaria desbloquea badges, pero no da XP."},
		},
		XPPerCorrect: XPPerCorrect,
		BonusXP:      BonusXP,
		BonusPercent: BonusPercent,
		Example:      fmt.Sprintf("8/10 correctas = %d XP", XPForRound(8, 10)),
	}
}
