package service

import (
	"fmt"

	"spanischmitbelu.com/gamification/internal/entity"
	"spanischmitbelu.com/gamification/internal/modules/ranking/dto"
	"spanischmitbelu.com/gamification/pkg/display"
)

const (
	TabGlobal   = "global"
	TabPersonal = "personal"

	TrendUp   = "up"
	TrendFlat = "flat"
	TrendDown = "down"
)

// Toggle returns the expanded week after the header of week was clicked:
// clicking the open week closes it, any other week opens instead.
func Toggle(expanded *int, week int) *int {
	if expanded != nil && *expanded == week {
		return nil
	}
	return &week
}

func buildTabs(active string) []dto.TabView {
	return []dto.TabView{
		{ID: TabGlobal, Label: "Global", Icon: "🌍", Active: active == TabGlobal},
		{ID: TabPersonal, Label: "Personal", Icon: "👤", Active: active == TabPersonal},
	}
}

func buildHistory(history []entity.WeekHistory, expanded *int, topN int, f *display.Formatter) []dto.HistoryWeekView {
	weeks := make([]dto.HistoryWeekView, 0, len(history))
	for _, wh := range history {
		view := dto.HistoryWeekView{
			Week:       wh.Week,
			Year:       wh.Year,
			Badge:      fmt.Sprintf("S%d", wh.Week),
			Title:      fmt.Sprintf("Semana %d", wh.Week),
			Summary:    fmt.Sprintf("Tu posición: #%d · %d XP", wh.UserRank.Rank, wh.UserRank.XP),
			Expanded:   expanded != nil && *expanded == wh.Week,
			ToggleWeek: Toggle(expanded, wh.Week),
		}
		if view.Expanded {
			user := wh.UserRank
			view.Rows = BuildRows(wh.Ranking, &user, topN, f)
		}
		weeks = append(weeks, view)
	}
	return weeks
}

// buildPersonal expects weeks newest first; each week is compared with the
// one after it.
func buildPersonal(weeks []entity.PersonalWeek, currentWeek int, f *display.Formatter) []dto.PersonalWeekView {
	views := make([]dto.PersonalWeekView, 0, len(weeks))
	for i, pw := range weeks {
		delta := 0
		if i+1 < len(weeks) {
			delta = pw.XP - weeks[i+1].XP
		}
		accuracy := display.Percentage(pw.CorrectAnswers, pw.TotalQuestions)

		view := dto.PersonalWeekView{
			Week:          pw.Week,
			Year:          pw.Year,
			Title:         fmt.Sprintf("Semana %d", pw.Week),
			Current:       pw.Week == currentWeek,
			XP:            pw.XP,
			XPLabel:       f.Int(pw.XP),
			Accuracy:      accuracy,
			AccuracyLabel: f.Percent(accuracy),
			GamesPlayed:   pw.GamesPlayed,
			Delta:         delta,
		}
		if view.Current {
			view.Badge = "Actual"
		}
		view.DeltaLabel, view.Trend = deltaLabel(delta)
		views = append(views, view)
	}
	return views
}

func deltaLabel(delta int) (string, string) {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d", delta), TrendUp
	case delta < 0:
		return fmt.Sprintf("%d", delta), TrendDown
	default:
		return "—", TrendFlat
	}
}
