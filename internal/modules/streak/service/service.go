package service

import (
	"context"
	"fmt"

	"spanischmitbelu.com/gamification/internal/modules/streak/dto"
	"spanischmitbelu.com/gamification/pkg/apperror"
)

// lastDaysWindow is the number of dots in the "Últimos 7 días" row.
const lastDaysWindow = 7

type StreakService interface {
	GetPopup(ctx context.Context, days int, previousDays *int) (*dto.PopupView, error)
	// NewPopup creates an animated popup instance; the caller owns it and
	// must Close it.
	NewPopup(days int, listener func(Event)) *Popup
}

type Config struct {
	AppName  string
	ShareURL string
	Popup    PopupOptions
}

type streakService struct {
	cfg Config
}

func NewStreakService(cfg Config) StreakService {
	return &streakService{cfg: cfg}
}

func (s *streakService) GetPopup(ctx context.Context, days int, previousDays *int) (*dto.PopupView, error) {
	if days < 0 {
		return nil, apperror.Invalid("los días de racha no pueden ser negativos")
	}

	badge := ResolveBadge(days)
	text := ShareText(s.cfg.AppName, days, badge)

	view := &dto.PopupView{
		Title:        "Racha diaria",
		Days:         days,
		DaysUnit:     DaysUnit(days),
		Caption:      "de racha consecutiva",
		Badge:        ToBadgeResponse(badge),
		Milestone:    IsMilestone(days),
		LastDays:     LastDays(days),
		LastDaysHint: fmt.Sprintf("Últimos %d días", lastDaysWindow),
		ShareTitle:   "Comparte tu racha",
		ShareText:    text,
		CallToAction: "¡A seguir aprendiendo! 🚀",
	}

	if previousDays != nil && *previousDays < days {
		for _, m := range MilestonesBetween(*previousDays, days) {
			if m != days {
				view.Skipped = append(view.Skipped, m)
			}
		}
	}

	if progress := MilestoneProgress(days); progress.HasNext {
		view.Progress = &dto.ProgressResponse{
			Next:      progress.Next,
			Remaining: progress.Remaining,
			Percent:   progress.Percent,
			Label:     fmt.Sprintf("Próximo badge en %d días", progress.Remaining),
		}
	}

	for _, target := range ShareTargets(text, s.cfg.ShareURL) {
		view.Share = append(view.Share, dto.ShareTargetResponse{
			ID:        target.ID,
			Name:      target.Name,
			Icon:      target.Icon,
			URL:       target.URL,
			Clipboard: target.Clipboard,
		})
	}

	return view, nil
}

func (s *streakService) NewPopup(days int, listener func(Event)) *Popup {
	return NewPopup(days, s.cfg.Popup, listener)
}

// DaysUnit returns "día" for a one day streak and "días" otherwise.
func DaysUnit(days int) string {
	if days == 1 {
		return "día"
	}
	return "días"
}

// LastDays marks dot i active when the streak is longer than i days.
func LastDays(days int) []dto.DayDot {
	dots := make([]dto.DayDot, lastDaysWindow)
	for i := range dots {
		dots[i] = dto.DayDot{Index: i + 1, Active: i < days}
	}
	return dots
}

func ToBadgeResponse(b Badge) dto.BadgeResponse {
	return dto.BadgeResponse{
		Threshold: b.Threshold,
		Emoji:     b.Emoji,
		Label:     b.Label,
		Color:     b.Color,
	}
}

func ToEventResponse(e Event) dto.EventResponse {
	return dto.EventResponse{
		State:     string(e.State),
		Visible:   e.Visible,
		Days:      e.Days,
		Displayed: e.Displayed,
		Milestone: e.Milestone,
		Badge:     ToBadgeResponse(e.Badge),
	}
}
