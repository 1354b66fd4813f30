package dto

import (
	"spanischmitbelu.com/gamification/internal/entity"
	rankingDto "spanischmitbelu.com/gamification/internal/modules/ranking/dto"
)

// ResultRequest carries the outcome of one finished game. XPEarned falls back
// to the ranking XP rules when omitted; an empty Ranking falls back to the
// weekly game leaderboard.
type ResultRequest struct {
	XPEarned       *int                  `json:"xp_earned" binding:"omitempty,min=0"`
	CorrectAnswers int                   `json:"correct_answers" binding:"min=0,ltefield=TotalQuestions"`
	TotalQuestions int                   `json:"total_questions" binding:"min=0"`
	GameLabel      string                `json:"game_label" binding:"required,max=60"`
	Ranking        []entity.RankingEntry `json:"ranking" binding:"omitempty,max=50,dive"`
	CurrentUser    *entity.RankingEntry  `json:"current_user"`
}

type ScreenQuery struct {
	XP *int `form:"xp" binding:"required,min=0"`
}

type ConfettiParticle struct {
	Emoji      string  `json:"emoji"`
	LeftPct    float64 `json:"left_pct"`
	TopPx      float64 `json:"top_px"`
	DelaySec   float64 `json:"delay_sec"`
	FontSizePx float64 `json:"font_size_px"`
}

type XPAnimation struct {
	DurationMs int64 `json:"duration_ms"`
	TickMs     int64 `json:"tick_ms"`
	Frames     []int `json:"frames"`
}

type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ResultView is the rendered post-game screen.
type ResultView struct {
	GameLabel       string               `json:"game_label"`
	Tier            string               `json:"tier"`
	Message         string               `json:"message"`
	Caption         string               `json:"caption"`
	Percentage      int                  `json:"percentage"`
	PercentageLabel string               `json:"percentage_label"`
	ProgressLabel   string               `json:"progress_label"`
	XPTitle         string               `json:"xp_title"`
	XPEarned        int                  `json:"xp_earned"`
	XPLabel         string               `json:"xp_label"`
	XPAnimation     XPAnimation          `json:"xp_animation"`
	Confetti        []ConfettiParticle   `json:"confetti,omitempty"`
	RankingTitle    string               `json:"ranking_title"`
	RankingRevealMs int64                `json:"ranking_reveal_ms"`
	Ranking         []rankingDto.RankRow `json:"ranking"`
	Actions         []Action             `json:"actions"`
}

// ClientMessage restarts a streamed screen with a new XP value ("set_xp").
type ClientMessage struct {
	Type string `json:"type"`
	XP   int    `json:"xp"`
}

type EventResponse struct {
	Target         int  `json:"target"`
	Displayed      int  `json:"displayed"`
	Settled        bool `json:"settled"`
	RankingVisible bool `json:"ranking_visible"`
}

type ServerMessage struct {
	Type    string        `json:"type"`
	Session string        `json:"session"`
	Event   EventResponse `json:"event"`
}
