package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"

	"spanischmitbelu.com/gamification/internal/modules/result/dto"
	rankingService "spanischmitbelu.com/gamification/internal/modules/ranking/service"
	"spanischmitbelu.com/gamification/pkg/animation"
	"spanischmitbelu.com/gamification/pkg/apperror"
	"spanischmitbelu.com/gamification/pkg/display"
)

const (
	ActionRetry    = "retry"
	ActionContinue = "continue"
)

type ResultService interface {
	BuildResult(ctx context.Context, req dto.ResultRequest) (*dto.ResultView, error)
	// NewScreen creates an animated result screen; the caller owns it and must
	// Close it.
	NewScreen(xp int, listener func(ScreenEvent)) *Screen
}

type Config struct {
	Screen    ScreenOptions
	TopN      int
	Formatter *display.Formatter
	// Rand drives the confetti layout. Nil seeds a new generator.
	Rand *rand.Rand
}

type resultService struct {
	ranking rankingService.RankingService
	cfg     Config

	randMu sync.Mutex
}

func NewResultService(ranking rankingService.RankingService, cfg Config) ResultService {
	if cfg.TopN <= 0 {
		cfg.TopN = rankingService.DefaultTopN
	}
	if cfg.Formatter == nil {
		cfg.Formatter = display.NewFormatter("de")
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &resultService{ranking: ranking, cfg: cfg}
}

func (s *resultService) BuildResult(ctx context.Context, req dto.ResultRequest) (*dto.ResultView, error) {
	if req.CorrectAnswers < 0 || req.TotalQuestions < 0 {
		return nil, apperror.Invalid("las respuestas no pueden ser negativas")
	}
	if req.CorrectAnswers > req.TotalQuestions {
		return nil, apperror.Invalid("hay más respuestas correctas que preguntas")
	}

	xp := rankingService.XPForRound(req.CorrectAnswers, req.TotalQuestions)
	if req.XPEarned != nil {
		xp = max(*req.XPEarned, 0)
	}

	entries := req.Ranking
	if len(entries) == 0 {
		var err error
		entries, err = s.ranking.GetGameRanking(ctx)
		if err != nil {
			return nil, err
		}
	}

	percent := Percentage(req.CorrectAnswers, req.TotalQuestions)
	tier := ClassifyPercent(percent)
	opts := s.cfg.Screen

	view := &dto.ResultView{
		GameLabel:       display.Text(req.GameLabel),
		Tier:            string(tier),
		Message:         Message(tier),
		Caption:         fmt.Sprintf("%d/%d correctas", req.CorrectAnswers, req.TotalQuestions),
		Percentage:      percent,
		PercentageLabel: s.cfg.Formatter.Percent(percent),
		ProgressLabel:   "Progreso",
		XPTitle:         "XP Ganados",
		XPEarned:        xp,
		XPLabel:         "+" + s.cfg.Formatter.Int(xp),
		XPAnimation: dto.XPAnimation{
			DurationMs: opts.Duration.Milliseconds(),
			TickMs:     opts.tick().Milliseconds(),
			Frames:     animation.Plan(xp, opts.Steps),
		},
		RankingTitle:    fmt.Sprintf("Top %d", s.cfg.TopN),
		RankingRevealMs: opts.RankingDelay.Milliseconds(),
		Ranking:         s.ranking.Rows(entries, req.CurrentUser),
		Actions: []dto.Action{
			{ID: ActionRetry, Label: "Repetir", Icon: "↺"},
			{ID: ActionContinue, Label: "Continuar", Icon: "→"},
		},
	}

	if percent >= ConfettiPercent {
		s.randMu.Lock()
		view.Confetti = Confetti(confettiCount, s.cfg.Rand)
		s.randMu.Unlock()
	}

	log.Debug("🎮 Result built", "game", view.GameLabel, "tier", tier, "xp", xp)
	return view, nil
}

func (s *resultService) NewScreen(xp int, listener func(ScreenEvent)) *Screen {
	return NewScreen(xp, s.cfg.Screen, listener)
}

func ToEventResponse(e ScreenEvent) dto.EventResponse {
	return dto.EventResponse{
		Target:         e.Target,
		Displayed:      e.Displayed,
		Settled:        e.Settled,
		RankingVisible: e.RankingVisible,
	}
}
