package service

import (
	"context"
	"fmt"

	"spanischmitbelu.com/gamification/internal/entity"
	"spanischmitbelu.com/gamification/internal/modules/ranking/dto"
	rankingRepo "spanischmitbelu.com/gamification/internal/modules/ranking/repository"
	"spanischmitbelu.com/gamification/pkg/apperror"
	"spanischmitbelu.com/gamification/pkg/display"
)

type RankingService interface {
	GetPage(ctx context.Context, tab string, expandedWeek *int) (*dto.PageView, error)
	// GetRules is static content and never fails.
	GetRules() *dto.RulesView
	// GetGameRanking is the leaderboard shown under a finished game.
	GetGameRanking(ctx context.Context) ([]entity.RankingEntry, error)
	Rows(entries []entity.RankingEntry, currentUser *entity.RankingEntry) []dto.RankRow
}

type Config struct {
	TopN      int
	Formatter *display.Formatter
}

type rankingService struct {
	repo rankingRepo.RankingRepository
	cfg  Config
}

func NewRankingService(repo rankingRepo.RankingRepository, cfg Config) RankingService {
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	if cfg.Formatter == nil {
		cfg.Formatter = display.NewFormatter("de")
	}
	return &rankingService{repo: repo, cfg: cfg}
}

func (s *rankingService) GetPage(ctx context.Context, tab string, expandedWeek *int) (*dto.PageView, error) {
	if tab == "" {
		tab = TabGlobal
	}
	if tab != TabGlobal && tab != TabPersonal {
		return nil, apperror.Invalid(fmt.Sprintf("pestaña desconocida: %s", tab))
	}

	week, year, err := s.repo.GetCurrentWeek(ctx)
	if err != nil {
		return nil, err
	}

	page := &dto.PageView{
		Title:    "Ranking Semanal",
		Subtitle: fmt.Sprintf("Semana %d · %d", week, year),
		Week:     week,
		Year:     year,
		Tab:      tab,
		Tabs:     buildTabs(tab),
	}

	if tab == TabPersonal {
		weeks, err := s.repo.GetPersonalWeeks(ctx)
		if err != nil {
			return nil, err
		}
		page.Personal = &dto.PersonalView{Weeks: buildPersonal(weeks, week, s.cfg.Formatter)}
		return page, nil
	}

	current, user, err := s.repo.GetCurrentRanking(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.GetHistory(ctx)
	if err != nil {
		return nil, err
	}

	page.Global = &dto.GlobalView{
		CurrentLabel: "Esta semana",
		Current:      s.Rows(current, user),
		HistoryTitle: "Semanas anteriores",
		History:      buildHistory(history, expandedWeek, s.cfg.TopN, s.cfg.Formatter),
	}
	return page, nil
}

func (s *rankingService) GetRules() *dto.RulesView {
	return Rules()
}

func (s *rankingService) GetGameRanking(ctx context.Context) ([]entity.RankingEntry, error) {
	return s.repo.GetGameRanking(ctx)
}

func (s *rankingService) Rows(entries []entity.RankingEntry, currentUser *entity.RankingEntry) []dto.RankRow {
	return BuildRows(entries, currentUser, s.cfg.TopN, s.cfg.Formatter)
}
