package repository

import (
	"context"
	"slices"

	"spanischmitbelu.com/gamification/internal/entity"
)

type RankingRepository interface {
	GetCurrentWeek(ctx context.Context) (week, year int, err error)
	// GetCurrentRanking returns the live top list and the viewer's own entry.
	GetCurrentRanking(ctx context.Context) ([]entity.RankingEntry, *entity.RankingEntry, error)
	GetHistory(ctx context.Context) ([]entity.WeekHistory, error)
	// GetPersonalWeeks is ordered newest week first.
	GetPersonalWeeks(ctx context.Context) ([]entity.PersonalWeek, error)
	GetGameRanking(ctx context.Context) ([]entity.RankingEntry, error)
}

type rankingRepository struct {
	fixtures *entity.RankingFixtures
}

// NewRankingRepository serves fixtures read-only; every getter returns copies.
func NewRankingRepository(fixtures *entity.RankingFixtures) RankingRepository {
	return &rankingRepository{fixtures: fixtures}
}

func (r *rankingRepository) GetCurrentWeek(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	return r.fixtures.CurrentWeek, r.fixtures.Year, nil
}

func (r *rankingRepository) GetCurrentRanking(ctx context.Context) ([]entity.RankingEntry, *entity.RankingEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	user := r.fixtures.UserRank
	return slices.Clone(r.fixtures.CurrentRanking), &user, nil
}

func (r *rankingRepository) GetHistory(ctx context.Context) ([]entity.WeekHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	history := make([]entity.WeekHistory, len(r.fixtures.History))
	for i, wh := range r.fixtures.History {
		wh.Ranking = slices.Clone(wh.Ranking)
		history[i] = wh
	}
	return history, nil
}

func (r *rankingRepository) GetPersonalWeeks(ctx context.Context) ([]entity.PersonalWeek, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.fixtures.Personal), nil
}

func (r *rankingRepository) GetGameRanking(ctx context.Context) ([]entity.RankingEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.fixtures.GameRanking), nil
}
