package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spanischmitbelu.com/gamification/internal/bootstrap"
	"spanischmitbelu.com/gamification/internal/entity"
	rankingRepo "spanischmitbelu.com/gamification/internal/modules/ranking/repository"
	rankingService "spanischmitbelu.com/gamification/internal/modules/ranking/service"
	"spanischmitbelu.com/gamification/internal/modules/result/dto"
	"spanischmitbelu.com/gamification/pkg/apperror"
	"spanischmitbelu.com/gamification/pkg/display"
)

func newTestService() ResultService {
	formatter := display.NewFormatter("de")
	fixtures := bootstrap.SeedRanking(42, time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	ranking := rankingService.NewRankingService(rankingRepo.NewRankingRepository(fixtures), rankingService.Config{
		TopN:      5,
		Formatter: formatter,
	})
	return NewResultService(ranking, Config{
		Screen:    DefaultScreenOptions(),
		TopN:      5,
		Formatter: formatter,
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
}

func intPtr(v int) *int { return &v }

func TestBuildResult(t *testing.T) {
	view, err := newTestService().BuildResult(context.Background(), dto.ResultRequest{
		XPEarned:       intPtr(85),
		CorrectAnswers: 8,
		TotalQuestions: 10,
		GameLabel:      "Multiple Choice",
	})
	require.NoError(t, err)

	assert.Equal(t, "excellent", view.Tier)
	assert.Equal(t, "¡Excelente! 🌟", view.Message)
	assert.Equal(t, "8/10 correctas", view.Caption)
	assert.Equal(t, 80, view.Percentage)
	assert.Equal(t, "80%", view.PercentageLabel)
	assert.Equal(t, "+85", view.XPLabel)
	assert.Equal(t, "Top 5", view.RankingTitle)
	assert.Equal(t, int64(800), view.RankingRevealMs)

	assert.Equal(t, int64(1200), view.XPAnimation.DurationMs)
	assert.Equal(t, int64(40), view.XPAnimation.TickMs)
	frames := view.XPAnimation.Frames
	require.NotEmpty(t, frames)
	assert.LessOrEqual(t, len(frames), 30)
	assert.Equal(t, 85, frames[len(frames)-1])

	require.Len(t, view.Confetti, 20)
	for _, p := range view.Confetti {
		assert.Contains(t, []string{"🎉", "⭐", "✨", "🌟"}, p.Emoji)
		assert.GreaterOrEqual(t, p.FontSizePx, 12.0)
		assert.Less(t, p.FontSizePx, 24.0)
	}

	// default game leaderboard, viewer already in it
	require.Len(t, view.Ranking, 5)
	assert.True(t, view.Ranking[3].IsCurrentUser)

	require.Len(t, view.Actions, 2)
	assert.Equal(t, "Repetir", view.Actions[0].Label)
	assert.Equal(t, "Continuar", view.Actions[1].Label)
}

func TestBuildResultDerivesXP(t *testing.T) {
	view, err := newTestService().BuildResult(context.Background(), dto.ResultRequest{
		CorrectAnswers: 5,
		TotalQuestions: 10,
		GameLabel:      "Vokabeln",
	})
	require.NoError(t, err)

	assert.Equal(t, 50, view.XPEarned)
	assert.Equal(t, "keep_practicing", view.Tier)
	assert.Empty(t, view.Confetti)
}

func TestBuildResultWithoutQuestions(t *testing.T) {
	view, err := newTestService().BuildResult(context.Background(), dto.ResultRequest{
		TotalQuestions: 0,
		GameLabel:      "Lückentext",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, view.Percentage)
	assert.Equal(t, "dont_give_up", view.Tier)
	assert.Equal(t, []int{0}, view.XPAnimation.Frames)
}

func TestBuildResultCustomRanking(t *testing.T) {
	ranking := []entity.RankingEntry{
		{Rank: 1, Name: "A", XP: 300},
		{Rank: 2, Name: "B", XP: 200},
	}
	user := &entity.RankingEntry{Rank: 14, Name: "Du", XP: 20}

	view, err := newTestService().BuildResult(context.Background(), dto.ResultRequest{
		CorrectAnswers: 10,
		TotalQuestions: 10,
		GameLabel:      "<i>Escucha</i>",
		Ranking:        ranking,
		CurrentUser:    user,
	})
	require.NoError(t, err)

	assert.Equal(t, "Escucha", view.GameLabel)
	assert.Equal(t, "perfect", view.Tier)
	require.Len(t, view.Ranking, 3)
	assert.True(t, view.Ranking[2].AfterEllipsis)
}

func TestBuildResultRejectsTooManyCorrect(t *testing.T) {
	_, err := newTestService().BuildResult(context.Background(), dto.ResultRequest{
		CorrectAnswers: 11,
		TotalQuestions: 10,
		GameLabel:      "Multiple Choice",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
