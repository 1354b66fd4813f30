package bootstrap

import (
	"time"

	"spanischmitbelu.com/gamification/internal/entity"
)

var (
	maria  = entity.RankingEntry{Name: "María López", Avatar: "👩‍🎓"}
	carlos = entity.RankingEntry{Name: "Carlos Ruiz", Avatar: "🧑‍💻"}
	anna   = entity.RankingEntry{Name: "Anna Schmidt", Avatar: "👩‍🏫"}
	lukas  = entity.RankingEntry{Name: "Lukas Weber", Avatar: "🧑‍🎤"}
	sophie = entity.RankingEntry{Name: "Sophie Müller", Avatar: "👩‍🔬"}
	you    = entity.RankingEntry{Name: "Du", Avatar: "🙋", IsCurrentUser: true}
)

func ranked(who entity.RankingEntry, rank, xp int) entity.RankingEntry {
	who.Rank = rank
	who.XP = xp
	return who
}

// SeedRanking returns the demo leaderboards. Week numbers are relative to
// currentWeek, the week now falls into.
func SeedRanking(currentWeek int, now time.Time) *entity.RankingFixtures {
	year := now.Year()

	return &entity.RankingFixtures{
		CurrentWeek: currentWeek,
		Year:        year,
		CurrentRanking: []entity.RankingEntry{
			ranked(maria, 1, 2480),
			ranked(carlos, 2, 2210),
			ranked(anna, 3, 1950),
			ranked(lukas, 4, 1650),
			ranked(sophie, 5, 1520),
		},
		UserRank: ranked(you, 8, 1120),
		History: []entity.WeekHistory{
			{
				Week: currentWeek - 1,
				Year: year,
				Ranking: []entity.RankingEntry{
					ranked(carlos, 1, 2100),
					ranked(anna, 2, 1980),
					ranked(maria, 3, 1870),
					ranked(sophie, 4, 1600),
					ranked(lukas, 5, 1450),
				},
				UserRank: ranked(you, 6, 980),
			},
			{
				Week: currentWeek - 2,
				Year: year,
				Ranking: []entity.RankingEntry{
					ranked(anna, 1, 2300),
					ranked(maria, 2, 2050),
					ranked(carlos, 3, 1900),
					ranked(lukas, 4, 1700),
					ranked(you, 5, 1550),
				},
				UserRank: ranked(you, 5, 1550),
			},
		},
		Personal: []entity.PersonalWeek{
			{Week: currentWeek, Year: year, XP: 1120, CorrectAnswers: 42, TotalQuestions: 55, GamesPlayed: 6},
			{Week: currentWeek - 1, Year: year, XP: 980, CorrectAnswers: 38, TotalQuestions: 50, GamesPlayed: 5},
			{Week: currentWeek - 2, Year: year, XP: 1550, CorrectAnswers: 58, TotalQuestions: 70, GamesPlayed: 8},
			{Week: currentWeek - 3, Year: year, XP: 720, CorrectAnswers: 28, TotalQuestions: 40, GamesPlayed: 4},
		},
		// leaderboard shown under a finished game
		GameRanking: []entity.RankingEntry{
			ranked(maria, 1, 2480),
			ranked(carlos, 2, 2210),
			ranked(anna, 3, 1950),
			ranked(you, 4, 1820),
			ranked(lukas, 5, 1650),
		},
	}
}
