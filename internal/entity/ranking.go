package entity

// RankingEntry is one row of a weekly leaderboard. Lists of entries arrive
// sorted by Rank ascending and are never re-sorted.
type RankingEntry struct {
	Rank          int    `json:"rank" binding:"required,min=1"`
	Name          string `json:"name" binding:"required,max=100"`
	XP            int    `json:"xp" binding:"min=0"`
	Avatar        string `json:"avatar" binding:"max=32"`
	IsCurrentUser bool   `json:"is_current_user,omitempty"`
}

// WeekHistory is the final leaderboard of a past week plus where the viewer
// ended up in it.
type WeekHistory struct {
	Week     int            `json:"week"`
	Year     int            `json:"year"`
	Ranking  []RankingEntry `json:"ranking"`
	UserRank RankingEntry   `json:"user_rank"`
}

// PersonalWeek is the viewer's own activity in one week.
type PersonalWeek struct {
	Week           int `json:"week"`
	Year           int `json:"year"`
	XP             int `json:"xp"`
	CorrectAnswers int `json:"correct_answers"`
	TotalQuestions int `json:"total_questions"`
	GamesPlayed    int `json:"games_played"`
}

// RankingFixtures bundles the hard-coded data the ranking page and the result
// screen are rendered from.
type RankingFixtures struct {
	CurrentWeek    int
	Year           int
	CurrentRanking []RankingEntry
	UserRank       RankingEntry
	History        []WeekHistory
	Personal       []PersonalWeek
	GameRanking    []RankingEntry
}
