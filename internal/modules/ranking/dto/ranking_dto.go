package dto

type PageQuery struct {
	Tab          string `form:"tab" binding:"omitempty,oneof=global personal"`
	ExpandedWeek *int   `form:"expanded_week" binding:"omitempty,min=1"`
}

// RankRow is one rendered leaderboard line.
type RankRow struct {
	Rank      int    `json:"rank"`
	RankLabel string `json:"rank_label"` // medal emoji for ranks 1-3, the number otherwise
	Medal     string `json:"medal,omitempty"`
	Name      string `json:"name"`
	Suffix    string `json:"suffix,omitempty"`
	Avatar    string `json:"avatar"`
	XP        int    `json:"xp"`
	XPLabel   string `json:"xp_label"`
	Highlight string `json:"highlight"`

	IsCurrentUser bool `json:"is_current_user"`
	// AfterEllipsis marks the viewer's row appended below a top list they
	// are not part of.
	AfterEllipsis bool `json:"after_ellipsis"`
}

type TabView struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

type HistoryWeekView struct {
	Week     int    `json:"week"`
	Year     int    `json:"year"`
	Badge    string `json:"badge"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Expanded bool   `json:"expanded"`
	// ToggleWeek is the expanded_week to request when the header is clicked;
	// nil closes the accordion.
	ToggleWeek *int      `json:"toggle_expanded_week"`
	Rows       []RankRow `json:"rows,omitempty"`
}

type GlobalView struct {
	CurrentLabel string            `json:"current_label"`
	Current      []RankRow         `json:"current"`
	HistoryTitle string            `json:"history_title"`
	History      []HistoryWeekView `json:"history"`
}

type PersonalWeekView struct {
	Week          int    `json:"week"`
	Year          int    `json:"year"`
	Title         string `json:"title"`
	Current       bool   `json:"current"`
	Badge         string `json:"badge,omitempty"`
	XP            int    `json:"xp"`
	XPLabel       string `json:"xp_label"`
	Accuracy      int    `json:"accuracy"`
	AccuracyLabel string `json:"accuracy_label"`
	GamesPlayed   int    `json:"games_played"`
	Delta         int    `json:"delta"`
	DeltaLabel    string `json:"delta_label"`
	Trend         string `json:"trend"`
}

type PersonalView struct {
	Weeks []PersonalWeekView `json:"weeks"`
}

// PageView is the rendered weekly ranking page. Exactly one of Global and
// Personal is set, matching Tab.
type PageView struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Week     int           `json:"week"`
	Year     int           `json:"year"`
	Tab      string        `json:"tab"`
	Tabs     []TabView     `json:"tabs"`
	Global   *GlobalView   `json:"global,omitempty"`
	Personal *PersonalView `json:"personal,omitempty"`
}

type Rule struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

type RulesView struct {
	Title        string `json:"title"`
	Rules        []Rule `json:"rules"`
	XPPerCorrect int    `json:"xp_per_correct"`
	BonusXP      int    `json:"bonus_xp"`
	BonusPercent int    `json:"bonus_percent"`
	Example      string `json:"example"`
}
