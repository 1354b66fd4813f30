package dto

type StreakQuery struct {
	Days         *int `form:"days" binding:"required,min=0"`
	PreviousDays *int `form:"previous_days" binding:"omitempty,min=0"`
}

type BadgeResponse struct {
	Threshold int    `json:"threshold"`
	Emoji     string `json:"emoji"`
	Label     string `json:"label"`
	Color     string `json:"color"`
}

// ProgressResponse feeds the "Próximo badge en N días" bar. It is omitted
// from the popup once the last milestone is reached.
type ProgressResponse struct {
	Next      int     `json:"next"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
	Label     string  `json:"label"`
}

type ShareTargetResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	URL       string `json:"url,omitempty"`
	Clipboard string `json:"clipboard,omitempty"`
}

// DayDot is one circle of the "Últimos 7 días" row.
type DayDot struct {
	Index  int  `json:"index"`
	Active bool `json:"active"`
}

// PopupView is the rendered daily streak dialog.
type PopupView struct {
	Title        string                `json:"title"`
	Days         int                   `json:"days"`
	DaysUnit     string                `json:"days_unit"`
	Caption      string                `json:"caption"`
	Badge        BadgeResponse         `json:"badge"`
	Milestone    bool                  `json:"milestone"`
	Skipped      []int                 `json:"skipped_milestones,omitempty"`
	LastDays     []DayDot              `json:"last_days"`
	LastDaysHint string                `json:"last_days_hint"`
	Progress     *ProgressResponse     `json:"progress,omitempty"`
	ShareTitle   string                `json:"share_title"`
	ShareText    string                `json:"share_text"`
	Share        []ShareTargetResponse `json:"share"`
	CallToAction string                `json:"call_to_action"`
}

// ClientMessage drives a streamed popup from the browser:
// "show", "hide" or "set_streak" with Days.
type ClientMessage struct {
	Type string `json:"type"`
	Days int    `json:"days,omitempty"`
}

// EventResponse mirrors one animation event of the popup.
type EventResponse struct {
	State     string        `json:"state"`
	Visible   bool          `json:"visible"`
	Days      int           `json:"days"`
	Displayed int           `json:"displayed"`
	Milestone bool          `json:"milestone"`
	Badge     BadgeResponse `json:"badge"`
}

// ServerMessage is pushed to the browser for every popup event.
type ServerMessage struct {
	Type    string        `json:"type"`
	Session string        `json:"session"`
	Event   EventResponse `json:"event"`
}
