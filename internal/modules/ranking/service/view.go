package service

import (
	"strconv"

	"spanischmitbelu.com/gamification/internal/entity"
	"spanischmitbelu.com/gamification/internal/modules/ranking/dto"
	"spanischmitbelu.com/gamification/pkg/display"
)

const (
	HighlightCurrentUser = "current_user"
	HighlightMedal       = "medal"
	HighlightDefault     = "default"

	currentUserSuffix = "(Tú)"
)

// DefaultTopN is how many entries a leaderboard shows before the viewer row.
const DefaultTopN = 5

type medalStyle struct {
	Icon string
	Tone string
}

var medalStyles = map[int]medalStyle{
	1: {Icon: "🥇", Tone: "gold"},
	2: {Icon: "🥈", Tone: "silver"},
	3: {Icon: "🥉", Tone: "bronze"},
}

// BuildRows renders the first topN entries in the order given. When none of
// them is the viewer and currentUser is set, the viewer is appended as an
// extra row after the ellipsis.
func BuildRows(entries []entity.RankingEntry, currentUser *entity.RankingEntry, topN int, f *display.Formatter) []dto.RankRow {
	if topN <= 0 {
		topN = DefaultTopN
	}
	top := entries[:min(topN, len(entries))]

	rows := make([]dto.RankRow, 0, len(top)+1)
	userInTop := false
	for _, e := range top {
		if e.IsCurrentUser {
			userInTop = true
		}
		rows = append(rows, BuildRow(e, f))
	}

	if !userInTop && currentUser != nil {
		user := *currentUser
		user.IsCurrentUser = true
		row := BuildRow(user, f)
		row.AfterEllipsis = true
		rows = append(rows, row)
	}
	return rows
}

func BuildRow(e entity.RankingEntry, f *display.Formatter) dto.RankRow {
	row := dto.RankRow{
		Rank:          e.Rank,
		RankLabel:     strconv.Itoa(e.Rank),
		Name:          display.Text(e.Name),
		Avatar:        e.Avatar,
		XP:            e.XP,
		XPLabel:       f.Int(e.XP),
		Highlight:     HighlightDefault,
		IsCurrentUser: e.IsCurrentUser,
	}

	if medal, ok := medalStyles[e.Rank]; ok {
		row.RankLabel = medal.Icon
		row.Medal = medal.Tone
		row.Highlight = HighlightMedal
	}
	if e.IsCurrentUser {
		row.Suffix = currentUserSuffix
		row.Highlight = HighlightCurrentUser
	}
	return row
}
