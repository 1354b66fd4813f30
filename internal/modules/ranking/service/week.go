package service

import (
	"math"
	"time"
)

const week = 7 * 24 * time.Hour

// WeekOfYear is ceil(elapsed/week + 1), elapsed counted from January 1st
// 00:00 in now's location. Only the very first instant of the year is week 1;
// the rest of the first seven days is week 2.
func WeekOfYear(now time.Time) int {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	elapsed := now.Sub(start)
	return int(math.Ceil(float64(elapsed)/float64(week) + 1))
}
