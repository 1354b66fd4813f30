package display

import "math"

// Percentage is round(100*part/whole). A zero or negative whole yields 0.
func Percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
