package srs

import (
	"math"
	"time"
)

// Interval multipliers applied on top of the ease factor in Review.
const (
	hardModifier = 0.85
	easyModifier = 1.15
)

// EaseUpdate returns the ease factor after a successful review rated r.
//
//	ease' = max(minEase, ease + (0.1 - (3-q) * (0.08 + (3-q)*0.02)))
//
// where q is r.Quality().
func EaseUpdate(ease float64, r Rating, minEase float64) float64 {
	d := 3 - float64(r.Quality())
	return math.Max(minEase, ease+(0.1-d*(0.08+d*0.02)))
}

// NextInterval returns the un-jittered Review interval in days after the
// repetitions-th successful review since graduation.
//
// The first repetition is 1 day and the second 6 days. From the third on
// the interval compounds: round(interval * ease * m), with m = 0.85 for
// Hard, 1.15 for Easy and 1 for Good. The result is never below 1.
func NextInterval(repetitions, interval int, ease float64, r Rating) int {
	switch {
	case repetitions <= 1:
		return 1
	case repetitions == 2:
		return 6
	}
	m := 1.0
	switch r {
	case Hard:
		m = hardModifier
	case Easy:
		m = easyModifier
	}
	return max(1, int(math.Round(float64(interval)*ease*m)))
}

// InitialGraduationInterval returns the interval in days a card receives
// when it leaves Learning or Relearning: 1 for Hard, 4 for Easy, 2 otherwise.
func InitialGraduationInterval(r Rating) int {
	switch r {
	case Hard:
		return 1
	case Easy:
		return 4
	default:
		return 2
	}
}

// dayDuration converts whole days to a duration.
func dayDuration(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
