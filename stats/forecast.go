package stats

import (
	"time"

	"github.com/paber33/srs"
)

const day = 24 * time.Hour

// Forecast returns how many cards fall due on each of the next days days,
// counted in 24-hour buckets from from. Cards already overdue land on day
// 0. New cards are excluded: they are limited by quota, not by due date.
func Forecast(cards []srs.Card, from time.Time, days int) []int {
	if days <= 0 {
		return []int{}
	}
	counts := make([]int, days)
	for _, c := range cards {
		if c.Status == srs.New {
			continue
		}
		idx := 0
		if c.Due.After(from) {
			idx = int(c.Due.Sub(from) / day)
		}
		if idx < days {
			counts[idx]++
		}
	}
	return counts
}

// Peak returns the largest value in loads and its index, or (0, -1) for an
// empty slice.
func Peak(loads []int) (value, index int) {
	index = -1
	for i, v := range loads {
		if index < 0 || v > value {
			value, index = v, i
		}
	}
	return value, index
}
