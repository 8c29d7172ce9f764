package stats

import (
	"time"

	"github.com/paber33/srs"
)

// DeckSummary describes a card pool at a point in time.
type DeckSummary struct {
	Total    int                `json:"total"`
	ByStatus map[srs.Status]int `json:"by_status"`
	DueNow   int                `json:"due_now"` // non-New cards due at the summary time.
	Leeches  int                `json:"leeches"`

	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"` // Correct / (Correct + Incorrect); 0 before any rating.

	// Averages over Review cards; 0 when there are none.
	MeanEase     float64 `json:"mean_ease"`
	MeanInterval float64 `json:"mean_interval"`
}

// Summarize counts cards by status and aggregates their lifetime counters.
func Summarize(cards []srs.Card, now time.Time) DeckSummary {
	sum := DeckSummary{
		Total:    len(cards),
		ByStatus: make(map[srs.Status]int, 4),
	}

	var easeSum, ivlSum float64
	for _, c := range cards {
		sum.ByStatus[c.Status]++
		if c.Status != srs.New && !c.Due.After(now) {
			sum.DueNow++
		}
		if c.IsLeech {
			sum.Leeches++
		}
		sum.Correct += c.CorrectCount
		sum.Incorrect += c.IncorrectCount
		if c.Status == srs.Review {
			easeSum += c.Ease
			ivlSum += float64(c.Interval)
		}
	}

	if n := sum.Correct + sum.Incorrect; n > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(n)
	}
	if n := sum.ByStatus[srs.Review]; n > 0 {
		sum.MeanEase = easeSum / float64(n)
		sum.MeanInterval = ivlSum / float64(n)
	}
	return sum
}
