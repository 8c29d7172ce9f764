package stats

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/paber33/srs"
)

// SessionStats aggregates a batch of review logs, typically one study
// session or one day.
type SessionStats struct {
	Reviews        int                `json:"reviews"`
	Cards          int                `json:"cards"` // distinct cards rated.
	ByRating       map[srs.Rating]int `json:"by_rating"`
	FirstExposures int                `json:"first_exposures"` // ratings of New cards.
	Lapses         int                `json:"lapses"`          // Again on Review cards.

	// Accuracy is the share of all ratings that were not Again.
	Accuracy float64 `json:"accuracy"`
	// Retention is the share of Review-status ratings that were not Again.
	Retention float64 `json:"retention"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// groupLogs groups review logs by card and sorts each group by time.
func groupLogs(logs []srs.ReviewLog) map[uuid.UUID][]srs.ReviewLog {
	if len(logs) == 0 {
		return nil
	}
	groups := make(map[uuid.UUID][]srs.ReviewLog)
	for _, log := range logs {
		groups[log.CardID] = append(groups[log.CardID], log)
	}
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].ReviewedAt.Before(g[j].ReviewedAt)
		})
	}
	return groups
}

// Session aggregates review logs. Logs may arrive in any order.
func Session(logs []srs.ReviewLog) SessionStats {
	st := SessionStats{ByRating: make(map[srs.Rating]int, 4)}
	groups := groupLogs(logs)
	st.Cards = len(groups)

	var recalled, reviewTotal, reviewRecalled int
	for _, g := range groups {
		for _, log := range g {
			st.Reviews++
			st.ByRating[log.Rating]++
			if log.Rating != srs.Again {
				recalled++
			}
			switch log.Status {
			case srs.New:
				st.FirstExposures++
			case srs.Review:
				reviewTotal++
				if log.Rating == srs.Again {
					st.Lapses++
				} else {
					reviewRecalled++
				}
			}
			if st.Start.IsZero() || log.ReviewedAt.Before(st.Start) {
				st.Start = log.ReviewedAt
			}
			if log.ReviewedAt.After(st.End) {
				st.End = log.ReviewedAt
			}
		}
	}

	if st.Reviews > 0 {
		st.Accuracy = float64(recalled) / float64(st.Reviews)
	}
	if reviewTotal > 0 {
		st.Retention = float64(reviewRecalled) / float64(reviewTotal)
	}
	return st
}
