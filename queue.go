package srs

import (
	"sort"
	"time"
)

// BuildQueue returns today's session, in presentation order, from the
// whole card pool.
//
// The queue has three tiers, concatenated without interleaving:
//  1. every Learning and Relearning card due at now, in pool order;
//  2. due Review cards, most overdue first, capped at ReviewsPerDay;
//  3. New cards in pool order, capped at NewPerDay.
//
// Learning cards are never capped: their windows are minutes long and
// deferring them breaks the learning steps. The pool is not modified.
func (s *Scheduler) BuildQueue(cards []Card, now time.Time) []Card {
	var learning, review, fresh []Card
	for _, c := range cards {
		switch c.Status {
		case Learning, Relearning:
			if !c.Due.After(now) {
				learning = append(learning, c)
			}
		case Review:
			if !c.Due.After(now) {
				review = append(review, c)
			}
		case New:
			if len(fresh) < s.cfg.NewPerDay {
				fresh = append(fresh, c)
			}
		}
	}

	// Oldest due date first is the same as largest now-due first.
	sort.SliceStable(review, func(i, j int) bool {
		return review[i].Due.Before(review[j].Due)
	})
	if len(review) > s.cfg.ReviewsPerDay {
		review = review[:s.cfg.ReviewsPerDay]
	}

	queue := make([]Card, 0, len(learning)+len(review)+len(fresh))
	queue = append(queue, learning...)
	queue = append(queue, review...)
	queue = append(queue, fresh...)
	for i := range queue {
		queue[i] = queue[i].clone()
	}
	return queue
}
