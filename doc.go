// Package srs implements the spaced-repetition scheduler behind a
// vocabulary-learning app.
//
// srs is a pure-Go, SM-2 style Scheduler. It builds today's prioritized
// session queue from a pool of cards and computes a card's next state from
// a self-graded recall rating. Caller-side statistics and a workload
// simulator live in the srs/stats subpackage.
//
// Basic usage:
//
//	s, err := srs.NewScheduler(srs.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	queue := s.BuildQueue(cards, time.Now())
//	card := s.Rate(queue[0], srs.Good, time.Now())
//
// The scheduler never reads the clock and never performs I/O: the caller
// supplies "now" and persists the cards it gets back.
package srs
