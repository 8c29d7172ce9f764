package srs_test

import (
	"fmt"
	"time"

	"github.com/paber33/srs"
)

func ExampleScheduler_Rate() {
	s, err := srs.NewScheduler(srs.DefaultConfig())
	if err != nil {
		panic(err)
	}

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	card := srs.NewCard("καλημέρα", "good morning")
	for i := 0; i < 3; i++ {
		next := s.Rate(card, srs.Good, now)
		fmt.Printf("%s step=%s due in %s\n", next.Status, next.Step, next.Due.Sub(now))
		card, now = next, next.Due
	}
	// Output:
	// Learning step=0 due in 1m0s
	// Learning step=1 due in 10m0s
	// Review step=none due in 48h0m0s
}

func ExampleScheduler_BuildQueue() {
	cfg := srs.DefaultConfig()
	cfg.NewPerDay = 1
	s, err := srs.NewScheduler(cfg)
	if err != nil {
		panic(err)
	}

	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	review := srs.NewCard("βιβλίο", "book")
	review.Status = srs.Review
	review.Interval = 3
	review.Due = now.Add(-48 * time.Hour)

	pool := []srs.Card{srs.NewCard("μήλο", "apple"), srs.NewCard("πόρτα", "door"), review}
	for _, c := range s.BuildQueue(pool, now) {
		fmt.Println(c.Status, c.Term)
	}
	// Output:
	// Review βιβλίο
	// New μήλο
}
