package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/paber33/srs"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func reviewCard(due time.Time, interval int, ease float64) srs.Card {
	c := srs.NewCard("term", "translation")
	c.Status = srs.Review
	c.Repetitions = 3
	c.Interval = interval
	c.Ease = ease
	c.Due = due
	return c
}

func learningCard(due time.Time) srs.Card {
	c := srs.NewCard("term", "translation")
	c.Status = srs.Learning
	c.Step = srs.AtStep(0)
	c.Due = due
	return c
}

func seededScheduler(t testing.TB, cfg srs.Config, seed int64) *srs.Scheduler {
	t.Helper()
	s, err := srs.NewScheduler(cfg, srs.WithRandSource(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return s
}

func newDeck(n int) []srs.Card {
	cards := make([]srs.Card, n)
	for i := range cards {
		cards[i] = srs.NewCard("term", "translation")
	}
	return cards
}
