package stats

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/paber33/srs"
)

var (
	// ErrNoCards is returned when Simulate is given an empty deck.
	ErrNoCards = errors.New("stats: no cards to simulate")

	// ErrInvalidSimConfig is returned when a SimConfig is out of range.
	ErrInvalidSimConfig = errors.New("stats: invalid simulation config")
)

// DefaultSimStart is the first simulated day when SimConfig.Start is zero.
var DefaultSimStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	// Share of recalled answers rated Hard and Easy; the rest are Good.
	hardShare = 0.15
	easyShare = 0.15

	// Upper bound on study passes per simulated day. Each pass rates the
	// learning cards that came due since the previous one.
	maxPassesPerDay = 64
)

// SimConfig controls a workload simulation.
type SimConfig struct {
	// Days is the number of simulated days. Must be at least 1.
	Days int `json:"days" yaml:"days"`
	// Recall is the probability that a Review card is remembered, in (0, 1].
	Recall float64 `json:"recall" yaml:"recall"`
	// LearnRecall is the probability of a correct answer on New and
	// learning cards, in [0, 1]. Zero means use Recall.
	LearnRecall float64 `json:"learn_recall" yaml:"learn_recall"`
	// Seed seeds the answer model.
	Seed int64 `json:"seed" yaml:"seed"`
	// Start is the beginning of day 0. Zero means DefaultSimStart.
	Start time.Time `json:"start" yaml:"start"`
}

func (c SimConfig) validate() error {
	if c.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidSimConfig, c.Days)
	}
	if c.Recall <= 0 || c.Recall > 1 {
		return fmt.Errorf("%w: recall must be in (0, 1], got %g", ErrInvalidSimConfig, c.Recall)
	}
	if c.LearnRecall < 0 || c.LearnRecall > 1 {
		return fmt.Errorf("%w: learn_recall must be in [0, 1], got %g", ErrInvalidSimConfig, c.LearnRecall)
	}
	return nil
}

// DayLoad counts the ratings given on one simulated day, bucketed by the
// card's status before it was rated.
type DayLoad struct {
	Day      int       `json:"day"`
	Date     time.Time `json:"date"`
	New      int       `json:"new"`
	Learning int       `json:"learning"` // Learning and Relearning ratings.
	Reviews  int       `json:"reviews"`
	Lapses   int       `json:"lapses"` // Again on Review cards.
}

// Total returns the number of ratings given on the day.
func (d DayLoad) Total() int {
	return d.New + d.Learning + d.Reviews
}

// SimResult is the outcome of Simulate.
type SimResult struct {
	Days  []DayLoad  `json:"days"`
	Cards []srs.Card `json:"cards"` // deck state after the last day.
}

// Totals sums the per-day loads. Day and Date are left zero.
func (r SimResult) Totals() DayLoad {
	var t DayLoad
	for _, d := range r.Days {
		t.New += d.New
		t.Learning += d.Learning
		t.Reviews += d.Reviews
		t.Lapses += d.Lapses
	}
	return t
}

// ReviewLoads returns the per-day Review rating counts.
func (r SimResult) ReviewLoads() []int {
	out := make([]int, len(r.Days))
	for i, d := range r.Days {
		out[i] = d.Reviews
	}
	return out
}

type answerModel struct {
	rng         *rand.Rand
	recall      float64
	learnRecall float64
}

func (m *answerModel) answer(st srs.Status) srs.Rating {
	p := m.recall
	if st != srs.Review {
		p = m.learnRecall
	}
	if m.rng.Float64() >= p {
		return srs.Again
	}
	u := m.rng.Float64()
	switch {
	case u < hardShare:
		return srs.Hard
	case u < 1-easyShare:
		return srs.Good
	default:
		return srs.Easy
	}
}

// Simulate plays cards forward one day at a time. Each day starts with a
// queue built at midnight; learning cards that come due later the same day
// are studied in further passes. Answers come from a seeded model, so two
// runs with the same scheduler random source and Seed agree.
//
// The input slice is not modified. The context is checked before each day.
func Simulate(ctx context.Context, s *srs.Scheduler, cards []srs.Card, cfg SimConfig) (SimResult, error) {
	if len(cards) == 0 {
		return SimResult{}, ErrNoCards
	}
	if cfg.LearnRecall == 0 {
		cfg.LearnRecall = cfg.Recall
	}
	if err := cfg.validate(); err != nil {
		return SimResult{}, err
	}
	start := cfg.Start
	if start.IsZero() {
		start = DefaultSimStart
	}

	deck := make([]srs.Card, len(cards))
	index := make(map[uuid.UUID]int, len(cards))
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			return SimResult{}, fmt.Errorf("card %d: %w", i, err)
		}
		if _, dup := index[c.ID]; dup {
			return SimResult{}, fmt.Errorf("%w: duplicate id %s", srs.ErrInvalidCard, c.ID)
		}
		index[c.ID] = i
		deck[i] = c
	}

	model := &answerModel{
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		recall:      cfg.Recall,
		learnRecall: cfg.LearnRecall,
	}

	res := SimResult{Days: make([]DayLoad, 0, cfg.Days)}
	for d := 0; d < cfg.Days; d++ {
		if err := ctx.Err(); err != nil {
			return SimResult{}, err
		}

		dayStart := start.Add(time.Duration(d) * day)
		dayEnd := dayStart.Add(day)
		load := DayLoad{Day: d, Date: dayStart}

		now := dayStart
		pool := deck
		for pass := 0; pass < maxPassesPerDay; pass++ {
			for _, c := range s.BuildQueue(pool, now) {
				before := c.Status
				r := model.answer(before)
				deck[index[c.ID]] = s.Rate(c, r, now)

				switch before {
				case srs.New:
					load.New++
				case srs.Learning, srs.Relearning:
					load.Learning++
				case srs.Review:
					load.Reviews++
					if r == srs.Again {
						load.Lapses++
					}
				}
			}

			// Later passes only see learning cards so the day's quotas
			// are not handed out twice.
			pool = learningCards(deck)
			next, ok := earliestDue(pool)
			if !ok || !next.Before(dayEnd) {
				break
			}
			if next.After(now) {
				now = next
			}
		}
		res.Days = append(res.Days, load)
	}

	res.Cards = deck
	return res, nil
}

func learningCards(deck []srs.Card) []srs.Card {
	var out []srs.Card
	for _, c := range deck {
		if c.Status == srs.Learning || c.Status == srs.Relearning {
			out = append(out, c)
		}
	}
	return out
}

func earliestDue(cards []srs.Card) (time.Time, bool) {
	if len(cards) == 0 {
		return time.Time{}, false
	}
	first := cards[0].Due
	for _, c := range cards[1:] {
		if c.Due.Before(first) {
			first = c.Due
		}
	}
	return first, true
}
