package srs

import (
	"encoding/json"
	"fmt"
	"time"
)

// Scheduler builds session queues and applies ratings to cards.
// It holds no mutable state besides its random source and is safe for
// concurrent use as long as that source is.
type Scheduler struct {
	cfg Config
	rng RandSource
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithRandSource sets the source used to jitter Review due dates.
// Inject a seeded or constant source for reproducible schedules. The
// default source is seeded from the clock and safe for concurrent use.
func WithRandSource(src RandSource) Option {
	return func(s *Scheduler) {
		s.rng = src
	}
}

// NewScheduler creates a Scheduler from the given config.
// Invalid configs return an error wrapping ErrInvalidConfig.
func NewScheduler(cfg Config, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{cfg: cfg.clone()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = defaultSource()
	}
	return s, nil
}

// Config returns a copy of the scheduler's configuration.
func (s *Scheduler) Config() Config {
	return s.cfg.clone()
}

// Rate applies a rating given at now and returns the card's next state.
// The input card is not mutated.
//
// Rate panics if rating or card.Status is not one of the enumerated
// values; callers validate untrusted input with Rating.IsValid and
// Card.Validate first.
func (s *Scheduler) Rate(card Card, rating Rating, now time.Time) Card {
	if !rating.IsValid() {
		panic(fmt.Sprintf("srs: Rate called with invalid rating %d", int(rating)))
	}
	c := card.clone()

	switch c.Status {
	case New:
		// A new card enters Learning just before its first step.
		c.Status = Learning
		s.rateLearning(&c, rating, now, -1)
	case Learning, Relearning:
		step, _ := c.Step.Index()
		s.rateLearning(&c, rating, now, max(step, 0))
	case Review:
		s.rateReview(&c, rating, now)
	default:
		panic(fmt.Sprintf("srs: Rate called on card %s with invalid status %d", c.ID, int(c.Status)))
	}

	if c.Lapses >= s.cfg.LeechThreshold {
		c.IsLeech = true
	}
	c.LastReviewed = &now
	return c
}

// rateLearning handles Learning and Relearning. step is the current step
// index, -1 for a card that has not reached the first step yet.
func (s *Scheduler) rateLearning(c *Card, rating Rating, now time.Time, step int) {
	steps := s.cfg.LearningSteps

	if rating == Again {
		c.Step = AtStep(0)
		c.Due = now.Add(steps[0])
		c.IncorrectCount++
		return
	}

	c.CorrectCount++
	next := step + 1
	if next < len(steps) {
		c.Step = AtStep(next)
		c.Due = now.Add(steps[next])
		return
	}
	s.graduate(c, rating, now)
}

// graduate moves a card whose learning steps are exhausted into Review.
// Graduation intervals are not jittered.
func (s *Scheduler) graduate(c *Card, rating Rating, now time.Time) {
	c.Status = Review
	c.Repetitions = 0
	c.Step = NoStep
	c.Interval = InitialGraduationInterval(rating)
	c.Ease = s.cfg.InitialEase
	c.Due = now.Add(dayDuration(c.Interval))
}

// rateReview handles Review cards.
func (s *Scheduler) rateReview(c *Card, rating Rating, now time.Time) {
	if rating == Again {
		s.lapse(c, now)
		return
	}

	c.Repetitions++
	c.CorrectCount++
	c.Ease = EaseUpdate(c.Ease, rating, s.cfg.MinimumEase)
	c.Interval = NextInterval(c.Repetitions, c.Interval, c.Ease, rating)

	// Only the due date is jittered; Interval keeps the exact value so
	// growth stays reproducible from review to review.
	c.Due = now.Add(dayDuration(Jitter(c.Interval, s.rng)))
}

// lapse demotes a forgotten Review card to Relearning. Ease and interval
// growth are not recomputed.
func (s *Scheduler) lapse(c *Card, now time.Time) {
	c.Lapses++
	c.Status = Relearning
	c.Repetitions = 0
	c.Interval = 0
	c.Step = AtStep(0)
	c.Due = now.Add(s.cfg.LearningSteps[0])
	c.IncorrectCount++
}

// Review rates the card like Rate and also returns a log of the event.
func (s *Scheduler) Review(card Card, rating Rating, now time.Time) (Card, ReviewLog) {
	log := ReviewLog{
		CardID:     card.ID,
		Rating:     rating,
		Status:     card.Status,
		ReviewedAt: now,
	}
	return s.Rate(card, rating, now), log
}

// Preview returns the result of rating the card with each possible rating.
func (s *Scheduler) Preview(card Card, now time.Time) map[Rating]Card {
	result := make(map[Rating]Card, len(Ratings))
	for _, r := range Ratings {
		result[r] = s.Rate(card, r, now)
	}
	return result
}

// Reschedule replays review logs, in order, to rebuild a card's scheduling
// state. It returns ErrCardIDMismatch if a log belongs to another card and
// ErrInvalidRating if a log carries an invalid rating.
func (s *Scheduler) Reschedule(card Card, logs []ReviewLog) (Card, error) {
	c := card.clone()
	for _, log := range logs {
		if log.CardID != c.ID {
			return Card{}, fmt.Errorf("%w: card %s, log %s", ErrCardIDMismatch, c.ID, log.CardID)
		}
		if !log.Rating.IsValid() {
			return Card{}, fmt.Errorf("%w: %d in log at %s", ErrInvalidRating, int(log.Rating), log.ReviewedAt.Format(time.RFC3339))
		}
		c = s.Rate(c, log.Rating, log.ReviewedAt)
	}
	return c, nil
}

// MarshalJSON implements json.Marshaler. Only the configuration is encoded.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.cfg)
}

// UnmarshalJSON implements json.Unmarshaler. Fields missing from data keep
// their DefaultConfig values. The random source is kept if already set.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	var opts []Option
	if s.rng != nil {
		opts = append(opts, WithRandSource(s.rng))
	}
	rebuilt, err := NewScheduler(cfg, opts...)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}
