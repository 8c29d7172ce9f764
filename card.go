package srs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultInitialEase is the ease factor given to new cards and to cards
// graduating under DefaultConfig.
const DefaultInitialEase = 2.5

// Card is a learner's knowledge of one vocabulary item.
//
// Term, Translation and Tags belong to the caller. The remaining fields are
// scheduling state, written only by the Scheduler.
type Card struct {
	ID          uuid.UUID `json:"id"`
	Term        string    `json:"term"`
	Translation string    `json:"translation"`
	Tags        []string  `json:"tags,omitempty"`

	Status         Status       `json:"status"`
	Repetitions    int          `json:"repetitions"`
	Lapses         int          `json:"lapses"`
	Ease           float64      `json:"ease"`
	Interval       int          `json:"interval"` // days.
	Step           LearningStep `json:"step"`     // set only while Learning/Relearning.
	Due            time.Time    `json:"due"`
	LastReviewed   *time.Time   `json:"last_reviewed"` // nil before first rating.
	CorrectCount   int          `json:"correct_count"`
	IncorrectCount int          `json:"incorrect_count"`
	IsLeech        bool         `json:"is_leech"`
}

// NewCard creates a New card with a fresh identifier.
// Due is left at the zero time: New cards are always eligible and are
// limited only by the daily new-card quota.
func NewCard(term, translation string, tags ...string) Card {
	return Card{
		ID:          uuid.New(),
		Term:        term,
		Translation: translation,
		Tags:        tags,
		Status:      New,
		Ease:        DefaultInitialEase,
	}
}

// Validate checks the card's scheduling state before it reaches the
// Scheduler. It returns an error wrapping ErrInvalidStatus or ErrInvalidCard.
func (c Card) Validate() error {
	if !c.Status.IsValid() {
		return fmt.Errorf("%w: card %s has status %d", ErrInvalidStatus, c.ID, int(c.Status))
	}
	if c.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalidCard)
	}
	if c.Status.stepping() && !c.Step.IsSet() {
		return fmt.Errorf("%w: card %s is %s without a learning step", ErrInvalidCard, c.ID, c.Status)
	}
	if idx, ok := c.Step.Index(); ok && idx < 0 {
		return fmt.Errorf("%w: card %s has negative learning step %d", ErrInvalidCard, c.ID, idx)
	}
	if !c.Status.stepping() && c.Step.IsSet() {
		return fmt.Errorf("%w: card %s is %s with learning step %s", ErrInvalidCard, c.ID, c.Status, c.Step)
	}
	if c.Status == New && c.Repetitions != 0 {
		return fmt.Errorf("%w: new card %s has %d repetitions", ErrInvalidCard, c.ID, c.Repetitions)
	}
	if c.Status == Review && c.Interval < 1 {
		return fmt.Errorf("%w: card %s is in review with interval %d", ErrInvalidCard, c.ID, c.Interval)
	}
	if c.Lapses < 0 || c.Repetitions < 0 {
		return fmt.Errorf("%w: card %s has negative counters", ErrInvalidCard, c.ID)
	}
	return nil
}

// clone returns a copy of the card that shares no memory with c.
func (c Card) clone() Card {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.LastReviewed != nil {
		v := *c.LastReviewed
		out.LastReviewed = &v
	}
	return out
}

// LearningStep is a card's position in the learning steps. It has two
// variants: AtStep(i), and the zero value NoStep for cards that are not
// stepping (New and Review).
type LearningStep struct {
	index int
	set   bool
}

// NoStep is the LearningStep of a card outside Learning and Relearning.
var NoStep = LearningStep{}

// AtStep returns the LearningStep positioned at index i.
func AtStep(i int) LearningStep {
	return LearningStep{index: i, set: true}
}

// Index returns the step index and whether the step is set.
func (s LearningStep) Index() (int, bool) {
	return s.index, s.set
}

// IsSet reports whether s is an AtStep variant.
func (s LearningStep) IsSet() bool {
	return s.set
}

// String returns the index, or "none" for NoStep.
func (s LearningStep) String() string {
	if !s.set {
		return "none"
	}
	return strconv.Itoa(s.index)
}

// MarshalJSON encodes AtStep(i) as i and NoStep as null.
func (s LearningStep) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	return json.Marshal(s.index)
}

// UnmarshalJSON decodes an integer index or null.
func (s *LearningStep) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = NoStep
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("%w: learning step %s", ErrInvalidCard, data)
	}
	if i < 0 {
		return fmt.Errorf("%w: negative learning step %d", ErrInvalidCard, i)
	}
	*s = AtStep(i)
	return nil
}
