package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Rating is the learner's self-graded recall of a card.
type Rating int

const (
	Again Rating = iota + 1 // Failed to recall.
	Hard                    // Recalled with significant difficulty.
	Good                    // Recalled with some effort.
	Easy                    // Recalled effortlessly.
)

var (
	ratingTable = enumTable[Rating]{
		kind:  "Rating",
		names: []string{Again: "Again", Hard: "Hard", Good: "Good", Easy: "Easy"},
		err:   ErrInvalidRating,
	}
	// SM-2 quality on the 1..5 scale.
	ratingQuality = [...]int{Again: 1, Hard: 3, Good: 4, Easy: 5}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// Ratings lists the four ratings in ascending order.
var Ratings = [...]Rating{Again, Hard, Good, Easy}

// ParseRating parses a rating name case-insensitively ("again", "Good", ...).
// Answer buttons and CLI input go through here.
func ParseRating(s string) (Rating, error) {
	return ratingTable.parse(s)
}

// String returns the name of the rating ("Again", "Hard", "Good", "Easy").
// For invalid values it returns "Rating(n)".
func (r Rating) String() string {
	return ratingTable.name(r)
}

// IsValid reports whether r is a valid rating (Again through Easy).
func (r Rating) IsValid() bool {
	return ratingTable.valid(r)
}

// Quality maps r onto the SM-2 quality scale: Again=1, Hard=3, Good=4, Easy=5.
// It returns 0 for invalid ratings.
func (r Rating) Quality() int {
	if !r.IsValid() {
		return 0
	}
	return ratingQuality[r]
}

func (r Rating) MarshalText() ([]byte, error) {
	return ratingTable.marshalText(r)
}

func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ratingTable.parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes the rating as its name, e.g. "Good".
func (r Rating) MarshalJSON() ([]byte, error) {
	return ratingTable.marshalJSON(r)
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	v, err := ratingTable.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
