package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Status is the scheduling phase of a card. It selects the branch of the
// rating state machine.
type Status int

const (
	New        Status = iota + 1 // Never rated; gated by the daily new-card quota.
	Learning                     // Walking the learning steps for the first time.
	Review                       // Graduated; spaced by whole-day intervals.
	Relearning                   // Lapsed out of Review, walking the steps again.
)

var statusTable = enumTable[Status]{
	kind:  "Status",
	names: []string{New: "New", Learning: "Learning", Review: "Review", Relearning: "Relearning"},
	err:   ErrInvalidStatus,
}

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Status(0)
	_ json.Marshaler           = Status(0)
	_ json.Unmarshaler         = (*Status)(nil)
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// ParseStatus parses a status name case-insensitively ("review", "New", ...).
func ParseStatus(s string) (Status, error) {
	return statusTable.parse(s)
}

// IsValid reports whether s is one of the four statuses.
func (s Status) IsValid() bool {
	return statusTable.valid(s)
}

// stepping reports whether cards in this status walk the learning steps.
func (s Status) stepping() bool {
	return s == Learning || s == Relearning
}

// String returns the name of the status. For invalid values it returns "Status(n)".
func (s Status) String() string {
	return statusTable.name(s)
}

func (s Status) MarshalText() ([]byte, error) {
	return statusTable.marshalText(s)
}

// UnmarshalText accepts any casing of a status name.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := statusTable.parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON encodes the status as its name, e.g. "Relearning".
func (s Status) MarshalJSON() ([]byte, error) {
	return statusTable.marshalJSON(s)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	v, err := statusTable.unmarshalJSON(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
