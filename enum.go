package srs

import (
	"encoding/json"
	"fmt"
	"strings"
)

// enumTable names the values of a small enum that starts at 1. It backs
// the String, text and JSON forms of Status and Rating.
type enumTable[T ~int] struct {
	kind  string
	names []string // indexed by value; names[0] is unused.
	err   error
}

func (e enumTable[T]) valid(v T) bool {
	return v >= 1 && int(v) < len(e.names)
}

func (e enumTable[T]) name(v T) string {
	if e.valid(v) {
		return e.names[v]
	}
	return fmt.Sprintf("%s(%d)", e.kind, int(v))
}

// parse matches s against the names ignoring case and surrounding space.
func (e enumTable[T]) parse(s string) (T, error) {
	trimmed := strings.TrimSpace(s)
	for i := 1; i < len(e.names); i++ {
		if strings.EqualFold(e.names[i], trimmed) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q, want one of %s",
		e.err, strings.ToLower(e.kind), s, strings.Join(e.names[1:], ", "))
}

func (e enumTable[T]) marshalText(v T) ([]byte, error) {
	if !e.valid(v) {
		return nil, fmt.Errorf("%w: cannot encode %s", e.err, e.name(v))
	}
	return []byte(e.names[v]), nil
}

func (e enumTable[T]) marshalJSON(v T) ([]byte, error) {
	text, err := e.marshalText(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (e enumTable[T]) unmarshalJSON(data []byte) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, fmt.Errorf("%w: %s must be a JSON string, got %s", e.err, strings.ToLower(e.kind), data)
	}
	return e.parse(s)
}
