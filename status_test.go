package srs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusNames(t *testing.T) {
	tests := []struct {
		s     Status
		want  string
		valid bool
	}{
		{New, "New", true},
		{Learning, "Learning", true},
		{Review, "Review", true},
		{Relearning, "Relearning", true},
		{Status(0), "Status(0)", false},
		{Status(5), "Status(5)", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
		assert.Equal(t, tt.valid, tt.s.IsValid(), "%s.IsValid()", tt.want)
	}
}

func TestStatusStepping(t *testing.T) {
	assert.False(t, New.stepping())
	assert.True(t, Learning.stepping())
	assert.False(t, Review.stepping())
	assert.True(t, Relearning.stepping())
}

func TestStatusJSON(t *testing.T) {
	for _, s := range []Status{New, Learning, Review, Relearning} {
		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `"`+s.String()+`"`, string(data))

		var got Status
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, s, got)
	}
}

func TestStatusJSONInvalid(t *testing.T) {
	_, err := json.Marshal(Status(0))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	for _, input := range []string{`"Mastered"`, `""`, `2`, `null`} {
		var s Status
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &s), ErrInvalidStatus, "input %s", input)
	}
}

func TestStatusText(t *testing.T) {
	var s Status
	require.NoError(t, s.UnmarshalText([]byte("Relearning")))
	assert.Equal(t, Relearning, s)

	text, err := Review.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Review", string(text))
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"new", New},
		{"LEARNING", Learning},
		{" Review ", Review},
		{"relearning", Relearning},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		require.NoError(t, err, "ParseStatus(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseStatusInvalid(t *testing.T) {
	for _, input := range []string{"", "Mastered", "3"} {
		_, err := ParseStatus(input)
		assert.ErrorIs(t, err, ErrInvalidStatus, "ParseStatus(%q)", input)
	}
}

func TestStatusErrorContext(t *testing.T) {
	_, err := Status(7).MarshalText()
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Contains(t, err.Error(), "cannot encode Status(7)")

	_, err = ParseStatus("Mastered")
	assert.Contains(t, err.Error(), "New, Learning, Review, Relearning")
}
