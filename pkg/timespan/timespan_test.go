package timespan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/henderiw/timespan/pkg/span"
)

func TestParse(t *testing.T) {
	morning, err := Parse("09:00:00 - 12:00:00")
	assert.NoError(t, err)
	assert.Equal(t, 3*time.Hour, morning.Duration())
	assert.True(t, morning.Contains(Clock(10, 30, 0)))
	assert.False(t, morning.Contains(Clock(12, 30, 0)))
	assert.Equal(t, "09:00:00 - 12:00:00", morning.String())
}

func TestParseFormat(t *testing.T) {
	evening, err := ParseFormat(
		"05.30 PM - 07.15 PM",
		"{start} - {end}",
		"%I.%M %p", "%I.%M %p",
	)
	assert.NoError(t, err)
	assert.Equal(t, Clock(17, 30, 0), evening.Start())
	assert.Equal(t, Clock(19, 15, 0), evening.End())
}

func TestFormat(t *testing.T) {
	morning, err := New(Clock(9, 0, 0), Clock(12, 0, 0))
	assert.NoError(t, err)

	out, err := Format(morning, "open {start}, closed {end}", "%H:%M", "%H:%M").Render()
	assert.NoError(t, err)
	assert.Equal(t, "open 09:00, closed 12:00", out)

	// a time of day has no calendar fields to render
	_, err = Format(morning, "{start}", "%Y-%m-%d", "%H:%M").Render()
	assert.Error(t, err)
}

func TestSplitOff(t *testing.T) {
	opening, err := New(Clock(9, 0, 0), Clock(17, 0, 0))
	assert.NoError(t, err)

	morning, afternoon, err := opening.SplitOff(Clock(12, 0, 0))
	assert.NoError(t, err)
	assert.Equal(t, "09:00:00 - 12:00:00", morning.String())
	assert.Equal(t, "12:00:00 - 17:00:00", afternoon.String())

	_, _, err = opening.SplitOff(Clock(8, 0, 0))
	assert.ErrorIs(t, err, span.ErrOutOfRange)
}

func TestJSONRoundTrip(t *testing.T) {
	type shift struct {
		Span Span `json:"span"`
	}

	morning, err := Parse("09:00:00 - 12:00:00")
	assert.NoError(t, err)

	data, err := json.Marshal(shift{Span: morning})
	assert.NoError(t, err)
	assert.Equal(t, `{"span":"09:00:00 - 12:00:00"}`, string(data))

	var back shift
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, morning.Equal(back.Span))
}
