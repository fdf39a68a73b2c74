package wcif

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventID(t *testing.T) {
	for _, e := range AllEvents() {
		got, err := ParseEventID(string(e))
		require.NoError(t, err)
		require.Equal(t, e, got)
		require.NotEmpty(t, got.Name())
	}

	_, err := ParseEventID("333ft2")
	require.ErrorIs(t, err, ErrUnknownEvent)
}

func TestEventSets(t *testing.T) {
	assert.Len(t, AllEvents(), 21)
	official := OfficialEvents()
	assert.Len(t, official, 17)
	assert.NotContains(t, official, Event333MBO)
	assert.NotContains(t, official, EventMagic)

	shuffled := []EventID{Event333MBF, EventClock, Event222, Event333}
	slices.SortFunc(shuffled, EventID.Compare)
	assert.Equal(t, []EventID{Event333, Event222, EventClock, Event333MBF}, shuffled)
}

func TestEventProperties(t *testing.T) {
	assert.True(t, Event444BF.IsBlind())
	assert.False(t, Event333OH.IsBlind())

	assert.True(t, Event666.HasMean())
	assert.False(t, Event666.HasAverage())
	assert.True(t, Event333.HasAverage())
	assert.False(t, Event333MBF.HasAverageOrMean())

	assert.Equal(t, Puzzle333, Event333FT.PuzzleType())
	assert.Equal(t, Puzzle444, Event444BF.PuzzleType())
	assert.Equal(t, PuzzleSquare1, EventSq1.PuzzleType())
	assert.Equal(t, "3x3x3 Multi-Blind", Event333MBO.Name())
}

func TestEventFormatResult(t *testing.T) {
	r, err := NewTimeResult(870300004)
	require.NoError(t, err)
	assert.Equal(t, "16/20 50:00", Event333MBF.FormatResult(r))

	r, err = NewTimeResult(2933)
	require.NoError(t, err)
	assert.Equal(t, "29.33", Event333FM.FormatResult(r))
	assert.Equal(t, "29.33", Event333.FormatResult(r))

	r, err = NewTimeResult(27)
	require.NoError(t, err)
	assert.Equal(t, "27", Event333FM.FormatResult(r))
	assert.Equal(t, "0.27", Event333.FormatResult(r))
}

func TestEventParseResult(t *testing.T) {
	cases := []struct {
		event EventID
		in    string
		want  int64
	}{
		{Event333, "29.33", 2933},
		{Event333FM, "28", 28},
		{Event333FM, "29.33", 2933},
		{Event333MBF, "16/20 50:00", 870300004},
		{Event333MBO, "2/2 01:05", 970006500},
		{Event333FM, "DNF", -1},
		{Event333MBF, "", 0},
	}
	for _, tc := range cases {
		r, err := tc.event.ParseResult(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, r.Int(), tc.in)
		assert.Equal(t, tc.in, tc.event.FormatResult(r), tc.in)
	}

	_, err := Event333.ParseResult("28")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = Event333FM.ParseResult("29:33.00")
	require.Error(t, err)
}
