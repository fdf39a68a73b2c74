package wcif

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiBlindLayouts(t *testing.T) {
	cases := []struct {
		name string
		raw  uint32
		want MultiBlindResult
	}{
		{"current", 870300004, MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000}},
		{"current single cube", 980005900, MultiBlindResult{Attempted: 1, Solved: 1, Seconds: 59}},
		{"legacy", 1832003000, MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000, OldStyle: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CentiSeconds(tc.raw).MultiBlind()
			require.Equal(t, tc.want, got)
			require.Equal(t, int64(tc.raw), got.Int())
		})
	}
}

func TestMultiBlindKeepsLayoutOnEncode(t *testing.T) {
	m := MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000}
	assert.Equal(t, int64(870300004), m.Int())

	m.OldStyle = true
	assert.Equal(t, int64(1832003000), m.Int())
}

func TestMultiBlindDerivedFields(t *testing.T) {
	m := MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000}
	assert.Equal(t, uint32(4), m.Failed())
	assert.Equal(t, 12, m.Points())

	bad := MultiBlindResult{Attempted: 5, Solved: 2, Seconds: 600}
	assert.Equal(t, -1, bad.Points())

	// legacy layout read as 99 solved out of 0 attempted
	malformed := CentiSeconds(1_000_000_000).MultiBlind()
	assert.Equal(t, uint32(99), malformed.Solved)
	assert.Zero(t, malformed.Attempted)
	assert.Zero(t, malformed.Failed())
	assert.Equal(t, 99, malformed.Points())
	assert.Positive(t, Success(malformed).Compare(Success(m)))
}

func TestMultiBlindCompare(t *testing.T) {
	best := Success(MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000})
	slower := Success(MultiBlindResult{Attempted: 12, Solved: 12, Seconds: 3500})
	fewerPoints := Success(MultiBlindResult{Attempted: 11, Solved: 11, Seconds: 1200})

	assert.Positive(t, best.Compare(fewerPoints))
	assert.Positive(t, best.Compare(slower))
	assert.Negative(t, slower.Compare(best))

	clean := Success(MultiBlindResult{Attempted: 12, Solved: 12, Seconds: 3000})
	messy := Success(MultiBlindResult{Attempted: 14, Solved: 13, Seconds: 3000})
	assert.Positive(t, clean.Compare(messy))

	assert.Positive(t, fewerPoints.Compare(DNF[MultiBlindResult]()))
}

func TestMultiBlindDisplay(t *testing.T) {
	assert.Equal(t, "16/20 50:00", Success(MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000}).String())
	assert.Equal(t, "2/2 01:05", Success(MultiBlindResult{Attempted: 2, Solved: 2, Seconds: 65}).String())
	assert.Equal(t, "30/35 1:02:05", Success(MultiBlindResult{Attempted: 35, Solved: 30, Seconds: 3725}).String())
	assert.Equal(t, "DNS", DNS[MultiBlindResult]().String())
}

func TestMultiBlindJSON(t *testing.T) {
	var r MultiBlindAttemptResult
	require.NoError(t, json.Unmarshal([]byte(`1832003000`), &r))
	v, ok := r.Value()
	require.True(t, ok)
	require.True(t, v.OldStyle)
	require.Equal(t, uint32(16), v.Solved)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, `1832003000`, string(b))

	timed, err := NewTimeResult(870300004)
	require.NoError(t, err)
	require.Equal(t, Success(MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000}), AsMultiBlind(timed))
	require.Equal(t, DNF[MultiBlindResult](), AsMultiBlind(DNF[CentiSeconds]()))
}

func TestParseMultiBlindDisplay(t *testing.T) {
	cases := []struct {
		in   string
		want MultiBlindAttemptResult
	}{
		{"16/20 50:00", Success(MultiBlindResult{Attempted: 20, Solved: 16, Seconds: 3000})},
		{"2/2 01:05", Success(MultiBlindResult{Attempted: 2, Solved: 2, Seconds: 65})},
		{"30/35 1:02:05", Success(MultiBlindResult{Attempted: 35, Solved: 30, Seconds: 3725})},
		{"DNF", DNF[MultiBlindResult]()},
		{"", Skipped[MultiBlindResult]()},
	}
	for _, tc := range cases {
		got, err := ParseMultiBlindDisplay(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
		if v, ok := got.Value(); ok {
			require.Equal(t, tc.in, got.String())
			require.False(t, v.OldStyle)
		}
	}

	got, err := ParseMultiBlindDisplay("16/20 50:00")
	require.NoError(t, err)
	assert.Equal(t, int64(870300004), got.Int())

	for _, in := range []string{"16/20", "16-20 50:00", "16/20 50:60", "16/20 1:2:3:4"} {
		_, err := ParseMultiBlindDisplay(in)
		require.ErrorIs(t, err, ErrInvalidFormat, in)
	}
	for _, in := range []string{"21/20 50:00", "2/5 10:00", "16/20 30:00:00"} {
		_, err := ParseMultiBlindDisplay(in)
		require.ErrorIs(t, err, ErrInvalidResult, in)
	}
}
