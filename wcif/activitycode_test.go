package wcif

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func code(e EventID) OfficialActivityCode {
	return NewEventActivityCode(e)
}

func TestParseOfficialActivityCode(t *testing.T) {
	cases := []struct {
		in   string
		want OfficialActivityCode
	}{
		{"333", code(Event333)},
		{"333-r1", code(Event333).WithRound(1)},
		{"333-r1-g2", code(Event333).WithRound(1).WithGroup(2)},
		{"333-r1-g2-a3", code(Event333).WithRound(1).WithGroup(2).WithAttempt(3)},
		{"333fm-r2-a1", code(Event333FM).WithRound(2).WithAttempt(1)},
		{"sq1-g4", code(EventSq1).WithGroup(4)},
		{"333mbf-a2", code(Event333MBF).WithAttempt(2)},
	}
	for _, tc := range cases {
		got, err := ParseActivityCode(tc.in)
		require.NoError(t, err, tc.in)
		require.True(t, got.IsOfficial(), tc.in)
		require.Equal(t, tc.want, got.Official, tc.in)
		require.Equal(t, tc.in, got.String())
	}
}

func TestParseOfficialActivityCodeErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrMissingEventID},
		{"-r1", ErrMissingEventID},
		{"999-r1", ErrUnknownEvent},
		{"333-rx", ErrDigitParse},
		{"333-r1-g", ErrDigitParse},
		{"333-a256", ErrDigitParse},
		{"333-x1", ErrInvalidFormat},
		{"333-g1-r2", ErrInvalidFormat},
		{"333-r1-g2-a3-a4", ErrInvalidFormat},
	}
	for _, tc := range cases {
		_, err := ParseActivityCode(tc.in)
		require.ErrorIs(t, err, tc.want, tc.in)
	}
}

func TestParseUnofficialActivityCode(t *testing.T) {
	cases := []struct {
		in   string
		want UnofficialActivityCode
	}{
		{"other-registration", RegistrationDesk},
		{"other-checkin", Checkin},
		{"other-tutorial", Tutorial},
		{"other-multi", MultiSubmission},
		{"other-breakfast", Breakfast},
		{"other-lunch", Lunch},
		{"other-dinner", Dinner},
		{"other-awards", Awards},
		{"other-misc", Misc{}},
		{"other-misc-foo", MiscLabel("foo")},
		{"other-misc-", MiscLabel("")},
		{"other-misc-group-photo", MiscLabel("group-photo")},
		{"other-unofficial-fto-r1-g2", UnofficialEvent{Code: NewEventActivityCode("fto").WithRound(1).WithGroup(2)}},
		{"other-unofficial-333-r1", UnofficialEvent{Code: NewEventActivityCode("333").WithRound(1)}},
	}
	for _, tc := range cases {
		got, err := ParseActivityCode(tc.in)
		require.NoError(t, err, tc.in)
		require.False(t, got.IsOfficial(), tc.in)
		require.False(t, got.Deprecated(), tc.in)
		require.Equal(t, tc.want, got.Unofficial, tc.in)
		require.Equal(t, tc.in, got.String())
	}
}

func TestUnofficialCatchAll(t *testing.T) {
	got, err := ParseActivityCode("other-photo-session")
	require.NoError(t, err)
	require.Equal(t, UnofficialOther("photo-session"), got.Unofficial)
	require.True(t, got.Deprecated())
	require.Equal(t, "other-photo-session", got.String())

	_, err = ParseActivityCode("other-unofficial-")
	require.ErrorIs(t, err, ErrMissingEventID)

	_, err = ParseActivityCode("other-unofficial-fto-x")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMiscLabel(t *testing.T) {
	_, ok := Misc{}.Label()
	assert.False(t, ok)

	label, ok := MiscLabel("").Label()
	assert.True(t, ok)
	assert.Empty(t, label)
	assert.NotEqual(t, Misc{}, MiscLabel(""))

	for _, m := range []Misc{{}, MiscLabel(""), MiscLabel("group-photo")} {
		got, err := ParseActivityCode(UnofficialCode(m).String())
		require.NoError(t, err, m)
		require.Equal(t, m, got.Unofficial, m)
	}
}

func TestEventActivityCodeCompare(t *testing.T) {
	r1 := code(Event333).WithRound(1)
	cases := []struct {
		name string
		a, b OfficialActivityCode
		want int
		ok   bool
	}{
		{"equal", r1, code(Event333).WithRound(1), 0, true},
		{"round is more general than its group", r1, r1.WithGroup(2), -1, true},
		{"group refines round", r1.WithGroup(2), r1, 1, true},
		{"event contains attempt", code(Event333), r1.WithGroup(1).WithAttempt(1), -1, true},
		{"different rounds", r1, code(Event333).WithRound(2), 0, false},
		{"different groups", r1.WithGroup(1), r1.WithGroup(2), 0, false},
		{"different events", r1, code(Event222).WithRound(1), 0, false},
		{"different bare events", code(Event333), code(Event444), 0, false},
		{"round against groupless group", r1, code(Event333).WithGroup(2), 0, false},
		{"attempt contradicts group", r1.WithAttempt(1), r1.WithGroup(1), 0, false},
		{"group then attempt agree", r1, r1.WithGroup(1).WithAttempt(2), -1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Compare(tc.b)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRoundID(t *testing.T) {
	id, err := ParseRoundID("333-r1")
	require.NoError(t, err)
	require.Equal(t, RoundID{Event: Event333, Round: 1}, id)
	require.Equal(t, "333-r1", id.String())

	assert.True(t, id.Equal(code(Event333).WithRound(1)))
	assert.False(t, id.Equal(code(Event333).WithRound(1).WithGroup(1)))

	c, ok := id.Compare(code(Event333).WithRound(1).WithGroup(3))
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	_, ok = id.Compare(code(Event333).WithRound(2))
	assert.False(t, ok)

	narrowed, ok := RoundOf(code(Event333).WithRound(1).WithGroup(3))
	require.True(t, ok)
	require.Equal(t, id, narrowed)
	_, ok = RoundOf(code(Event333))
	require.False(t, ok)

	errCases := []struct {
		in   string
		want error
	}{
		{"333", ErrInvalidFormat},
		{"333-g1", ErrMissingRoundPrefix},
		{"333-r", ErrDigitParse},
		{"333-r1-g2", ErrDigitParse},
		{"abc-r1", ErrUnknownEvent},
	}
	for _, tc := range errCases {
		_, err := ParseRoundID(tc.in)
		require.ErrorIs(t, err, tc.want, tc.in)
	}
}

func TestActivityCodeCompare(t *testing.T) {
	parse := func(s string) ActivityCode {
		c, err := ParseActivityCode(s)
		require.NoError(t, err)
		return c
	}

	c, ok := parse("333-r1").Compare(parse("333-r1-g1"))
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = parse("other-unofficial-fto-r1-g1").Compare(parse("other-unofficial-fto-r1"))
	assert.True(t, ok)
	assert.Equal(t, 1, c)

	_, ok = parse("other-lunch").Compare(parse("other-dinner"))
	assert.False(t, ok)

	c, ok = parse("other-lunch").Compare(parse("other-lunch"))
	assert.True(t, ok)
	assert.Zero(t, c)

	_, ok = parse("333-r1").Compare(parse("other-unofficial-333-r1"))
	assert.False(t, ok)
}

func TestActivityCodeJSON(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "name": "Lunch", "activityCode": "other-lunch", "childActivities": [], "extensions": []}`), &a))
	require.Equal(t, UnofficialCode(Lunch), a.ActivityCode)

	b, err := json.Marshal(struct {
		Code ActivityCode `json:"code"`
		ID   RoundID      `json:"id"`
	}{OfficialCode(code(Event333).WithRound(1).WithGroup(2)), RoundID{Event: Event444, Round: 3}})
	require.NoError(t, err)
	require.JSONEq(t, `{"code": "333-r1-g2", "id": "444-r3"}`, string(b))

	err = json.Unmarshal([]byte(`{"id": 3, "activityCode": "333-q1"}`), &a)
	require.ErrorIs(t, err, ErrInvalidFormat)
}
