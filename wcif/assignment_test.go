package wcif

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignmentCode(t *testing.T) {
	cases := []struct {
		in   string
		want AssignmentCode
	}{
		{"competitor", Competitor},
		{"staff-judge", Staff(Judge)},
		{"staff-scrambler", Staff(Scrambler)},
		{"staff-runner", Staff(Runner)},
		{"staff-dataentry", Staff(DataEntry)},
		{"staff-announcer", Staff(Announcer)},
		{"staff-delegate", Staff("delegate")},
		{"staff-stage-lead", Staff("stage-lead")},
	}
	for _, tc := range cases {
		got, err := ParseAssignmentCode(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
		require.Equal(t, tc.in, got.String())
	}

	for _, in := range []string{"", "staff-", "judge", "Competitor", "staff"} {
		_, err := ParseAssignmentCode(in)
		require.ErrorIs(t, err, ErrInvalidAssignment, in)
	}
}

func TestStaffAssignment(t *testing.T) {
	assert.True(t, Judge.IsKnown())
	assert.False(t, ParseStaffAssignment("delegate").IsKnown())

	assert.True(t, Runner.IsCompetitorStaffingRole())
	assert.False(t, Announcer.IsCompetitorStaffingRole())

	role, ok := Staff(DataEntry).Staff()
	assert.True(t, ok)
	assert.Equal(t, DataEntry, role)

	_, ok = Competitor.Staff()
	assert.False(t, ok)
	assert.True(t, Competitor.IsCompetitor())

	assert.Equal(t, Competitor, Staff(""))
	_, err := ParseAssignmentCode(Staff("").String())
	require.NoError(t, err)
	_, err = ParseAssignmentCode("staff-")
	require.ErrorIs(t, err, ErrInvalidAssignment)
}

func TestAssignmentJSON(t *testing.T) {
	var a Assignment
	require.NoError(t, json.Unmarshal([]byte(`{"activityId": 12, "assignmentCode": "staff-judge", "stationNumber": 4}`), &a))
	require.Equal(t, Staff(Judge), a.AssignmentCode)
	require.NotNil(t, a.StationNumber)
	require.Equal(t, uint32(4), *a.StationNumber)

	b, err := json.Marshal(Assignment{ActivityID: 1, AssignmentCode: Competitor})
	require.NoError(t, err)
	require.JSONEq(t, `{"activityId": 1, "assignmentCode": "competitor"}`, string(b))

	require.ErrorIs(t, json.Unmarshal([]byte(`{"activityId": 1, "assignmentCode": "volunteer"}`), &a), ErrInvalidAssignment)
}
