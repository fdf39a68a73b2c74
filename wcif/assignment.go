package wcif

import "strings"

const (
	assignmentCodeType = "assignment code"
	competitorCode     = "competitor"
	staffPrefix        = "staff-"
)

// StaffAssignment is a staffing role. Roles outside the known set are kept
// verbatim.
type StaffAssignment string

const (
	Judge     StaffAssignment = "judge"
	Scrambler StaffAssignment = "scrambler"
	Runner    StaffAssignment = "runner"
	DataEntry StaffAssignment = "dataentry"
	Announcer StaffAssignment = "announcer"
)

// ParseStaffAssignment never fails.
func ParseStaffAssignment(s string) StaffAssignment {
	return StaffAssignment(s)
}

func (s StaffAssignment) IsKnown() bool {
	switch s {
	case Judge, Scrambler, Runner, DataEntry, Announcer:
		return true
	}
	return false
}

// IsCompetitorStaffingRole reports whether the role is usually filled by
// competitors between their own attempts.
func (s StaffAssignment) IsCompetitorStaffingRole() bool {
	switch s {
	case Judge, Scrambler, Runner:
		return true
	}
	return false
}

func (s StaffAssignment) String() string {
	return string(s)
}

// AssignmentCode is either the competitor assignment or a staff role. The
// zero value is Competitor.
type AssignmentCode struct {
	staff StaffAssignment
}

var Competitor = AssignmentCode{}

// Staff returns the assignment for role. The empty role has no staff form,
// so Staff("") is Competitor; ParseAssignmentCode rejects "staff-".
func Staff(role StaffAssignment) AssignmentCode {
	return AssignmentCode{staff: role}
}

func ParseAssignmentCode(s string) (AssignmentCode, error) {
	if s == competitorCode {
		return Competitor, nil
	}
	if role, ok := strings.CutPrefix(s, staffPrefix); ok && role != "" {
		return Staff(ParseStaffAssignment(role)), nil
	}
	return AssignmentCode{}, parseError(assignmentCodeType, s, ErrInvalidAssignment)
}

func (a AssignmentCode) IsCompetitor() bool {
	return a.staff == ""
}

// Staff returns the staff role. ok is false for the competitor assignment.
func (a AssignmentCode) Staff() (role StaffAssignment, ok bool) {
	return a.staff, a.staff != ""
}

func (a AssignmentCode) String() string {
	if a.IsCompetitor() {
		return competitorCode
	}
	return staffPrefix + a.staff.String()
}

func (a AssignmentCode) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AssignmentCode) UnmarshalText(b []byte) error {
	code, err := ParseAssignmentCode(string(b))
	if err != nil {
		return err
	}
	*a = code
	return nil
}
