package wcif

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const FormatVersion = "1.0"

type (
	PersonID          = uint32
	VenueID           = uint32
	RoomID            = uint32
	ActivityID        = uint32
	ScrambleSetID     = uint32
	WCAUserID         = uint64
	WCARegistrationID = uint32
)

type Competition struct {
	FormatVersion    string           `json:"formatVersion" yaml:"formatVersion"`
	ID               string           `json:"id" yaml:"id"`
	Name             string           `json:"name" yaml:"name"`
	ShortName        string           `json:"shortName" yaml:"shortName"`
	Series           *Series          `json:"series" yaml:"series"`
	Persons          []Person         `json:"persons" yaml:"persons"`
	Events           []Event          `json:"events" yaml:"events"`
	Schedule         Schedule         `json:"schedule" yaml:"schedule"`
	RegistrationInfo RegistrationInfo `json:"registrationInfo" yaml:"registrationInfo"`
	CompetitorLimit  *uint32          `json:"competitorLimit,omitempty" yaml:"competitorLimit,omitempty"`
	Extensions       []Extension      `json:"extensions" yaml:"extensions"`
}

type Series struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	ShortName       string   `json:"shortName" yaml:"shortName"`
	CompetitionsIDs []string `json:"competitionsIds" yaml:"competitionsIds"`
}

// Person carries the private fields (birthdate, email) only in documents
// fetched with organizer access; Public strips them.
type Person struct {
	RegistrantID  *PersonID      `json:"registrantId" yaml:"registrantId"`
	Name          string         `json:"name" yaml:"name"`
	WCAUserID     WCAUserID      `json:"wcaUserId" yaml:"wcaUserId"`
	WCAID         *WCAID         `json:"wcaId" yaml:"wcaId"`
	CountryISO2   string         `json:"countryIso2" yaml:"countryIso2"`
	Gender        Gender         `json:"gender" yaml:"gender"`
	Birthdate     *Date          `json:"birthdate,omitempty" yaml:"birthdate,omitempty"`
	Email         string         `json:"email,omitempty" yaml:"email,omitempty"`
	Avatar        *Avatar        `json:"avatar" yaml:"avatar"`
	Roles         []Role         `json:"roles" yaml:"roles"`
	Registration  *Registration  `json:"registration" yaml:"registration"`
	Assignments   []Assignment   `json:"assignments" yaml:"assignments"`
	PersonalBests []PersonalBest `json:"personalBests" yaml:"personalBests"`
	Extensions    []Extension    `json:"extensions" yaml:"extensions"`
}

type Gender string

const (
	Male        Gender = "m"
	Female      Gender = "f"
	OtherGender Gender = "o"
)

type Role string

const (
	Delegate        Role = "delegate"
	TraineeDelegate Role = "trainee-delegate"
	Organizer       Role = "organizer"
)

func (r Role) IsDelegate() bool {
	return r == Delegate || r == TraineeDelegate
}

type Registration struct {
	WCARegistrationID   WCARegistrationID  `json:"wcaRegistrationId" yaml:"wcaRegistrationId"`
	EventIDs            []EventID          `json:"eventIds" yaml:"eventIds"`
	Status              RegistrationStatus `json:"status" yaml:"status"`
	Guests              *uint32            `json:"guests,omitempty" yaml:"guests,omitempty"`
	Comments            string             `json:"comments,omitempty" yaml:"comments,omitempty"`
	AdministrativeNotes string             `json:"administrativeNotes,omitempty" yaml:"administrativeNotes,omitempty"`
	IsCompeting         bool               `json:"isCompeting" yaml:"isCompeting"`
}

type RegistrationStatus string

const (
	Accepted RegistrationStatus = "accepted"
	Pending  RegistrationStatus = "pending"
	Deleted  RegistrationStatus = "deleted"
)

type RegistrationInfo struct {
	OpenTime              time.Time `json:"openTime" yaml:"openTime"`
	CloseTime             time.Time `json:"closeTime" yaml:"closeTime"`
	BaseEntryFee          uint64    `json:"baseEntryFee" yaml:"baseEntryFee"`
	CurrencyCode          string    `json:"currencyCode" yaml:"currencyCode"`
	OnTheSpotRegistration bool      `json:"onTheSpotRegistration" yaml:"onTheSpotRegistration"`
	UseWCARegistration    bool      `json:"useWcaRegistration" yaml:"useWcaRegistration"`
}

type Avatar struct {
	URL      string `json:"url" yaml:"url"`
	ThumbURL string `json:"thumbUrl" yaml:"thumbUrl"`
}

type Assignment struct {
	ActivityID     ActivityID     `json:"activityId" yaml:"activityId"`
	AssignmentCode AssignmentCode `json:"assignmentCode" yaml:"assignmentCode"`
	StationNumber  *uint32        `json:"stationNumber,omitempty" yaml:"stationNumber,omitempty"`
}

type PersonalBest struct {
	EventID            EventID    `json:"eventId" yaml:"eventId"`
	Best               TimeResult `json:"best" yaml:"best"`
	Type               ResultType `json:"type" yaml:"type"`
	WorldRanking       uint64     `json:"worldRanking" yaml:"worldRanking"`
	ContinentalRanking uint64     `json:"continentalRanking" yaml:"continentalRanking"`
	NationalRanking    uint64     `json:"nationalRanking" yaml:"nationalRanking"`
}

type ResultType string

const (
	Single  ResultType = "single"
	Average ResultType = "average"
)

// Decode reads a WCIF document and rejects unsupported format versions.
func Decode(r io.Reader) (*Competition, error) {
	var c Competition
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding competition: %w", err)
	}
	if c.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("decoding competition: %w %q", ErrFormatVersion, c.FormatVersion)
	}
	return &c, nil
}

func (c *Competition) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Public returns a copy of c without the fields only visible to organizers.
func (c *Competition) Public() *Competition {
	out := *c
	out.Persons = make([]Person, len(c.Persons))
	for i, p := range c.Persons {
		p.Birthdate = nil
		p.Email = ""
		if p.Registration != nil {
			reg := *p.Registration
			reg.Guests = nil
			reg.Comments = ""
			reg.AdministrativeNotes = ""
			p.Registration = &reg
		}
		out.Persons[i] = p
	}
	return &out
}

// FindPerson looks a person up by registrant id.
func (c *Competition) FindPerson(id PersonID) (*Person, bool) {
	for i := range c.Persons {
		if p := c.Persons[i].RegistrantID; p != nil && *p == id {
			return &c.Persons[i], true
		}
	}
	return nil, false
}

// FindRound looks a round up by id.
func (c *Competition) FindRound(id RoundID) (*Round, bool) {
	for i := range c.Events {
		if c.Events[i].ID != id.Event {
			continue
		}
		for j := range c.Events[i].Rounds {
			if c.Events[i].Rounds[j].ID == id {
				return &c.Events[i].Rounds[j], true
			}
		}
	}
	return nil, false
}
