package wcif

import (
	"time"
)

type Schedule struct {
	StartDate    Date    `json:"startDate" yaml:"startDate"`
	NumberOfDays uint8   `json:"numberOfDays" yaml:"numberOfDays"`
	Venues       []Venue `json:"venues" yaml:"venues"`
}

type Venue struct {
	ID                    VenueID     `json:"id" yaml:"id"`
	Name                  string      `json:"name" yaml:"name"`
	LatitudeMicrodegrees  int32       `json:"latitudeMicrodegrees" yaml:"latitudeMicrodegrees"`
	LongitudeMicrodegrees int32       `json:"longitudeMicrodegrees" yaml:"longitudeMicrodegrees"`
	CountryISO2           string      `json:"countryIso2" yaml:"countryIso2"`
	Timezone              string      `json:"timezone" yaml:"timezone"`
	Rooms                 []Room      `json:"rooms" yaml:"rooms"`
	Extensions            []Extension `json:"extensions" yaml:"extensions"`
}

type Room struct {
	ID         RoomID      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Color      string      `json:"color" yaml:"color"`
	Activities []Activity  `json:"activities" yaml:"activities"`
	Extensions []Extension `json:"extensions" yaml:"extensions"`
}

type Activity struct {
	ID              ActivityID     `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	ActivityCode    ActivityCode   `json:"activityCode" yaml:"activityCode"`
	StartTime       time.Time      `json:"startTime" yaml:"startTime"`
	EndTime         time.Time      `json:"endTime" yaml:"endTime"`
	ChildActivities []Activity     `json:"childActivities" yaml:"childActivities"`
	ScrambleSetID   *ScrambleSetID `json:"scrambleSetId,omitempty" yaml:"scrambleSetId,omitempty"`
	Extensions      []Extension    `json:"extensions" yaml:"extensions"`
}

func (a *Activity) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// Walk calls fn for every activity in the schedule, parents before their
// children.
func (s *Schedule) Walk(fn func(*Activity)) {
	var walk func([]Activity)
	walk = func(acts []Activity) {
		for i := range acts {
			fn(&acts[i])
			walk(acts[i].ChildActivities)
		}
	}
	for v := range s.Venues {
		for r := range s.Venues[v].Rooms {
			walk(s.Venues[v].Rooms[r].Activities)
		}
	}
}

// Date is a calendar date, encoded as YYYY-MM-DD.
type Date struct {
	Time time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, parseError("date", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Time.Format(time.DateOnly)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}
