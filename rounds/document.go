package rounds

import (
	"regexp"
	"strings"

	"github.com/Nydauron/wcif/parsers"
	"github.com/Nydauron/wcif/wcif"
)

var nonIDCharRegex = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Persons lists the competitors of table registered for event, numbered the
// same way Build numbers them.
func Persons(table parsers.Table, event wcif.EventID) []wcif.Person {
	persons := make([]wcif.Person, 0, len(table.Rows))
	for i, row := range table.Rows {
		id := wcif.PersonID(i + 1)
		persons = append(persons, wcif.Person{
			RegistrantID: &id,
			Name:         row.Name,
			WCAID:        row.WCAID,
			Roles:        []wcif.Role{},
			Registration: &wcif.Registration{
				EventIDs:    []wcif.EventID{event},
				Status:      wcif.Accepted,
				IsCompeting: true,
			},
			Assignments:   []wcif.Assignment{},
			PersonalBests: []wcif.PersonalBest{},
			Extensions:    []wcif.Extension{},
		})
	}
	return persons
}

// Document wraps an imported round into a competition holding only that
// round and its competitors.
func Document(name string, date wcif.Date, table parsers.Table, round wcif.Round) *wcif.Competition {
	return &wcif.Competition{
		FormatVersion: wcif.FormatVersion,
		ID:            nonIDCharRegex.ReplaceAllString(strings.TrimSpace(name), ""),
		Name:          name,
		ShortName:     name,
		Persons:       Persons(table, round.ID.Event),
		Events: []wcif.Event{{
			ID:         round.ID.Event,
			Rounds:     []wcif.Round{round},
			Extensions: []wcif.Extension{},
		}},
		Schedule: wcif.Schedule{
			StartDate:    date,
			NumberOfDays: 1,
			Venues:       []wcif.Venue{},
		},
		Extensions: []wcif.Extension{},
	}
}
