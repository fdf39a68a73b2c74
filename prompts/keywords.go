package prompts

import (
	"maps"
	"slices"
	"strings"

	"github.com/Nydauron/wcif/wcif"
)

// Names people commonly type for an event besides its id and full name.
var eventAliases = map[string]wcif.EventID{
	"3X3":        wcif.Event333,
	"2X2":        wcif.Event222,
	"4X4":        wcif.Event444,
	"5X5":        wcif.Event555,
	"6X6":        wcif.Event666,
	"7X7":        wcif.Event777,
	"BLD":        wcif.Event333BF,
	"3BLD":       wcif.Event333BF,
	"FMC":        wcif.Event333FM,
	"OH":         wcif.Event333OH,
	"MEGAMINX":   wcif.EventMinx,
	"MEGA":       wcif.EventMinx,
	"PYRAMINX":   wcif.EventPyram,
	"PYRA":       wcif.EventPyram,
	"SQUARE-1":   wcif.EventSq1,
	"SQ-1":       wcif.EventSq1,
	"4BLD":       wcif.Event444BF,
	"5BLD":       wcif.Event555BF,
	"MBLD":       wcif.Event333MBF,
	"MULTIBLIND": wcif.Event333MBF,
}

var eventMapping = func() map[string]wcif.EventID {
	m := maps.Clone(eventAliases)
	for _, e := range wcif.AllEvents() {
		// Retired events sharing a name never shadow the current one.
		if name := strings.ToUpper(e.Name()); m[name] == "" {
			m[name] = e
		}
	}
	return m
}()

var eventKeywords = func() []string {
	arr := make([]string, 0, len(eventMapping))
	for k := range maps.Keys(eventMapping) {
		arr = append(arr, k)
	}
	slices.Sort(arr)

	return arr
}()

// LookupEvent resolves an event id, full event name or common alias.
func LookupEvent(s string) (wcif.EventID, bool) {
	s = strings.TrimSpace(s)
	if e, err := wcif.ParseEventID(strings.ToLower(s)); err == nil {
		return e, true
	}
	e, ok := eventMapping[strings.ToUpper(s)]
	return e, ok
}
