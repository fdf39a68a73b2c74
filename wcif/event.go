package wcif

import (
	"cmp"
	"slices"
)

// EventID identifies one of the known WCA events.
type EventID string

const (
	Event333    EventID = "333"
	Event222    EventID = "222"
	Event444    EventID = "444"
	Event555    EventID = "555"
	Event666    EventID = "666"
	Event777    EventID = "777"
	Event333BF  EventID = "333bf"
	Event333FM  EventID = "333fm"
	Event333OH  EventID = "333oh"
	EventClock  EventID = "clock"
	EventMinx   EventID = "minx"
	EventPyram  EventID = "pyram"
	EventSkewb  EventID = "skewb"
	EventSq1    EventID = "sq1"
	Event444BF  EventID = "444bf"
	Event555BF  EventID = "555bf"
	Event333MBF EventID = "333mbf"
	Event333FT  EventID = "333ft"
	EventMagic  EventID = "magic"
	EventMMagic EventID = "mmagic"
	Event333MBO EventID = "333mbo"
)

// allEvents is in canonical WCA order; the index is the event's ordinal.
var allEvents = []EventID{
	Event333, Event222, Event444, Event555, Event666, Event777,
	Event333BF, Event333FM, Event333OH, EventClock, EventMinx, EventPyram,
	EventSkewb, EventSq1, Event444BF, Event555BF, Event333MBF,
	Event333FT, EventMagic, EventMMagic, Event333MBO,
}

var eventNames = map[EventID]string{
	Event333:    "3x3x3 Cube",
	Event222:    "2x2x2 Cube",
	Event444:    "4x4x4 Cube",
	Event555:    "5x5x5 Cube",
	Event666:    "6x6x6 Cube",
	Event777:    "7x7x7 Cube",
	Event333BF:  "3x3x3 Blindfolded",
	Event333FM:  "3x3x3 Fewest Moves",
	Event333OH:  "3x3x3 One-Handed",
	Event333FT:  "3x3x3 With Feet",
	EventClock:  "Clock",
	EventMinx:   "Megaminx",
	EventPyram:  "Pyraminx",
	EventSkewb:  "Skewb",
	EventSq1:    "Square-1",
	Event444BF:  "4x4x4 Blindfolded",
	Event555BF:  "5x5x5 Blindfolded",
	Event333MBF: "3x3x3 Multi-Blind",
	Event333MBO: "3x3x3 Multi-Blind",
	EventMagic:  "Magic",
	EventMMagic: "Master Magic",
}

// AllEvents returns every known event, including retired ones.
func AllEvents() []EventID {
	return slices.Clone(allEvents)
}

// OfficialEvents returns the events currently held at WCA competitions.
func OfficialEvents() []EventID {
	out := make([]EventID, 0, len(allEvents))
	for _, e := range allEvents {
		if e.IsOfficial() {
			out = append(out, e)
		}
	}
	return out
}

// ParseEventID fails with ErrUnknownEvent for ids outside the known set.
func ParseEventID(s string) (EventID, error) {
	e := EventID(s)
	if !e.IsKnown() {
		return "", parseError("event id", s, ErrUnknownEvent)
	}
	return e, nil
}

func (e EventID) IsKnown() bool {
	_, ok := eventNames[e]
	return ok
}

func (e EventID) String() string {
	return string(e)
}

func (e EventID) ordinal() int {
	return slices.Index(allEvents, e)
}

// Compare orders events canonically. Unknown ids sort before known ones.
func (e EventID) Compare(o EventID) int {
	return cmp.Compare(e.ordinal(), o.ordinal())
}

func (e EventID) Name() string {
	return eventNames[e]
}

func (e EventID) IsOfficial() bool {
	switch e {
	case Event333FT, EventMagic, EventMMagic, Event333MBO:
		return false
	}
	return e.IsKnown()
}

func (e EventID) IsBlind() bool {
	switch e {
	case Event333BF, Event444BF, Event555BF, Event333MBF, Event333MBO:
		return true
	}
	return false
}

func (e EventID) IsMultiBlind() bool {
	return e == Event333MBF || e == Event333MBO
}

func (e EventID) HasAverageOrMean() bool {
	return !e.IsMultiBlind()
}

func (e EventID) HasAverage() bool {
	switch e {
	case Event666, Event777, Event333BF, Event444BF, Event555BF, Event333FM, Event333MBF, Event333MBO:
		return false
	}
	return true
}

func (e EventID) HasMean() bool {
	switch e {
	case Event666, Event777, Event333BF, Event444BF, Event555BF, Event333FM:
		return true
	}
	return false
}

func (e EventID) PuzzleType() PuzzleType {
	switch e {
	case Event333, Event333OH, Event333BF, Event333FT, Event333FM, Event333MBF, Event333MBO:
		return Puzzle333
	case Event444BF:
		return Puzzle444
	case Event555BF:
		return Puzzle555
	}
	return PuzzleType(e)
}

// FormatResult renders r with the display rule of the event's payload.
func (e EventID) FormatResult(r TimeResult) string {
	switch {
	case e == Event333FM:
		return AsMoveCount(r).String()
	case e.IsMultiBlind():
		return AsMultiBlind(r).String()
	}
	return r.String()
}

// ParseResult is the inverse of FormatResult. Move counts and multiblind
// results come back packed the way they are stored in a TimeResult.
func (e EventID) ParseResult(s string) (TimeResult, error) {
	switch {
	case e == Event333FM:
		r, err := ParseMoveCountDisplay(s)
		if err != nil {
			return TimeResult{}, err
		}
		return convertResult(r, func(m MoveCount) CentiSeconds { return CentiSeconds(m) }), nil
	case e.IsMultiBlind():
		r, err := ParseMultiBlindDisplay(s)
		if err != nil {
			return TimeResult{}, err
		}
		return convertResult(r, func(m MultiBlindResult) CentiSeconds { return CentiSeconds(m.Int()) }), nil
	}
	return ParseTimeDisplay(s)
}

func (e EventID) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

func (e *EventID) UnmarshalText(b []byte) error {
	id, err := ParseEventID(string(b))
	if err != nil {
		return err
	}
	*e = id
	return nil
}

// PuzzleType is the physical puzzle an event is held on.
type PuzzleType string

const (
	Puzzle333         PuzzleType = "333"
	Puzzle222         PuzzleType = "222"
	Puzzle444         PuzzleType = "444"
	Puzzle555         PuzzleType = "555"
	Puzzle666         PuzzleType = "666"
	Puzzle777         PuzzleType = "777"
	PuzzleClock       PuzzleType = "clock"
	PuzzleMegaminx    PuzzleType = "minx"
	PuzzlePyraminx    PuzzleType = "pyram"
	PuzzleSkewb       PuzzleType = "skewb"
	PuzzleSquare1     PuzzleType = "sq1"
	PuzzleMagic       PuzzleType = "magic"
	PuzzleMasterMagic PuzzleType = "mmagic"
)
