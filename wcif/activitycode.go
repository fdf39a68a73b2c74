package wcif

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	activityCodeType = "activity code"
	roundIDType      = "round id"

	unofficialPrefix      = "other-"
	unofficialEventPrefix = "unofficial-"
	miscKeyword           = "misc"
)

// EventCode is the event part of an activity code: the typed EventID for
// official codes, a plain string for unofficial ones.
type EventCode interface {
	~string
}

// EventActivityCode names an event, or a round, group or attempt within it.
// Group is only meaningful under a round and attempt under a group, but the
// grammar allows any of them to be absent.
type EventActivityCode[E EventCode] struct {
	Event   E
	Round   *uint32
	Group   *uint32
	Attempt *uint8
}

type (
	OfficialActivityCode = EventActivityCode[EventID]
	UnofficialEventCode  = EventActivityCode[string]
)

func NewEventActivityCode[E EventCode](event E) EventActivityCode[E] {
	return EventActivityCode[E]{Event: event}
}

func (c EventActivityCode[E]) WithRound(n uint32) EventActivityCode[E] {
	c.Round = &n
	return c
}

func (c EventActivityCode[E]) WithGroup(n uint32) EventActivityCode[E] {
	c.Group = &n
	return c
}

func (c EventActivityCode[E]) WithAttempt(n uint8) EventActivityCode[E] {
	c.Attempt = &n
	return c
}

func (c EventActivityCode[E]) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Event))
	if c.Round != nil {
		fmt.Fprintf(&sb, "-r%d", *c.Round)
	}
	if c.Group != nil {
		fmt.Fprintf(&sb, "-g%d", *c.Group)
	}
	if c.Attempt != nil {
		fmt.Fprintf(&sb, "-a%d", *c.Attempt)
	}
	return sb.String()
}

func (c EventActivityCode[E]) Equal(o EventActivityCode[E]) bool {
	return c.Event == o.Event &&
		optionalEqual(c.Round, o.Round) &&
		optionalEqual(c.Group, o.Group) &&
		optionalEqual(c.Attempt, o.Attempt)
}

// refinement is one optional field of two codes being compared.
type refinement struct {
	self, other, equal bool
}

func refinementOf[T comparable](a, b *T) refinement {
	return refinement{self: a != nil, other: b != nil, equal: optionalEqual(a, b)}
}

// Compare reports how specific c is relative to o. The result is negative
// when c is more general than o (o refines it), positive when c refines o
// and zero when they are equal. ok is false when the codes are incomparable:
// different events, contradictory fields, or each refining the other on a
// different field.
func (c EventActivityCode[E]) Compare(o EventActivityCode[E]) (result int, ok bool) {
	if c.Event != o.Event {
		return 0, false
	}
	fields := []refinement{
		refinementOf(c.Round, o.Round),
		refinementOf(c.Group, o.Group),
		refinementOf(c.Attempt, o.Attempt),
	}
	direction := 0
	for _, f := range fields {
		if f.equal {
			continue
		}
		if f.self && f.other {
			return 0, false
		}
		d := -1
		if f.self {
			d = 1
		}
		if direction != 0 && direction != d {
			return 0, false
		}
		direction = d
	}
	return direction, true
}

func (c EventActivityCode[E]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *EventActivityCode[E]) UnmarshalText(b []byte) error {
	code, err := ParseEventActivityCode[E](string(b))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// ParseEventActivityCode parses event[-rN][-gN][-aN]. Round and group tokens
// are only consumed when they carry their prefix; whatever token follows must
// be the attempt.
func ParseEventActivityCode[E EventCode](s string) (EventActivityCode[E], error) {
	parts := strings.Split(s, "-")
	if parts[0] == "" {
		return EventActivityCode[E]{}, parseError(activityCodeType, s, ErrMissingEventID)
	}
	event, err := parseEventCode[E](parts[0])
	if err != nil {
		return EventActivityCode[E]{}, parseError(activityCodeType, s, err)
	}
	code := EventActivityCode[E]{Event: event}
	rest := parts[1:]

	if len(rest) > 0 && strings.HasPrefix(rest[0], "r") {
		n, err := parseIndex(rest[0][1:], 32)
		if err != nil {
			return EventActivityCode[E]{}, parseError(activityCodeType, s, err)
		}
		code = code.WithRound(uint32(n))
		rest = rest[1:]
	}
	if len(rest) > 0 && strings.HasPrefix(rest[0], "g") {
		n, err := parseIndex(rest[0][1:], 32)
		if err != nil {
			return EventActivityCode[E]{}, parseError(activityCodeType, s, err)
		}
		code = code.WithGroup(uint32(n))
		rest = rest[1:]
	}
	if len(rest) > 0 {
		if !strings.HasPrefix(rest[0], "a") {
			return EventActivityCode[E]{}, parseError(activityCodeType, s, fmt.Errorf("%w: unexpected %q", ErrInvalidFormat, rest[0]))
		}
		n, err := parseIndex(rest[0][1:], 8)
		if err != nil {
			return EventActivityCode[E]{}, parseError(activityCodeType, s, err)
		}
		code = code.WithAttempt(uint8(n))
		rest = rest[1:]
	}
	// Tokens after the attempt are rejected, not ignored.
	if len(rest) > 0 {
		return EventActivityCode[E]{}, parseError(activityCodeType, s, fmt.Errorf("%w: trailing %q", ErrInvalidFormat, strings.Join(rest, "-")))
	}
	return code, nil
}

func parseEventCode[E EventCode](s string) (E, error) {
	var zero E
	if _, typed := any(zero).(EventID); typed {
		id, err := ParseEventID(s)
		if err != nil {
			return zero, ErrUnknownEvent
		}
		return E(id), nil
	}
	return E(s), nil
}

func parseIndex(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrDigitParse, s)
	}
	return n, nil
}

func optionalEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// RoundID is an official activity code that always names a round.
type RoundID struct {
	Event EventID
	Round uint32
}

func ParseRoundID(s string) (RoundID, error) {
	event, round, ok := strings.Cut(s, "-")
	if !ok {
		return RoundID{}, parseError(roundIDType, s, ErrInvalidFormat)
	}
	id, err := ParseEventID(event)
	if err != nil {
		return RoundID{}, parseError(roundIDType, s, ErrUnknownEvent)
	}
	digits, ok := strings.CutPrefix(round, "r")
	if !ok {
		return RoundID{}, parseError(roundIDType, s, ErrMissingRoundPrefix)
	}
	n, err := parseIndex(digits, 32)
	if err != nil {
		return RoundID{}, parseError(roundIDType, s, err)
	}
	return RoundID{Event: id, Round: uint32(n)}, nil
}

// RoundOf narrows c to the round enclosing it. ok is false when c does not
// name a round.
func RoundOf(c OfficialActivityCode) (RoundID, bool) {
	if c.Round == nil {
		return RoundID{}, false
	}
	return RoundID{Event: c.Event, Round: *c.Round}, true
}

// ActivityCode widens r to an activity code with only the round set.
func (r RoundID) ActivityCode() OfficialActivityCode {
	return NewEventActivityCode(r.Event).WithRound(r.Round)
}

func (r RoundID) Equal(c OfficialActivityCode) bool {
	return r.ActivityCode().Equal(c)
}

func (r RoundID) Compare(c OfficialActivityCode) (int, bool) {
	return r.ActivityCode().Compare(c)
}

func (r RoundID) String() string {
	return fmt.Sprintf("%s-r%d", r.Event, r.Round)
}

func (r RoundID) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RoundID) UnmarshalText(b []byte) error {
	id, err := ParseRoundID(string(b))
	if err != nil {
		return err
	}
	*r = id
	return nil
}

// UnofficialActivityCode is the part of an activity code after "other-".
// Implementations are UnofficialKeyword, UnofficialEvent, Misc and the
// deprecated UnofficialOther.
type UnofficialActivityCode interface {
	fmt.Stringer
	unofficial()
}

// UnofficialKeyword is one of the fixed single-word unofficial activities.
// Only the values below exist; the zero value is not a keyword.
type UnofficialKeyword struct {
	name string
}

var (
	RegistrationDesk = UnofficialKeyword{"registration"}
	Checkin          = UnofficialKeyword{"checkin"}
	Tutorial         = UnofficialKeyword{"tutorial"}
	MultiSubmission  = UnofficialKeyword{"multi"}
	Breakfast        = UnofficialKeyword{"breakfast"}
	Lunch            = UnofficialKeyword{"lunch"}
	Dinner           = UnofficialKeyword{"dinner"}
	Awards           = UnofficialKeyword{"awards"}
)

var unofficialKeywords = []UnofficialKeyword{
	RegistrationDesk, Checkin, Tutorial, MultiSubmission, Breakfast, Lunch, Dinner, Awards,
}

func (k UnofficialKeyword) String() string { return k.name }
func (UnofficialKeyword) unofficial() {}

// UnofficialEvent is an event-shaped code for an event outside the known set.
type UnofficialEvent struct {
	Code UnofficialEventCode
}

func (e UnofficialEvent) String() string {
	return unofficialEventPrefix + e.Code.String()
}

func (UnofficialEvent) unofficial() {}

// Misc is a free-form activity, optionally labelled. The zero value is the
// unlabelled form; MiscLabel builds the labelled one.
type Misc struct {
	label    string
	labelled bool
}

func MiscLabel(label string) Misc {
	return Misc{label: label, labelled: true}
}

// Label returns the label. ok is false for the unlabelled form, which is
// distinct from an empty label.
func (m Misc) Label() (label string, ok bool) {
	return m.label, m.labelled
}

func (m Misc) String() string {
	if m.labelled {
		return miscKeyword + "-" + m.label
	}
	return miscKeyword
}

func (Misc) unofficial() {}

// UnofficialOther holds codes matching no known unofficial form. The parser
// produces it for forward compatibility; new codes should use Misc.
//
// Deprecated: use Misc.
type UnofficialOther string

func (o UnofficialOther) String() string { return string(o) }
func (UnofficialOther) unofficial() {}

// ParseUnofficialActivityCode only fails when an "unofficial-" code is
// malformed; unrecognised input becomes UnofficialOther.
func ParseUnofficialActivityCode(s string) (UnofficialActivityCode, error) {
	for _, k := range unofficialKeywords {
		if s == k.name {
			return k, nil
		}
	}
	if s == miscKeyword {
		return Misc{}, nil
	}
	if rest, ok := strings.CutPrefix(s, unofficialEventPrefix); ok {
		code, err := ParseEventActivityCode[string](rest)
		if err != nil {
			return nil, err
		}
		return UnofficialEvent{Code: code}, nil
	}
	if label, ok := strings.CutPrefix(s, miscKeyword+"-"); ok {
		return MiscLabel(label), nil
	}
	return UnofficialOther(s), nil
}

// ActivityCode is either an official code (Unofficial is nil) or an
// unofficial one.
type ActivityCode struct {
	Official   OfficialActivityCode
	Unofficial UnofficialActivityCode
}

func OfficialCode(c OfficialActivityCode) ActivityCode {
	return ActivityCode{Official: c}
}

func UnofficialCode(u UnofficialActivityCode) ActivityCode {
	return ActivityCode{Unofficial: u}
}

func ParseActivityCode(s string) (ActivityCode, error) {
	if rest, ok := strings.CutPrefix(s, unofficialPrefix); ok {
		u, err := ParseUnofficialActivityCode(rest)
		if err != nil {
			return ActivityCode{}, err
		}
		return UnofficialCode(u), nil
	}
	c, err := ParseEventActivityCode[EventID](s)
	if err != nil {
		return ActivityCode{}, err
	}
	return OfficialCode(c), nil
}

func (c ActivityCode) IsOfficial() bool {
	return c.Unofficial == nil
}

// Deprecated reports whether c was only accepted through the catch-all
// unofficial form.
func (c ActivityCode) Deprecated() bool {
	_, other := c.Unofficial.(UnofficialOther)
	return other
}

// Compare applies the specificity order of event codes to official codes and
// to unofficial event codes. Other unofficial codes only compare equal to
// themselves.
func (c ActivityCode) Compare(o ActivityCode) (int, bool) {
	if c.IsOfficial() && o.IsOfficial() {
		return c.Official.Compare(o.Official)
	}
	ce, cok := c.Unofficial.(UnofficialEvent)
	oe, ook := o.Unofficial.(UnofficialEvent)
	if cok && ook {
		return ce.Code.Compare(oe.Code)
	}
	if !c.IsOfficial() && !o.IsOfficial() && c.String() == o.String() {
		return 0, true
	}
	return 0, false
}

func (c ActivityCode) String() string {
	if c.Unofficial != nil {
		return unofficialPrefix + c.Unofficial.String()
	}
	return c.Official.String()
}

func (c ActivityCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ActivityCode) UnmarshalText(b []byte) error {
	code, err := ParseActivityCode(string(b))
	if err != nil {
		return err
	}
	*c = code
	return nil
}
