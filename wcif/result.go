package wcif

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const attemptResultType = "attempt result"

// Wire values of the non-success kinds.
const (
	skippedValue = 0
	dnfValue     = -1
	dnsValue     = -2
)

type ResultKind uint8

const (
	KindSkipped ResultKind = iota
	KindDNF
	KindDNS
	KindSuccess
)

func (k ResultKind) String() string {
	switch k {
	case KindSkipped:
		return "skipped"
	case KindDNF:
		return "DNF"
	case KindDNS:
		return "DNS"
	case KindSuccess:
		return "success"
	default:
		return fmt.Sprintf("ResultKind(%d)", uint8(k))
	}
}

// ResultValue is the payload carried by a successful attempt. The set of
// implementations is closed: CentiSeconds, MoveCount and MultiBlindResult.
type ResultValue[V any] interface {
	comparable
	// raw returns the packed wire integer.
	raw() int64
	fromRaw(raw uint32) V
	// compare is positive when the receiver is the better result.
	compare(other V) int
	display() string
}

// AttemptResult is Skipped, DNF, DNS or a successful attempt carrying a
// payload. The zero value is Skipped.
type AttemptResult[V ResultValue[V]] struct {
	kind  ResultKind
	value V
}

type (
	TimeResult              = AttemptResult[CentiSeconds]
	MoveResult              = AttemptResult[MoveCount]
	MultiBlindAttemptResult = AttemptResult[MultiBlindResult]
)

func Skipped[V ResultValue[V]]() AttemptResult[V] {
	return AttemptResult[V]{kind: KindSkipped}
}

func DNF[V ResultValue[V]]() AttemptResult[V] {
	return AttemptResult[V]{kind: KindDNF}
}

func DNS[V ResultValue[V]]() AttemptResult[V] {
	return AttemptResult[V]{kind: KindDNS}
}

func Success[V ResultValue[V]](v V) AttemptResult[V] {
	return AttemptResult[V]{kind: KindSuccess, value: v}
}

// DecodeResult maps a wire integer to an attempt result.
func DecodeResult[V ResultValue[V]](n int64) (AttemptResult[V], error) {
	switch {
	case n == dnsValue:
		return DNS[V](), nil
	case n == dnfValue:
		return DNF[V](), nil
	case n == skippedValue:
		return Skipped[V](), nil
	case n > 0 && n <= math.MaxUint32:
		var zero V
		return Success(zero.fromRaw(uint32(n))), nil
	}
	return AttemptResult[V]{}, parseError(attemptResultType, strconv.FormatInt(n, 10), ErrInvalidResult)
}

// NewTimeResult is DecodeResult for plain timed results.
func NewTimeResult(n int64) (TimeResult, error) {
	return DecodeResult[CentiSeconds](n)
}

func (r AttemptResult[V]) Kind() ResultKind {
	return r.kind
}

func (r AttemptResult[V]) IsSuccess() bool {
	return r.kind == KindSuccess
}

// Value returns the payload of a successful attempt.
func (r AttemptResult[V]) Value() (V, bool) {
	if r.kind != KindSuccess {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Int returns the wire integer. Encoding never fails.
func (r AttemptResult[V]) Int() int64 {
	switch r.kind {
	case KindDNF:
		return dnfValue
	case KindDNS:
		return dnsValue
	case KindSuccess:
		return r.value.raw()
	}
	return skippedValue
}

// Compare ranks two results: positive when r is the better one, negative
// when o is, zero when they rank equal. Skipped, DNF and DNS rank equal to
// each other and below every success.
func (r AttemptResult[V]) Compare(o AttemptResult[V]) int {
	switch {
	case r.IsSuccess() && o.IsSuccess():
		return r.value.compare(o.value)
	case r.IsSuccess():
		return 1
	case o.IsSuccess():
		return -1
	}
	return 0
}

func (r AttemptResult[V]) Better(o AttemptResult[V]) bool {
	return r.Compare(o) > 0
}

func (r AttemptResult[V]) String() string {
	switch r.kind {
	case KindDNF:
		return "DNF"
	case KindDNS:
		return "DNS"
	case KindSuccess:
		return r.value.display()
	}
	return ""
}

func (r AttemptResult[V]) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, r.Int(), 10), nil
}

func (r *AttemptResult[V]) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	num, ok := v.(json.Number)
	if !ok {
		return parseError(attemptResultType, string(b), ErrNotANumber)
	}
	n, err := num.Int64()
	if err != nil {
		return parseError(attemptResultType, string(b), ErrNotANumber)
	}
	res, err := DecodeResult[V](n)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

func (r AttemptResult[V]) MarshalYAML() (any, error) {
	return r.Int(), nil
}

func (r *AttemptResult[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return parseError(attemptResultType, node.Value, ErrNotANumber)
	}
	var n int64
	if err := node.Decode(&n); err != nil {
		return parseError(attemptResultType, node.Value, ErrNotANumber)
	}
	res, err := DecodeResult[V](n)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

func convertResult[From ResultValue[From], To ResultValue[To]](r AttemptResult[From], f func(From) To) AttemptResult[To] {
	if r.kind != KindSuccess {
		return AttemptResult[To]{kind: r.kind}
	}
	return Success(f(r.value))
}

// AsMultiBlind reinterprets a timed result's packed integer as a multiblind
// result.
func AsMultiBlind(r TimeResult) MultiBlindAttemptResult {
	return convertResult(r, CentiSeconds.MultiBlind)
}

// AsMoveCount reinterprets a timed result as a fewest-moves count.
func AsMoveCount(r TimeResult) MoveResult {
	return convertResult(r, CentiSeconds.MoveCount)
}

// CentiSeconds is an elapsed time in hundredths of a second.
type CentiSeconds uint32

func (c CentiSeconds) raw() int64 {
	return int64(c)
}

func (CentiSeconds) fromRaw(raw uint32) CentiSeconds {
	return CentiSeconds(raw)
}

func (c CentiSeconds) compare(o CentiSeconds) int {
	return cmp.Compare(o, c)
}

func (c CentiSeconds) display() string {
	v := uint32(c)
	switch {
	case v < 100*60:
		return fmt.Sprintf("%d.%02d", v/100, v%100)
	case v < 100*60*60:
		return fmt.Sprintf("%d:%02d.%02d", v/60/100, (v/100)%60, v%100)
	default:
		return fmt.Sprintf("%d:%02d:%02d.%02d", v/3600/100, (v/60/100)%60, (v/100)%60, v%100)
	}
}

func (c CentiSeconds) String() string {
	return c.display()
}

func (c CentiSeconds) MoveCount() MoveCount {
	return MoveCount(c)
}

// MoveCount is a fewest-moves result. Values above 80 are means scaled by 100.
type MoveCount uint16

func (m MoveCount) raw() int64 {
	return int64(m)
}

func (MoveCount) fromRaw(raw uint32) MoveCount {
	return MoveCount(raw)
}

func (m MoveCount) compare(o MoveCount) int {
	return cmp.Compare(o, m)
}

func (m MoveCount) display() string {
	if m > 80 {
		return fmt.Sprintf("%d.%02d", m/100, m%100)
	}
	return strconv.Itoa(int(m))
}

func (m MoveCount) String() string {
	return m.display()
}

// ParseTimeDisplay is the inverse of the timed result display: "", "DNF",
// "DNS", "S.cc", "M:SS.cc" or "H:MM:SS.cc".
func ParseTimeDisplay(s string) (TimeResult, error) {
	s = strings.TrimSpace(s)
	if r, ok := parseUnsuccessful[CentiSeconds](s); ok {
		return r, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return TimeResult{}, parseError("time", s, ErrInvalidFormat)
	}
	secs, frac, ok := strings.Cut(parts[len(parts)-1], ".")
	if !ok || len(frac) != 2 {
		return TimeResult{}, parseError("time", s, ErrInvalidFormat)
	}

	var total uint64
	for i, p := range append(parts[:len(parts)-1], secs) {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return TimeResult{}, parseError("time", s, fmt.Errorf("%w: %v", ErrDigitParse, err))
		}
		if i > 0 && n >= 60 {
			return TimeResult{}, parseError("time", s, ErrInvalidFormat)
		}
		total = total*60 + n
	}
	cs, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return TimeResult{}, parseError("time", s, fmt.Errorf("%w: %v", ErrDigitParse, err))
	}
	total = total*100 + cs
	if total == 0 || total > math.MaxUint32 {
		return TimeResult{}, parseError("time", s, ErrInvalidResult)
	}
	return Success(CentiSeconds(total)), nil
}

// parseUnsuccessful reads the displays shared by every payload: an empty
// cell, DNF and DNS.
func parseUnsuccessful[V ResultValue[V]](s string) (AttemptResult[V], bool) {
	switch strings.ToUpper(s) {
	case "":
		return Skipped[V](), true
	case "DNF":
		return DNF[V](), true
	case "DNS":
		return DNS[V](), true
	}
	return AttemptResult[V]{}, false
}

const maxSingleMoves = 80

// ParseMoveCountDisplay is the inverse of the fewest-moves display: a whole
// move count of at most 80, or a mean such as "29.33".
func ParseMoveCountDisplay(s string) (MoveResult, error) {
	s = strings.TrimSpace(s)
	if r, ok := parseUnsuccessful[MoveCount](s); ok {
		return r, nil
	}

	whole, frac, isMean := strings.Cut(s, ".")
	n, err := strconv.ParseUint(whole, 10, 16)
	if err != nil {
		return MoveResult{}, parseError("move count", s, fmt.Errorf("%w: %v", ErrDigitParse, err))
	}
	if !isMean {
		if n == 0 || n > maxSingleMoves {
			return MoveResult{}, parseError("move count", s, ErrInvalidResult)
		}
		return Success(MoveCount(n)), nil
	}

	if len(frac) != 2 {
		return MoveResult{}, parseError("move count", s, ErrInvalidFormat)
	}
	hundredths, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return MoveResult{}, parseError("move count", s, fmt.Errorf("%w: %v", ErrDigitParse, err))
	}
	mean := n*100 + hundredths
	if mean <= maxSingleMoves || mean > math.MaxUint16 {
		return MoveResult{}, parseError("move count", s, ErrInvalidResult)
	}
	return Success(MoveCount(mean)), nil
}
