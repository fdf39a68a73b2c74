package wcif

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Packed layouts of a multiblind result. Values at or above legacyThreshold
// use the retired layout.
const (
	legacyThreshold = 1_000_000_000
	pointsFactor    = 10_000_000
	secondsFactor   = 100_000
	maxPoints       = 99
)

// MultiBlindResult is a decoded multiblind attempt. OldStyle records which
// layout the value was decoded from so re-encoding reproduces it.
type MultiBlindResult struct {
	Attempted uint32
	Solved    uint32
	Seconds   uint32
	OldStyle  bool
}

// MultiBlind unpacks c as a multiblind result.
func (c CentiSeconds) MultiBlind() MultiBlindResult {
	value := uint32(c)
	if value < legacyThreshold {
		missed := value % 100
		value /= 100
		seconds := value % secondsFactor
		value /= secondsFactor
		difference := maxPoints - value
		solved := difference + missed
		return MultiBlindResult{
			Attempted: solved + missed,
			Solved:    solved,
			Seconds:   seconds,
		}
	}

	seconds := value % secondsFactor
	value /= secondsFactor
	attempted := value % 100
	value /= 100
	return MultiBlindResult{
		Attempted: attempted,
		Solved:    maxPoints - value%100,
		Seconds:   seconds,
		OldStyle:  true,
	}
}

// Failed is zero when malformed data claims more solved than attempted cubes.
func (m MultiBlindResult) Failed() uint32 {
	if m.Solved > m.Attempted {
		return 0
	}
	return m.Attempted - m.Solved
}

// Points may be negative when more cubes failed than were solved.
func (m MultiBlindResult) Points() int {
	return int(m.Solved) - int(m.Failed())
}

func (m MultiBlindResult) raw() int64 {
	if m.OldStyle {
		return legacyThreshold +
			int64(maxPoints-int64(m.Solved))*pointsFactor +
			int64(m.Attempted)*secondsFactor +
			int64(m.Seconds)
	}
	return (maxPoints-int64(m.Points()))*pointsFactor +
		int64(m.Seconds)*100 +
		int64(m.Failed())
}

// Int returns the packed integer in the layout recorded by OldStyle.
func (m MultiBlindResult) Int() int64 {
	return m.raw()
}

func (MultiBlindResult) fromRaw(raw uint32) MultiBlindResult {
	return CentiSeconds(raw).MultiBlind()
}

func (m MultiBlindResult) compare(o MultiBlindResult) int {
	if c := cmp.Compare(m.Points(), o.Points()); c != 0 {
		return c
	}
	if c := cmp.Compare(o.Seconds, m.Seconds); c != 0 {
		return c
	}
	return cmp.Compare(o.Failed(), m.Failed())
}

func (m MultiBlindResult) display() string {
	s := m.Seconds
	if s >= 3600 {
		return fmt.Sprintf("%d/%d %d:%02d:%02d", m.Solved, m.Attempted, s/3600, (s%3600)/60, s%60)
	}
	return fmt.Sprintf("%d/%d %02d:%02d", m.Solved, m.Attempted, s/60, s%60)
}

func (m MultiBlindResult) String() string {
	return m.display()
}

const multiBlindDisplayType = "multiblind result"

// ParseMultiBlindDisplay is the inverse of the multiblind display:
// "solved/attempted MM:SS" or "solved/attempted H:MM:SS". Results are
// packed in the current layout.
func ParseMultiBlindDisplay(s string) (MultiBlindAttemptResult, error) {
	s = strings.TrimSpace(s)
	if r, ok := parseUnsuccessful[MultiBlindResult](s); ok {
		return r, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, ErrInvalidFormat)
	}
	solvedStr, attemptedStr, ok := strings.Cut(fields[0], "/")
	if !ok {
		return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, ErrInvalidFormat)
	}
	solved, err := strconv.ParseUint(solvedStr, 10, 8)
	if err != nil {
		return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, fmt.Errorf("%w: %v", ErrDigitParse, err))
	}
	attempted, err := strconv.ParseUint(attemptedStr, 10, 8)
	if err != nil {
		return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, fmt.Errorf("%w: %v", ErrDigitParse, err))
	}

	parts := strings.Split(fields[1], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, ErrInvalidFormat)
	}
	var seconds uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, fmt.Errorf("%w: %v", ErrDigitParse, err))
		}
		if i > 0 && n >= 60 {
			return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, ErrInvalidFormat)
		}
		seconds = seconds*60 + n
	}

	m := MultiBlindResult{Attempted: uint32(attempted), Solved: uint32(solved), Seconds: uint32(seconds)}
	// The current layout holds 0 to 99 points, up to 99 missed cubes and
	// under 100000 seconds.
	if solved > attempted || m.Points() < 0 || m.Points() > maxPoints ||
		m.Failed() > 99 || seconds >= secondsFactor || m.Int() == skippedValue {
		return MultiBlindAttemptResult{}, parseError(multiBlindDisplayType, s, ErrInvalidResult)
	}
	return Success(m), nil
}
