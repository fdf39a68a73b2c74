package wcif

import (
	"encoding/json"
	"fmt"
)

type Event struct {
	ID              EventID        `json:"id" yaml:"id"`
	Rounds          []Round        `json:"rounds" yaml:"rounds"`
	CompetitorLimit *uint32        `json:"competitorLimit,omitempty" yaml:"competitorLimit,omitempty"`
	Qualification   *Qualification `json:"qualification" yaml:"qualification"`
	Extensions      []Extension    `json:"extensions" yaml:"extensions"`
}

type Round struct {
	ID                   RoundID               `json:"id" yaml:"id"`
	Format               RoundFormat           `json:"format" yaml:"format"`
	TimeLimit            *TimeLimit            `json:"timeLimit" yaml:"timeLimit"`
	Cutoff               *Cutoff               `json:"cutoff" yaml:"cutoff"`
	AdvancementCondition *AdvancementCondition `json:"advancementCondition" yaml:"advancementCondition"`
	Results              []RoundResult         `json:"results" yaml:"results"`
	ScrambleSetCount     uint32                `json:"scrambleSetCount" yaml:"scrambleSetCount"`
	ScrambleSets         []ScrambleSet         `json:"scrambleSets,omitempty" yaml:"scrambleSets,omitempty"`
	Extensions           []Extension           `json:"extensions" yaml:"extensions"`
}

type RoundFormat string

const (
	BestOf1    RoundFormat = "1"
	BestOf2    RoundFormat = "2"
	BestOf3    RoundFormat = "3"
	AverageOf5 RoundFormat = "a"
	MeanOf3    RoundFormat = "m"
)

func ParseRoundFormat(s string) (RoundFormat, error) {
	switch f := RoundFormat(s); f {
	case BestOf1, BestOf2, BestOf3, AverageOf5, MeanOf3:
		return f, nil
	}
	return "", parseError("round format", s, ErrInvalidFormat)
}

func (f RoundFormat) ExpectedSolveCount() int {
	switch f {
	case BestOf1:
		return 1
	case BestOf2:
		return 2
	case BestOf3, MeanOf3:
		return 3
	case AverageOf5:
		return 5
	}
	return 0
}

// SortBy is the result type rounds of this format are ranked by.
func (f RoundFormat) SortBy() ResultType {
	if f == AverageOf5 || f == MeanOf3 {
		return Average
	}
	return Single
}

type TimeLimit struct {
	CentiSeconds       CentiSeconds `json:"centiseconds" yaml:"centiseconds"`
	CumulativeRoundIDs []RoundID    `json:"cumulativeRoundIds" yaml:"cumulativeRoundIds"`
}

type Cutoff struct {
	NumberOfAttempts int        `json:"numberOfAttempts" yaml:"numberOfAttempts"`
	AttemptResult    TimeResult `json:"attemptResult" yaml:"attemptResult"`
}

type AdvancementType string

const (
	AdvanceByRanking       AdvancementType = "ranking"
	AdvanceByPercent       AdvancementType = "percent"
	AdvanceByAttemptResult AdvancementType = "attemptResult"
)

// AdvancementCondition decides who proceeds to the next round. Only the
// level field matching Type is used.
type AdvancementCondition struct {
	Type          AdvancementType
	Ranking       uint64
	Percent       uint8
	AttemptResult TimeResult
}

// levelWire is the {"type": ..., "level": ...} shape shared by advancement
// conditions and qualifications.
type levelWire struct {
	Type  string          `json:"type"`
	Level json.RawMessage `json:"level"`
}

func (a AdvancementCondition) wire() (levelWire, error) {
	var level any
	switch a.Type {
	case AdvanceByRanking:
		level = a.Ranking
	case AdvanceByPercent:
		level = a.Percent
	case AdvanceByAttemptResult:
		level = a.AttemptResult
	default:
		return levelWire{}, fmt.Errorf("wcif: unknown advancement condition type %q", a.Type)
	}
	b, err := json.Marshal(level)
	if err != nil {
		return levelWire{}, err
	}
	return levelWire{Type: string(a.Type), Level: b}, nil
}

func (a AdvancementCondition) MarshalJSON() ([]byte, error) {
	w, err := a.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (a *AdvancementCondition) UnmarshalJSON(b []byte) error {
	var w levelWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out := AdvancementCondition{Type: AdvancementType(w.Type)}
	var err error
	switch out.Type {
	case AdvanceByRanking:
		err = json.Unmarshal(w.Level, &out.Ranking)
	case AdvanceByPercent:
		err = json.Unmarshal(w.Level, &out.Percent)
	case AdvanceByAttemptResult:
		err = json.Unmarshal(w.Level, &out.AttemptResult)
	default:
		return fmt.Errorf("wcif: unknown advancement condition type %q", w.Type)
	}
	if err != nil {
		return fmt.Errorf("wcif: advancement condition level: %w", err)
	}
	*a = out
	return nil
}

func (a AdvancementCondition) MarshalYAML() (any, error) {
	level := map[AdvancementType]any{
		AdvanceByRanking:       a.Ranking,
		AdvanceByPercent:       a.Percent,
		AdvanceByAttemptResult: a.AttemptResult,
	}[a.Type]
	return map[string]any{"type": a.Type, "level": level}, nil
}

type QualificationType string

const (
	QualifyByAttemptResult QualificationType = "attemptResult"
	QualifyByRanking       QualificationType = "ranking"
	QualifyByAnyResult     QualificationType = "anyResult"
)

// Qualification is the requirement to be allowed to register for an event.
// anyResult carries a null level.
type Qualification struct {
	WhenDate      Date
	Type          QualificationType
	AttemptResult TimeResult
	Ranking       uint64
	ResultType    ResultType
}

type qualificationWire struct {
	WhenDate   Date            `json:"whenDate"`
	Type       string          `json:"type"`
	Level      json.RawMessage `json:"level"`
	ResultType ResultType      `json:"resultType"`
}

func (q Qualification) MarshalJSON() ([]byte, error) {
	var level any
	switch q.Type {
	case QualifyByAttemptResult:
		level = q.AttemptResult
	case QualifyByRanking:
		level = q.Ranking
	case QualifyByAnyResult:
	default:
		return nil, fmt.Errorf("wcif: unknown qualification type %q", q.Type)
	}
	b, err := json.Marshal(level)
	if err != nil {
		return nil, err
	}
	return json.Marshal(qualificationWire{WhenDate: q.WhenDate, Type: string(q.Type), Level: b, ResultType: q.ResultType})
}

func (q *Qualification) UnmarshalJSON(b []byte) error {
	var w qualificationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out := Qualification{WhenDate: w.WhenDate, Type: QualificationType(w.Type), ResultType: w.ResultType}
	var err error
	switch out.Type {
	case QualifyByAttemptResult:
		err = json.Unmarshal(w.Level, &out.AttemptResult)
	case QualifyByRanking:
		err = json.Unmarshal(w.Level, &out.Ranking)
	case QualifyByAnyResult:
	default:
		return fmt.Errorf("wcif: unknown qualification type %q", w.Type)
	}
	if err != nil {
		return fmt.Errorf("wcif: qualification level: %w", err)
	}
	*q = out
	return nil
}

func (q Qualification) MarshalYAML() (any, error) {
	var level any
	switch q.Type {
	case QualifyByAttemptResult:
		level = q.AttemptResult
	case QualifyByRanking:
		level = q.Ranking
	}
	return map[string]any{
		"whenDate":   q.WhenDate,
		"type":       q.Type,
		"level":      level,
		"resultType": q.ResultType,
	}, nil
}

type RoundResult struct {
	PersonID PersonID   `json:"personId" yaml:"personId"`
	Ranking  *uint64    `json:"ranking,omitempty" yaml:"ranking,omitempty"`
	Attempts []Attempt  `json:"attempts" yaml:"attempts"`
	Best     TimeResult `json:"best" yaml:"best"`
	Average  TimeResult `json:"average" yaml:"average"`
}

type Attempt struct {
	Result         TimeResult `json:"result" yaml:"result"`
	Reconstruction *string    `json:"reconstruction,omitempty" yaml:"reconstruction,omitempty"`
}

type ScrambleSet struct {
	ID             ScrambleSetID `json:"id" yaml:"id"`
	Scrambles      []string      `json:"scrambles" yaml:"scrambles"`
	ExtraScrambles []string      `json:"extraScrambles" yaml:"extraScrambles"`
}
