// Package rounds turns parsed results tables into WCIF rounds, computing the
// best and average of every competitor and ranking them.
package rounds

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Nydauron/wcif/parsers"
	"github.com/Nydauron/wcif/wcif"
)

var ErrTooManyAttempts = errors.New("more attempts than the round format allows")

// Build converts the rows of table into the results of round id. Competitors
// are numbered in table order starting at 1, matching Persons.
func Build(table parsers.Table, id wcif.RoundID, format wcif.RoundFormat) (wcif.Round, error) {
	expected := format.ExpectedSolveCount()
	if expected == 0 {
		return wcif.Round{}, fmt.Errorf("round %s: unknown format %q", id, format)
	}

	results := make([]wcif.RoundResult, 0, len(table.Rows))
	for i, row := range table.Rows {
		attempts := trimSkipped(row.Attempts)
		if len(attempts) > expected {
			return wcif.Round{}, fmt.Errorf("%s: %w (%d > %d)", row.Name, ErrTooManyAttempts, len(attempts), expected)
		}
		res := wcif.RoundResult{
			PersonID: wcif.PersonID(i + 1),
			Attempts: make([]wcif.Attempt, len(attempts)),
			Best:     Best(attempts, id.Event),
		}
		for j, a := range attempts {
			res.Attempts[j] = wcif.Attempt{Result: a}
		}
		if format.SortBy() == wcif.Average {
			res.Average = Average(attempts, format, id.Event)
		}
		results = append(results, res)
	}
	Rank(results, format, id.Event)

	return wcif.Round{
		ID:               id,
		Format:           format,
		Results:          results,
		ScrambleSetCount: 1,
		Extensions:       []wcif.Extension{},
	}, nil
}

// Cells left empty after the last attempt taken (missed cutoff, no show)
// are not attempts.
func trimSkipped(attempts []wcif.TimeResult) []wcif.TimeResult {
	end := len(attempts)
	for end > 0 && attempts[end-1].Kind() == wcif.KindSkipped {
		end--
	}
	return attempts[:end]
}

// compareFor orders results of event; positive means a is better.
func compareFor(event wcif.EventID) func(a, b wcif.TimeResult) int {
	if event.IsMultiBlind() {
		return func(a, b wcif.TimeResult) int {
			return wcif.AsMultiBlind(a).Compare(wcif.AsMultiBlind(b))
		}
	}
	return func(a, b wcif.TimeResult) int {
		return a.Compare(b)
	}
}

// Best returns the best successful attempt. Without one it is DNF if any
// attempt was a DNF, DNS if any was a DNS, and skipped otherwise.
func Best(attempts []wcif.TimeResult, event wcif.EventID) wcif.TimeResult {
	compare := compareFor(event)
	best := wcif.Skipped[wcif.CentiSeconds]()
	for _, a := range attempts {
		switch {
		case a.IsSuccess():
			if !best.IsSuccess() || compare(a, best) > 0 {
				best = a
			}
		case best.IsSuccess():
		case a.Kind() == wcif.KindDNF:
			best = a
		case a.Kind() == wcif.KindDNS && best.Kind() == wcif.KindSkipped:
			best = a
		}
	}
	return best
}

// Average computes the average of 5 or mean of 3 of a complete set of
// attempts, truncated to the centisecond. An incomplete set averages to
// skipped. Fewest moves means are kept in hundredths of a move.
func Average(attempts []wcif.TimeResult, format wcif.RoundFormat, event wcif.EventID) wcif.TimeResult {
	if len(attempts) != format.ExpectedSolveCount() {
		return wcif.Skipped[wcif.CentiSeconds]()
	}
	values := make([]wcif.CentiSeconds, 0, len(attempts))
	failures := 0
	for _, a := range attempts {
		v, ok := a.Value()
		if !ok {
			if a.Kind() == wcif.KindSkipped {
				return wcif.Skipped[wcif.CentiSeconds]()
			}
			failures++
			continue
		}
		values = append(values, v)
	}

	var counted []wcif.CentiSeconds
	switch format {
	case wcif.AverageOf5:
		if failures > 1 {
			return wcif.DNF[wcif.CentiSeconds]()
		}
		slices.Sort(values)
		// A single failure is the dropped worst attempt.
		counted = values[1 : len(values)-1+failures]
	case wcif.MeanOf3:
		if failures > 0 {
			return wcif.DNF[wcif.CentiSeconds]()
		}
		counted = values
	default:
		return wcif.Skipped[wcif.CentiSeconds]()
	}

	var sum uint64
	for _, v := range counted {
		sum += uint64(v)
	}
	if event == wcif.Event333FM {
		sum *= 100
	}
	return wcif.Success(wcif.CentiSeconds(sum / uint64(len(counted))))
}

// Rank sorts results best first and sets their rankings. Results that tie on
// both the ranking result and the best share a rank. Competitors without any
// attempt are moved last and left unranked.
func Rank(results []wcif.RoundResult, format wcif.RoundFormat, event wcif.EventID) {
	compare := compareFor(event)
	byAverage := format.SortBy() == wcif.Average
	order := func(a, b wcif.RoundResult) int {
		if byAverage {
			if c := compare(a.Average, b.Average); c != 0 {
				return c
			}
		}
		return compare(a.Best, b.Best)
	}

	slices.SortStableFunc(results, func(a, b wcif.RoundResult) int {
		if len(a.Attempts) == 0 || len(b.Attempts) == 0 {
			return len(b.Attempts) - len(a.Attempts)
		}
		return -order(a, b)
	})

	var rank uint64
	for i := range results {
		if len(results[i].Attempts) == 0 {
			results[i].Ranking = nil
			continue
		}
		if i == 0 || order(results[i-1], results[i]) != 0 {
			rank = uint64(i + 1)
		}
		r := rank
		results[i].Ranking = &r
	}
}
