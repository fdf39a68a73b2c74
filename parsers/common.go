// Package parsers reads round results tables (as published on results pages
// or exported to CSV) into rows of attempts.
package parsers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Nydauron/wcif/wcif"
)

const RANK_COL_NAME = "#"
const NAME_COL_NAME = "Name"
const WCA_ID_COL_NAME = "WCA ID"
const BEST_COL_NAME = "Best"
const AVERAGE_COL_NAME = "Average"

var attemptColRegex = regexp.MustCompile(`^[0-9]+$`)

var ErrMissingColumn = errors.New("missing column")

type Table struct {
	Rows []Row
}

// Row is one competitor's line of a results table. Rank, best and average
// cells are not kept since they are derived from the attempts.
//
// Attempts are packed as TimeResult values; move counts and multiblind
// results are reinterpreted with wcif.AsMoveCount and wcif.AsMultiBlind.
type Row struct {
	Name     string
	WCAID    *wcif.WCAID
	Attempts []wcif.TimeResult
}

type column int

const (
	ignoredColumn column = iota
	nameColumn
	wcaIDColumn
	attemptColumn
)

// layout maps cell positions of a table to what they hold.
type layout []column

func newLayout(headers []string) (layout, error) {
	l := make(layout, len(headers))
	hasName, hasAttempt := false, false
	for i, h := range headers {
		switch h = strings.TrimSpace(h); {
		case h == NAME_COL_NAME:
			l[i] = nameColumn
			hasName = true
		case h == WCA_ID_COL_NAME:
			l[i] = wcaIDColumn
		case attemptColRegex.MatchString(h):
			l[i] = attemptColumn
			hasAttempt = true
		default:
			// rank, best, average and anything unknown
			l[i] = ignoredColumn
		}
	}
	if !hasName {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, NAME_COL_NAME)
	}
	if !hasAttempt {
		return nil, fmt.Errorf("%w: no attempt columns", ErrMissingColumn)
	}
	return l, nil
}

// row reads cells with the attempt display rule of event.
func (l layout) row(cells []string, event wcif.EventID) (Row, error) {
	if len(cells) != len(l) {
		return Row{}, fmt.Errorf("row has different amount of cells than the number of expected column headers: %v", len(cells))
	}
	row := Row{}
	for i, col := range l {
		trimmedCell := strings.TrimSpace(cells[i])
		switch col {
		case nameColumn:
			row.Name = trimmedCell
		case wcaIDColumn:
			// Newcomers have no id yet
			if trimmedCell == "" {
				continue
			}
			id, err := wcif.ParseWCAID(trimmedCell)
			if err != nil {
				return Row{}, err
			}
			row.WCAID = &id
		case attemptColumn:
			result, err := event.ParseResult(trimmedCell)
			if err != nil {
				return Row{}, fmt.Errorf("attempt %d: %w", len(row.Attempts)+1, err)
			}
			row.Attempts = append(row.Attempts, result)
		}
	}
	return row, nil
}
