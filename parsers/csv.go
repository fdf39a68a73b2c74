package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Nydauron/wcif/wcif"
)

// ParseCSV reads a comma separated results table of event.
func ParseCSV(r io.Reader, event wcif.EventID) (*Table, error) {
	buf := bufio.NewReader(r)
	column_str, err := buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	columns, err := newLayout(strings.Split(strings.TrimRight(column_str, "\r\n"), ","))
	if err != nil {
		return nil, err
	}

	parsedTable := Table{Rows: []Row{}}
	lineNumber := 1
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		lineNumber++
		if trimmed := strings.TrimRight(line, "\r\n"); trimmed != "" {
			row, rowErr := columns.row(strings.Split(trimmed, ","), event)
			if rowErr != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, rowErr)
			}
			parsedTable.Rows = append(parsedTable.Rows, row)
		}
		if err == io.EOF {
			break
		}
	}

	return &parsedTable, nil
}
