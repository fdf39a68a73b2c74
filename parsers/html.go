package parsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nydauron/wcif/wcif"
	"golang.org/x/net/html"
)

// ParseHTML reads every table of the page whose header row names the
// competitor and attempt columns. Tables that do not are skipped. Attempt
// cells are read with the display rule of event.
func ParseHTML(r io.Reader, event wcif.EventID) (*Table, error) {
	z := html.NewTokenizer(r)
	table := Table{Rows: []Row{}}

	isTable := false
	isTableRow := false
	isTableCell := false
	isHeaderRow := false
	isSkippedTable := false

	var columns layout
	var cells []string
	var cellText strings.Builder
	rowNumber := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return &table, nil
		case html.StartTagToken:
			t := z.Token()
			switch t.Data {
			case "table":
				isTable = true
				isSkippedTable = false
				columns = nil
				rowNumber = 0
			case "tr":
				if !isTable {
					continue
				}
				isTableRow = true
				isHeaderRow = false
				cells = cells[:0]
			case "th", "td":
				if !isTableRow {
					continue
				}
				isTableCell = true
				isHeaderRow = isHeaderRow || t.Data == "th"
				cellText.Reset()
			}
		case html.TextToken:
			if isTableCell {
				cellText.WriteString(z.Token().Data)
			}
		case html.EndTagToken:
			t := z.Token()
			switch t.Data {
			case "th", "td":
				if isTableCell {
					cells = append(cells, strings.Join(strings.Fields(cellText.String()), " "))
					isTableCell = false
				}
			case "tr":
				if !isTableRow {
					continue
				}
				isTableRow = false
				if isSkippedTable || len(cells) == 0 {
					continue
				}
				if columns == nil {
					if !isHeaderRow {
						continue
					}
					var err error
					if columns, err = newLayout(cells); err != nil {
						isSkippedTable = true
					}
					continue
				}
				rowNumber++
				row, err := columns.row(cells, event)
				if err != nil {
					return nil, fmt.Errorf("table row %d: %w", rowNumber, err)
				}
				table.Rows = append(table.Rows, row)
			case "table":
				isTable = false
				isTableRow = false
				isTableCell = false
				columns = nil
			}
		}
	}
}
