package statement

import (
	"fmt"
	"strings"

	"github.com/Veraticus/nestegg/internal/model"
)

// BuildRecords treats the first row as the header and keys every later row by it.
//
// Empty header cells become column_N (1-based). Repeated header names get a
// ".1", ".2" suffix so no column is silently shadowed. Rows shorter than the
// header are padded with empty strings; cells beyond the header are ignored.
func BuildRecords(rows [][]string) ([]string, []model.Record) {
	if len(rows) == 0 {
		return nil, nil
	}

	header := headerNames(rows[0])
	records := make([]model.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := make(model.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	return header, records
}

func headerNames(cells []string) []string {
	header := make([]string, len(cells))
	seen := make(map[string]int, len(cells))

	for i, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		header[i] = name
	}

	return header
}
