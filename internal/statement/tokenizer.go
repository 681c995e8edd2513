// Package statement turns raw bank statement exports into standardized transactions.
//
// A statement file goes through four steps: Tokenize splits the text into rows
// of cells, BuildRecords keys every data row by the file's own header,
// InferColumns decides which columns carry the date, description and amount,
// and Standardize converts each record into a model.Transaction. Rows that
// cannot be parsed are dropped and counted; only a file without a usable date
// column or amount representation is an error.
package statement

import "strings"

// Tokenize splits CSV text into rows of cells.
//
// Quoted fields may contain commas, line breaks and doubled quotes. A row ends
// at \r, \n or \r\n outside quotes. Rows whose cells are all blank are dropped.
func Tokenize(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cell.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes

		case c == ',' && !inQuotes:
			row = append(row, cell.String())
			cell.Reset()

		case (c == '\r' || c == '\n') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			row = append(row, cell.String())
			cell.Reset()
			rows = appendRow(rows, row)
			row = nil

		default:
			cell.WriteByte(c)
		}
	}

	if cell.Len() > 0 || len(row) > 0 {
		row = append(row, cell.String())
		rows = appendRow(rows, row)
	}

	return rows
}

// appendRow adds row to rows unless every cell is blank.
func appendRow(rows [][]string, row []string) [][]string {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return append(rows, row)
		}
	}
	return rows
}
