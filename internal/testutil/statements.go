package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StatementBuilder assembles CSV statement exports row by row.
//
// Example:
//
//	path := testutil.NewStatement("Date", "Description", "Amount").
//		Row("05/03/2025", "NETFLIX.COM", "-15.99").
//		Write(t, "march.csv")
type StatementBuilder struct {
	header []string
	rows   [][]string
	crlf   bool
	bom    bool
}

// NewStatement starts a statement with the given header columns.
func NewStatement(header ...string) *StatementBuilder {
	return &StatementBuilder{header: header}
}

// Row appends one data row. Fields containing commas or quotes are quoted.
func (b *StatementBuilder) Row(fields ...string) *StatementBuilder {
	b.rows = append(b.rows, fields)
	return b
}

// WithCRLF ends lines with \r\n as Windows exports do.
func (b *StatementBuilder) WithCRLF() *StatementBuilder {
	b.crlf = true
	return b
}

// WithBOM prefixes the file with a UTF-8 byte-order mark.
func (b *StatementBuilder) WithBOM() *StatementBuilder {
	b.bom = true
	return b
}

// CSV renders the statement.
func (b *StatementBuilder) CSV() string {
	eol := "\n"
	if b.crlf {
		eol = "\r\n"
	}

	var sb strings.Builder
	if b.bom {
		sb.WriteString("\ufeff")
	}
	writeLine(&sb, b.header, eol)
	for _, row := range b.rows {
		writeLine(&sb, row, eol)
	}
	return sb.String()
}

// Write saves the statement under the test's temp directory and returns its path.
func (b *StatementBuilder) Write(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(b.CSV()), 0o600); err != nil {
		t.Fatalf("failed to write statement %s: %v", name, err)
	}
	return path
}

func writeLine(sb *strings.Builder, fields []string, eol string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		if strings.ContainsAny(f, ",\"\r\n") {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		sb.WriteString(f)
	}
	sb.WriteString(eol)
}
