package statement

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/ofx"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// File is the raw content of one statement export.
type File struct {
	Name string
	Data []byte
}

// Options control how statement files are interpreted.
type Options struct {
	Logger    *slog.Logger
	DateOrder DateOrder
}

// Result is the concatenation of every file's transactions in input order.
type Result struct {
	Transactions []model.Transaction
	Dropped      int
}

// Parse standardizes every file in order. The first structural error aborts the batch.
func Parse(ctx context.Context, files []File, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var res Result
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		var (
			txns    []model.Transaction
			dropped int
			err     error
		)
		if isOFX(f.Name) {
			txns, err = ofx.NewParser().ParseFile(ctx, bytes.NewReader(f.Data))
			if err != nil {
				return Result{}, fmt.Errorf("%s: %w", f.Name, err)
			}
			for i := range txns {
				txns[i].Source = f.Name
			}
		} else {
			text, decodeErr := Decode(f.Data)
			if decodeErr != nil {
				return Result{}, fmt.Errorf("%s: failed to decode: %w", f.Name, decodeErr)
			}
			txns, dropped, err = ParseCSV(logger, f.Name, text, opts.DateOrder)
			if err != nil {
				return Result{}, err
			}
		}

		logger.Debug("Parsed statement file",
			"source", f.Name,
			"transactions", len(txns),
			"dropped_rows", dropped)

		res.Transactions = append(res.Transactions, txns...)
		res.Dropped += dropped
	}

	return res, nil
}

// ParseCSV runs one CSV export through tokenizing, record building, column
// inference and standardization. A nil logger uses slog.Default().
func ParseCSV(logger *slog.Logger, name, text string, order DateOrder) ([]model.Transaction, int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	header, records := BuildRecords(Tokenize(text))
	if header == nil {
		return nil, 0, nil
	}

	mapping, err := InferColumns(name, header)
	if err != nil {
		return nil, 0, err
	}

	logger.Debug("Inferred statement columns",
		"source", name,
		"date", mapping.Date,
		"description", mapping.Description,
		"amount", mapping.Amount,
		"indicator", mapping.Indicator,
		"debit", mapping.Debit,
		"credit", mapping.Credit)

	txns, dropped := Standardize(name, records, mapping, order)
	return txns, dropped, nil
}

// Decode returns data as UTF-8 text, honoring a UTF-8 or UTF-16 byte-order mark.
// Input without a byte-order mark that is not valid UTF-8 is read as Windows-1252.
func Decode(data []byte) (string, error) {
	var decoder transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if !hasBOM(data) && !utf8.Valid(data) {
		decoder = charmap.Windows1252.NewDecoder()
	}
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}

func isOFX(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ofx", ".qfx":
		return true
	default:
		return false
	}
}
