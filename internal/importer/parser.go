package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	enc "github.com/MrJamesThe3rd/intake/internal/encoding"
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

var ErrNoLayout = errors.New("no service area columns found: expected name, area, zip, postal code, or city and state")

var delimiters = []rune{',', ';', '\t'}

// Result is the outcome of reading one sheet.
type Result struct {
	Layout  string
	Areas   []profile.ServiceArea
	Skipped int
}

// Parser reads service-area sheets exported from spreadsheets or CRMs.
// The encoding, delimiter and column layout are all detected.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Result, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for _, delim := range delimiters {
		rows, err := readRows(raw, delim)
		if err != nil {
			continue
		}

		layout, cols, headerIdx, ok := detectLayout(rows)
		if !ok {
			continue
		}

		res := parseRows(layout, cols, rows[headerIdx+1:])
		res.Layout = layout.Name

		return res, nil
	}

	return nil, ErrNoLayout
}

func readRows(raw []byte, delim rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// detectLayout scans rows for a header matching a known layout.
func detectLayout(rows [][]string) (Layout, colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := indexRow(row)

		for _, l := range layouts {
			if l.matches(cols) {
				return l, cols, rowIdx, true
			}
		}
	}

	return Layout{}, nil, 0, false
}

// parseRows builds areas from data rows. Blank names are skipped, as are
// repeats of a name already seen (compared case-insensitively).
func parseRows(l Layout, cols colIndex, rows [][]string) *Result {
	res := &Result{Areas: []profile.ServiceArea{}}
	seen := make(map[string]bool)

	for _, row := range rows {
		parts := make([]string, 0, len(l.NameCols))
		for _, col := range l.NameCols {
			if v := cellValue(row, cols[col]); v != "" {
				parts = append(parts, v)
			}
		}

		name := strings.Join(parts, ", ")
		if name == "" {
			res.Skipped++
			continue
		}

		key := strings.ToLower(name)
		if seen[key] {
			res.Skipped++
			continue
		}

		seen[key] = true

		area := profile.ServiceArea{Name: name}
		if idx, ok := cols[l.DescCol]; ok {
			area.Description = cellValue(row, idx)
		}

		res.Areas = append(res.Areas, area)
	}

	return res
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
