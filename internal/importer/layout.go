package importer

import "strings"

// Layout describes one recognised column arrangement of a service-area
// sheet. Column names are matched case-insensitively.
type Layout struct {
	Name     string
	NameCols []string
	DescCol  string
}

// layouts is tried in order; more specific layouts come first.
var layouts = []Layout{
	{Name: "city-state", NameCols: []string{"city", "state"}, DescCol: "notes"},
	{Name: "zip", NameCols: []string{"zip"}, DescCol: "city"},
	{Name: "postal", NameCols: []string{"postal code"}, DescCol: "city"},
	{Name: "area", NameCols: []string{"area"}, DescCol: "description"},
	{Name: "name", NameCols: []string{"name"}, DescCol: "description"},
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

func indexRow(row []string) colIndex {
	cols := make(colIndex)

	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		if _, seen := cols[name]; name != "" && !seen {
			cols[name] = i
		}
	}

	return cols
}

func (l Layout) matches(cols colIndex) bool {
	for _, name := range l.NameCols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}
