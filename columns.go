package kana

import (
	"fmt"
	"slices"
	"strings"
)

// Column indexes a chart column. Columns 0-15 are the vowel column, the
// consonant groups and ん; columns 16-26 are the youon digraphs.
type Column int

const (
	ColumnA Column = iota
	ColumnKa
	ColumnGa
	ColumnSa
	ColumnZa
	ColumnTa
	ColumnDa
	ColumnNa
	ColumnHa
	ColumnBa
	ColumnPa
	ColumnMa
	ColumnYa
	ColumnRa
	ColumnWa
	ColumnN
	ColumnKya
	ColumnGya
	ColumnJa
	ColumnSha
	ColumnCha
	ColumnNya
	ColumnHya
	ColumnBya
	ColumnPya
	ColumnMya
	ColumnRya
)

// NumColumns is the number of selectable chart columns.
const NumColumns = 27

var columnNames = [NumColumns]string{
	"a", "ka", "ga", "sa", "za", "ta", "da", "na", "ha", "ba", "pa", "ma", "ya", "ra", "wa", "n",
	"kya", "gya", "ja", "sha", "cha", "nya", "hya", "bya", "pya", "mya", "rya",
}

var (
	seion = []Column{
		ColumnA, ColumnKa, ColumnSa, ColumnTa, ColumnNa, ColumnHa,
		ColumnMa, ColumnYa, ColumnRa, ColumnWa, ColumnN,
	}
	dakuon = []Column{ColumnGa, ColumnZa, ColumnDa, ColumnBa, ColumnPa}
	yoon   = []Column{
		ColumnKya, ColumnGya, ColumnJa, ColumnSha, ColumnCha, ColumnNya,
		ColumnHya, ColumnBya, ColumnPya, ColumnMya, ColumnRya,
	}
)

// Seion returns the plain columns plus ん.
func Seion() []Column { return slices.Clone(seion) }

// Dakuon returns the voiced and semi-voiced columns.
func Dakuon() []Column { return slices.Clone(dakuon) }

// Yoon returns the palatalized digraph columns.
func Yoon() []Column { return slices.Clone(yoon) }

// Groups maps group names to their columns.
func Groups() map[string][]Column {
	return map[string][]Column{
		"seion":  Seion(),
		"dakuon": Dakuon(),
		"yoon":   Yoon(),
	}
}

// Valid reports whether c is a chart column.
func (c Column) Valid() bool {
	return c >= 0 && c < NumColumns
}

func (c Column) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// ParseColumns parses a comma or space separated list of group names
// ("seion", "dakuon", "yoon", "all") and column names ("ka", "kya").
// Order is kept; duplicates are kept too.
func ParseColumns(list string) ([]Column, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '+'
	})

	var columns []Column
	for _, f := range fields {
		name := strings.ToLower(f)
		if name == "all" {
			columns = append(columns, Seion()...)
			columns = append(columns, Dakuon()...)
			columns = append(columns, Yoon()...)
			continue
		}
		if group, ok := Groups()[name]; ok {
			columns = append(columns, group...)
			continue
		}
		i := slices.Index(columnNames[:], name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, f)
		}
		columns = append(columns, Column(i))
	}
	return columns, nil
}
