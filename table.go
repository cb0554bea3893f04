package kana

import (
	"fmt"

	"github.com/samber/lo"
)

// Table is a grid of Mora with one row per vowel and one column per selected
// chart column. Empty chart cells are kept as invalid Mora.
type Table struct {
	columns []Column
	cells   [][]Mora
}

// GetTable projects the charts onto the given columns, in the given order.
// It panics if a column is outside the chart.
func GetTable(columns []Column) Table {
	for _, c := range columns {
		if !c.Valid() {
			panic(fmt.Sprintf("kana: column index %d out of range [0, %d)", int(c), NumColumns))
		}
	}

	cells := make([][]Mora, NumRows)
	for r := range cells {
		cells[r] = make([]Mora, len(columns))
		for i, c := range columns {
			cells[r][i] = FromRomaji(Cell(Romaji, r, int(c)))
		}
	}
	return Table{columns: append([]Column(nil), columns...), cells: cells}
}

// Rows returns the number of rows.
func (t Table) Rows() int { return len(t.cells) }

// Cols returns the number of columns.
func (t Table) Cols() int { return len(t.columns) }

// Columns returns the chart columns the table was built from.
func (t Table) Columns() []Column { return append([]Column(nil), t.columns...) }

// At returns the Mora at (row, col).
func (t Table) At(row, col int) Mora { return t.cells[row][col] }

// Row returns a copy of one row.
func (t Table) Row(row int) []Mora { return append([]Mora(nil), t.cells[row]...) }

// Valid returns the valid Mora in row-major order.
func (t Table) Valid() []Mora {
	return lo.Filter(lo.Flatten(t.cells), func(m Mora, _ int) bool {
		return m.IsValid()
	})
}

// Distinct returns the structurally distinct valid Mora, first occurrence
// first.
func (t Table) Distinct() []Mora {
	return lo.Uniq(t.Valid())
}
