package kana

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		cols    int
		valid   int
	}{
		{"seion", Seion(), 11, 47},
		{"dakuon", Dakuon(), 5, 25},
		{"yoon", Yoon(), 11, 32},
		{"seion+dakuon", append(Seion(), Dakuon()...), 16, 72},
		{"empty", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := GetTable(tt.columns)
			assert.Equal(t, NumRows, table.Rows())
			assert.Equal(t, tt.cols, table.Cols())
			assert.Len(t, table.Valid(), tt.valid)
		})
	}
}

func romajiGrid(t Table) [][]string {
	grid := make([][]string, t.Rows())
	for r := range grid {
		for _, m := range t.Row(r) {
			grid[r] = append(grid[r], m.Romaji())
		}
	}
	return grid
}

func TestTableKeepsColumnOrder(t *testing.T) {
	table := GetTable([]Column{ColumnWa, ColumnA, ColumnKa})
	want := [][]string{
		{"wa", "a", "ka"},
		{"", "i", "ki"},
		{"ru", "u", "vu"},
		{"", "e", "ke"},
		{"wo", "o", "ko"},
	}
	if diff := cmp.Diff(want, romajiGrid(table)); diff != "" {
		t.Errorf("romaji grid mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []Column{ColumnWa, ColumnA, ColumnKa}, table.Columns())
}

func TestTableDistinct(t *testing.T) {
	// ぢ is spelled ji, so the だ column repeats the じ Mora
	table := GetTable([]Column{ColumnZa, ColumnDa})
	assert.Len(t, table.Valid(), 10)
	assert.Len(t, table.Distinct(), 9)

	doubled := GetTable([]Column{ColumnKa, ColumnKa})
	assert.Len(t, doubled.Valid(), 10)
	assert.Len(t, doubled.Distinct(), 5)
}

func TestGetTableOutOfRange(t *testing.T) {
	assert.Panics(t, func() { GetTable([]Column{ColumnA, 27}) })
	assert.Panics(t, func() { GetTable([]Column{-1}) })
}

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns("seion, dakuon")
	require.NoError(t, err)
	assert.Equal(t, append(Seion(), Dakuon()...), cols)

	cols, err = ParseColumns("ka+KYA")
	require.NoError(t, err)
	assert.Equal(t, []Column{ColumnKa, ColumnKya}, cols)

	cols, err = ParseColumns("all")
	require.NoError(t, err)
	assert.Len(t, cols, NumColumns)

	_, err = ParseColumns("seion,xa")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestColumnGroupsAreCopies(t *testing.T) {
	s := Seion()
	s[0] = ColumnRya
	assert.Equal(t, ColumnA, Seion()[0])
	assert.Equal(t, "kya", ColumnKya.String())
	assert.Equal(t, "Column(30)", Column(30).String())
}
