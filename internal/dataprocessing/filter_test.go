package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkna/pkg/contracts/domain"
)

func TestFilterRegion(t *testing.T) {
	table := &domain.Table{
		Name: "6_06_kec",
		Columns: []domain.Column{
			{Name: "kab", Cells: numberCells(7205, 7205, 7301, 7205)},
			{Name: "kec", Cells: []domain.Cell{
				domain.TextCell("010"), domain.TextCell("020"),
				domain.TextCell("010"), domain.TextCell("030"),
			}},
			{Name: "n_rtup_ternak_usaha_sapi", Cells: numberCells(1, 2, 3, 4)},
		},
	}

	tests := []struct {
		name         string
		kabCode      int
		expectedRows int
	}{
		{name: "three matching rows", kabCode: 7205, expectedRows: 3},
		{name: "single matching row", kabCode: 7301, expectedRows: 1},
		{name: "no matching rows", kabCode: 9999, expectedRows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := FilterRegion(table, tt.kabCode)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRows, filtered.RowCount())
			// Column identity and order are preserved
			assert.Equal(t, table.ColumnNames(), filtered.ColumnNames())
		})
	}
}

func TestFilterRegionPreservesRowOrder(t *testing.T) {
	table := &domain.Table{
		Columns: []domain.Column{
			{Name: "kab", Cells: numberCells(7205, 7301, 7205)},
			{Name: "kec", Cells: numberCells(10, 20, 30)},
		},
	}

	filtered, err := FilterRegion(table, 7205)
	require.NoError(t, err)

	kec, ok := filtered.Column("kec")
	require.True(t, ok)
	assert.Equal(t, numberCells(10, 30), kec.Cells)
}

func TestFilterRegionTextualKabCodes(t *testing.T) {
	table := &domain.Table{
		Columns: []domain.Column{
			{Name: "kab", Cells: []domain.Cell{
				domain.TextCell("7205"), domain.TextCell("7301"),
			}},
			{Name: "kec", Cells: numberCells(10, 20)},
		},
	}

	filtered, err := FilterRegion(table, 7205)
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.RowCount())
}

func TestFilterRegionMissingKabColumn(t *testing.T) {
	table := &domain.Table{
		Name: "6_06_kec",
		Columns: []domain.Column{
			{Name: "kec", Cells: numberCells(10)},
		},
	}

	_, err := FilterRegion(table, 7205)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kab")
}
