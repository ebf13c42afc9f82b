package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checkna/pkg/contracts/domain"
)

func labelTable(kabCode float64, idKab string) *domain.Table {
	return &domain.Table{
		Columns: []domain.Column{
			{Name: "kab", Cells: []domain.Cell{domain.NumberCell(kabCode)}},
			{Name: "id_kab", Cells: []domain.Cell{domain.TextCell(idKab)}},
		},
	}
}

func TestRegionLabel(t *testing.T) {
	tests := []struct {
		name     string
		idKab    string
		expected string
	}{
		{
			name:     "bracketed code prefix",
			idKab:    "[7205] Kota Bandung",
			expected: "Kota_Bandung",
		},
		{
			name:     "plain name",
			idKab:    "Buol",
			expected: "Buol",
		},
		{
			name:     "punctuation collapses to underscores",
			idKab:    "Toli-Toli",
			expected: "Toli_Toli",
		},
		{
			name:     "multiple spaces collapse",
			idKab:    "[7203]  Kabupaten   Banggai Kepulauan",
			expected: "Kabupaten_Banggai_Kepulauan",
		},
		{
			name:     "bracket-only annotation falls back to code",
			idKab:    "[7205]",
			expected: "7205",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RegionLabel(labelTable(7205, tt.idKab), 7205))
		})
	}
}

func TestRegionLabelFallbacks(t *testing.T) {
	t.Run("missing id_kab column", func(t *testing.T) {
		table := &domain.Table{Columns: []domain.Column{
			{Name: "kab", Cells: []domain.Cell{domain.NumberCell(7205)}},
		}}
		assert.Equal(t, "7205", RegionLabel(table, 7205))
	})

	t.Run("no row matches code", func(t *testing.T) {
		assert.Equal(t, "9999", RegionLabel(labelTable(7205, "[7205] Buol"), 9999))
	})

	t.Run("empty id_kab cell", func(t *testing.T) {
		table := &domain.Table{Columns: []domain.Column{
			{Name: "kab", Cells: []domain.Cell{domain.NumberCell(7205)}},
			{Name: "id_kab", Cells: []domain.Cell{{Kind: domain.CellEmpty}}},
		}}
		assert.Equal(t, "7205", RegionLabel(table, 7205))
	})
}

func TestFormatAnimalName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single word", input: "sapi", expected: "Sapi"},
		{name: "two words", input: "ayam_kampung", expected: "Ayam Kampung"},
		{name: "three words", input: "puyuh_pedaging_lokal", expected: "Puyuh Pedaging Lokal"},
		{name: "empty token", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAnimalName(tt.input))
		})
	}
}
