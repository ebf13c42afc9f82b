package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"checkna/internal/config"
	"checkna/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	base := t.TempDir()
	return &config.Paths{
		ExecutableDir: base,
		DataDir:       filepath.Join(base, "data"),
		OutputDir:     filepath.Join(base, "output"),
		LogsDir:       filepath.Join(base, "logs"),
	}
}

func sampleTable(name string) *domain.Table {
	return &domain.Table{
		Name: name,
		Columns: []domain.Column{
			{Name: "kab", Cells: []domain.Cell{domain.NumberCell(7205), domain.NumberCell(7205)}},
			{Name: "kec", Cells: []domain.Cell{domain.TextCell("010"), domain.TextCell("020")}},
			{Name: "populasi_sapi", Cells: []domain.Cell{domain.NumberCell(10), domain.NACell()}},
		},
	}
}

func TestWorkbookWriterWrite(t *testing.T) {
	paths := testPaths(t)
	writer := NewWorkbookWriter(paths)

	sheets := []Sheet{
		{Name: "acuan", Table: sampleTable("acuan")},
		{Name: "riil", Table: sampleTable("riil")},
		{Name: "template", Table: sampleTable("template")},
	}

	require.NoError(t, writer.Write("result.xlsx", sheets))

	outPath := paths.GetOutputPath("result.xlsx")
	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	// Sheets appear in exactly the requested order
	assert.Equal(t, []string{"acuan", "riil", "template"}, f.GetSheetList())

	rows, err := f.GetRows("template")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"kab", "kec", "populasi_sapi"}, rows[0])
	assert.Equal(t, "10", rows[1][2])
	assert.Equal(t, "NA", rows[2][2])
}

func TestWorkbookWriterWriteEmptyTable(t *testing.T) {
	paths := testPaths(t)
	writer := NewWorkbookWriter(paths)

	empty := &domain.Table{
		Name: "acuan",
		Columns: []domain.Column{
			{Name: "kab"},
			{Name: "kec"},
		},
	}

	require.NoError(t, writer.Write("empty.xlsx", []Sheet{{Name: "acuan", Table: empty}}))

	f, err := excelize.OpenFile(paths.GetOutputPath("empty.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("acuan")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"kab", "kec"}, rows[0])
}

func TestWorkbookWriterAbsolutePath(t *testing.T) {
	paths := testPaths(t)
	writer := NewWorkbookWriter(paths)

	target := filepath.Join(t.TempDir(), "nested", "out.xlsx")
	require.NoError(t, writer.Write(target, []Sheet{{Name: "acuan", Table: sampleTable("acuan")}}))

	_, err := os.Stat(target)
	assert.NoError(t, err)
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name        string
		derivedFile string
		regionLabel string
		expected    string
	}{
		{
			name:        "standard derived file",
			derivedFile: "tabel_6_30.xlsx",
			regionLabel: "Kota_Bandung",
			expected:    "PROCESSED_tabel_6_30_KOTA_BANDUNG.xlsx",
		},
		{
			name:        "label already uppercase",
			derivedFile: "tabel_6_30.xlsx",
			regionLabel: "BUOL",
			expected:    "PROCESSED_tabel_6_30_BUOL.xlsx",
		},
		{
			name:        "file without xlsx extension",
			derivedFile: "tabel_6_30.xls",
			regionLabel: "Buol",
			expected:    "PROCESSED_tabel_6_30.xls_BUOL.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OutputFileName(tt.derivedFile, tt.regionLabel))
		})
	}
}
