package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"checkna/internal/config"
	apperrors "checkna/internal/errors"
	"checkna/pkg/contracts/domain"
)

// KecSheetName returns the sheet name holding the sub-region breakdown of a
// table, e.g. "6_06" -> "6_06_kec".
func KecSheetName(tableID string) string {
	return tableID + config.KecSheetSuffix
}

// ParseTableSheet reads one sheet of a BPS workbook into a Table. The first
// row is the header; every later row contributes one cell per column. Cells
// that parse as numbers become numeric cells, everything else stays text.
func ParseTableSheet(path, sheetName string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.SheetNotFoundError(sheetName, path, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.SheetNotFoundError(sheetName, path,
			fmt.Errorf("sheet is empty"))
	}

	header := rows[0]
	table := &domain.Table{
		Name:    sheetName,
		Columns: make([]domain.Column, len(header)),
	}
	for j, name := range header {
		table.Columns[j] = domain.Column{Name: strings.TrimSpace(name)}
	}

	for _, row := range rows[1:] {
		for j := range table.Columns {
			var raw string
			if j < len(row) {
				raw = strings.TrimSpace(row[j])
			}
			table.Columns[j].Cells = append(table.Columns[j].Cells, parseCell(raw))
		}
	}

	return table, nil
}

// parseCell converts a raw sheet value into its typed representation
func parseCell(raw string) domain.Cell {
	if raw == "" {
		return domain.Cell{Kind: domain.CellEmpty}
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return domain.NumberCell(v)
	}
	return domain.TextCell(raw)
}
