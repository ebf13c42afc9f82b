package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"checkna/internal/config"
	apperrors "checkna/internal/errors"
	"checkna/pkg/contracts/domain"
)

// Sheet pairs a sheet name with the table written under it
type Sheet struct {
	Name  string
	Table *domain.Table
}

// WorkbookWriter writes multi-sheet xlsx workbooks to the output directory
type WorkbookWriter struct {
	paths *config.Paths
}

// NewWorkbookWriter creates a new workbook writer instance
func NewWorkbookWriter(paths *config.Paths) *WorkbookWriter {
	return &WorkbookWriter{paths: paths}
}

// Write creates a workbook with the given sheets in the given order and
// saves it at filePath. The workbook handle is released on every exit path.
func (w *WorkbookWriter) Write(filePath string, sheets []Sheet) error {
	fullPath := w.resolvePath(filePath)

	slog.Info("Writing workbook",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("sheet_count", len(sheets)))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet rather than leaving it empty
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeWriteFailed, "exporter.write",
					fmt.Sprintf("failed to name sheet %q", sheet.Name), err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeWriteFailed, "exporter.write",
					fmt.Sprintf("failed to create sheet %q", sheet.Name), err)
			}
		}

		if err := writeTable(f, sheet.Name, sheet.Table); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeWriteFailed, "exporter.write",
				fmt.Sprintf("failed to write sheet %q", sheet.Name), err)
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeWriteFailed, "exporter.write",
			fmt.Sprintf("failed to save workbook %s", fullPath), err)
	}

	return nil
}

// writeTable writes the header row and all data cells of one table
func writeTable(f *excelize.File, sheetName string, t *domain.Table) error {
	for j, col := range t.Columns {
		cellRef, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cellRef, col.Name); err != nil {
			return err
		}

		for i, cell := range col.Cells {
			if cell.Kind == domain.CellEmpty {
				continue
			}
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cellRef, cellValue(cell)); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellValue maps a union cell onto the native excelize value type
func cellValue(cell domain.Cell) interface{} {
	switch cell.Kind {
	case domain.CellNumber:
		return cell.Number
	default:
		return cell.String()
	}
}

// OutputFileName derives the output workbook name from the derived input
// file and the cleaned region label:
// PROCESSED_<derived-name>_<UPPER(label)>.xlsx
func OutputFileName(derivedFileName, regionLabel string) string {
	name := config.OutputFilePrefix + derivedFileName
	suffix := "_" + strings.ToUpper(regionLabel) + config.ExcelExtension

	if strings.HasSuffix(strings.ToLower(name), config.ExcelExtension) {
		return name[:len(name)-len(config.ExcelExtension)] + suffix
	}
	return name + suffix
}

// resolvePath resolves a path to the output directory
func (w *WorkbookWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return w.paths.GetOutputPath(filePath)
}
