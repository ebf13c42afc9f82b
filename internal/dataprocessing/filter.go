package dataprocessing

import (
	"strconv"

	"checkna/internal/config"
	apperrors "checkna/internal/errors"
	"checkna/pkg/contracts/domain"
)

// FilterRegion returns a new table holding only the rows whose kab column
// equals the given kabupaten code, preserving row and column order. Zero
// matching rows is not an error; the caller decides whether an empty result
// is worth reporting.
func FilterRegion(t *domain.Table, kabCode int) (*domain.Table, error) {
	kabCol, ok := t.Column(config.KabColumn)
	if !ok {
		return nil, apperrors.ColumnNotFoundError(config.KabColumn, t.Name)
	}

	out := &domain.Table{Name: t.Name, Columns: make([]domain.Column, len(t.Columns))}
	for j, col := range t.Columns {
		out.Columns[j] = domain.Column{Name: col.Name}
	}

	for i, cell := range kabCol.Cells {
		if !cellEqualsCode(cell, kabCode) {
			continue
		}
		for j := range t.Columns {
			out.Columns[j].Cells = append(out.Columns[j].Cells, t.Columns[j].Cells[i])
		}
	}

	return out, nil
}

// cellEqualsCode matches a kab cell against the target code whether the
// sheet stored it numerically or as text
func cellEqualsCode(cell domain.Cell, code int) bool {
	switch cell.Kind {
	case domain.CellNumber:
		return cell.Number == float64(code)
	case domain.CellText:
		return cell.Text == strconv.Itoa(code)
	default:
		return false
	}
}
