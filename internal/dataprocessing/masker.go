package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"checkna/internal/config"
	apperrors "checkna/internal/errors"
	"checkna/internal/infrastructure"
	"checkna/pkg/contracts/domain"
)

// FamilyColumn is a reference column that drives the masking rule
type FamilyColumn struct {
	Name   string
	Animal string
}

// FamilyColumns enumerates the reference columns of the form
// n_rtup_ternak_usaha_<animal>, in column order. The animal token is the
// join of all underscore segments after the fourth.
func FamilyColumns(ref *domain.Table) []FamilyColumn {
	var families []FamilyColumn
	for _, col := range ref.Columns {
		if !strings.HasPrefix(col.Name, config.FamilyColumnPrefix) {
			continue
		}
		parts := strings.Split(col.Name, "_")
		families = append(families, FamilyColumn{
			Name:   col.Name,
			Animal: strings.Join(parts[4:], "_"),
		})
	}
	return families
}

// MatchingColumns selects the derived columns a family applies to: the name
// must contain the animal token and at least one keyword, case-insensitively
// for the keyword. Order of discovery follows derived-table column order.
func MatchingColumns(derived *domain.Table, animal string, keywords []string) []string {
	var matched []string
	for _, col := range derived.Columns {
		if !strings.Contains(col.Name, animal) {
			continue
		}
		lower := strings.ToLower(col.Name)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, col.Name)
				break
			}
		}
	}
	return matched
}

// maskedKecSet computes the sub-regions whose reference count falls strictly
// inside the mask bounds. Non-numeric and empty cells never mask.
func maskedKecSet(ref *domain.Table, familyName string) (map[string]bool, error) {
	famCol, ok := ref.Column(familyName)
	if !ok {
		return nil, apperrors.ColumnNotFoundError(familyName, ref.Name)
	}
	kecCol, ok := ref.Column(config.KecColumn)
	if !ok {
		return nil, apperrors.ColumnNotFoundError(config.KecColumn, ref.Name)
	}

	masked := make(map[string]bool)
	for i, cell := range famCol.Cells {
		if cell.Kind != domain.CellNumber {
			continue
		}
		if cell.Number > config.MaskLowerBound && cell.Number < config.MaskUpperBound {
			masked[kecCol.Cells[i].Key()] = true
		}
	}
	return masked, nil
}

// BuildTemplate produces the template table: a copy of the region-filtered
// derived table where every cell of a matching column is overwritten with
// the NA sentinel when its sub-region is masked by the reference counts.
//
// A derived column naming several animal tokens is visited once per token;
// the overwrite is idempotent per cell so the repeat visits are harmless and
// keep the processing order observable in the logs.
func BuildTemplate(ctx context.Context, ref, derived *domain.Table, keywords []string) (*domain.Table, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	template := derived.Clone()
	template.Name = config.TemplateSheetName

	for _, family := range FamilyColumns(ref) {
		logger.Info("Processing animal family",
			slog.String("animal", FormatAnimalName(family.Animal)),
			slog.String("reference_column", family.Name))

		matching := MatchingColumns(template, family.Animal, keywords)
		if len(matching) == 0 {
			logger.Debug("No derived columns match family",
				slog.String("animal", family.Animal))
			continue
		}

		masked, err := maskedKecSet(ref, family.Name)
		if err != nil {
			return nil, err
		}

		kecCol, ok := template.Column(config.KecColumn)
		if !ok {
			return nil, apperrors.ColumnNotFoundError(config.KecColumn, template.Name)
		}

		for _, name := range matching {
			col, _ := template.Column(name)
			overwritten := 0
			for i := range col.Cells {
				if masked[kecCol.Cells[i].Key()] {
					col.Cells[i] = domain.NACell()
					overwritten++
				}
			}
			logger.Debug("Applied sentinel overwrite",
				slog.String("column", name),
				slog.Int("cells_overwritten", overwritten))
		}
	}

	return template, nil
}
