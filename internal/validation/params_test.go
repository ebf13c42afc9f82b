package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "checkna/internal/errors"
	"checkna/pkg/contracts/domain"
)

func TestParamsValidator(t *testing.T) {
	validParams := domain.RunParams{
		KabCode:      7205,
		RefTable:     "6_06",
		DerivedTable: "6_30",
		Keywords:     []string{"rerata"},
	}

	tests := []struct {
		name    string
		mutate  func(*domain.RunParams)
		wantErr bool
	}{
		{
			name:    "valid parameters",
			mutate:  func(p *domain.RunParams) {},
			wantErr: false,
		},
		{
			name:    "empty keyword set is valid",
			mutate:  func(p *domain.RunParams) { p.Keywords = nil },
			wantErr: false,
		},
		{
			name:    "zero kab code",
			mutate:  func(p *domain.RunParams) { p.KabCode = 0 },
			wantErr: true,
		},
		{
			name:    "negative kab code",
			mutate:  func(p *domain.RunParams) { p.KabCode = -7205 },
			wantErr: true,
		},
		{
			name:    "malformed ref table id",
			mutate:  func(p *domain.RunParams) { p.RefTable = "six_oh_six" },
			wantErr: true,
		},
		{
			name:    "empty derived table id",
			mutate:  func(p *domain.RunParams) { p.DerivedTable = "" },
			wantErr: true,
		},
		{
			name:    "upper-case keyword rejected",
			mutate:  func(p *domain.RunParams) { p.Keywords = []string{"Rerata"} },
			wantErr: true,
		},
	}

	validator := NewParamsValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams
			tt.mutate(&params)

			err := validator.Validate(params)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsInvalidParams(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsTableIDFormats(t *testing.T) {
	validator := NewParamsValidator()

	valid := []string{"6_06", "6_30", "12_345"}
	for _, id := range valid {
		params := domain.RunParams{KabCode: 7205, RefTable: id, DerivedTable: "6_30"}
		assert.NoError(t, validator.Validate(params), "table id %q should be accepted", id)
	}

	invalid := []string{"6-06", "6_", "_06", "606", "6_06_kec"}
	for _, id := range invalid {
		params := domain.RunParams{KabCode: 7205, RefTable: id, DerivedTable: "6_30"}
		assert.Error(t, validator.Validate(params), "table id %q should be rejected", id)
	}
}
