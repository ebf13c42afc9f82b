package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	err := New(ErrCodeDataShape, "dataprocessing", "expected column missing")
	assert.Equal(t, "dataprocessing: expected column missing", err.Error())

	wrapped := Wrap(ErrCodeWriteFailed, "exporter.write", "failed to save", errors.New("disk full"))
	assert.Equal(t, "exporter.write: failed to save: disk full", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(ErrCodeDataShape, "op", "message", inner)

	assert.ErrorIs(t, err, inner)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "direct app error",
			err:      MissingInputError("6_06", "/data"),
			expected: ErrCodeMissingInput,
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("context: %w", ColumnNotFoundError("kab", "6_06_kec")),
			expected: ErrCodeDataShape,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestClassificationPredicates(t *testing.T) {
	missing := MissingInputError("6_30", "/data")
	require.True(t, IsMissingInput(missing))
	assert.False(t, IsDataShape(missing))

	shape := SheetNotFoundError("6_06_kec", "/data/tabel.xlsx", errors.New("no sheet"))
	require.True(t, IsDataShape(shape))
	assert.False(t, IsMissingInput(shape))

	params := InvalidParamsError("bad kab code", nil)
	assert.True(t, IsInvalidParams(params))
}

func TestMissingInputErrorMessage(t *testing.T) {
	err := MissingInputError("6_06", "/data")

	// Diagnostic must name the identifier and the searched directory
	assert.Contains(t, err.Error(), "6_06")
	assert.Contains(t, err.Error(), "/data")
}
