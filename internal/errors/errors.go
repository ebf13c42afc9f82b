package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures by how the pipeline recovers from them
type ErrorCode string

const (
	// ErrCodeInvalidParams marks malformed or out-of-range run parameters.
	// Recovered locally by re-prompting; never fatal.
	ErrCodeInvalidParams ErrorCode = "INVALID_PARAMS"
	// ErrCodeMissingInput marks absent input files. Reported to the operator
	// and the run returns cleanly with no output artifact.
	ErrCodeMissingInput ErrorCode = "MISSING_INPUT"
	// ErrCodeDataShape marks an absent sheet or column. Propagates to the top
	// level and terminates the run.
	ErrCodeDataShape ErrorCode = "DATA_SHAPE"
	// ErrCodeWriteFailed marks a failure while producing the output workbook
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
)

// AppError is a classified application error
type AppError struct {
	Code    ErrorCode
	Op      string
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the given classification
func New(code ErrorCode, op, message string) *AppError {
	return &AppError{Code: code, Op: op, Message: message}
}

// Wrap creates a new AppError wrapping an underlying error
func Wrap(code ErrorCode, op, message string, err error) *AppError {
	return &AppError{Code: code, Op: op, Message: message, Err: err}
}

// MissingInputError creates a missing-input error naming the identifier the
// discovery searched for and where
func MissingInputError(tableID, dir string) *AppError {
	return New(ErrCodeMissingInput, "files.discovery",
		fmt.Sprintf("no input file matching table %q found in %s", tableID, dir))
}

// SheetNotFoundError creates a data-shape error for an absent sheet
func SheetNotFoundError(sheetName, path string, err error) *AppError {
	return Wrap(ErrCodeDataShape, "dataprocessing.parse",
		fmt.Sprintf("sheet %q not found in %s", sheetName, path), err)
}

// ColumnNotFoundError creates a data-shape error for an absent column
func ColumnNotFoundError(columnName, tableName string) *AppError {
	return New(ErrCodeDataShape, "dataprocessing",
		fmt.Sprintf("expected column %q not present in table %s", columnName, tableName))
}

// InvalidParamsError creates a configuration error for rejected run parameters
func InvalidParamsError(message string, err error) *AppError {
	return Wrap(ErrCodeInvalidParams, "validation", message, err)
}

// CodeOf returns the classification of an error, or empty when the error is
// not an AppError
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsMissingInput reports whether the error is classified as missing input
func IsMissingInput(err error) bool {
	return CodeOf(err) == ErrCodeMissingInput
}

// IsDataShape reports whether the error is classified as a data-shape failure
func IsDataShape(err error) bool {
	return CodeOf(err) == ErrCodeDataShape
}

// IsInvalidParams reports whether the error is a parameter validation failure
func IsInvalidParams(err error) bool {
	return CodeOf(err) == ErrCodeInvalidParams
}
