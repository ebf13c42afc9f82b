package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "checkna/internal/errors"
	"checkna/pkg/contracts/domain"
)

// tableIDRe matches BPS table identifiers like "6_06" or "6_30"
var tableIDRe = regexp.MustCompile(`^\d+_\d+$`)

// ParamsValidator validates run parameters using struct tags
type ParamsValidator struct {
	validator *validator.Validate
}

// NewParamsValidator creates a new run-parameter validator
func NewParamsValidator() *ParamsValidator {
	v := validator.New()

	v.RegisterValidation("tableid", isTableID)

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ParamsValidator{validator: v}
}

// Validate checks run parameters against their validation tags. Failures are
// classified as configuration errors so callers can re-prompt.
func (p *ParamsValidator) Validate(params domain.RunParams) error {
	if err := p.validator.Struct(params); err != nil {
		var validationErrors validator.ValidationErrors
		if errs, ok := err.(validator.ValidationErrors); ok {
			validationErrors = errs
		}

		var fields []string
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		message := "invalid run parameters"
		if len(fields) > 0 {
			message = fmt.Sprintf("invalid run parameters: %s", strings.Join(fields, ", "))
		}
		return apperrors.InvalidParamsError(message, err)
	}
	return nil
}

// isTableID validates BPS table identifiers
func isTableID(fl validator.FieldLevel) bool {
	return tableIDRe.MatchString(fl.Field().String())
}
