package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks config and seed structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the "entityname" rule next to the built-in ones.
// An entity name is non-blank and has no surrounding spaces, since registries
// compare names exactly.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("entityname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return name != "" && strings.TrimSpace(name) == name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError lists every failed field by its full path,
// e.g. "Factories[0].Designs[1].Cost: gte=0"
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		rule := e.Tag()
		if e.Param() != "" {
			rule += "=" + e.Param()
		}
		messages = append(messages, fmt.Sprintf("%s: %s (got %v)", field, rule, e.Value()))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
