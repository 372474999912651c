package config

import (
	"fmt"

	"github.com/bootgen-dev/bootgen/internal/project"
	"github.com/go-playground/validator/v10"
)

// ValidatorOption configures the validator
type ValidatorOption func(*validator.Validate)

// WithJavaPackageRule registers the "javapackage" tag
func WithJavaPackageRule() ValidatorOption {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation("javapackage", func(fl validator.FieldLevel) bool {
			return project.IsJavaPackage(fl.Field().String())
		})
	}
}

// NewValidator creates a validator with the given options applied
func NewValidator(opts ...ValidatorOption) *validator.Validate {
	v := validator.New()
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator(WithJavaPackageRule())

// ValidateStruct validates a struct using validator tags
func ValidateStruct(v *validator.Validate, target any) error {
	if v == nil {
		v = defaultValidator
	}

	if err := v.Struct(target); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
