package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern    = regexp.MustCompile(`^[a-z0-9_-]+$`)
	languageCodePattern = regexp.MustCompile(`^[a-z]{2,3}(?:-[A-Za-z0-9]{2,8})?$`)
	pageNamePattern     = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
			return languageCodePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("page_name", func(fl validator.FieldLevel) bool {
			return pageNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate performs schema and cross-field validation on the configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return packdeckerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Packaging.StepDelay < 0 {
		return packdeckerrors.NewValidationError("packaging.step_delay", "step delay must not be negative", nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors
// named after the YAML keys.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return packdeckerrors.NewValidationError(field, msg, err)
	}

	return packdeckerrors.NewValidationError("config", err.Error(), err)
}

var yamlKeys = map[string]string{
	"initialpage":  "initial_page",
	"sidebarwidth": "sidebar_width",
	"themesdir":    "themes_dir",
	"catalogdir":   "catalog_dir",
	"stepdelay":    "step_delay",
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(part)
		if key, ok := yamlKeys[part]; ok {
			part = key
		}
		lowered = append(lowered, part)
	}
	return strings.Join(lowered, ".")
}
