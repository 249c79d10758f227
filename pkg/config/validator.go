package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"codesnap/pkg/color"
	snaperrors "codesnap/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("rgba_hex", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || color.IsValidHex(s)
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the configuration.
func (c *SnapshotConfig) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if c.Background.Solid == "" && c.Background.Gradient == nil {
		return snaperrors.NewValidationError("background", "background must be a colour or a gradient", nil)
	}

	switch {
	case c.Content.Code != nil && len(c.Content.CommandOutput) > 0:
		return snaperrors.NewValidationError("content", "content must be either code or command output, not both", nil)
	case c.Content.Code == nil && len(c.Content.CommandOutput) == 0:
		return snaperrors.NewValidationError("content", "content is required", nil)
	}

	if c.Content.Code != nil {
		for i, h := range c.Content.Code.HighlightLines {
			if h.Color == "" {
				return snaperrors.NewValidationError(fmt.Sprintf("content.highlight_lines[%d].color", i), "highlight colour is required", nil)
			}
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into snapshot validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return snaperrors.NewValidationError(field, msg, err)
	}

	return snaperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns SnapshotConfig.Window.Border.Color into window.border.color.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = toSnake(part)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
