package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates request models by their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator builds a StructValidator with the "notblank" rule
// registered and json field names used in messages.
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &StructValidator{validate: v}
}

// Validate checks obj, a struct or pointer to struct. When fields are given
// only those (Go field names) are checked.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrUnsupportedType
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	first := fieldErrs[0]
	return fmt.Errorf("%w: %s", ErrInvalidInput, describe(first))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "http_url":
		return field + " must be an http(s) URL"
	case "uuid":
		return field + " must be a valid id"
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
