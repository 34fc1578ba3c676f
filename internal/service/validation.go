package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "crescendai-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// NewValidator returns a validator that reports JSON field names and knows the slug rule
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateStruct runs the validator and turns its output into field errors
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := &apperrors.FieldErrors{Message: "validation failed"}
	for _, fe := range verrs {
		fields.Add(fe.Field(), fieldMessage(fe))
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "slug":
		return "slug may only contain lowercase letters, numbers and hyphens, and must start with a letter or number"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
