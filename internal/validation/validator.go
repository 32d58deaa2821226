// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrorCode is the API error code for failed request validation.
const ErrorCode = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error returns the human-readable message.
func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError collects the field errors of one request.
type RequestValidationError struct {
	Fields []FieldError
}

// Error joins the field messages.
func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

// Details returns the error in the shape used for APIError.Details.
func (ve *RequestValidationError) Details() map[string]interface{} {
	if len(ve.Fields) == 1 {
		return map[string]interface{}{
			"field": ve.Fields[0].Field,
			"tag":   ve.Fields[0].Tag,
		}
	}
	return map[string]interface{}{"fields": ve.Fields}
}

// GetValidator returns the process-wide validator. It caches struct metadata,
// so one instance is shared.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report the name clients see: json tag, then query tag, then Go name.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "query"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// ValidateStruct validates s and returns nil or a *RequestValidationError.
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    writeValidationError(w, verr)
//	    return
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{Fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translate(fe),
		}
	}
	return &RequestValidationError{Fields: fields}
}

var simpleMessages = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
	"email":    "%s must be a valid email address",
	"url":      "%s must be a valid URL",
	"alphanum": "%s must contain only letters and digits",
}

var paramMessages = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translate(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if tmpl, ok := simpleMessages[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := paramMessages[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
