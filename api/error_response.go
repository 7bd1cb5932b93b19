package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorField points at the request field which caused the error.
type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// human-readable messages for the validation tags in use
var tagMessages = map[string]string{
	"required": "this field is required",
	"min":      "value is too small",
	"max":      "value is too large",
	"oneof":    "must be one of the allowed values",
	"m4file":   "not an m4 or autoconf file name",
}

// ExtractErrorFields turns validation errors into [ErrorField]s. Other errors give nothing.
func ExtractErrorFields(err error) []ErrorField {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "invalid value"
		}

		fields = append(fields, ErrorField{FieldName: fe.Field(), ErrorMessage: msg})
	}

	return fields
}
