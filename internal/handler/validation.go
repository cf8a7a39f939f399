package handler

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const msgInvalidPayload = "invalid JSON payload"

// fieldMessages maps a JSON field to the message returned when it is missing
// or has the wrong type.
var fieldMessages = map[string]string{
	"name":         "name is required",
	"is_organizer": "is_organizer must be boolean",
	"text":         "text is required",
	"x":            "coordinates must be numeric",
	"y":            "coordinates must be numeric",
	"phase":        "invalid phase",
	"sticky_id":    "sticky_id is required",
	"points":       "points must be integer",
}

func init() {
	// Report validation failures by JSON name instead of Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindingMessage turns a ShouldBindJSON error into a client-facing message.
func bindingMessage(err error) string {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &validationErrs) && len(validationErrs) > 0:
		if msg, ok := fieldMessages[validationErrs[0].Field()]; ok {
			return msg
		}
		return validationErrs[0].Field() + " is invalid"
	case errors.As(err, &typeErr):
		if msg, ok := fieldMessages[typeErr.Field]; ok {
			return msg
		}
	}
	return msgInvalidPayload
}
