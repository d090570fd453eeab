package binder

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	timepkg "time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/segmentio/encoding/json"
)

const (
	date     = "date"
	gt       = "gt"
	gte      = "gte"
	mx       = "max"
	mn       = "min"
	ne       = "ne"
	oneof    = "oneof"
	required = "required"
)

var (
	timeType        = reflect.TypeOf(timepkg.Time{})
	unknownFieldsRE = regexp.MustCompile(`^json: unknown field "(.*)"$`)
)

func matchUnknownField(err error) (string, bool) {
	matches := unknownFieldsRE.FindAllStringSubmatch(err.Error(), -1)
	if len(matches) > 0 && len(matches[0]) > 1 {
		return matches[0][1], true
	}
	return "", false
}

func formatUnmarshalTypeError(err *json.UnmarshalTypeError) string {
	return fmt.Sprintf("%q should be of type %s", strings.Trim(err.Field, "."), err.Type)
}

func formatSchemaConversionError(err schema.ConversionError) string {
	return fmt.Sprintf("%q should be of type %s", err.Key, err.Type)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case date:
		return fmt.Sprintf("%q should be in the format of YYYY-MM-DD", field)
	case gt:
		v := err.Param()
		if v == "" && err.Type() == timeType {
			v = "now"
		}
		return fmt.Sprintf("%q must be greater than %s", field, v)
	case gte:
		v := err.Param()
		if v == "" && err.Type() == timeType {
			v = "now"
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, v)
	case mx:
		return fmt.Sprintf("%q must be at most %s", field, err.Param())
	case mn:
		return fmt.Sprintf("%q must be at least %s", field, err.Param())
	case ne:
		return fmt.Sprintf("%q can't be %s", field, err.Param())
	case oneof:
		return fmt.Sprintf("%q must be one of: %s", field, strings.Join(strings.Split(err.Param(), " "), ", "))
	case required:
		return fmt.Sprintf("%q is required", field)
	}

	return fmt.Sprintf("%q is invalid", field)
}
