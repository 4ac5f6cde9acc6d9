package utils

import (
	"fmt"
	"livwise-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("dob", validateDateOfBirth)
	validate.RegisterValidation("pincode", validatePincode)
	validate.RegisterValidation("iso8601", validateISO8601)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateOfBirth(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(fl.Field().String())
}

func validatePincode(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexPincode).MatchString(fl.Field().String())
}

func validateISO8601(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexDateTimeISO8601).MatchString(fl.Field().String())
}

// FormatAllValidationErrors flattens every violation into a single
// "field.path: message" list, comma separated, in declaration order.
func FormatAllValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldPath(fieldError), tagMessage(fieldError)))
	}
	return strings.Join(messages, ", ")
}

func fieldPath(fieldError validator.FieldError) string {
	path := fieldError.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	return path
}

func tagMessage(fieldError validator.FieldError) string {
	message, exists := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !exists {
		return fmt.Sprintf("failed on the '%s' rule", fieldError.Tag())
	}
	if constvars.TagsWithParams[fieldError.Tag()] {
		return fmt.Sprintf(message, fieldError.Param())
	}
	return message
}
