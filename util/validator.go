package util

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("weburl", validateWebURL)
	validate.RegisterValidation("maxbytes", validateMaxBytes)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return NotBlank(fl.Field().String())
}

// weburl accepts absolute http(s) links only.
func validateWebURL(fl validator.FieldLevel) bool {
	return IsURL(fl.Field().String())
}

// maxbytes bounds the UTF-8 encoded length; max counts runes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationMessage flattens validator errors into a short client-facing message.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "validation failed"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field())+" is "+describeTag(fe.Tag()))
	}
	return strings.Join(fields, "; ")
}

func describeTag(tag string) string {
	switch tag {
	case "required", "notblank", "required_without":
		return "required"
	case "email":
		return "not a valid email address"
	case "weburl", "url":
		return "not a valid url"
	case "max", "maxbytes":
		return "too long"
	default:
		return "invalid"
	}
}

func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
