package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"shipdesk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request bodies against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return &RequestValidator{validate: v}
}

// Validate reports every failing field as a typed validation error.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	errList := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errList = append(errList, fieldError(fe))
	}
	return errors.Join(errList...)
}

func fieldError(fe validator.FieldError) error {
	name := strings.TrimPrefix(fe.Namespace(), rootName(fe))
	switch fe.Tag() {
	case "required", "required_if", "required_unless":
		return errs.NewValueIsRequiredError(name)
	case "gt", "gte":
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("must be %s %s", comparison(fe.Tag()), fe.Param()))
	case "oneof":
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("must be one of: %s", fe.Param()))
	default:
		return errs.NewValueIsInvalidError(name)
	}
}

func rootName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[:i+1]
	}
	return ""
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}
