package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} .'\-]*$`)
	phonePattern = regexp.MustCompile(`^[0-9]{3,}$`)
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// fieldValidator returns the shared validator with the field rules registered.
func fieldValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		rules := map[string]validator.Func{
			"entityname": func(fl validator.FieldLevel) bool {
				return namePattern.MatchString(fl.Field().String())
			},
			"phone": func(fl validator.FieldLevel) bool {
				return phonePattern.MatchString(fl.Field().String())
			},
			"nonblank": func(fl validator.FieldLevel) bool {
				return strings.TrimSpace(fl.Field().String()) != ""
			},
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Errorf("register %s: %w", tag, err))
			}
		}
		validate = v
	})
	return validate
}

// checkField validates value against tag, reporting failures as a *FieldError.
func checkField(field, value, tag, constraint string) error {
	err := fieldValidator().Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &FieldError{Field: field, Value: value, Constraint: constraint}
	}
	return fmt.Errorf("validate %s: %w", field, err)
}
