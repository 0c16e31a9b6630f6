package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var enums = map[string][]string{
	"category": {
		"licenses", "vehicles", "drivers", "roads", "traffic_signs",
		"traffic_signals", "right_of_way", "parking", "emergencies", "mixed",
	},
	"difficulty": {"easy", "medium", "hard"},
	"quizmode":   {"study", "practice", "test", "review"},
}

func init() {
	validate = validator.New()

	var errs []error
	for tag, values := range enums {
		allowed := make(map[string]struct{}, len(values))
		for _, v := range values {
			allowed[v] = struct{}{}
		}
		if err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			_, ok := allowed[fl.Field().String()]
			return ok
		}); err != nil {
			errs = append(errs, fmt.Errorf("register %q: %w", tag, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		var errMsgs []string
		for _, err := range verrs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"Field: %s, Tag: %s, Param: %s", err.Namespace(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}

// ValidateVar checks a single value against a tag list, e.g. "required,category".
func ValidateVar(v interface{}, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("validation failed for %q: %w", tag, err)
	}
	return nil
}
