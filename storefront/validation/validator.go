// Package validation holds the declarative input contracts used by forms and
// by the checkout orchestrator. Validation never errors; it returns a Result.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodePattern = regexp.MustCompile(`^[1-9]\d{5}$`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Result is the outcome of validating one value. Errors is keyed by the
// field's JSON name; refinements that span fields use the field they report on.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Refiner is implemented by schemas with whole-object rules. Refine runs only
// after every per-field check has passed.
type Refiner interface {
	Refine() map[string]string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	must(v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	}))
	must(v.RegisterValidation("in_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("in_pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// StrongPassword requires at least 8 characters with an upper-case letter,
// a lower-case letter, a digit and a special character.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Validate checks v's field tags and then, if they pass, its refinements.
// It never panics; a value that cannot be validated is reported invalid.
func Validate(v any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Valid: false, Errors: map[string]string{"_": "invalid input"}}
		}
	}()

	fieldErrs := map[string]string{}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Result{Valid: false, Errors: map[string]string{"_": "invalid input"}}
		}
		for _, fe := range verrs {
			key := fieldKey(fe)
			if _, seen := fieldErrs[key]; !seen {
				fieldErrs[key] = message(fe)
			}
		}
	}
	if len(fieldErrs) == 0 {
		if r, ok := v.(Refiner); ok {
			fieldErrs = r.Refine()
		}
	}
	if len(fieldErrs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: fieldErrs}
}

// fieldKey drops the schema name from the namespace: "Address.pincode" becomes "pincode",
// "Checkout.shipping_address.pincode" becomes "shipping_address.pincode".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "strong_password":
		return "Password must be at least 8 characters and include uppercase, lowercase, number and special character"
	case "in_phone":
		return "Please enter a valid 10-digit Indian mobile number"
	case "in_pincode":
		return "Please enter a valid 6-digit pincode"
	case "slug":
		return "Use lowercase letters, numbers and hyphens only"
	case "uuid", "uuid4":
		return "Invalid identifier"
	case "url":
		return "Please enter a valid URL"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "Must be at least " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "Must contain at least " + fe.Param() + " items"
		}
		return "Must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "Must be at most " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "Must contain at most " + fe.Param() + " items"
		}
		return "Must be at most " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	case "gte":
		return "Must be at least " + fe.Param()
	case "lte":
		return "Must be at most " + fe.Param()
	case "alphanum":
		return "Use letters and numbers only"
	default:
		return "Invalid value"
	}
}
