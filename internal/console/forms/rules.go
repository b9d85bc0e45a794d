package forms

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name (its wire name) to a user-facing message. A draft
// with zero entries is valid.
type Errors map[string]string

var (
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	aadharRe  = regexp.MustCompile(`^[0-9]{12}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRe    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	euiRe     = regexp.MustCompile(`^[0-9a-fA-F]{16}$`)
)

// validate is the shared validator. Field names reported in errors come from
// the json tag, so they line up with the backend's field-error keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	regex := func(re *regexp.Regexp) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}
	}
	_ = v.RegisterValidation("phone10", regex(phoneRe))
	_ = v.RegisterValidation("pincode6", regex(pincodeRe))
	_ = v.RegisterValidation("aadhar12", regex(aadharRe))
	_ = v.RegisterValidation("pan", regex(panRe))
	_ = v.RegisterValidation("ifsc", regex(ifscRe))

	// Gateway EUI: 16 hex chars once display colons are stripped.
	_ = v.RegisterValidation("eui16", func(fl validator.FieldLevel) bool {
		bare := strings.ReplaceAll(fl.Field().String(), ":", "")
		return euiRe.MatchString(bare)
	})

	return v
}

// message renders one violation as the dashboard shows it.
func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "latitude":
		return fmt.Sprintf("%s must be between -90 and 90", field)
	case "longitude":
		return fmt.Sprintf("%s must be between -180 and 180", field)
	case "phone10":
		return fmt.Sprintf("%s must be exactly 10 digits", field)
	case "pincode6":
		return fmt.Sprintf("%s must be exactly 6 digits", field)
	case "aadhar12":
		return fmt.Sprintf("%s must be exactly 12 digits", field)
	case "pan":
		return fmt.Sprintf("%s must match the PAN format (ABCDE1234F)", field)
	case "ifsc":
		return fmt.Sprintf("%s must be a valid IFSC code", field)
	case "eui16":
		return fmt.Sprintf("%s must be exactly 16 hex characters", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// check runs the validator over a draft and collects every violation; it
// never stops at the first failing field.
func check(draft interface{}) Errors {
	errs := Errors{}
	if err := validate.Struct(draft); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if _, seen := errs[fe.Field()]; !seen {
				errs[fe.Field()] = message(fe)
			}
		}
	}
	return errs
}

// checkFields validates only the named struct fields of a draft. Used by
// the multi-step employee form to validate one step at a time.
func checkFields(draft interface{}, fields ...string) Errors {
	errs := Errors{}
	if err := validate.StructPartial(draft, fields...); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if _, seen := errs[fe.Field()]; !seen {
				errs[fe.Field()] = message(fe)
			}
		}
	}
	return errs
}
