package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dewinson2/MJCL/internal/domain"
)

// Validator wraps the struct-tag validator used for admin forms
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// New builds a validator with the custom job form tags registered.
// Field errors are reported under their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("jobtype", validateJobType)
	_ = v.RegisterValidation("category", validateCategory)

	return &Validator{validate: v}
}

// Get returns the shared validator instance
func Get() *Validator {
	once.Do(func() { instance = New() })
	return instance
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
// without leaking internal struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = MsgInvalidRequest
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = MsgRequired
		case "email":
			errs[field] = MsgInvalidEmail
		case "url":
			errs[field] = MsgInvalidURL
		case "jobtype":
			errs[field] = MsgInvalidJobType
		case "category":
			errs[field] = MsgInvalidCategory
		case "max":
			errs[field] = fmt.Sprintf(MsgMaxLengthFmt, e.Param())
		default:
			errs[field] = MsgInvalidValue
		}
	}

	return errs
}

func validateJobType(fl validator.FieldLevel) bool {
	return domain.IsJobType(fl.Field().String())
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.IsCategory(fl.Field().String())
}
