// Package validation holds the field checks shared by the clinic services.
// Whole records are checked against their validate struct tags; partial
// updates use the field helpers on Errors. Every failure wraps ErrInvalid so
// handlers can map it to a 400 response.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrInvalid is the sentinel wrapped by every validation failure.
var ErrInvalid = errors.New("validation failed")

// Layouts accepted for calendar dates and clock times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Error describes a single invalid field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error { return ErrInvalid }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Errors collects field failures for one write.
type Errors struct {
	errs []error
}

// Add records a failure for field.
func (v *Errors) Add(field, format string, args ...interface{}) {
	v.errs = append(v.errs, &Error{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Struct checks s against its validate tags and records one failure per
// offending field.
func (v *Errors) Struct(s interface{}) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.errs = append(v.errs, fmt.Errorf("%w: %v", ErrInvalid, err))
		return
	}
	for _, fe := range fieldErrs {
		v.Add(fe.Field(), "%s", message(fe))
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		switch fe.Param() {
		case DateLayout:
			return "must be a date in YYYY-MM-DD form"
		case TimeLayout:
			return "must be a time in HH:MM form"
		}
		return "must match " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// Required records a failure when value is blank.
func (v *Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// NonNegative records a failure when n < 0.
func (v *Errors) NonNegative(field string, n float64) {
	if n < 0 {
		v.Add(field, "must not be negative")
	}
}

// Date records a failure when value is not a YYYY-MM-DD date. Empty values
// are left to Required.
func (v *Errors) Date(field, value string) {
	if value == "" {
		return
	}
	if !IsDate(value) {
		v.Add(field, "must be a date in YYYY-MM-DD form")
	}
}

// Time records a failure when value is not an HH:MM clock time.
func (v *Errors) Time(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(TimeLayout, value); err != nil {
		v.Add(field, "must be a time in HH:MM form")
	}
}

// OneOf records a failure when value is not in allowed.
func (v *Errors) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, "must be one of %s", strings.Join(allowed, ", "))
}

// Err returns the joined failures, or nil.
func (v *Errors) Err() error {
	return errors.Join(v.errs...)
}

// IsDate reports whether s is a valid YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// Today formats now as a YYYY-MM-DD date in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}
