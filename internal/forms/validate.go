// Package forms decodes and validates the venue, artist and show forms.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to a message describing what is wrong with it.
type Errors map[string]string

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// startTimeLayouts are the accepted start_time formats, tried in order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// getValidator returns the shared validator with Fyyur's custom rules.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		mustRegister("genre", func(fl validator.FieldLevel) bool {
			_, ok := genreSet[fl.Field().String()]
			return ok
		})
		mustRegister("usstate", func(fl validator.FieldLevel) bool {
			_, ok := stateSet[fl.Field().String()]
			return ok
		})
		mustRegister("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		mustRegister("id", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Field().String())
			return err == nil && n > 0
		})
		mustRegister("starttime", func(fl validator.FieldLevel) bool {
			_, err := ParseStartTime(fl.Field().String(), time.UTC)
			return err == nil
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validator: %v", tag, err))
	}
}

// validateStruct runs the validator and converts failures into Errors.
// Only the first failure per field is kept.
func validateStruct(s any) Errors {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"form": err.Error()}
	}

	errs := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field, _, _ := strings.Cut(fe.Field(), "[")
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = translate(fe)
	}
	return errs
}

var messages = map[string]string{
	"required":  "This field is required.",
	"url":       "Enter a valid URL.",
	"genre":     "Pick genres from the list.",
	"usstate":   "Pick a state from the list.",
	"phone":     "Use the format 123-456-7890.",
	"id":        "Enter a valid ID.",
	"starttime": "Enter a valid date and time.",
}

func translate(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("Pick at least %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	}
	return "Invalid value."
}

// ParseStartTime parses a submitted start time. Times without a zone are
// interpreted in loc.
func ParseStartTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

// present maps checkbox semantics onto a bool: the box is checked iff its
// key was submitted, whatever the value.
func present(values url.Values, key string) bool {
	_, ok := values[key]
	return ok
}

// genres returns the non-empty genre values in submission order.
func genres(values url.Values) []string {
	var out []string
	for _, g := range values["genres"] {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func field(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
