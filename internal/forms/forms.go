package forms

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"auction-client/internal/auctionerrors"

	"github.com/go-playground/validator/v10"
)

// Summary messages
const (
	MsgFixFields       = "Please fill in all required fields correctly"
	MsgAllRequired     = "All fields are required"
	MsgPasswordsDiffer = "Passwords do not match"
	MsgInvalidBid      = "Please enter a valid bid amount"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		// validator ships only numeric-kind rules; form inputs arrive as strings.
		mustRegister(v, "positive_number", func(fl validator.FieldLevel) bool {
			n, err := parseNumber(fl.Field().String())
			return err == nil && n > 0
		})
		mustRegister(v, "min_days", func(fl validator.FieldLevel) bool {
			n, err := parseNumber(fl.Field().String())
			return err == nil && n >= 1
		})
		validate = v
	})
	return validate
}

// mustRegister panics when a rule cannot be registered; a form tag naming
// a missing rule would otherwise fail at validation time instead of startup.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %q: %v", tag, err))
	}
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errors.New("not a finite number")
	}
	return n, nil
}

// messages maps field -> failing rule -> displayed message.
type messages map[string]map[string]string

// check runs the validator over form and converts failures into a
// ValidationError whose Fields carry one message per failing field.
func check(form any, msgs messages, summary func(failed map[string]string) string) error {
	err := engine().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &auctionerrors.ValidationError{Message: MsgFixFields}
	}

	fields := make(map[string]string, len(verrs))
	failed := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		failed[field] = fe.Tag()
		if m, ok := msgs[field][fe.Tag()]; ok {
			fields[field] = m
			continue
		}
		fields[field] = field + " is invalid"
	}
	return &auctionerrors.ValidationError{Message: summary(failed), Fields: fields}
}

func fixFields(map[string]string) string { return MsgFixFields }

// registrationSummary reports missing fields before a password mismatch.
func registrationSummary(failed map[string]string) string {
	for _, tag := range failed {
		if tag == "required" {
			return MsgAllRequired
		}
	}
	if failed["confirmPassword"] == "eqfield" {
		return MsgPasswordsDiffer
	}
	return MsgFixFields
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
