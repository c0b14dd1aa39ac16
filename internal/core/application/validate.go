package application

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
)

// ErrorMap maps a field to its validation message. A missing key means the
// field is valid.
type ErrorMap map[Field]string

// Has reports whether f failed validation.
func (m ErrorMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// First returns the first failing field in form order.
func (m ErrorMap) First() (Field, bool) {
	for _, f := range Fields {
		if m.Has(f) {
			return f, true
		}
	}
	return "", false
}

// Strings returns the map keyed by plain field names, as widgets expect.
func (m ErrorMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for f, msg := range m {
		out[string(f)] = msg
	}
	return out
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\d+$`)
	urlPattern   = regexp.MustCompile(`(?i)^(https?://)?` + // scheme
		`((([a-z\d]([a-z\d-]*[a-z\d])*)\.?)+[a-z]{2,}|` + // domain name
		`((\d{1,3}\.){3}\d{1,3}))` + // or IPv4
		`(:\d+)?(/[-a-z\d%_.~+]*)*` + // port and path
		`(\?[;&a-z\d%_.~+=-]*)?` + // query
		`(#[-a-z\d_]*)?$`) // fragment
)

// rule checks one field. Rules for conditional fields only run when the
// policy table activates the field for the draft's position.
type rule struct {
	field Field
	check func(d *Draft) error
}

//nolint:staticcheck // messages are shown to applicants verbatim
var rules = []rule{
	{FieldFullName, func(d *Draft) error {
		return required(d.FullName, "Full Name is required")
	}},
	{FieldEmail, func(d *Draft) error {
		if err := required(d.Email, "Email is required"); err != nil {
			return err
		}
		if !emailPattern.MatchString(d.Email) {
			return errors.New("Email address is invalid")
		}
		return nil
	}},
	{FieldPhoneNumber, func(d *Draft) error {
		if err := required(d.PhoneNumber, "Phone Number is required"); err != nil {
			return err
		}
		if !phonePattern.MatchString(d.PhoneNumber) {
			return errors.New("Phone Number must be a valid number")
		}
		return nil
	}},
	{FieldRelevantExperience, func(d *Draft) error {
		if !positiveNumber(d.RelevantExperience) {
			return errors.New("Relevant Experience is required and must be greater than 0")
		}
		return nil
	}},
	{FieldPortfolioURL, func(d *Draft) error {
		if strings.TrimSpace(d.PortfolioURL) == "" || !urlPattern.MatchString(d.PortfolioURL) {
			return errors.New("Portfolio URL is required and must be a valid URL")
		}
		return nil
	}},
	{FieldManagementExperience, func(d *Draft) error {
		return required(d.ManagementExperience, "Management Experience is required")
	}},
	{FieldAdditionalSkills, func(d *Draft) error {
		if len(d.AdditionalSkills) == 0 {
			return errors.New("At least one skill must be selected")
		}
		return nil
	}},
	{FieldPreferredInterviewTime, func(d *Draft) error {
		return required(d.PreferredInterviewTime, "Preferred Interview Time is required")
	}},
}

// Validate runs every active rule against d and returns all failures. It has
// no side effects and never panics.
func Validate(d Draft) ErrorMap {
	out := ErrorMap{}

	var fieldErrs criterio.FieldErrors
	if errors.As(ValidateErr(d), &fieldErrs) {
		for _, fe := range fieldErrs {
			out[Field(fe.Field)] = fe.Err.Error()
		}
	}

	return out
}

// ValidateErr is Validate in error form: nil when the draft is valid,
// otherwise criterio.FieldErrors with one entry per failing field.
func ValidateErr(d Draft) error {
	var errs criterio.FieldErrorsBuilder
	for _, r := range rules {
		if !Requires(d.Position, r.field) {
			continue
		}
		if err := r.check(&d); err != nil {
			errs = errs.Append(string(r.field), err)
		}
	}
	return errs.ToError()
}

func required(value, msg string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(msg)
	}
	return nil
}

// positiveNumber reports whether s parses as a finite number greater than 0.
func positiveNumber(s string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(n, 0) {
		return false
	}
	return n > 0
}
