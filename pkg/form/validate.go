package form

import (
	"maps"

	"github.com/dmitrymomot/salesdesk/pkg/validator"
)

// Values maps field name to the raw string entered by the user.
type Values map[string]string

// Clone returns an independent copy.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// Errors maps field name to its validation message. A missing key means the
// field is valid.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Clone() Errors {
	if e == nil {
		return Errors{}
	}
	return maps.Clone(e)
}

// Validate checks values against the schema and returns at most one message
// per field, the first rule that failed.
func Validate(schema Schema, values Values) Errors {
	var rules []validator.Rule
	for _, f := range schema.Fields {
		rules = append(rules, fieldRules(f, values[f.Name])...)
	}

	errs := Errors{}
	verrs := validator.ExtractValidationErrors(validator.Apply(rules...))
	for _, name := range verrs.Fields() {
		errs[name] = verrs.First(name)
	}
	return errs
}

func fieldRules(f Field, value string) []validator.Rule {
	if f.Requirement == Optional {
		return nil
	}

	rules := []validator.Rule{
		validator.Required(f.Name, value).WithMessage(f.ErrorLabel + " is required"),
	}

	switch f.Requirement {
	case RequiredEmail:
		rules = append(rules, validator.EmailShape(f.Name, value).WithMessage(f.ErrorLabel+" is invalid"))
	case RequiredAmount:
		rules = append(rules, validator.Amount(f.Name, value).WithMessage("Please enter a valid amount"))
	}

	return rules
}
