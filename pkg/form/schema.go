package form

// Requirement is the validation rule attached to a field.
type Requirement int

const (
	Optional Requirement = iota
	Required
	RequiredEmail
	RequiredAmount
)

// InputType is the HTML control used to render a field.
type InputType string

const (
	InputText          InputType = "text"
	InputTel           InputType = "tel"
	InputEmail         InputType = "email"
	InputDate          InputType = "date"
	InputDateTimeLocal InputType = "datetime-local"
	InputTextarea      InputType = "textarea"
	InputSelect        InputType = "select"
)

// Option is a select choice.
type Option struct {
	Value string
	Label string
}

// Field describes one named input of a form.
type Field struct {
	Name        string
	Label       string
	ErrorLabel  string
	Requirement Requirement
	Input       InputType
	Placeholder string
	Options     []Option
	// Wide fields span both grid columns.
	Wide bool

	// Format rewrites the raw value on every change.
	Format func(string) string
	// Clean normalises the value handed to the submit callback.
	Clean func(string) string
}

// Schema is an ordered set of fields rendered as one modal form.
type Schema struct {
	ID          string
	Title       string
	SubmitLabel string
	Fields      []Field
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// Names returns field names in render order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Defaults returns the empty value set a freshly opened form starts with.
func (s Schema) Defaults() Values {
	values := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = ""
	}
	return values
}
