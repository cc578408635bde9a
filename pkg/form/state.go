package form

// State is the per-visitor state of one modal form.
type State struct {
	Open   bool   `json:"open"`
	Values Values `json:"values"`
	Errors Errors `json:"errors,omitempty"`
}

// Action is an input event applied to a form by Reduce.
type Action interface {
	action()
}

// Opened opens the modal with empty values.
type Opened struct{}

// FieldChanged replaces one field's raw value.
type FieldChanged struct {
	Name  string
	Value string
}

// Submitted asks to validate and, if valid, submit the form.
type Submitted struct{}

// Closed dismisses the modal without submitting.
type Closed struct{}

func (Opened) action()       {}
func (FieldChanged) action() {}
func (Submitted) action()    {}
func (Closed) action()       {}

// Transition is the outcome of one Reduce step.
type Transition struct {
	State State
	// Submitted holds the cleaned values when the step was a valid submit.
	Submitted Values
	// Closed is set when the step closed an open modal.
	Closed bool
}

// Reduce applies a to s and returns the next state. s is never modified.
// Field changes and submits on a closed form are ignored.
func Reduce(schema Schema, s State, a Action) Transition {
	switch a := a.(type) {
	case Opened:
		return Transition{State: State{Open: true, Values: schema.Defaults(), Errors: Errors{}}}

	case Closed:
		return Transition{State: closedState(schema), Closed: s.Open}

	case FieldChanged:
		if !s.Open {
			return Transition{State: s}
		}
		f, ok := schema.Field(a.Name)
		if !ok {
			return Transition{State: s}
		}
		value := a.Value
		if f.Format != nil {
			value = f.Format(value)
		}
		next := State{Open: true, Values: s.Values.Clone(), Errors: s.Errors.Clone()}
		next.Values[a.Name] = value
		delete(next.Errors, a.Name)
		return Transition{State: next}

	case Submitted:
		if !s.Open {
			return Transition{State: s}
		}
		values := withDefaults(schema, s.Values)
		if errs := Validate(schema, values); !errs.Valid() {
			return Transition{State: State{Open: true, Values: values, Errors: errs}}
		}
		return Transition{
			State:     closedState(schema),
			Submitted: clean(schema, values),
			Closed:    true,
		}
	}

	return Transition{State: s}
}

func closedState(schema Schema) State {
	return State{Values: schema.Defaults(), Errors: Errors{}}
}

// withDefaults copies values and fills in any field missing from it.
func withDefaults(schema Schema, values Values) Values {
	out := schema.Defaults()
	for name, v := range values {
		if schema.Has(name) {
			out[name] = v
		}
	}
	return out
}

func clean(schema Schema, values Values) Values {
	out := values.Clone()
	for _, f := range schema.Fields {
		if f.Clean != nil {
			out[f.Name] = f.Clean(out[f.Name])
		}
	}
	return out
}
