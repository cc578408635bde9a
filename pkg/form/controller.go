package form

import "context"

// Controller binds a schema to the callbacks of the page that hosts the form.
type Controller struct {
	Schema Schema
	// OnSubmit receives the cleaned values of a valid submit.
	OnSubmit func(ctx context.Context, values Values)
	// OnClose runs whenever an open modal closes, including after a submit.
	OnClose func(ctx context.Context)
}

// Dispatch reduces a over s and fires the callbacks the step calls for.
func (c Controller) Dispatch(ctx context.Context, s State, a Action) State {
	t := Reduce(c.Schema, s, a)
	c.Notify(ctx, t)
	return t.State
}

// Notify fires the callbacks for a step already computed with Reduce. Use it
// when the new state must be saved before anyone hears about it.
func (c Controller) Notify(ctx context.Context, t Transition) {
	if t.Submitted != nil && c.OnSubmit != nil {
		c.OnSubmit(ctx, t.Submitted)
	}
	if t.Closed && c.OnClose != nil {
		c.OnClose(ctx)
	}
}
