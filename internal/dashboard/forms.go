package dashboard

import (
	"github.com/dmitrymomot/salesdesk/handler"
	"github.com/dmitrymomot/salesdesk/internal/views"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/form"
)

// FormRequest names the modal form in the path.
type FormRequest struct {
	Form string `path:"form" json:"-"`
}

// FieldRequest reports one changed field. The whole signal store arrives,
// only Fields[Name] is used.
type FieldRequest struct {
	Form   string            `path:"form" json:"-"`
	Name   string            `query:"name" json:"-"`
	Fields map[string]string `json:"fields"`
}

// SubmitRequest carries every field, as DataStar signals or as a regular
// form post with fields[name] keys.
type SubmitRequest struct {
	Form   string            `path:"form" json:"-"`
	Fields map[string]string `json:"fields" form:"fields"`
}

// dispatch reduces actions over the visitor's form state, saves it and only
// then fires the controller callbacks. It returns the last transition.
func (s *Service) dispatch(ctx handler.Context, route formRoute, actions ...form.Action) (form.Transition, error) {
	visitor, err := s.visitor(ctx)
	if err != nil {
		return form.Transition{}, err
	}

	schema := route.controller.Schema
	var steps []form.Transition
	_, err = s.store.Update(ctx, visitor, func(ws *workspace.Workspace) error {
		steps = steps[:0]
		st, err := ws.Form(schema.ID)
		if err != nil {
			return err
		}
		for _, a := range actions {
			t := form.Reduce(schema, *st, a)
			*st = t.State
			steps = append(steps, t)
		}
		return nil
	})
	if err != nil {
		return form.Transition{}, err
	}

	for _, t := range steps {
		route.controller.Notify(ctx, t)
	}
	if len(steps) == 0 {
		return form.Transition{}, nil
	}
	return steps[len(steps)-1], nil
}

func (s *Service) route(id string) (formRoute, error) {
	r, ok := s.forms[id]
	if !ok {
		return formRoute{}, form.ErrUnknownForm
	}
	return r, nil
}

func modal(route formRoute, st form.State) views.FormParams {
	return views.FormParams{Schema: route.controller.Schema, State: st}
}

// closedResponse removes the modal and resets the bound field signals.
func closedResponse(route formRoute, st form.State, toast string) handler.Response {
	return handler.SSE(func(sc handler.StreamContext) error {
		if err := sc.SendComponent(views.Modal(modal(route, st))); err != nil {
			return err
		}
		if err := sc.SendSignals(map[string]any{"fields": route.controller.Schema.Defaults()}); err != nil {
			return err
		}
		if toast == "" {
			return nil
		}
		return sc.SendComponent(views.Toast("success", toast),
			handler.WithTarget(views.ToastTarget),
			handler.WithPatchMode(handler.PatchPrepend),
		)
	})
}

func (s *Service) openForm(ctx handler.Context, req FormRequest) handler.Response {
	route, err := s.route(req.Form)
	if err != nil {
		return fail(err)
	}
	t, err := s.dispatch(ctx, route, form.Opened{})
	if err != nil {
		return fail(err)
	}
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect(route.pageURL)
	}
	return handler.Templ(views.Modal(modal(route, t.State)))
}

func (s *Service) closeForm(ctx handler.Context, req FormRequest) handler.Response {
	route, err := s.route(req.Form)
	if err != nil {
		return fail(err)
	}
	t, err := s.dispatch(ctx, route, form.Closed{})
	if err != nil {
		return fail(err)
	}
	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect(route.pageURL)
	}
	return closedResponse(route, t.State, "")
}

// changeField stores the new value, clears the field's error and pushes the
// formatted value back when formatting changed it.
func (s *Service) changeField(ctx handler.Context, req FieldRequest) handler.Response {
	route, err := s.route(req.Form)
	if err != nil {
		return fail(err)
	}
	if !route.controller.Schema.Has(req.Name) {
		return fail(form.ErrUnknownField)
	}

	raw := req.Fields[req.Name]
	t, err := s.dispatch(ctx, route, form.FieldChanged{Name: req.Name, Value: raw})
	if err != nil {
		return fail(err)
	}

	formID := route.controller.Schema.ID
	return handler.SSE(func(sc handler.StreamContext) error {
		if err := sc.SendComponent(views.FieldError(formID, req.Name, t.State.Errors[req.Name])); err != nil {
			return err
		}
		if formatted := t.State.Values[req.Name]; t.State.Open && formatted != raw {
			return sc.SendSignals(map[string]any{
				"fields": map[string]string{req.Name: formatted},
			})
		}
		return nil
	})
}

func (s *Service) submitForm(ctx handler.Context, req SubmitRequest) handler.Response {
	route, err := s.route(req.Form)
	if err != nil {
		return fail(err)
	}

	actions := make([]form.Action, 0, len(route.controller.Schema.Fields)+1)
	for _, f := range route.controller.Schema.Fields {
		if v, ok := req.Fields[f.Name]; ok {
			actions = append(actions, form.FieldChanged{Name: f.Name, Value: v})
		}
	}
	actions = append(actions, form.Submitted{})

	t, err := s.dispatch(ctx, route, actions...)
	if err != nil {
		return fail(err)
	}

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect(route.pageURL)
	}
	if t.Submitted != nil {
		return closedResponse(route, t.State, route.successMsg)
	}
	return handler.Templ(views.Modal(modal(route, t.State)))
}
