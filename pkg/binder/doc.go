// Package binder populates request structs from HTTP requests.
//
// Each constructor returns a func(*http.Request, any) error that reads one
// source and fills the struct fields tagged for it:
//
//	type SubmitRequest struct {
//	    Form   string            `path:"form"`
//	    Fields map[string]string `form:"fields" json:"fields"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, SubmitRequest](
//	    binder.Path(chi.URLParam),
//	    binder.Signals(),
//	    binder.Form(),
//	))
//
// Signals only applies to DataStar requests and Form only to regular form
// posts; the other returns ErrBinderNotApplicable so the same handler serves
// both. Map fields of type map[string]string collect bracketed keys, so
// fields[email]=a@b.co lands in Fields["email"].
//
// Values are stored as sent. Escaping happens when they are rendered.
package binder
