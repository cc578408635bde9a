package binder

import (
	"net/http"
)

// Query binds URL query parameters to fields tagged `query:"name"`.
// Empty numeric parameters leave the field at its zero value.
//
//	type TableRequest struct {
//	    Page int `query:"page"`
//	    Size int `query:"size"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
