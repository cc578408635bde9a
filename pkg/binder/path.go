package binder

import (
	"net/http"
	"reflect"
)

// Path binds router path parameters to fields tagged `path:"name"`.
// extractor reads one parameter; chi.URLParam fits directly.
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrBinderNotApplicable
		}

		values := make(map[string][]string)
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			rt := rv.Elem().Type()
			for i := range rt.NumField() {
				name, skip := parseFieldTag(rt.Field(i), "path")
				if skip {
					continue
				}
				if value := extractor(r, name); value != "" {
					values[name] = []string{value}
				}
			}
		}

		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
