// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by binders
// and returns a Response. Responses built with Templ, TemplPartial and
// TemplMulti render as DataStar element patches when the request came from a
// DataStar action and as plain HTML otherwise, so every page also works
// without JavaScript. SSE gives access to the raw stream when a reply mixes
// element and signal patches.
//
// Errors from binding and rendering go to an ErrorHandler. NewErrorHandler
// classifies them (HTTPError, validator.ValidationErrors, anything else as
// 500), logs them with the request ID and renders an error page or a toast.
package handler
