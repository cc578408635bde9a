package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component together with its patch options.
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

func writeHTML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

type templResponse struct {
	component TemplComponent
	options   []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	writeHTML(w)
	return t.component.Render(r.Context(), w)
}

// Templ renders a component as an SSE element patch for DataStar requests
// and as plain HTML otherwise.
//
//	return handler.Templ(views.Toast(msg),
//		handler.WithTarget("#toast-container"),
//		handler.WithPatchMode(handler.PatchPrepend),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

type templMultiResponse struct {
	patches []TemplPatch
	full    TemplComponent
}

func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	writeHTML(w)
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti sends each patch as its own SSE event. Regular requests get
// the components concatenated in order.
//
//	return handler.TemplMulti(
//		handler.Patch(views.SalesTable(params)),
//		handler.Patch(views.SalesActionBar(sel)),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches}
}

// TemplMultiPartial is TemplMulti with a full page rendered for regular requests.
func TemplMultiPartial(full TemplComponent, patches ...TemplPatch) Response {
	return templMultiResponse{patches: patches, full: full}
}
