package handler

import (
	"net/http"
)

// SSEHandler writes a sequence of patches to an open DataStar stream.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrDataStarRequired
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE runs fn against an open stream. It is used when one reply has to mix
// element patches and signal patches, such as echoing a reformatted input
// value next to its refreshed error message.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignals(signals); err != nil {
//			return err
//		}
//		return stream.SendComponent(views.FieldError(field, msg))
//	})
//
// Non-DataStar requests fail with ErrDataStarRequired.
func SSE(fn SSEHandler) Response {
	return sseResponse{handler: fn}
}
