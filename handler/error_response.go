package handler

import "net/http"

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the wrapped handler's ErrorHandler instead of writing
// a response.
//
//	if !schema.Has(req.Name) {
//	    return handler.Error(handler.ErrBadRequest)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
