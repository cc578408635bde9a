package handler

import (
	"net/http"
)

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect answers with 303 See Other, or a client-side redirect for DataStar.
// Form posts without JavaScript use it to land back on the page they came from.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}
