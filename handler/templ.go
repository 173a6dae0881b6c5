package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures the DataStar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matching selector.
func WithTarget(selector string) TemplOption { return datastar.WithSelector(selector) }

// WithPatchMode sets how the patch merges into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption { return datastar.WithMode(mode) }

type templResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	signals any
	options []TemplOption
}

func (t *templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchElementTempl(t.partial, t.options...); err != nil {
			return err
		}
		if t.signals != nil {
			return sse.MarshalAndPatchSignals(t.signals)
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders c as a page, or as an element patch for DataStar.
func Templ(c templ.Component, opts ...TemplOption) Response {
	return &templResponse{partial: c, full: c, options: opts}
}

// TemplPartial patches partial for DataStar requests and renders full
// otherwise.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return &templResponse{partial: partial, full: full, options: opts}
}

// TemplWithSignals is TemplPartial that also patches the DataStar signal
// store with signals after the element patch.
func TemplWithSignals(partial, full templ.Component, signals any, opts ...TemplOption) Response {
	return &templResponse{partial: partial, full: full, signals: signals, options: opts}
}

// TemplStatus renders c as a page with the given status code. DataStar
// requests get the element patch; SSE streams always answer 200.
func TemplStatus(status int, c templ.Component, opts ...TemplOption) Response {
	return &templResponse{partial: c, full: c, status: status, options: opts}
}
