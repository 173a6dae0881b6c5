package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// Form binds application/x-www-form-urlencoded bodies by `form` tags.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/x-www-form-urlencoded" {
			return ErrBinderNotApplicable
		}
		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)
		if err := r.ParseForm(); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return ErrBodyTooLarge
			}
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bindValues(v, "form", r.PostForm, ErrInvalidForm)
	}
}

// Query binds URL query parameters by `query` tags. It always applies.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
