package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodySize caps request bodies read by JSON and Form.
const DefaultMaxBodySize int64 = 1 << 20

// JSON decodes an application/json body. Requests with another content
// type are not applicable; an empty content type is treated as an error.
func JSON() func(r *http.Request, v any) error {
	return JSONWithLimit(DefaultMaxBodySize)
}

// JSONWithLimit is JSON with a custom body size limit.
func JSONWithLimit(limit int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		switch mt {
		case "application/json":
		case "":
			return fmt.Errorf("%w: missing content type, expected application/json", ErrUnsupportedMediaType)
		default:
			return ErrBinderNotApplicable
		}

		dec := json.NewDecoder(io.LimitReader(r.Body, limit+1))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			var syntax *json.SyntaxError
			var typed *json.UnmarshalTypeError
			switch {
			case errors.Is(err, io.EOF):
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			case errors.Is(err, io.ErrUnexpectedEOF):
				if exceeded(r, limit) {
					return ErrBodyTooLarge
				}
				return fmt.Errorf("%w: unexpected end of input", ErrInvalidJSON)
			case errors.As(err, &syntax):
				return fmt.Errorf("%w: syntax error at offset %d", ErrInvalidJSON, syntax.Offset)
			case errors.As(err, &typed):
				return fmt.Errorf("%w: field %q must be %s", ErrInvalidJSON, typed.Field, typed.Type)
			default:
				return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
		}
		if dec.InputOffset() > limit {
			return ErrBodyTooLarge
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}
		return nil
	}
}

func exceeded(r *http.Request, limit int64) bool {
	return r.ContentLength > limit
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mt
}
