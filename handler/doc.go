// Package handler turns typed request handlers into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value already decoded by the
// configured binders, and returns a Response that renders itself:
//
//	type DecorateRequest struct {
//		Text string `json:"text"`
//	}
//
//	h := handler.HandlerFunc[DecorateRequest](func(ctx handler.Context, req DecorateRequest) handler.Response {
//		return handler.JSON(map[string]string{"output": req.Text})
//	})
//
//	r.Post("/api/decorate", handler.Wrap(h,
//		handler.WithBinders[DecorateRequest](binder.JSON()),
//		handler.WithErrorHandler[DecorateRequest](errorHandler),
//	))
//
// Responses cover JSON envelopes and templ components. Templ and
// TemplPartial detect DataStar requests and answer them with server-sent
// element patches, so one handler serves both the full page and the
// in-place update.
//
// Errors returned by binders or by Response.Render go to the ErrorHandler.
// NewErrorHandler classifies them (HTTPError, ValidationError, binder and
// validator errors), logs them with the request id and answers in the form
// the client expects: a JSON envelope, a DataStar toast or an HTML page.
package handler
