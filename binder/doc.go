// Package binder decodes HTTP requests into typed structs for handler.Wrap.
//
// Each binder returns ErrBinderNotApplicable when the request is not meant
// for it (wrong content type, not a DataStar request), so binders can be
// chained and the first applicable one wins:
//
//	handler.Wrap(render,
//		handler.WithBinders[RenderRequest](binder.Signals(), binder.Form()),
//	)
//
// Form and Query fill fields by `form:"name"` / `query:"name"` tags; JSON
// decodes strictly and rejects unknown fields and trailing data.
package binder
