// Package decorator is the web front of the text decorator: an RTL page with
// a DataStar-driven form, a form-post fallback and a small JSON API.
//
// Routes, relative to where Handle is mounted:
//
//	GET  /              page with the form and an empty result
//	POST /render        DataStar signals patch #output; a plain form post gets the full page
//	POST /api/decorate  JSON in, {data: {output, lines}, meta: {stats, nonce}} out
//	POST /api/strip     removes inserted glyphs (and optionally bracket markers)
//	GET  /api/defaults  the configured default options
//
// Rendering goes through a decorator.Memo, so the same text and options give
// the same output until the nonce changes; the page's "regenerate" button
// bumps the nonce.
package decorator
