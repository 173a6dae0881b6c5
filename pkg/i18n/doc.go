// Package i18n translates interface strings and negotiates the request
// language.
//
// Translations are YAML documents keyed by language at the top level, with
// nested sections addressed by dot-separated keys:
//
//	ar:
//	  form:
//	    submit: "زخرفة"
//	en:
//	  form:
//	    submit: "Decorate"
//
// A Translator loads every *.yaml / *.yml file of an fs.FS (usually an
// embed.FS), so languages may share a file or live in one file each.
// Placeholders use the %{name} form and are filled from key/value pairs:
//
//	tr.T("en", "validation.max", "field", "text", "max", "100")
//
// Middleware picks the language from the ?lang= query parameter, the lang
// cookie and the Accept-Language header, in that order, matching against
// the loaded languages with golang.org/x/text/language. The result is stored
// in the request context; Dir reports the text direction for a language.
package i18n
