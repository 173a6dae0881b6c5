package decorator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/zakhrafa/handler"
	deco "github.com/dmitrymomot/zakhrafa/pkg/decorator"
	"github.com/dmitrymomot/zakhrafa/pkg/i18n"
)

const dataStarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// PageParams feeds the full page.
type PageParams struct {
	BasePath string
	Form     DecorateRequest
	Limits   Config
	Output   OutputParams
	Errors   handler.ValidationError
}

// OutputParams feeds the #output element.
type OutputParams struct {
	Result Result
	Stats  deco.Stats
}

// Views are the components the service renders. Replace any of them to
// restyle the page.
type Views struct {
	Page       func(PageParams) templ.Component
	Output     func(OutputParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// DefaultViews renders plain semantic HTML labelled through tr.
func DefaultViews(tr *i18n.Translator) *Views {
	v := &defaultViews{tr: tr}
	return &Views{
		Page:       v.page,
		Output:     v.output,
		ErrorPage:  v.errorPage,
		ErrorToast: v.errorToast,
	}
}

type defaultViews struct {
	tr *i18n.Translator
}

func esc(s string) string { return templ.EscapeString(s) }

func write(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (v *defaultViews) t(ctx context.Context, key string, args ...string) string {
	return esc(v.tr.Tc(ctx, key, args...))
}

func (v *defaultViews) head(ctx context.Context, b *strings.Builder, title string) {
	lang := i18n.GetLocale(ctx)
	fmt.Fprintf(b, `<!doctype html><html lang="%s" dir="%s"><head><meta charset="utf-8">`, esc(lang), i18n.Dir(lang))
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	fmt.Fprintf(b, `<title>%s</title>`, title)
	fmt.Fprintf(b, `<script type="module" src="%s"></script>`, dataStarScript)
	b.WriteString(`<style>body{font-family:system-ui,"Noto Naskh Arabic",sans-serif;max-width:52rem;margin:2rem auto;padding:0 1rem;line-height:1.8}` +
		`label{display:block;margin:.5rem 0}textarea{width:100%;min-height:10rem}#output .lines p{margin:.25rem 0}` +
		`.errors{color:#b00020}.toast{padding:.5rem 1rem;border-radius:.25rem;background:#fee}.toast.warning{background:#ffd}</style>`)
	b.WriteString(`</head><body>`)
}

func (v *defaultViews) page(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		v.head(ctx, &b, v.t(ctx, "app.title"))

		fmt.Fprintf(&b, `<header><h1>%s</h1><p>%s</p><a href="?%s=%s">%s</a></header>`,
			v.t(ctx, "app.title"), v.t(ctx, "app.tagline"),
			i18n.ParamName, v.t(ctx, "lang.code"), v.t(ctx, "lang.switch"))
		b.WriteString(`<div id="toasts" aria-live="assertive"></div><main>`)

		if err := v.form(ctx, &b, p); err != nil {
			return err
		}
		if err := write(w, &b); err != nil {
			return err
		}
		if err := v.output(p.Output).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func (v *defaultViews) form(ctx context.Context, b *strings.Builder, p PageParams) error {
	f := p.Form
	action := esc(p.BasePath + "/render")

	signals, err := json.Marshal(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, `<form method="post" action="%s" data-signals="%s" data-on-submit__prevent="@post('%s')">`,
		action, esc(string(signals)), action)

	if len(p.Errors) > 0 {
		b.WriteString(`<ul class="errors">`)
		for _, field := range []string{"text", "words_per_line", "separator", "protect_intensity", "decor_intensity", "nonce"} {
			for _, msg := range p.Errors[field] {
				fmt.Fprintf(b, `<li>%s</li>`, esc(msg))
			}
		}
		b.WriteString(`</ul>`)
	}

	fmt.Fprintf(b, `<label>%s<textarea name="text" dir="auto" placeholder="%s" data-bind="text">%s</textarea></label>`,
		v.t(ctx, "form.text_label"), v.t(ctx, "form.text_placeholder"), esc(f.Text))
	fmt.Fprintf(b, `<label>%s <input type="number" name="words_per_line" min="1" max="%d" value="%d" data-bind="words_per_line"></label>`,
		v.t(ctx, "form.words_per_line"), p.Limits.MaxWordsPerLine, f.WordsPerLine)
	fmt.Fprintf(b, `<label>%s <input type="text" name="separator" maxlength="%d" value="%s" data-bind="separator"></label>`,
		v.t(ctx, "form.separator"), p.Limits.MaxSeparatorLength, esc(f.Separator))

	checkbox(b, "use_brackets", v.t(ctx, "form.use_brackets"), f.UseBrackets)
	checkbox(b, "protect", v.t(ctx, "form.protect"), f.Protect)

	fmt.Fprintf(b, `<label>%s <input type="range" name="protect_intensity" min="0" max="1" step="0.05" value="%s" data-bind="protect_intensity"></label>`,
		v.t(ctx, "form.protect_intensity"), formatFloat(f.ProtectIntensity))
	fmt.Fprintf(b, `<label>%s <input type="range" name="decor_intensity" min="0" max="%s" step="0.01" value="%s" data-bind="decor_intensity"></label>`,
		v.t(ctx, "form.decor_intensity"), formatFloat(deco.MaxDecorIntensity), formatFloat(f.DecorIntensity))

	// The regenerate button's value follows the hidden input, so a plain
	// form post with it bumps the nonce as well.
	fmt.Fprintf(b, `<input type="hidden" name="nonce" value="%d">`, f.Nonce)
	fmt.Fprintf(b, `<button type="submit">%s</button> `, v.t(ctx, "form.submit"))
	fmt.Fprintf(b, `<button type="submit" name="nonce" value="%d" data-on-click__prevent="$nonce++; @post('%s')">%s</button>`,
		f.Nonce+1, action, v.t(ctx, "form.regenerate"))
	b.WriteString(`</form>`)
	return nil
}

func checkbox(b *strings.Builder, name, label string, checked bool) {
	attr := ""
	if checked {
		attr = " checked"
	}
	fmt.Fprintf(b, `<label><input type="hidden" name="%[1]s" value="false"><input type="checkbox" name="%[1]s" value="true" data-bind="%[1]s"%[2]s> %[3]s</label>`,
		name, attr, label)
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func (v *defaultViews) output(p OutputParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<section id="output" aria-live="polite"><h2>%s</h2>`, v.t(ctx, "output.title"))

		if len(p.Result.Lines) == 0 {
			fmt.Fprintf(&b, `<p class="empty">%s</p></section>`, v.t(ctx, "output.empty"))
			return write(w, &b)
		}

		b.WriteString(`<div class="lines" dir="rtl">`)
		for _, line := range p.Result.Lines {
			fmt.Fprintf(&b, `<p>%s</p>`, esc(line))
		}
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<textarea id="output-text" readonly dir="rtl">%s</textarea>`, esc(p.Result.Output))
		fmt.Fprintf(&b, `<button type="button" data-on-click="navigator.clipboard.writeText(document.getElementById('output-text').value)">%s</button>`,
			v.t(ctx, "form.copy"))
		fmt.Fprintf(&b, `<p class="stats">%s</p></section>`, v.t(ctx, "output.stats",
			"runes", strconv.Itoa(p.Stats.Runes),
			"lines", strconv.Itoa(p.Stats.Lines),
			"hidden", strconv.Itoa(p.Stats.Hidden),
		))
		return write(w, &b)
	})
}

func (v *defaultViews) errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		title := v.t(ctx, "errors.title")
		v.head(ctx, &b, title)
		fmt.Fprintf(&b, `<main><h1>%s</h1><p>%s</p>`, title, esc(p.Message))
		if p.RequestID != "" {
			fmt.Fprintf(&b, `<p><small>%s: <code>%s</code></small></p>`, v.t(ctx, "errors.request_id"), esc(p.RequestID))
		}
		fmt.Fprintf(&b, `<a href="%s">%s</a></main></body></html>`, esc(p.RetryURL), v.t(ctx, "errors.retry"))
		return write(w, &b)
	})
}

func (v *defaultViews) errorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div class="toast %s" role="alert">%s `, esc(p.Type), esc(p.Message))
		fmt.Fprintf(&b, `<button type="button" data-on-click="el.parentElement.remove()">%s</button></div>`, v.t(ctx, "toast.close"))
		return write(w, &b)
	})
}
