// Package templates holds the server-rendered HTML components. Components
// are authored programmatically against the templ runtime so the handlers
// can treat full pages and HTMX partials uniformly as templ.Component values.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// esc HTML-escapes user-controlled strings before they hit the response.
func esc(s string) string {
	return templ.EscapeString(s)
}

// navLink describes one entry in the top navigation.
type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/teams", Label: "Teams"},
	{Href: "/fixtures", Label: "Fixtures"},
	{Href: "/pitches", Label: "Pitches"},
	{Href: "/email-templates", Label: "Email Templates"},
}

// Page wraps content in the full HTML document shell with navigation and the
// HTMX runtime. Handlers render this for regular requests and the bare
// content component for HX-Request partial swaps.
func Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — Club Manager</title>
<script src="/static/htmx.min.js"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar">
<a class="brand" href="/teams">Club Manager</a>
<nav>`, esc(title)); err != nil {
			return err
		}
		for _, link := range navLinks {
			if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, link.Href, esc(link.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav>
</header>
<main id="content" class="container">
`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `
</main>
<div id="toast" hidden></div>
<script src="/static/toast.js"></script>
</body>
</html>`)
		return err
	})
}

// ErrorMessage renders an inline error block.
func ErrorMessage(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="error-banner">%s</div>`, esc(message))
		return err
	})
}
