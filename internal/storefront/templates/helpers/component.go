package helpers

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a context-aware gomponents tree to templ.Component so pages
// can be served with templ.Handler.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Node embeds a templ.Component inside a gomponents tree.
func Node(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// CSSVars renders custom property declarations for an inline style attribute.
// Pairs are written in argument order: CSSVars("--color", "red") => "--color: red;"
func CSSVars(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if out != "" {
			out += " "
		}
		out += pairs[i] + ": " + pairs[i+1] + ";"
	}
	return out
}
