package layout

import (
	"context"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/templates/helpers"
	"finitefield.org/storefront/internal/storefront/templates/partials"
)

// StylesheetPath is where the embedded stylesheet is served.
const StylesheetPath = "/public/static/storefront.css"

// Meta carries per-page head metadata.
type Meta struct {
	Title       string
	Description string
	JSONLD      []string
}

// Page wraps content in the document shell shared by every storefront page.
func Page(ctx context.Context, meta Meta, content ...g.Node) g.Node {
	title := "Sole&Ankle"
	if meta.Title != "" {
		title = meta.Title + " · Sole&Ankle"
	}
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
				g.Map(meta.JSONLD, func(payload string) g.Node {
					return h.Script(h.Type("application/ld+json"), g.Raw(payload))
				}),
			),
			h.Body(
				helpers.Node(ctx, partials.Header()),
				h.Main(append([]g.Node{h.Class("page")}, content...)...),
			),
		),
	)
}
