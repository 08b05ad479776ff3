package navigation

import (
	"path"
	"strings"
)

// Link is a primary navigation entry in the site header.
type Link struct {
	Key   string
	Label string
	Href  string
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// header lists the main navigation in display order. "New Releases" keeps a
// non-breaking space so the label never wraps.
var header = []Link{
	{Key: "sale", Label: "Sale", Href: "/sale"},
	{Key: "new", Label: "New\u00a0Releases", Href: "/new"},
	{Key: "men", Label: "Men", Href: "/men"},
	{Key: "women", Label: "Women", Href: "/women"},
	{Key: "kids", Label: "Kids", Href: "/kids"},
	{Key: "collections", Label: "Collections", Href: "/collections"},
}

// HeaderLinks returns a copy of the header navigation.
func HeaderLinks() []Link {
	out := make([]Link, len(header))
	copy(out, header)
	return out
}

// Lookup finds the header link registered under key.
func Lookup(key string) (Link, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, l := range header {
		if l.Key == key {
			return l, true
		}
	}
	return Link{}, false
}

// SectionFor returns the key of the header link that owns requestPath, or ""
// when the path sits outside every section (the home page, product pages).
// Sub-paths belong to their section: /collections/summer is "collections".
func SectionFor(requestPath string) string {
	p := path.Clean("/" + strings.TrimSpace(requestPath))
	for _, l := range header {
		if p == l.Href || strings.HasPrefix(p, l.Href+"/") {
			return l.Key
		}
	}
	return ""
}

// PlainLabel returns the label with non-breaking spaces replaced, for headings
// and breadcrumbs where wrapping is fine.
func (l Link) PlainLabel() string {
	return strings.ReplaceAll(l.Label, "\u00a0", " ")
}

// Breadcrumbs builds Home > section > leaf. Empty section or leaf entries are
// skipped; the last crumb is marked active.
func Breadcrumbs(sectionKey, leaf string) []Crumb {
	crumbs := []Crumb{{Href: "/", Label: "Home"}}
	if l, ok := Lookup(sectionKey); ok {
		crumbs = append(crumbs, Crumb{Href: l.Href, Label: l.PlainLabel()})
	}
	if leaf = strings.TrimSpace(leaf); leaf != "" {
		crumbs = append(crumbs, Crumb{Label: leaf})
	}
	crumbs[len(crumbs)-1].Active = true
	return crumbs
}
