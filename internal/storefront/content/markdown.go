package content

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts product copy written in markdown into sanitised HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewRenderer builds a renderer with GitHub-flavoured tables and strikethrough
// enabled and a UGC sanitising policy applied to the output.
func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough)),
		policy: policy,
		strict: bluemonday.StrictPolicy(),
	}
}

// Render returns sanitised HTML for src. Blank input yields an empty string.
func (r *Renderer) Render(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// PlainText renders src and strips every tag, collapsing whitespace. It is
// used for meta descriptions and structured data.
func (r *Renderer) PlainText(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return strings.Join(strings.Fields(src), " ")
	}
	text := html.UnescapeString(r.strict.Sanitize(buf.String()))
	return strings.Join(strings.Fields(text), " ")
}
