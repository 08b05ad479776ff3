package testutil

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// ParseHTML parses an HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err, "parse html")
	return doc
}

// GetPage fetches url, asserts the response status and returns the parsed body.
func GetPage(t testing.TB, url string, wantStatus int) *goquery.Document {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "GET %s", url)
	return ParseHTML(t, body)
}

// CardHrefs lists the link target of every product card in document order.
func CardHrefs(doc *goquery.Document) []string {
	var hrefs []string
	doc.Find("a.shoe-card").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	return hrefs
}
