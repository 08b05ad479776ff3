package helpers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestComponentRendersNodeWithContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "hello")

	c := Component(func(ctx context.Context) g.Node {
		return h.P(g.Text(ctx.Value(key{}).(string)))
	})

	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	require.Equal(t, "<p>hello</p>", buf.String())

	buf.Reset()
	require.NoError(t, h.Div(Node(ctx, c)).Render(&buf))
	require.Equal(t, "<div><p>hello</p></div>", buf.String())
}

func TestCSSVars(t *testing.T) {
	t.Parallel()

	require.Equal(t, "--color: red; --size: 14px;", CSSVars("--color", "red", "--size", "14px"))
	require.Equal(t, "", CSSVars())
	require.Equal(t, "--a: 1;", CSSVars("--a", "1", "--dangling"))
}
