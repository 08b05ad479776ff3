package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductSchema(t *testing.T) {
	t.Parallel()

	payload := JSON(Product("Void", "", "/shoe/void", "/img/void.jpg", "void", Offer{Price: "75.00", Currency: "USD"}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Equal(t, "Product", decoded["@type"])
	require.Equal(t, "void", decoded["sku"])
	require.NotContains(t, decoded, "description")

	offer, ok := decoded["offers"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "75.00", offer["price"])
	require.Equal(t, "USD", offer["priceCurrency"])
}

func TestJSONEscapesMarkup(t *testing.T) {
	t.Parallel()

	out := JSON(Product("</script><b>", "", "", "", "", Offer{}))
	require.False(t, strings.Contains(out, "</script>"), "payload is embedded in a script element")
}

func TestBreadcrumbList(t *testing.T) {
	t.Parallel()

	list := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "/"}, {Name: "Void"}})
	items, ok := list["itemListElement"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	require.Equal(t, 2, items[1]["position"])
	require.NotContains(t, items[1], "item")
}
