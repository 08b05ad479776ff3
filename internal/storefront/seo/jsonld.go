package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Offer describes the price a product is sold at.
type Offer struct {
	Price    string
	Currency string
	URL      string
}

// Product returns a minimal schema.org Product payload with a single offer.
func Product(name, description, url, imageURL, sku string, offer Offer) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Product",
		"name":     name,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if sku != "" {
		m["sku"] = sku
	}
	if offer.Price != "" {
		o := map[string]any{
			"@type":         "Offer",
			"price":         offer.Price,
			"priceCurrency": offer.Currency,
			"availability":  "https://schema.org/InStock",
		}
		if offer.URL != "" {
			o["url"] = offer.URL
		}
		m["offers"] = o
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			entry["item"] = it.Item
		}
		el = append(el, entry)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
