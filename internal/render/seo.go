package render

import (
	"encoding/json"
	"fmt"

	"github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

// BuildSEOMeta resolves the head content for a landing page: title, Open
// Graph tags, favicon and the schema.org Product JSON-LD blob. This replaces
// the client-side document.title / meta-tag mutation.
func BuildSEOMeta(lp *store.LandingPage, p *store.Product, platform *store.PlatformSummary, pageURL string) store.SEOMeta {
	title := p.Name
	if lp.Title != nil && *lp.Title != "" {
		title = *lp.Title
	}
	if platform.Name != "" {
		title = fmt.Sprintf("%s | %s", title, platform.Name)
	}

	description := ""
	if p.Description != nil {
		description = truncate(*p.Description, 160)
	}

	meta := store.SEOMeta{
		Title:         title,
		Description:   description,
		OGTitle:       title,
		OGDescription: description,
		OGURL:         pageURL,
	}

	if len(p.ImageURLs) > 0 {
		meta.OGImage = p.ImageURLs[0]
	}
	if platform.LogoURL != nil {
		meta.FaviconURL = *platform.LogoURL
	}

	schema := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Product",
		"name":     p.Name,
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"price":         p.Price,
			"priceCurrency": "IQD",
			"availability":  availability(p),
			"url":           pageURL,
		},
	}
	if description != "" {
		schema["description"] = description
	}
	if len(p.ImageURLs) > 0 {
		schema["image"] = p.ImageURLs
	}
	if p.SKU != nil {
		schema["sku"] = *p.SKU
	}

	if blob, err := json.Marshal(schema); err == nil {
		meta.SchemaJSON = string(blob)
	}

	return meta
}

func availability(p *store.Product) string {
	if p.Stock != nil && *p.Stock <= 0 {
		return "https://schema.org/OutOfStock"
	}
	return "https://schema.org/InStock"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
