package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hanootc/yasir-platform-sub002/internal/models/store"
)

func TestConfigForFallback(t *testing.T) {
	cfg := ConfigFor("no_such_template")
	if cfg.Name != DefaultTemplate {
		t.Fatalf("unknown name should fall back to %s, got %s", DefaultTemplate, cfg.Name)
	}

	cfg = ConfigFor("tiktok_style")
	if cfg.Name != "tiktok_style" || !cfg.DarkDefault {
		t.Fatalf("tiktok_style config wrong: %+v", cfg)
	}
}

func TestKnownTemplate(t *testing.T) {
	for _, name := range []string{
		"modern_minimal", "tiktok_style", "bold_hero", "product_showcase",
		"testimonial_focus", "feature_highlight", "countdown_urgency",
	} {
		if !KnownTemplate(name) {
			t.Fatalf("expected %s to be registered", name)
		}
	}
	if KnownTemplate("classic") {
		t.Fatalf("did not expect classic to be registered")
	}
}

func testDocument(templateName, theme string) *Document {
	desc := "وصف المنتج"
	product := store.Product{
		ID:          uuid.New(),
		Name:        "ساعة ذكية",
		Description: &desc,
		Price:       25000,
		ImageURLs:   []string{"https://cdn.example.com/w.jpg"},
	}
	landing := store.LandingPage{
		ID:        uuid.New(),
		ProductID: product.ID,
		Template:  templateName,
		Theme:     theme,
		CustomURL: "smart-watch",
	}
	platform := store.PlatformSummary{ID: uuid.New(), Name: "متجر الياس", Subdomain: "alyas"}

	return &Document{
		Landing:  landing,
		Product:  product,
		Platform: platform,
		Offers: []store.Offer{
			{ID: "one", Label: "قطعة واحدة", Price: 25000, Quantity: 1, IsDefault: true},
		},
		Variants: store.VariantGroups{},
		Template: ConfigFor(templateName),
		Theme:    theme,
		SEO:      BuildSEOMeta(&landing, &product, &platform, "https://shop.example.com/alyas/smart-watch"),
	}
}

func TestWriteHTML(t *testing.T) {
	doc := testDocument("bold_hero", "")

	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"ساعة ذكية",
		"متجر الياس",
		`dir="rtl"`,
		"/api/landing-page-orders",
		doc.Template.CTAText,
		"application/ld+json",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}

	if strings.Contains(html, `class="dark"`) {
		t.Fatalf("bold_hero with no theme should render light")
	}
}

func TestWriteHTMLDarkResolution(t *testing.T) {
	// Explicit theme wins.
	var buf bytes.Buffer
	if err := WriteHTML(&buf, testDocument("bold_hero", "dark")); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "dark") {
		t.Fatalf("explicit dark theme should set the dark class")
	}

	// Template default applies when the theme is unset.
	buf.Reset()
	if err := WriteHTML(&buf, testDocument("tiktok_style", "")); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "dark") {
		t.Fatalf("tiktok_style defaults dark when no theme is set")
	}
}

func TestBuildSEOMeta(t *testing.T) {
	doc := testDocument("modern_minimal", "")

	if doc.SEO.Title != "ساعة ذكية | متجر الياس" {
		t.Fatalf("unexpected title %q", doc.SEO.Title)
	}
	if doc.SEO.OGImage != "https://cdn.example.com/w.jpg" {
		t.Fatalf("unexpected og image %q", doc.SEO.OGImage)
	}
	if !strings.Contains(doc.SEO.SchemaJSON, `"@type":"Product"`) {
		t.Fatalf("schema JSON missing product type: %s", doc.SEO.SchemaJSON)
	}
	if !strings.Contains(doc.SEO.SchemaJSON, `"priceCurrency":"IQD"`) {
		t.Fatalf("schema JSON missing currency: %s", doc.SEO.SchemaJSON)
	}
}

func TestBuildSEOMetaUsesLandingTitle(t *testing.T) {
	doc := testDocument("modern_minimal", "")
	title := "عرض الصيف"
	landing := doc.Landing
	landing.Title = &title

	meta := BuildSEOMeta(&landing, &doc.Product, &doc.Platform, "https://x")
	if !strings.HasPrefix(meta.Title, "عرض الصيف") {
		t.Fatalf("landing title should take precedence, got %q", meta.Title)
	}
}
