// Package render turns a resolved landing page into its deliverables: the
// JSON document the storefront consumes and the server-rendered HTML page.
// One parameterized template replaces the per-name page variants; a named
// TemplateConfig record carries everything that used to differ between them.
package render

import "github.com/hanootc/yasir-platform-sub002/internal/models/store"

// DefaultTemplate is used for unknown template names and synthesized
// direct-product pages.
const DefaultTemplate = "modern_minimal"

// TemplateConfig is the style/configuration record for one named template:
// colors, copy and layout flags. Rendering logic never branches on the
// template name, only on these fields.
type TemplateConfig struct {
	Name            string `json:"name"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	HeroStyle       string `json:"hero_style"`    // minimal, bold, feed
	GalleryStyle    string `json:"gallery_style"` // slider, grid, stacked
	CTAText         string `json:"cta_text"`
	ShowCountdown   bool   `json:"show_countdown"`
	ShowTestimonial bool   `json:"show_testimonial"`
	ShowFeatureList bool   `json:"show_feature_list"`
	ShowSavingsTag  bool   `json:"show_savings_tag"`
	DarkDefault     bool   `json:"dark_default"`
}

var templates = map[string]TemplateConfig{
	"modern_minimal": {
		Name:            "modern_minimal",
		AccentColor:     "#2563eb",
		BackgroundColor: "#ffffff",
		TextColor:       "#111827",
		HeroStyle:       "minimal",
		GalleryStyle:    "slider",
		CTAText:         "اطلب الآن",
	},
	"tiktok_style": {
		Name:            "tiktok_style",
		AccentColor:     "#fe2c55",
		BackgroundColor: "#000000",
		TextColor:       "#ffffff",
		HeroStyle:       "feed",
		GalleryStyle:    "stacked",
		CTAText:         "اشترِ الآن",
		ShowSavingsTag:  true,
		DarkDefault:     true,
	},
	"bold_hero": {
		Name:            "bold_hero",
		AccentColor:     "#ea580c",
		BackgroundColor: "#fff7ed",
		TextColor:       "#1c1917",
		HeroStyle:       "bold",
		GalleryStyle:    "slider",
		CTAText:         "اطلب الآن",
		ShowSavingsTag:  true,
	},
	"product_showcase": {
		Name:            "product_showcase",
		AccentColor:     "#0d9488",
		BackgroundColor: "#f0fdfa",
		TextColor:       "#134e4a",
		HeroStyle:       "minimal",
		GalleryStyle:    "grid",
		CTAText:         "اطلب الآن",
		ShowFeatureList: true,
	},
	"testimonial_focus": {
		Name:            "testimonial_focus",
		AccentColor:     "#7c3aed",
		BackgroundColor: "#faf5ff",
		TextColor:       "#2e1065",
		HeroStyle:       "minimal",
		GalleryStyle:    "slider",
		CTAText:         "اطلب الآن",
		ShowTestimonial: true,
	},
	"feature_highlight": {
		Name:            "feature_highlight",
		AccentColor:     "#16a34a",
		BackgroundColor: "#f0fdf4",
		TextColor:       "#14532d",
		HeroStyle:       "bold",
		GalleryStyle:    "grid",
		CTAText:         "اطلب الآن",
		ShowFeatureList: true,
	},
	"countdown_urgency": {
		Name:            "countdown_urgency",
		AccentColor:     "#dc2626",
		BackgroundColor: "#fef2f2",
		TextColor:       "#450a0a",
		HeroStyle:       "bold",
		GalleryStyle:    "slider",
		CTAText:         "اطلب قبل انتهاء العرض",
		ShowCountdown:   true,
		ShowSavingsTag:  true,
	},
}

// ConfigFor resolves a template name, falling back to the default for
// unknown names.
func ConfigFor(name string) TemplateConfig {
	if cfg, ok := templates[name]; ok {
		return cfg
	}
	return templates[DefaultTemplate]
}

// KnownTemplate reports whether the name maps to a registered template.
func KnownTemplate(name string) bool {
	_, ok := templates[name]
	return ok
}

// Document is the fully resolved landing page: everything a client (or the
// SSR template below) needs to render without further requests.
type Document struct {
	Landing  store.LandingPage    `json:"landing_page"`
	Product  store.Product        `json:"product"`
	Platform store.PlatformSummary `json:"platform"`
	Offers   []store.Offer        `json:"offers"`
	Variants store.VariantGroups  `json:"variants"`
	Template TemplateConfig       `json:"template"`
	Theme    string               `json:"theme"`
	SEO      store.SEOMeta        `json:"seo"`
}
