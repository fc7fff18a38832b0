// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brand defines the canonical brand-identity record extracted from a
// website, plus the pure transforms that operate on it: payload normalization,
// color similarity scoring, CSS variable synthesis, and brand comparison.
package brand

// Colors is the color palette extracted from a website. Primary is always
// present after normalization; the remaining colors are optional.
type Colors struct {
	Primary    string   `json:"primary"`
	Secondary  *string  `json:"secondary"`
	Accent     *string  `json:"accent"`
	Background *string  `json:"background"`
	Text       *string  `json:"text"`
	Palette    []string `json:"palette"`
}

// Typography holds the font settings extracted from a website.
type Typography struct {
	Headings   string `json:"headings"`
	Body       string `json:"body"`
	Weights    []int  `json:"weights"`
	BaseSize   string `json:"base_size"`
	LineHeight string `json:"line_height"`
}

// Spacing describes the spacing system of a site.
type Spacing struct {
	Grid    string            `json:"grid"`
	Margins map[string]string `json:"margins"`
	Padding map[string]string `json:"padding"`
	Gap     *string           `json:"gap"`
}

// ButtonStyle is a single named button style.
type ButtonStyle struct {
	Bg           string  `json:"bg"`
	Text         string  `json:"text"`
	BorderRadius string  `json:"border_radius"`
	Padding      string  `json:"padding"`
	Border       *string `json:"border"`
	HoverBg      *string `json:"hover_bg"`
}

// Buttons groups the up-to-three named button styles of a site.
type Buttons struct {
	Primary   *ButtonStyle `json:"primary"`
	Secondary *ButtonStyle `json:"secondary"`
	Outline   *ButtonStyle `json:"outline"`
}

// Brand is the complete brand identity of a website. It is a value object:
// built once per extraction, immutable afterwards, never persisted.
type Brand struct {
	URL         string     `json:"url"`
	Colors      Colors     `json:"colors"`
	Typography  Typography `json:"typography"`
	Spacing     Spacing    `json:"spacing"`
	Buttons     Buttons    `json:"buttons"`
	LogoURL     *string    `json:"logo_url"`
	FaviconURL  *string    `json:"favicon_url"`
	Screenshots []string   `json:"screenshots"`
}

// GeneratedCode is the output of a generation call: parsed HTML, the full CSS
// (a synthesized :root block followed by the parsed CSS body), and a
// data-URI preview of the assembled document.
type GeneratedCode struct {
	HTML          string `json:"html"`
	CSS           string `json:"css"`
	PreviewURL    string `json:"preview_url"`
	ComponentType string `json:"component_type"`
}

// ComparisonMetrics is the metrics block of a brand comparison.
type ComparisonMetrics struct {
	ColorSimilarity float64  `json:"color_similarity"`
	TypographyMatch bool     `json:"typography_match"`
	FontOverlap     []string `json:"font_overlap"`
	Differences     []string `json:"differences"`
}

// Comparison pairs two brand records with their comparison metrics.
type Comparison struct {
	Site1      *Brand            `json:"site1"`
	Site2      *Brand            `json:"site2"`
	Comparison ComparisonMetrics `json:"comparison"`
}
