// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import "encoding/json"

// Field defaults applied during normalization. The extraction payload is
// loosely structured; any missing optional field falls back to these.
const (
	defaultColor       = "#000000"
	defaultFont        = "sans-serif"
	defaultBaseSize    = "16px"
	defaultLineHeight  = "1.5"
	defaultGrid        = "8px"
	defaultBtnText     = "#ffffff"
	defaultBtnRadius   = "4px"
	defaultBtnPadding  = "12px 24px"
)

var defaultWeights = []int{400, 600, 700}

// Normalize maps a loosely structured extraction payload into a fully
// defaulted Brand. Absent keys are never an error: missing sections are
// backfilled with all-default sub-records and unrecognized keys are ignored.
// The transform is pure and idempotent on already-canonical payloads.
func Normalize(raw map[string]any, sourceURL string, screenshots []string) *Brand {
	b := &Brand{
		URL:         sourceURL,
		Colors:      normalizeColors(getMap(raw, "colors")),
		Typography:  normalizeTypography(getMap(raw, "typography")),
		Spacing:     normalizeSpacing(getMap(raw, "spacing")),
		LogoURL:     getStringPtr(raw, "logo_url"),
		FaviconURL:  getStringPtr(raw, "favicon_url"),
		Screenshots: screenshots,
	}
	if b.Screenshots == nil {
		b.Screenshots = []string{}
	}
	b.Buttons = normalizeButtons(getMap(raw, "buttons"), b.Colors.Primary)
	return b
}

// FromPayload rebuilds a Brand from a plain JSON mapping, as produced by a
// prior extraction call. The source URL and screenshot list are read from the
// payload itself.
func FromPayload(data []byte) (*Brand, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Normalize(raw, getString(raw, "url", ""), getStringList(raw, "screenshots")), nil
}

func normalizeColors(m map[string]any) Colors {
	c := Colors{
		Primary:    getString(m, "primary", defaultColor),
		Secondary:  getStringPtr(m, "secondary"),
		Accent:     getStringPtr(m, "accent"),
		Background: getStringPtr(m, "background"),
		Text:       getStringPtr(m, "text"),
		Palette:    getStringList(m, "palette"),
	}
	if c.Palette == nil {
		c.Palette = []string{}
	}
	return c
}

func normalizeTypography(m map[string]any) Typography {
	t := Typography{
		Headings:   getString(m, "headings", defaultFont),
		Body:       getString(m, "body", defaultFont),
		Weights:    getIntList(m, "weights"),
		BaseSize:   getString(m, "base_size", defaultBaseSize),
		LineHeight: getString(m, "line_height", defaultLineHeight),
	}
	if len(t.Weights) == 0 {
		t.Weights = append([]int(nil), defaultWeights...)
	}
	return t
}

func normalizeSpacing(m map[string]any) Spacing {
	s := Spacing{
		Grid:    getString(m, "grid", defaultGrid),
		Margins: getStringMap(m, "margins"),
		Padding: getStringMap(m, "padding"),
		Gap:     getStringPtr(m, "gap"),
	}
	return s
}

// normalizeButtons builds the button styles. A primary button missing its
// background inherits the brand's primary color; missing text defaults to
// white so the button stays legible on that background.
func normalizeButtons(m map[string]any, primaryColor string) Buttons {
	var b Buttons
	if btn := getMap(m, "primary"); btn != nil {
		b.Primary = normalizeButton(btn, primaryColor)
	}
	if btn := getMap(m, "secondary"); btn != nil {
		b.Secondary = normalizeButton(btn, primaryColor)
	}
	if btn := getMap(m, "outline"); btn != nil {
		b.Outline = normalizeButton(btn, primaryColor)
	}
	return b
}

func normalizeButton(m map[string]any, fallbackBg string) *ButtonStyle {
	return &ButtonStyle{
		Bg:           getString(m, "bg", fallbackBg),
		Text:         getString(m, "text", defaultBtnText),
		BorderRadius: getString(m, "border_radius", defaultBtnRadius),
		Padding:      getString(m, "padding", defaultBtnPadding),
		Border:       getStringPtr(m, "border"),
		HoverBg:      getStringPtr(m, "hover_bg"),
	}
}

// --- defensive accessors for untyped payloads ---

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	v, _ := m[key].(map[string]any)
	return v
}

func getString(m map[string]any, key, fallback string) string {
	if m != nil {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func getStringPtr(m map[string]any, key string) *string {
	if m != nil {
		if s, ok := m[key].(string); ok && s != "" {
			return &s
		}
	}
	return nil
}

func getStringList(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getIntList reads a list of integers. JSON numbers decode as float64, so
// both forms are accepted.
func getIntList(m map[string]any, key string) []int {
	if m == nil {
		return nil
	}
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		switch n := it.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		}
	}
	return out
}

func getStringMap(m map[string]any, key string) map[string]string {
	out := make(map[string]string)
	if m == nil {
		return out
	}
	inner, ok := m[key].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range inner {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
