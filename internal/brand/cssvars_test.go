// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"strings"
	"testing"
)

func TestCSSVariables_MinimalBrand(t *testing.T) {
	b := Normalize(map[string]any{
		"colors":     map[string]any{"primary": "#FF5A5F"},
		"typography": map[string]any{"headings": "Inter", "body": "Georgia"},
	}, "https://example.com", nil)

	got := CSSVariables(b)
	want := strings.Join([]string{
		"  --color-primary: #FF5A5F;",
		"  --font-heading: Inter;",
		"  --font-body: Georgia;",
		"  --spacing-grid: 8px;",
	}, "\n")

	if got != want {
		t.Errorf("CSSVariables =\n%s\nwant:\n%s", got, want)
	}
}

func TestCSSVariables_FullBrandOrder(t *testing.T) {
	b := Normalize(map[string]any{
		"colors": map[string]any{
			"primary":    "#FF5A5F",
			"secondary":  "#00A699",
			"accent":     "#FC642D",
			"background": "#FFFFFF",
			"text":       "#484848",
		},
		"typography": map[string]any{"headings": "Circular", "body": "Circular"},
		"spacing":    map[string]any{"grid": "4px"},
		"buttons": map[string]any{
			"primary": map[string]any{"bg": "#FF5A5F", "text": "#FFFFFF", "border_radius": "8px"},
		},
	}, "https://example.com", nil)

	got := CSSVariables(b)

	order := []string{
		"--color-primary",
		"--color-secondary",
		"--color-accent",
		"--color-background",
		"--color-text",
		"--font-heading",
		"--font-body",
		"--spacing-grid",
		"--btn-primary-bg",
		"--btn-primary-text",
		"--btn-primary-radius",
	}
	last := -1
	for _, name := range order {
		idx := strings.Index(got, name)
		if idx == -1 {
			t.Fatalf("CSSVariables missing %q:\n%s", name, got)
		}
		if idx < last {
			t.Errorf("CSSVariables emits %q out of order:\n%s", name, got)
		}
		last = idx
	}

	if !strings.Contains(got, "  --btn-primary-radius: 8px;") {
		t.Errorf("CSSVariables missing button radius value:\n%s", got)
	}
}

func TestCSSVariables_OmitsAbsentOptionals(t *testing.T) {
	b := Normalize(map[string]any{
		"colors": map[string]any{"primary": "#123456"},
	}, "https://example.com", nil)

	got := CSSVariables(b)

	for _, absent := range []string{"--color-secondary", "--color-accent", "--btn-primary-bg"} {
		if strings.Contains(got, absent) {
			t.Errorf("CSSVariables should omit %q when unset:\n%s", absent, got)
		}
	}
}
