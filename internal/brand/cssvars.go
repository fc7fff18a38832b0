// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"fmt"
	"strings"
)

// CSSVariables renders the brand as CSS custom-property declarations, one per
// line, ready to be wrapped in a :root block. The emission order is fixed:
// primary color, the optional colors, fonts, spacing grid, and the primary
// button's properties when a primary button style exists. Values are
// interpolated as-is; callers supply valid CSS value strings.
func CSSVariables(b *Brand) string {
	var vars []string
	add := func(name, value string) {
		vars = append(vars, fmt.Sprintf("  --%s: %s;", name, value))
	}
	addOpt := func(name string, value *string) {
		if value != nil {
			add(name, *value)
		}
	}

	add("color-primary", b.Colors.Primary)
	addOpt("color-secondary", b.Colors.Secondary)
	addOpt("color-accent", b.Colors.Accent)
	addOpt("color-background", b.Colors.Background)
	addOpt("color-text", b.Colors.Text)

	add("font-heading", b.Typography.Headings)
	add("font-body", b.Typography.Body)
	add("spacing-grid", b.Spacing.Grid)

	if btn := b.Buttons.Primary; btn != nil {
		add("btn-primary-bg", btn.Bg)
		add("btn-primary-text", btn.Text)
		add("btn-primary-radius", btn.BorderRadius)
	}

	return strings.Join(vars, "\n")
}
