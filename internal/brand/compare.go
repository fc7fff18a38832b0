// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"fmt"
	"strings"
)

// Compare builds a structured diff of two brand records. Typography matches
// when either the heading fonts or the body fonts agree (case-insensitive).
// Differences are human-readable strings appended in a fixed order — primary
// color, heading font, body font — and only when the values actually differ.
func Compare(a, b *Brand) *Comparison {
	colorSimilarity := Similarity(a.Colors.Primary, b.Colors.Primary)

	aHead := strings.ToLower(a.Typography.Headings)
	aBody := strings.ToLower(a.Typography.Body)
	bHead := strings.ToLower(b.Typography.Headings)
	bBody := strings.ToLower(b.Typography.Body)

	typographyMatch := aHead == bHead || aBody == bBody

	fontOverlap := []string{}
	seen := map[string]bool{}
	for _, font := range []string{aHead, aBody} {
		if seen[font] {
			continue
		}
		seen[font] = true
		if font == bHead || font == bBody {
			fontOverlap = append(fontOverlap, font)
		}
	}

	differences := []string{}
	if a.Colors.Primary != b.Colors.Primary {
		differences = append(differences,
			fmt.Sprintf("Primary color: %s vs %s", a.Colors.Primary, b.Colors.Primary))
	}
	if aHead != bHead {
		differences = append(differences,
			fmt.Sprintf("Heading font: %s vs %s", a.Typography.Headings, b.Typography.Headings))
	}
	if aBody != bBody {
		differences = append(differences,
			fmt.Sprintf("Body font: %s vs %s", a.Typography.Body, b.Typography.Body))
	}

	return &Comparison{
		Site1: a,
		Site2: b,
		Comparison: ComparisonMetrics{
			ColorSimilarity: colorSimilarity,
			TypographyMatch: typographyMatch,
			FontOverlap:     fontOverlap,
			Differences:     differences,
		},
	}
}
