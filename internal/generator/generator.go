// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a brand record into generated HTML/CSS by
// prompting a text-generation provider and parsing its delimited response.
package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"mirage/internal/brand"
)

// TextGenerator is the generation collaborator. *ai.Registry satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DefaultComponentType is used when a request does not name a component.
const DefaultComponentType = "landing_page"

const systemPrompt = `You are an expert front-end developer. You produce clean, semantic,
responsive HTML and CSS that faithfully reproduces a given brand identity.
Follow the output format in the user's instructions exactly.`

// templatePrompts are the canned customizations for the pre-built template
// types of the apply-template operation.
var templatePrompts = map[string]string{
	"hero_section":  "Create a hero section with a headline, subheadline, CTA button, and optional image placeholder",
	"pricing_table": "Create a 3-tier pricing table with features, prices, and CTA buttons",
	"feature_grid":  "Create a 3-column feature grid with icons (use emoji placeholders), titles, and descriptions",
	"testimonial":   "Create a testimonial section with quote, author name, role, and company",
	"cta":           "Create a call-to-action section with headline, description, and primary button",
}

// Generator produces brand-matched code through a text-generation provider.
type Generator struct {
	llm TextGenerator
}

// New creates a Generator backed by the given text-generation collaborator.
func New(llm TextGenerator) *Generator {
	return &Generator{llm: llm}
}

// Replica generates HTML/CSS for a component matching the brand. The
// returned CSS always starts with a :root block of the brand's CSS
// variables; a response the parser cannot recognize degrades to empty
// HTML/CSS rather than an error. Only collaborator failures propagate.
func (g *Generator) Replica(ctx context.Context, b *brand.Brand, componentType, customization string) (*brand.GeneratedCode, error) {
	if componentType == "" {
		componentType = DefaultComponentType
	}

	cssVars := brand.CSSVariables(b)
	prompt := buildPrompt(b, cssVars, componentType, customization)

	text, err := g.llm.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", componentType, err)
	}

	html, css := ParseResponse(text)
	fullCSS := fmt.Sprintf(":root {\n%s\n}\n\n%s", cssVars, css)

	return &brand.GeneratedCode{
		HTML:          html,
		CSS:           fullCSS,
		PreviewURL:    PreviewURL(fullCSS, html),
		ComponentType: componentType,
	}, nil
}

// FromTemplate generates code for one of the pre-built template types,
// styled with the given brand. Unknown template types degrade to a generic
// component request instead of failing.
func (g *Generator) FromTemplate(ctx context.Context, b *brand.Brand, templateType string) (*brand.GeneratedCode, error) {
	customization, ok := templatePrompts[templateType]
	if !ok {
		customization = fmt.Sprintf("Create a %s component", templateType)
	}
	return g.Replica(ctx, b, templateType, customization)
}

// buildPrompt assembles the user prompt: the brand's fields, the CSS
// variables the generated CSS must use, and the delimiter-based output
// format the parser expects.
func buildPrompt(b *brand.Brand, cssVars, componentType, customization string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate a %s component using these brand specifications:\n\n", componentType)

	sb.WriteString("BRAND DATA:\n")
	fmt.Fprintf(&sb, "- Primary Color: %s\n", b.Colors.Primary)
	fmt.Fprintf(&sb, "- Secondary Color: %s\n", orDefault(b.Colors.Secondary, "N/A"))
	fmt.Fprintf(&sb, "- Accent Color: %s\n", orDefault(b.Colors.Accent, "N/A"))
	fmt.Fprintf(&sb, "- Background: %s\n", orDefault(b.Colors.Background, "#ffffff"))
	fmt.Fprintf(&sb, "- Text Color: %s\n", orDefault(b.Colors.Text, "#000000"))
	fmt.Fprintf(&sb, "- Heading Font: %s\n", b.Typography.Headings)
	fmt.Fprintf(&sb, "- Body Font: %s\n", b.Typography.Body)
	fmt.Fprintf(&sb, "- Button Style: %s\n", describeButton(b.Buttons.Primary))

	fmt.Fprintf(&sb, "\nCSS VARIABLES (use these):\n:root {\n%s\n}\n", cssVars)

	fmt.Fprintf(&sb, "\nCOMPONENT TYPE: %s\n", componentType)

	if customization != "" {
		fmt.Fprintf(&sb, "\nADDITIONAL INSTRUCTIONS: %s\n", customization)
	}

	sb.WriteString(`
REQUIREMENTS:
1. Generate clean, semantic HTML5
2. Generate CSS that uses the provided CSS variables
3. Make the component responsive
4. Use modern CSS (flexbox/grid)
5. Include hover states for interactive elements

OUTPUT FORMAT:
Return the response in this exact format:
---HTML---
[Your HTML code here]
---CSS---
[Your CSS code here]
---END---
`)

	return sb.String()
}

func orDefault(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

func describeButton(btn *brand.ButtonStyle) string {
	if btn == nil {
		return "Default"
	}
	return fmt.Sprintf("bg %s, text %s, radius %s, padding %s",
		btn.Bg, btn.Text, btn.BorderRadius, btn.Padding)
}

// PreviewURL assembles a self-contained HTML document embedding the CSS and
// HTML, and encodes it as a base64 data URI for direct browser preview.
func PreviewURL(css, html string) string {
	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>%s</style>
</head>
<body>
%s
</body>
</html>`, css, html)

	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(doc))
}
