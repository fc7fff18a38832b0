// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import "strings"

// Response delimiters the model is instructed to emit.
const (
	markerHTML = "---HTML---"
	markerCSS  = "---CSS---"
	markerEnd  = "---END---"
)

// ParseResponse splits a model response into its HTML and CSS parts.
//
// The primary convention is the delimiter block the prompt asks for:
// ---HTML--- ... ---CSS--- ... ---END---. A missing ---END--- is tolerated;
// the CSS then runs to the end of the text. When the HTML/CSS marker pair is
// not fully present, the fallback looks for ```html and ```css fenced code
// blocks instead. The two strategies are never combined: a response with
// only one of the two markers yields empty strings, as does a response that
// matches neither convention. Parsing never fails.
func ParseResponse(text string) (html, css string) {
	hasHTML := strings.Contains(text, markerHTML)
	hasCSS := strings.Contains(text, markerCSS)

	switch {
	case hasHTML && hasCSS:
		return parseMarkers(text)
	case hasHTML || hasCSS:
		// A lone marker means a malformed marker response, not a fenced one.
		return "", ""
	default:
		return parseFences(text)
	}
}

func parseMarkers(text string) (html, css string) {
	_, afterHTML, _ := strings.Cut(text, markerHTML)
	htmlPart, _, _ := strings.Cut(afterHTML, markerCSS)
	html = strings.TrimSpace(htmlPart)

	_, afterCSS, _ := strings.Cut(text, markerCSS)
	cssPart, _, _ := strings.Cut(afterCSS, markerEnd)
	css = strings.TrimSpace(cssPart)

	return html, css
}

func parseFences(text string) (html, css string) {
	html = fencedBlock(text, "```html")
	css = fencedBlock(text, "```css")
	return html, css
}

// fencedBlock extracts the content of the first fenced code block opened by
// the given tag. Returns "" when the tag or closing fence is absent.
func fencedBlock(text, tag string) string {
	_, after, found := strings.Cut(text, tag)
	if !found {
		return ""
	}
	body, _, _ := strings.Cut(after, "```")
	return strings.TrimSpace(body)
}
