// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"mirage/internal/brand"
)

// mockLLM records the prompts it receives and replies with a fixed response.
type mockLLM struct {
	response     string
	err          error
	systemPrompt string
	userPrompt   string
}

func (m *mockLLM) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.systemPrompt = systemPrompt
	m.userPrompt = userPrompt
	return m.response, m.err
}

func testBrand() *brand.Brand {
	secondary := "#00A699"
	return brand.Normalize(map[string]any{
		"colors": map[string]any{
			"primary":   "#FF5A5F",
			"secondary": secondary,
		},
		"typography": map[string]any{
			"headings": "Circular",
			"body":     "Helvetica",
		},
	}, "https://example.com", nil)
}

func TestReplica(t *testing.T) {
	llm := &mockLLM{response: "---HTML---\n<div class=\"card\">Hi</div>\n---CSS---\n.card { color: var(--color-primary); }\n---END---"}
	gen := New(llm)

	code, err := gen.Replica(context.Background(), testBrand(), "card", "")
	if err != nil {
		t.Fatalf("Replica: %v", err)
	}

	if code.HTML != `<div class="card">Hi</div>` {
		t.Errorf("HTML = %q", code.HTML)
	}
	if !strings.HasPrefix(code.CSS, ":root {") {
		t.Errorf("CSS should start with :root block, got %q", code.CSS)
	}
	if !strings.Contains(code.CSS, "--color-primary: #FF5A5F;") {
		t.Errorf("CSS missing primary variable: %q", code.CSS)
	}
	if !strings.Contains(code.CSS, ".card { color: var(--color-primary); }") {
		t.Errorf("CSS missing generated rules: %q", code.CSS)
	}
	if code.ComponentType != "card" {
		t.Errorf("ComponentType = %q, want card", code.ComponentType)
	}
}

func TestReplica_DefaultComponentType(t *testing.T) {
	llm := &mockLLM{response: "---HTML---\n<main></main>\n---CSS---\nmain{}\n---END---"}
	gen := New(llm)

	code, err := gen.Replica(context.Background(), testBrand(), "", "")
	if err != nil {
		t.Fatalf("Replica: %v", err)
	}
	if code.ComponentType != DefaultComponentType {
		t.Errorf("ComponentType = %q, want %q", code.ComponentType, DefaultComponentType)
	}
}

func TestReplica_PromptContents(t *testing.T) {
	llm := &mockLLM{response: "---HTML---\nx\n---CSS---\ny\n---END---"}
	gen := New(llm)

	_, err := gen.Replica(context.Background(), testBrand(), "hero", "make it bold")
	if err != nil {
		t.Fatalf("Replica: %v", err)
	}

	for _, want := range []string{
		"- Primary Color: #FF5A5F",
		"- Secondary Color: #00A699",
		"- Accent Color: N/A",
		"- Heading Font: Circular",
		"COMPONENT TYPE: hero",
		"ADDITIONAL INSTRUCTIONS: make it bold",
		"--color-primary: #FF5A5F;",
		"---HTML---",
	} {
		if !strings.Contains(llm.userPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if llm.systemPrompt == "" {
		t.Error("expected a non-empty system prompt")
	}
}

func TestReplica_ProviderError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	gen := New(&mockLLM{err: wantErr})

	_, err := gen.Replica(context.Background(), testBrand(), "hero", "")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestReplica_UnparseableResponse(t *testing.T) {
	gen := New(&mockLLM{response: "no delimiters here"})

	code, err := gen.Replica(context.Background(), testBrand(), "hero", "")
	if err != nil {
		t.Fatalf("Replica: %v", err)
	}
	if code.HTML != "" {
		t.Errorf("HTML = %q, want empty", code.HTML)
	}
	if !strings.HasPrefix(code.CSS, ":root {") {
		t.Errorf("CSS should still carry the :root block, got %q", code.CSS)
	}
}

func TestFromTemplate_KnownType(t *testing.T) {
	llm := &mockLLM{response: "---HTML---\nx\n---CSS---\ny\n---END---"}
	gen := New(llm)

	code, err := gen.FromTemplate(context.Background(), testBrand(), "pricing_table")
	if err != nil {
		t.Fatalf("FromTemplate: %v", err)
	}
	if code.ComponentType != "pricing_table" {
		t.Errorf("ComponentType = %q", code.ComponentType)
	}
	if !strings.Contains(llm.userPrompt, "3-tier pricing table") {
		t.Errorf("prompt missing pricing template instructions: %q", llm.userPrompt)
	}
}

func TestFromTemplate_UnknownType(t *testing.T) {
	llm := &mockLLM{response: "---HTML---\nx\n---CSS---\ny\n---END---"}
	gen := New(llm)

	_, err := gen.FromTemplate(context.Background(), testBrand(), "footer")
	if err != nil {
		t.Fatalf("FromTemplate: %v", err)
	}
	if !strings.Contains(llm.userPrompt, "Create a footer component") {
		t.Errorf("prompt missing generic fallback: %q", llm.userPrompt)
	}
}

func TestPreviewURL(t *testing.T) {
	url := PreviewURL(".a{color:red}", "<div class=\"a\">hi</div>")

	const prefix = "data:text/html;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("url = %q, want %q prefix", url, prefix)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	doc := string(decoded)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<meta charset="UTF-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
		"<style>.a{color:red}</style>",
		"<div class=\"a\">hi</div>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("decoded document missing %q", want)
		}
	}
}
