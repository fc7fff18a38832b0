// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package firecrawl is a client for the Firecrawl scraping API. It handles
// raw page scrapes and schema-driven brand extraction (POST /scrape).
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"mirage/internal/brand"
)

// DefaultBaseURL is the Firecrawl v1 API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev/v1"

// Config holds the credentials and settings for the Firecrawl client.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client calls the Firecrawl API. Safe for concurrent use; each request is
// independent and bounded by the underlying HTTP client timeout.
type Client struct {
	config Config
	client *http.Client
}

// New creates a Firecrawl client. An empty APIKey falls back to the
// FIRECRAWL_API_KEY environment variable; a missing key is a configuration
// error surfaced at construction, not per call.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("FIRECRAWL_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("firecrawl: FIRECRAWL_API_KEY is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// ScrapeData is the payload of a raw scrape response.
type ScrapeData struct {
	HTML       string         `json:"html"`
	Markdown   string         `json:"markdown"`
	Screenshot string         `json:"screenshot"`
	Extract    map[string]any `json:"extract"`
}

type scrapeRequest struct {
	URL     string       `json:"url"`
	Formats []string     `json:"formats"`
	Extract *extractSpec `json:"extract,omitempty"`
}

type extractSpec struct {
	Schema map[string]any `json:"schema"`
	Prompt string         `json:"prompt"`
}

type scrapeResponse struct {
	Data ScrapeData `json:"data"`
}

// Scrape fetches a page as HTML and Markdown, optionally with a screenshot.
func (c *Client) Scrape(ctx context.Context, url string, includeScreenshot bool) (*ScrapeData, error) {
	req := scrapeRequest{
		URL:     url,
		Formats: []string{"html", "markdown"},
	}
	if includeScreenshot {
		req.Formats = append(req.Formats, "screenshot")
	}

	resp, err := c.doScrape(ctx, req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ExtractBrand analyzes a website and returns its normalized brand identity.
// The extraction schema and prompt are fixed; Firecrawl's structured output
// is fed through brand.Normalize so every optional field is defaulted.
func (c *Client) ExtractBrand(ctx context.Context, url string, includeScreenshots bool) (*brand.Brand, error) {
	req := scrapeRequest{
		URL:     url,
		Formats: []string{"extract"},
		Extract: &extractSpec{
			Schema: brandSchema(),
			Prompt: "Extract the brand identity including colors, typography, and button styles from this website. " +
				"For colors, provide hex values. For typography, identify the font families used for headings and body text.",
		},
	}
	if includeScreenshots {
		req.Formats = append(req.Formats, "screenshot")
	}

	resp, err := c.doScrape(ctx, req)
	if err != nil {
		return nil, err
	}

	var screenshots []string
	if includeScreenshots && resp.Data.Screenshot != "" {
		screenshots = append(screenshots, resp.Data.Screenshot)
	}

	return brand.Normalize(resp.Data.Extract, url, screenshots), nil
}

// doScrape posts a scrape request and decodes the response envelope.
// Non-2xx responses become errors carrying the status and body; they
// propagate to the caller unmodified, with no retry.
func (c *Client) doScrape(ctx context.Context, body scrapeRequest) (*scrapeResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("firecrawl marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/scrape", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("firecrawl request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("firecrawl http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("firecrawl read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("firecrawl API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result scrapeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("firecrawl unmarshal: %w", err)
	}

	return &result, nil
}

// brandSchema is the JSON schema sent to Firecrawl's extract format,
// describing the brand-identity fields to pull from the page.
func brandSchema() map[string]any {
	hexColor := func(desc string) map[string]any {
		return map[string]any{"type": "string", "description": desc}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"colors": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primary":    hexColor("Primary brand color in hex"),
					"secondary":  hexColor("Secondary brand color in hex"),
					"accent":     hexColor("Accent color in hex"),
					"background": hexColor("Background color in hex"),
					"text":       hexColor("Primary text color in hex"),
					"palette": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "All colors found on the page",
					},
				},
			},
			"typography": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"headings": map[string]any{"type": "string", "description": "Font family for headings"},
					"body":     map[string]any{"type": "string", "description": "Font family for body text"},
					"weights": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "integer"},
						"description": "Font weights used",
					},
				},
			},
			"buttons": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primary": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"bg":            map[string]any{"type": "string"},
							"text":          map[string]any{"type": "string"},
							"border_radius": map[string]any{"type": "string"},
							"padding":       map[string]any{"type": "string"},
						},
					},
				},
			},
			"logo_url":    map[string]any{"type": "string", "description": "URL to the website logo"},
			"favicon_url": map[string]any{"type": "string", "description": "URL to the favicon"},
		},
	}
}
