// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes the brand tools over HTTP. Each tool is a POST
// endpoint taking a JSON body and returning a JSON document.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"mirage/internal/brand"
	"mirage/internal/generator"
)

// Extractor extracts a brand record from a live website.
// *firecrawl.Client satisfies it.
type Extractor interface {
	ExtractBrand(ctx context.Context, url string, includeScreenshots bool) (*brand.Brand, error)
}

// CodeGenerator produces brand-matched HTML/CSS.
// *generator.Generator satisfies it.
type CodeGenerator interface {
	Replica(ctx context.Context, b *brand.Brand, componentType, customization string) (*brand.GeneratedCode, error)
	FromTemplate(ctx context.Context, b *brand.Brand, templateType string) (*brand.GeneratedCode, error)
}

// Tools carries the collaborators behind the tool endpoints.
type Tools struct {
	extractor Extractor
	generator CodeGenerator
}

// NewTools wires the tool endpoints to their collaborators.
func NewTools(extractor Extractor, gen CodeGenerator) *Tools {
	return &Tools{extractor: extractor, generator: gen}
}

type extractBrandRequest struct {
	URL                string `json:"url"`
	IncludeScreenshots bool   `json:"include_screenshots"`
}

// ExtractBrand handles POST /tools/extract-brand.
func (t *Tools) ExtractBrand(w http.ResponseWriter, r *http.Request) {
	var req extractBrandRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	b, err := t.extractor.ExtractBrand(r.Context(), req.URL, req.IncludeScreenshots)
	if err != nil {
		slog.Error("extract brand", "url", req.URL, "error", err)
		writeError(w, http.StatusBadGateway, "brand extraction failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, b)
}

type generateReplicaRequest struct {
	BrandData     json.RawMessage `json:"brand_data"`
	ComponentType string          `json:"component_type"`
	Customization string          `json:"customization"`
}

// GenerateReplica handles POST /tools/generate-replica. The brand comes
// from the request body, normally a record previously produced by the
// extract-brand tool; partial records are normalized with defaults.
func (t *Tools) GenerateReplica(w http.ResponseWriter, r *http.Request) {
	var req generateReplicaRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.BrandData) == 0 {
		writeError(w, http.StatusBadRequest, "brand_data is required")
		return
	}

	b, err := brand.FromPayload(req.BrandData)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid brand: "+err.Error())
		return
	}

	code, err := t.generator.Replica(r.Context(), b, req.ComponentType, req.Customization)
	if err != nil {
		slog.Error("generate replica", "component_type", req.ComponentType, "error", err)
		writeError(w, http.StatusBadGateway, "generation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, code)
}

type replicateWebsiteRequest struct {
	URL                string `json:"url"`
	ComponentType      string `json:"component_type"`
	Customization      string `json:"customization"`
	IncludeScreenshots bool   `json:"include_screenshots"`
}

type replicateWebsiteResponse struct {
	BrandData *brand.Brand         `json:"brand_data"`
	Generated *brand.GeneratedCode `json:"generated"`
}

// ReplicateWebsite handles POST /tools/replicate-website. It chains
// extraction and generation in one call and returns both results.
func (t *Tools) ReplicateWebsite(w http.ResponseWriter, r *http.Request) {
	var req replicateWebsiteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	b, err := t.extractor.ExtractBrand(r.Context(), req.URL, req.IncludeScreenshots)
	if err != nil {
		slog.Error("replicate website: extract", "url", req.URL, "error", err)
		writeError(w, http.StatusBadGateway, "brand extraction failed: "+err.Error())
		return
	}

	code, err := t.generator.Replica(r.Context(), b, req.ComponentType, req.Customization)
	if err != nil {
		slog.Error("replicate website: generate", "url", req.URL, "error", err)
		writeError(w, http.StatusBadGateway, "generation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, replicateWebsiteResponse{BrandData: b, Generated: code})
}

type compareBrandsRequest struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}

// CompareBrands handles POST /tools/compare-brands. Both sites are
// extracted, then compared field by field.
func (t *Tools) CompareBrands(w http.ResponseWriter, r *http.Request) {
	var req compareBrandsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL1 == "" || req.URL2 == "" {
		writeError(w, http.StatusBadRequest, "url1 and url2 are required")
		return
	}

	a, err := t.extractor.ExtractBrand(r.Context(), req.URL1, false)
	if err != nil {
		slog.Error("compare brands: extract", "url", req.URL1, "error", err)
		writeError(w, http.StatusBadGateway, "brand extraction failed for "+req.URL1+": "+err.Error())
		return
	}

	b, err := t.extractor.ExtractBrand(r.Context(), req.URL2, false)
	if err != nil {
		slog.Error("compare brands: extract", "url", req.URL2, "error", err)
		writeError(w, http.StatusBadGateway, "brand extraction failed for "+req.URL2+": "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, brand.Compare(a, b))
}

type applyTemplateRequest struct {
	URL          string `json:"url"`
	TemplateType string `json:"template_type"`
}

type applyTemplateResponse struct {
	HTML         string `json:"html"`
	CSS          string `json:"css"`
	PreviewURL   string `json:"preview_url"`
	TemplateType string `json:"template_type"`
	SourceURL    string `json:"source_url"`
}

// ApplyTemplate handles POST /tools/apply-template. The named template is
// rendered in the brand extracted from the given site.
func (t *Tools) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req applyTemplateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.TemplateType == "" {
		req.TemplateType = generator.DefaultComponentType
	}

	b, err := t.extractor.ExtractBrand(r.Context(), req.URL, false)
	if err != nil {
		slog.Error("apply template: extract", "url", req.URL, "error", err)
		writeError(w, http.StatusBadGateway, "brand extraction failed: "+err.Error())
		return
	}

	code, err := t.generator.FromTemplate(r.Context(), b, req.TemplateType)
	if err != nil {
		slog.Error("apply template: generate", "template_type", req.TemplateType, "error", err)
		writeError(w, http.StatusBadGateway, "generation failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, applyTemplateResponse{
		HTML:         code.HTML,
		CSS:          code.CSS,
		PreviewURL:   code.PreviewURL,
		TemplateType: req.TemplateType,
		SourceURL:    req.URL,
	})
}

// decodeBody decodes a JSON request body into dst, writing a 400 response
// and returning false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
