// Package pipeline provides the core label production pipeline.
//
// This package implements the complete assemble → layout → render pipeline
// that can be used by CLI, server, and preview components. By centralizing
// this logic, we ensure a label renders identically no matter which entry
// point asked for it.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Assemble: Read product, nutrition, and seal data into a label document
//  2. Layout: Place the document's content on one of the fixed media sizes
//  3. Render: Serialize the layout in various formats (PDF, PNG, SVG, HTML, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ProductID: "4012",
//	    Source:    backofficeAPI,
//	    Size:      media.SizeFullLarge,
//	    Formats:   []string{"pdf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"]
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/labelpress/labelpress/pkg/cache"
	"github.com/labelpress/labelpress/pkg/label"
	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/media"
)

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatJSON = "json"
)

// DefaultFormat is the format produced when none is requested.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatPNG:  true,
	FormatSVG:  true,
	FormatHTML: true,
	FormatJSON: true,
}

// Options contains all configuration for the label pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Assemble options
	ProductID  string `json:"product_id"`
	BackendURL string `json:"backend_url,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`

	// Layout options
	Size media.Size `json:"size,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Source label.Source `json:"-"`
	Logger *log.Logger  `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the assembled label document.
	Document *label.Document

	// DocumentHash is the content hash of the document.
	DocumentHash string

	// Layout contains the computed placement for the chosen media.
	Layout *layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Warnings carries non-fatal findings, e.g. a missing barcode.
	Warnings []string

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AssembleTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	AssembleHit bool // Whether the document came from cache
	LayoutHit   bool // Whether the layout came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: pdf, png, svg, html, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForAssemble(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := media.Lookup(o.Size); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForAssemble checks required fields for document assembly.
func (o *Options) ValidateForAssemble() error {
	if o.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	if o.Source == nil {
		return fmt.Errorf("source is required")
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Size == "" {
		o.Size = media.DefaultSize
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
}

// DocumentKeyOpts returns cache key options for document assembly.
func (o *Options) DocumentKeyOpts() cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{BackendURL: o.BackendURL}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Size: string(o.Size)}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

// ExportFilename returns the deterministic export file name for a label.
// The same product on the same media always exports to the same name, so
// repeated exports overwrite instead of piling up copies.
func ExportFilename(sku string, size media.Size) string {
	return fmt.Sprintf("label_%s_%s.pdf", sanitizeFilePart(sku), size)
}

func sanitizeFilePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, s)
}
