// Package flatenv converts hierarchical appsettings.json-style
// configuration documents into flat environment variable sets and renders
// them as Docker Compose fragments, .env files or shell-style text.
//
// The core is a pure library: validate → inspect → flatten → render, all
// synchronous, side-effect free and safe for concurrent use.
package flatenv

import (
	"github.com/mcrawford/flatenv/internal/converter"
	"github.com/mcrawford/flatenv/internal/inspector"
	"github.com/mcrawford/flatenv/internal/models"
	"github.com/mcrawford/flatenv/internal/parser"
	"github.com/mcrawford/flatenv/internal/pipeline"
	"github.com/mcrawford/flatenv/internal/render"
)

// Document is a validated JSON object with key order preserved.
type Document = models.JSONObject

// EnvRecord is one flattened environment variable with provenance.
type EnvRecord = models.EnvRecord

// ConversionOptions controls the flattening pass.
type ConversionOptions = models.ConversionOptions

// FormatOptions bundles the per-renderer option bags.
type FormatOptions = models.FormatOptions

// ComplexityStats summarizes the shape of a converted document.
type ComplexityStats = models.ComplexityStats

// Result is the composite outcome of Convert.
type Result = pipeline.Result

// Format selects an output format.
type Format = models.Format

// Output formats accepted by Render and Convert.
const (
	FormatCompose   = models.FormatCompose
	FormatEnvFile   = models.FormatEnvFile
	FormatPlainText = models.FormatPlainText
)

// DefaultConversionOptions returns the documented conversion defaults.
func DefaultConversionOptions() ConversionOptions {
	return converter.DefaultConversionOptions()
}

// Validate parses raw text into a Document, rejecting empty input,
// malformed JSON and non-object roots.
func Validate(raw string) (*Document, error) {
	return parser.ValidateString(raw)
}

// Inspect returns advisory warnings about a validated document.
func Inspect(doc *Document) []string {
	return inspector.Inspect(doc, inspector.DefaultOptions())
}

// Flatten converts a document into ordered environment records.
func Flatten(doc *Document, opts ConversionOptions) ([]EnvRecord, []string, error) {
	result, err := converter.Flatten(doc, opts)
	if err != nil {
		return nil, nil, err
	}
	return result.Records, result.Warnings, nil
}

// Render serializes records into the requested format.
func Render(records []EnvRecord, format Format, opts FormatOptions) (string, error) {
	return render.Render(records, format, opts)
}

// Convert runs the whole pipeline: validate, inspect, flatten, render.
func Convert(raw string, format Format, convOpts ConversionOptions, fmtOpts FormatOptions) (*Result, error) {
	return pipeline.Convert(raw, format, convOpts, fmtOpts)
}
