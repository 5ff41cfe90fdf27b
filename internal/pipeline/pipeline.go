// Package pipeline composes validate → inspect → flatten → render into
// one call and aggregates warnings and statistics along the way.
package pipeline

import (
	"fmt"

	"github.com/mcrawford/flatenv/internal/converter"
	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/inspector"
	"github.com/mcrawford/flatenv/internal/models"
	"github.com/mcrawford/flatenv/internal/parser"
	"github.com/mcrawford/flatenv/internal/render"
)

// Result is the composite outcome of a successful conversion. On a
// format error the partial result (records, warnings, stats) is returned
// alongside the error so callers can still report what was collected.
type Result struct {
	Output   string
	Records  []models.EnvRecord
	Warnings []string
	Stats    models.ComplexityStats
}

// Convert runs the whole pipeline over raw input. Validation failures
// short-circuit before flattening; unexpected internal panics are
// converted into conversion errors at this boundary rather than
// propagated.
func Convert(raw string, format models.Format, convOpts models.ConversionOptions, fmtOpts models.FormatOptions) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.NewConversionError(fmt.Sprintf("internal error during conversion: %v", r), nil)
		}
	}()

	doc, err := parser.ValidateString(raw)
	if err != nil {
		return nil, err
	}

	warnings := inspector.Inspect(doc, inspector.DefaultOptions())

	convOpts = converter.NormalizeConversionOptions(convOpts)
	flat, err := converter.Flatten(doc, convOpts)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, flat.Warnings...)
	warnings = append(warnings, render.ValidateRecords(flat.Records)...)

	stats := converter.AnalyzeComplexity(doc)

	// The env-file renderer needs the separator the records were built
	// with, and the type-hint request rides on the conversion options.
	if fmtOpts.EnvFile.Separator == "" {
		fmtOpts.EnvFile.Separator = convOpts.KeySeparator
	}
	if convOpts.IncludeTypeHints {
		fmtOpts.EnvFile.IncludeTypeHints = true
	}

	output, err := render.Render(flat.Records, format, fmtOpts)
	if err != nil {
		return &Result{Records: flat.Records, Warnings: warnings, Stats: stats}, err
	}

	return &Result{
		Output:   output,
		Records:  flat.Records,
		Warnings: warnings,
		Stats:    stats,
	}, nil
}
