// Package render serializes flattened environment records into one of
// the textual output formats. Renderers are pure functions: same records
// and options, same output.
package render

import (
	"fmt"

	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/models"
)

// Render dispatches to the renderer for the requested format. An
// unrecognized format selector is a typed format error.
func Render(records []models.EnvRecord, format models.Format, opts models.FormatOptions) (string, error) {
	switch format {
	case models.FormatCompose:
		return RenderCompose(records, opts.Compose), nil
	case models.FormatEnvFile:
		return RenderEnvFile(records, opts.EnvFile), nil
	case models.FormatPlainText:
		return RenderPlainText(records, opts.Plain), nil
	default:
		return "", errors.NewFormatError(
			fmt.Sprintf("unrecognized output format %q, expected compose, env-file or plain-text", string(format)),
			errors.ErrUnknownFormat,
		)
	}
}
