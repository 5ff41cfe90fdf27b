package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mcrawford/flatenv/internal/models"
)

// DefaultComposeIndent is the indent width used when none is configured.
const DefaultComposeIndent = 2

// RenderCompose emits a YAML fragment with an environment: block, either
// as a "- KEY=value" sequence or a "KEY: value" mapping. Values pass
// through the YAML quoting predicate so the fragment parses back with
// every value still a string.
func RenderCompose(records []models.EnvRecord, opts models.ComposeOptions) string {
	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultComposeIndent
	}
	style := opts.Style
	if style == "" {
		style = models.ComposeArrayStyle
	}
	pad := strings.Repeat(" ", indent)

	var buf bytes.Buffer
	buf.WriteString("environment:\n")
	for _, record := range records {
		value := yamlQuote(record.Value)
		if style == models.ComposeMapStyle {
			fmt.Fprintf(&buf, "%s%s: %s\n", pad, record.Key, value)
		} else {
			fmt.Fprintf(&buf, "%s- %s=%s\n", pad, record.Key, value)
		}
	}
	return buf.String()
}
