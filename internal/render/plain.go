package render

import (
	"bytes"
	"fmt"

	"github.com/mcrawford/flatenv/internal/models"
)

// DefaultPlainSeparator sits between key and value when none is
// configured.
const DefaultPlainSeparator = "="

// RenderPlainText emits shell-style KEY=value lines. Values that are not
// plainly safe are single-quoted with POSIX escaping; an optional
// "export " prefix makes the output sourceable.
func RenderPlainText(records []models.EnvRecord, opts models.PlainTextOptions) string {
	separator := opts.Separator
	if separator == "" {
		separator = DefaultPlainSeparator
	}

	var buf bytes.Buffer
	for _, record := range records {
		value := record.Value
		if value == "" || NeedsShellQuoting(value) {
			value = shellQuote(value)
		}
		if opts.ExportPrefix {
			buf.WriteString("export ")
		}
		fmt.Fprintf(&buf, "%s%s%s\n", record.Key, separator, value)
	}
	return buf.String()
}
