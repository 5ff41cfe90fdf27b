package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mcrawford/flatenv/internal/models"
)

// rootGroup collects records whose key has no separator.
const rootGroup = "root"

// RenderEnvFile emits a .env file. Records are grouped by top-level
// section (the key up to the first separator) in first-seen order;
// comments and type hints are optional.
func RenderEnvFile(records []models.EnvRecord, opts models.EnvFileOptions) string {
	separator := opts.Separator
	if separator == "" {
		separator = models.DefaultKeySeparator
	}

	groupOrder := make([]string, 0)
	grouped := make(map[string][]models.EnvRecord)
	for _, record := range records {
		group := rootGroup
		if idx := strings.Index(record.Key, separator); idx > 0 {
			group = record.Key[:idx]
		}
		if _, seen := grouped[group]; !seen {
			groupOrder = append(groupOrder, group)
		}
		grouped[group] = append(grouped[group], record)
	}

	var buf bytes.Buffer
	if opts.IncludeComments {
		buf.WriteString("# Environment variables generated from appsettings.json\n")
		buf.WriteString("# Review values before using in production\n")
	}

	for _, group := range groupOrder {
		if opts.IncludeComments {
			buf.WriteString("\n")
			fmt.Fprintf(&buf, "# %s configuration\n", group)
		}
		for _, record := range grouped[group] {
			if opts.IncludeTypeHints && record.OriginalType != models.TypeString {
				fmt.Fprintf(&buf, "# type: %s, path: %s\n", record.OriginalType, record.OriginalPath)
			}
			value := record.Value
			if opts.AlwaysQuote || NeedsEnvQuoting(value) {
				value = envQuote(value)
			}
			fmt.Fprintf(&buf, "%s=%s\n", record.Key, value)
		}
	}
	return buf.String()
}
