package render

import (
	"fmt"
	"regexp"

	"github.com/mcrawford/flatenv/internal/models"
)

// Practical limits drawn from common shell and Windows environment
// constraints. Purely advisory, rendering is never blocked.
const (
	maxKeyLength   = 255
	maxValueLength = 32767
)

var recordKeyRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateRecords scans keys and values for portability problems:
// duplicate keys, non-identifier keys and oversized keys or values.
func ValidateRecords(records []models.EnvRecord) []string {
	warnings := make([]string, 0)
	seen := make(map[string]bool)
	for _, record := range records {
		if seen[record.Key] {
			warnings = append(warnings, fmt.Sprintf("duplicate key %q, later values overwrite earlier ones", record.Key))
		}
		seen[record.Key] = true
		if !recordKeyRegex.MatchString(record.Key) {
			warnings = append(warnings, fmt.Sprintf("key %q is not a valid environment variable name", record.Key))
		}
		if len(record.Key) > maxKeyLength {
			warnings = append(warnings, fmt.Sprintf("key %q is longer than %d characters", record.Key, maxKeyLength))
		}
		if len(record.Value) > maxValueLength {
			warnings = append(warnings, fmt.Sprintf("value for key %q is longer than %d characters", record.Key, maxValueLength))
		}
	}
	return warnings
}
