// Package inspector walks a validated document and emits advisory
// warnings about patterns that tend to cause trouble once flattened into
// environment variables. It never invalidates input.
package inspector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mcrawford/flatenv/internal/models"
)

// DefaultMaxDepth is the nesting depth beyond which a warning is emitted.
const DefaultMaxDepth = 10

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options tunes the inspection pass. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// StringSections are root sections whose entries are conventionally
	// strings; non-string or empty values there draw a warning.
	StringSections []string
	// RootArrayExemptKeys are root keys allowed to hold arrays without a
	// warning.
	RootArrayExemptKeys []string
	// MaxDepth is the nesting depth beyond which deep-nesting is flagged.
	MaxDepth int
}

// DefaultOptions returns the conventional .NET appsettings heuristics.
func DefaultOptions() Options {
	return Options{
		StringSections:      []string{"ConnectionStrings"},
		RootArrayExemptKeys: []string{"AllowedHosts"},
		MaxDepth:            DefaultMaxDepth,
	}
}

// Inspect runs every heuristic over the document and returns the
// collected warnings, in document order per heuristic.
func Inspect(doc *models.JSONObject, opts Options) []string {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	warnings := make([]string, 0)

	for pair := doc.Oldest(); pair != nil; pair = pair.Next() {
		if containsKey(opts.StringSections, pair.Key) {
			warnings = append(warnings, inspectStringSection(pair.Key, pair.Value)...)
		}
		if pair.Key == "Logging" {
			warnings = append(warnings, inspectLogLevel(pair.Value)...)
		}
		if _, isArray := pair.Value.(models.JSONArray); isArray && !containsKey(opts.RootArrayExemptKeys, pair.Key) {
			warnings = append(warnings, fmt.Sprintf("array found at root-level key %q, arrays flatten to indexed or comma-joined variables", pair.Key))
		}
	}

	w := &walker{maxDepth: opts.MaxDepth}
	w.walkObject(doc, 1)
	warnings = append(warnings, w.warnings...)

	return warnings
}

// inspectStringSection checks a conventionally-string section such as
// ConnectionStrings for non-string and empty entries.
func inspectStringSection(section string, value models.JSONValue) []string {
	obj, ok := value.(*models.JSONObject)
	if !ok {
		return nil
	}
	var warnings []string
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		s, isString := pair.Value.(string)
		if !isString {
			warnings = append(warnings, fmt.Sprintf("%s entry %q is not a string value", section, pair.Key))
			continue
		}
		if s == "" {
			warnings = append(warnings, fmt.Sprintf("%s entry %q is an empty string", section, pair.Key))
		}
	}
	return warnings
}

// inspectLogLevel checks Logging.LogLevel entries, which .NET expects to
// be log level name strings.
func inspectLogLevel(logging models.JSONValue) []string {
	obj, ok := logging.(*models.JSONObject)
	if !ok {
		return nil
	}
	levelValue, found := obj.Get("LogLevel")
	if !found {
		return nil
	}
	levels, ok := levelValue.(*models.JSONObject)
	if !ok {
		return nil
	}
	var warnings []string
	for pair := levels.Oldest(); pair != nil; pair = pair.Next() {
		if _, isString := pair.Value.(string); !isString {
			warnings = append(warnings, fmt.Sprintf("Logging.LogLevel entry %q is not a string value", pair.Key))
		}
	}
	return warnings
}

type walker struct {
	maxDepth    int
	warnedDepth bool
	warnings    []string
}

func (w *walker) walkObject(obj *models.JSONObject, depth int) {
	if depth > w.maxDepth && !w.warnedDepth {
		w.warnedDepth = true
		w.warnings = append(w.warnings, fmt.Sprintf("very deep nesting detected (more than %d levels), consider restructuring the document", w.maxDepth))
	}
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		w.inspectKey(pair.Key)
		w.walkValue(pair.Value, depth+1)
	}
}

func (w *walker) walkValue(value models.JSONValue, depth int) {
	switch v := value.(type) {
	case *models.JSONObject:
		w.walkObject(v, depth)
	case models.JSONArray:
		for _, element := range v {
			w.walkValue(element, depth+1)
		}
	}
}

// inspectKey flags key spellings the flattener will have to rewrite.
func (w *walker) inspectKey(key string) {
	if strings.Contains(key, "__") {
		w.warnings = append(w.warnings, fmt.Sprintf("key %q contains \"__\" which may collide with the key separator", key))
	}
	if strings.Contains(key, ".") {
		w.warnings = append(w.warnings, fmt.Sprintf("key %q contains \".\" and will be rewritten during conversion", key))
	}
	if !identifierRegex.MatchString(key) {
		w.warnings = append(w.warnings, fmt.Sprintf("key %q contains special characters and will be sanitized", key))
	}
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
