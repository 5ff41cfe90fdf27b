package render

import (
	"regexp"
	"strings"
)

// Quoting predicates for the three output formats. Each is a pure
// function of the value; the renderers never quote unless the matching
// predicate demands it.

var (
	// yamlAmbiguousRegex matches bare scalars YAML 1.1 would re-type as
	// booleans or null.
	yamlAmbiguousRegex = regexp.MustCompile(`(?i)^(true|false|null|yes|no|on|off)$`)
	// yamlNumberRegex matches integer, float and scientific-notation
	// forms YAML would re-type as numbers.
	yamlNumberRegex = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?$`)
	// bareShellRegex matches values safe to emit unquoted in shell-style
	// output.
	bareShellRegex = regexp.MustCompile(`^[A-Za-z0-9_./:-]+$`)
)

// yamlSpecialChars are characters with structural meaning in YAML flow
// or block context.
const yamlSpecialChars = ":[]{}|>*&!%@`"

// NeedsYamlQuoting reports whether a value must be double-quoted to stay
// a string when the compose output is parsed as YAML.
func NeedsYamlQuoting(value string) bool {
	if value == "" {
		return true
	}
	if yamlAmbiguousRegex.MatchString(value) {
		return true
	}
	if yamlNumberRegex.MatchString(value) {
		return true
	}
	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
		return true
	}
	if strings.ContainsAny(value, yamlSpecialChars) {
		return true
	}
	if strings.TrimSpace(value) != value {
		return true
	}
	if strings.ContainsAny(value, `#"'`) {
		return true
	}
	return false
}

// yamlQuote wraps a value in double quotes when required, escaping
// internal double quotes.
func yamlQuote(value string) string {
	if !NeedsYamlQuoting(value) {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}

// NeedsEnvQuoting reports whether a .env value must be double-quoted:
// any whitespace or a character dotenv parsers treat specially.
func NeedsEnvQuoting(value string) bool {
	if strings.ContainsAny(value, " \t\n\r") {
		return true
	}
	return strings.ContainsAny(value, "#\"'$\\`")
}

var envEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// envQuote double-quotes a .env value with standard backslash escapes.
func envQuote(value string) string {
	return `"` + envEscaper.Replace(value) + `"`
}

// NeedsShellQuoting reports whether a plain-text value must be wrapped in
// single quotes. Empty values always are.
func NeedsShellQuoting(value string) bool {
	return !bareShellRegex.MatchString(value)
}

// shellQuote single-quotes a value, escaping internal single quotes with
// the POSIX close-quote/reopen idiom.
func shellQuote(value string) string {
	if value == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}
