package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, nil, *JSONObject, or JSONArray.
type JSONValue any

// JSONObject represents a JSON object with insertion order preserved.
// Key order is significant: emitted environment records must follow the
// depth-first, insertion-order traversal of the source document.
type JSONObject = orderedmap.OrderedMap[string, JSONValue]

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// NewObject creates an empty ordered JSON object.
func NewObject() *JSONObject {
	return orderedmap.New[string, JSONValue]()
}

// ValueType is the provenance type of a source JSON value.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeNull    ValueType = "null"
	TypeObject  ValueType = "object"
	TypeArray   ValueType = "array"
)

// EnvRecord is one flattened environment variable with full provenance.
type EnvRecord struct {
	// Key is the final sanitized, transformed, possibly-prefixed
	// identifier. It always matches ^[A-Za-z_][A-Za-z0-9_]*$.
	Key string
	// Value is the string serialization of the original primitive.
	Value string
	// OriginalPath is the dotted/bracketed path into the source document,
	// e.g. "Logging.LogLevel.Default" or "Servers[0]". Diagnostics only,
	// never parsed back.
	OriginalPath string
	// OriginalType records what the source value was before
	// stringification.
	OriginalType ValueType
	// IsArrayElement is true when the record came from a primitive array
	// element; ArrayIndex is meaningful only in that case.
	IsArrayElement bool
	ArrayIndex     int
}

// NamingConvention is the case-transformation policy applied to every
// emitted key.
type NamingConvention string

const (
	NamingPreserve       NamingConvention = "preserve"
	NamingUppercase      NamingConvention = "uppercase"
	NamingLowercase      NamingConvention = "lowercase"
	NamingSnake          NamingConvention = "snake"
	NamingScreamingSnake NamingConvention = "screaming-snake"
)

// NullHandling selects what a JSON null leaf turns into.
type NullHandling string

const (
	// NullAsEmpty emits the key with an empty string value.
	NullAsEmpty NullHandling = "empty"
	// NullOmit drops the key entirely.
	NullOmit NullHandling = "omit"
	// NullLiteral emits the literal string "null".
	NullLiteral NullHandling = "null"
)

// DefaultKeySeparator joins nested path segments into one identifier.
const DefaultKeySeparator = "__"

// ConversionOptions controls the flattening pass. Immutable per call.
type ConversionOptions struct {
	// Prefix is prepended verbatim to every final key. It is sanitized by
	// NormalizeConversionOptions, not by the flattener.
	Prefix string
	// NamingConvention transforms the final key; empty means preserve.
	NamingConvention NamingConvention
	// IncludeTypeHints asks the env-file renderer to emit a provenance
	// comment before records whose original type was not string.
	IncludeTypeHints bool
	// KeySeparator joins path segments; empty is coerced to "__".
	KeySeparator string
	// NullHandling selects the null policy; empty means NullAsEmpty.
	NullHandling NullHandling
	// JoinArrays collapses arrays to one comma-joined record instead of
	// the default element-by-element indexed expansion.
	JoinArrays bool
}

// Format selects one of the textual output formats.
type Format string

const (
	FormatCompose   Format = "compose"
	FormatEnvFile   Format = "env-file"
	FormatPlainText Format = "plain-text"
)

// ComposeStyle selects how the compose renderer lays out the environment
// block.
type ComposeStyle string

const (
	// ComposeArrayStyle emits "- KEY=value" sequence entries.
	ComposeArrayStyle ComposeStyle = "array"
	// ComposeMapStyle emits "KEY: value" mapping entries.
	ComposeMapStyle ComposeStyle = "map"
)

// ComposeOptions configures the Docker Compose renderer.
type ComposeOptions struct {
	Style  ComposeStyle
	Indent int
}

// EnvFileOptions configures the .env renderer.
type EnvFileOptions struct {
	// IncludeComments emits the file header and per-section comments.
	IncludeComments bool
	// IncludeTypeHints emits a type/path comment before non-string
	// records.
	IncludeTypeHints bool
	// AlwaysQuote forces double quoting of every value.
	AlwaysQuote bool
	// Separator is the key separator the records were flattened with;
	// used to derive section groups. Empty is coerced to "__".
	Separator string
}

// PlainTextOptions configures the shell-style plain text renderer.
type PlainTextOptions struct {
	// Separator sits between key and value; empty is coerced to "=".
	Separator string
	// ExportPrefix prepends "export " to each line.
	ExportPrefix bool
}

// FormatOptions bundles all per-renderer option bags; Render picks the one
// matching the requested format.
type FormatOptions struct {
	Compose ComposeOptions
	EnvFile EnvFileOptions
	Plain   PlainTextOptions
}

// ComplexityStats summarizes the shape of a converted document.
type ComplexityStats struct {
	TotalKeys       int
	MaxDepth        int
	ArrayCount      int
	Recommendations []string
}
