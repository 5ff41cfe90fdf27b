package converter

import (
	"regexp"
	"strings"

	"github.com/mcrawford/flatenv/internal/models"
)

var (
	invalidCharRegex = regexp.MustCompile(`[^A-Za-z0-9_]`)
	validStartRegex  = regexp.MustCompile(`^[A-Za-z_]`)
)

// DefaultConversionOptions returns the documented defaults: no prefix,
// preserve naming, "__" separator, nulls as empty strings, arrays
// expanded with indices.
func DefaultConversionOptions() models.ConversionOptions {
	return models.ConversionOptions{
		NamingConvention: models.NamingPreserve,
		KeySeparator:     models.DefaultKeySeparator,
		NullHandling:     models.NullAsEmpty,
	}
}

// NormalizeConversionOptions fills unset fields with their defaults and
// sanitizes the prefix. It is idempotent:
// NormalizeConversionOptions(NormalizeConversionOptions(o)) ==
// NormalizeConversionOptions(o).
func NormalizeConversionOptions(opts models.ConversionOptions) models.ConversionOptions {
	if opts.KeySeparator == "" {
		opts.KeySeparator = models.DefaultKeySeparator
	}
	if opts.NamingConvention == "" {
		opts.NamingConvention = models.NamingPreserve
	}
	if opts.NullHandling == "" {
		opts.NullHandling = models.NullAsEmpty
	}
	opts.Prefix = sanitizePrefix(opts.Prefix)
	return opts
}

// sanitizePrefix rewrites a non-empty prefix into a safe identifier
// fragment ending in exactly one underscore.
func sanitizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	prefix = invalidCharRegex.ReplaceAllString(prefix, "_")
	if !validStartRegex.MatchString(prefix) {
		prefix = "_" + prefix
	}
	return strings.TrimRight(prefix, "_") + "_"
}
