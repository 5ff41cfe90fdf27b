package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcrawford/flatenv/internal/models"
)

func TestNormalizeConversionOptions_Defaults(t *testing.T) {
	normalized := NormalizeConversionOptions(models.ConversionOptions{})

	assert.Equal(t, models.DefaultKeySeparator, normalized.KeySeparator)
	assert.Equal(t, models.NamingPreserve, normalized.NamingConvention)
	assert.Equal(t, models.NullAsEmpty, normalized.NullHandling)
	assert.Equal(t, "", normalized.Prefix)
}

func TestNormalizeConversionOptions_Idempotent(t *testing.T) {
	inputs := []models.ConversionOptions{
		{},
		{Prefix: "my-app", KeySeparator: "_"},
		{Prefix: "1app", NamingConvention: models.NamingUppercase},
		{Prefix: "app___", NullHandling: models.NullOmit},
		DefaultConversionOptions(),
	}
	for _, opts := range inputs {
		once := NormalizeConversionOptions(opts)
		twice := NormalizeConversionOptions(once)
		assert.Equal(t, once, twice)
	}
}

func TestSanitizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"myapp", "myapp_"},
		{"myapp_", "myapp_"},
		{"my-app", "my_app_"},
		{"my.app", "my_app_"},
		{"1app", "_1app_"},
		{"app___", "app_"},
		{"___", "_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizePrefix(tt.in), "prefix %q", tt.in)
	}
}

func TestDefaultConversionOptions(t *testing.T) {
	opts := DefaultConversionOptions()
	assert.False(t, opts.JoinArrays)
	assert.False(t, opts.IncludeTypeHints)
	assert.Equal(t, "__", opts.KeySeparator)
	// defaults are already normalized
	assert.Equal(t, opts, NormalizeConversionOptions(opts))
}
