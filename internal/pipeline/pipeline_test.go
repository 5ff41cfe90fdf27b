package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/models"
)

const canonicalFixture = `{
	"ConnectionStrings": {"DefaultConnection": "Server=localhost;Database=MyApp;"},
	"Logging": {"LogLevel": {"Default": "Information", "Microsoft": "Warning"}},
	"AllowedHosts": "*"
}`

func TestConvert_CanonicalFixtureCompose(t *testing.T) {
	result, err := Convert(canonicalFixture, models.FormatCompose, models.ConversionOptions{}, models.FormatOptions{})
	require.NoError(t, err)

	require.Len(t, result.Records, 4)
	assert.Empty(t, result.Warnings)

	assert.Contains(t, result.Output, "  - ConnectionStrings__DefaultConnection=Server=localhost;Database=MyApp;\n")
	assert.Contains(t, result.Output, "  - AllowedHosts=\"*\"\n")

	assert.Equal(t, 7, result.Stats.TotalKeys)
	assert.Equal(t, 3, result.Stats.MaxDepth)
	assert.Equal(t, 0, result.Stats.ArrayCount)
}

func TestConvert_EmptyObject(t *testing.T) {
	result, err := Convert(`{}`, models.FormatCompose, models.ConversionOptions{}, models.FormatOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "environment:\n", result.Output)
}

func TestConvert_ValidationFailureShortCircuits(t *testing.T) {
	result, err := Convert(`{"a": 1,}`, models.FormatCompose, models.ConversionOptions{}, models.FormatOptions{})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.NotEmpty(t, appErr.Message)
	assert.Greater(t, appErr.Line, 0)
	assert.Greater(t, appErr.Column, 0)
}

func TestConvert_UnknownFormatKeepsWarnings(t *testing.T) {
	raw := `{"dotted.key": 1}`
	result, err := Convert(raw, models.Format("xml"), models.ConversionOptions{}, models.FormatOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)

	// warnings collected before the format failure are still reported
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Warnings)
	assert.NotEmpty(t, result.Records)
	assert.Empty(t, result.Output)
}

func TestConvert_WarningsAggregated(t *testing.T) {
	raw := `{"ConnectionStrings": {"Main": ""}, "Items": [], "dotted.key": 1}`
	result, err := Convert(raw, models.FormatEnvFile, models.ConversionOptions{}, models.FormatOptions{})
	require.NoError(t, err)

	// inspector: empty connection string + dotted key heuristics;
	// flattener: empty array + dot rewrite
	assert.GreaterOrEqual(t, len(result.Warnings), 4)
}

func TestConvert_EnvFileInheritsSeparatorAndTypeHints(t *testing.T) {
	raw := `{"App": {"Port": 8080}}`
	convOpts := models.ConversionOptions{KeySeparator: "_", IncludeTypeHints: true}
	result, err := Convert(raw, models.FormatEnvFile, convOpts, models.FormatOptions{
		EnvFile: models.EnvFileOptions{IncludeComments: true},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Output, "# App configuration")
	assert.Contains(t, result.Output, "# type: number, path: App.Port")
	assert.Contains(t, result.Output, "App_Port=8080")
}

func TestConvert_PlainTextEndToEnd(t *testing.T) {
	raw := `{"Greeting": "hello world"}`
	result, err := Convert(raw, models.FormatPlainText, models.ConversionOptions{}, models.FormatOptions{
		Plain: models.PlainTextOptions{ExportPrefix: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "export Greeting='hello world'\n", result.Output)
}
