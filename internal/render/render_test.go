package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcrawford/flatenv/internal/errors"
	"github.com/mcrawford/flatenv/internal/models"
)

func TestRender_DispatchesByFormat(t *testing.T) {
	records := []models.EnvRecord{{Key: "K", Value: "v"}}

	compose, err := Render(records, models.FormatCompose, models.FormatOptions{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(compose, "environment:"))

	envFile, err := Render(records, models.FormatEnvFile, models.FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "K=v\n", envFile)

	plain, err := Render(records, models.FormatPlainText, models.FormatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "K=v\n", plain)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(nil, models.Format("toml"), models.FormatOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeFormat, appErr.Type)
}

func TestValidateRecords(t *testing.T) {
	records := []models.EnvRecord{
		{Key: "GOOD", Value: "v"},
		{Key: "GOOD", Value: "again"},
		{Key: "9bad", Value: "v"},
		{Key: strings.Repeat("K", 300), Value: "v"},
		{Key: "BIG", Value: strings.Repeat("v", 40000)},
	}
	warnings := ValidateRecords(records)

	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], `duplicate key "GOOD"`)
	assert.Contains(t, warnings[1], `key "9bad" is not a valid environment variable name`)
	assert.Contains(t, warnings[2], "longer than 255 characters")
	assert.Contains(t, warnings[3], "longer than 32767 characters")
}

func TestValidateRecords_Clean(t *testing.T) {
	warnings := ValidateRecords(fixtureRecords())
	assert.Empty(t, warnings)
}
