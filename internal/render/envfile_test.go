package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcrawford/flatenv/internal/models"
)

func TestRenderEnvFile_Basic(t *testing.T) {
	output := RenderEnvFile(fixtureRecords(), models.EnvFileOptions{})

	want := "ConnectionStrings__DefaultConnection=Server=localhost;Database=MyApp;\n" +
		"Logging__LogLevel__Default=Information\n" +
		"Logging__LogLevel__Microsoft=Warning\n" +
		"AllowedHosts=*\n"
	assert.Equal(t, want, output)
}

func TestRenderEnvFile_GroupingPreservesFirstSeenOrder(t *testing.T) {
	records := []models.EnvRecord{
		{Key: "B__one", Value: "1"},
		{Key: "A__one", Value: "2"},
		{Key: "B__two", Value: "3"},
		{Key: "Solo", Value: "4"},
	}
	output := RenderEnvFile(records, models.EnvFileOptions{IncludeComments: true})

	bIdx := strings.Index(output, "# B configuration")
	aIdx := strings.Index(output, "# A configuration")
	rootIdx := strings.Index(output, "# root configuration")
	require.Greater(t, bIdx, -1)
	require.Greater(t, aIdx, -1)
	require.Greater(t, rootIdx, -1)
	assert.Less(t, bIdx, aIdx)
	assert.Less(t, aIdx, rootIdx)

	// grouping pulls B__two up next to B__one
	bSection := output[bIdx:aIdx]
	assert.Contains(t, bSection, "B__one=1")
	assert.Contains(t, bSection, "B__two=3")
}

func TestRenderEnvFile_HeaderComments(t *testing.T) {
	output := RenderEnvFile([]models.EnvRecord{{Key: "K", Value: "v"}}, models.EnvFileOptions{IncludeComments: true})

	lines := strings.Split(output, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "# Environment variables generated from appsettings.json", lines[0])
	assert.Equal(t, "# Review values before using in production", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "# root configuration", lines[3])
	assert.Equal(t, "K=v", lines[4])
}

func TestRenderEnvFile_TypeHints(t *testing.T) {
	records := []models.EnvRecord{
		{Key: "Port", Value: "8080", OriginalPath: "Port", OriginalType: models.TypeNumber},
		{Key: "Name", Value: "api", OriginalPath: "Name", OriginalType: models.TypeString},
	}
	output := RenderEnvFile(records, models.EnvFileOptions{IncludeTypeHints: true})

	assert.Contains(t, output, "# type: number, path: Port\nPort=8080\n")
	// string records carry no hint
	assert.NotContains(t, output, "# type: string")
}

func TestRenderEnvFile_Quoting(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"bare", "simple", "K=simple"},
		{"space", "has space", `K="has space"`},
		{"hash", "a#b", `K="a#b"`},
		{"dollar", "$HOME", `K="$HOME"`},
		{"backslash", `a\b`, `K="a\\b"`},
		{"double quote", `say "hi"`, `K="say \"hi\""`},
		{"newline", "a\nb", `K="a\nb"`},
		{"tab", "a\tb", `K="a\tb"`},
		{"backtick", "a`b", "K=\"a`b\""},
		{"empty", "", "K="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := RenderEnvFile([]models.EnvRecord{{Key: "K", Value: tt.value}}, models.EnvFileOptions{})
			assert.Equal(t, tt.want+"\n", output)
		})
	}
}

func TestRenderEnvFile_AlwaysQuote(t *testing.T) {
	output := RenderEnvFile([]models.EnvRecord{{Key: "K", Value: "plain"}}, models.EnvFileOptions{AlwaysQuote: true})
	assert.Equal(t, "K=\"plain\"\n", output)
}

func TestRenderEnvFile_CustomSeparatorGrouping(t *testing.T) {
	records := []models.EnvRecord{
		{Key: "App.Name", Value: "x"},
	}
	output := RenderEnvFile(records, models.EnvFileOptions{IncludeComments: true, Separator: "."})
	assert.Contains(t, output, "# App configuration")
}
