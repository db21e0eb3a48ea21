package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromaRenderer_RenderPython(t *testing.T) {
	renderer := NewChromaRenderer(true, "source")

	result, err := renderer.Render("print('hello')", "python", "monokai")
	require.NoError(t, err)

	assert.Contains(t, result.HTML, "<pre")
	// Quotes in the source must come back HTML-escaped.
	assert.Contains(t, result.HTML, "&#39;hello&#39;")
	assert.NotEmpty(t, result.CSS)
	// Generated class names carry the configured prefix.
	assert.Contains(t, result.HTML, "source-")
	assert.Contains(t, result.CSS, "source-")
}

func TestChromaRenderer_UnknownLanguage(t *testing.T) {
	renderer := NewChromaRenderer(false, "source")

	_, err := renderer.Render("some code", "not-a-real-language", "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-real-language")
}

func TestChromaRenderer_UnknownTheme(t *testing.T) {
	renderer := NewChromaRenderer(false, "source")

	_, err := renderer.Render("print('hi')", "python", "not-a-real-theme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-real-theme")
}

func TestChromaRenderer_DefaultTheme(t *testing.T) {
	renderer := NewChromaRenderer(false, "source")

	tests := []struct {
		name  string
		theme string
	}{
		{name: "named default", theme: "default"},
		{name: "empty", theme: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := renderer.Render("print('hi')", "python", tt.theme)
			require.NoError(t, err)
			assert.Contains(t, result.HTML, "<pre")
		})
	}
}

func TestChromaRenderer_LineNumbers(t *testing.T) {
	code := "a = 1\nb = 2\nc = 3"

	with := NewChromaRenderer(true, "source")
	without := NewChromaRenderer(false, "source")

	withResult, err := with.Render(code, "python", "default")
	require.NoError(t, err)
	withoutResult, err := without.Render(code, "python", "default")
	require.NoError(t, err)

	// Line-numbered output is strictly larger for the same input.
	assert.Greater(t, len(withResult.HTML), len(withoutResult.HTML))
}

func TestChromaRenderer_MultilineGo(t *testing.T) {
	renderer := NewChromaRenderer(false, "source")

	code := strings.Join([]string{
		"package main",
		"",
		`import "fmt"`,
		"",
		"func main() {",
		`	fmt.Println("hello")`,
		"}",
	}, "\n")

	result, err := renderer.Render(code, "go", "monokai")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "package")
	assert.Contains(t, result.HTML, "fmt")
}
