package highlight

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// defaultTheme is the theme tag that maps to chroma's fallback style, so
// clients can omit the theme without knowing any chroma style names.
const defaultTheme = "default"

// ChromaRenderer renders code to HTML using the chroma tokenizer. Markup uses
// CSS classes rather than inline styles so the stylesheet can be shipped
// separately in the response document.
type ChromaRenderer struct {
	lineNumbers bool
	cssClass    string
}

// NewChromaRenderer creates a renderer. cssClass prefixes every generated
// class name, keeping the injected stylesheet scoped when the returned markup
// is embedded in a larger page.
func NewChromaRenderer(lineNumbers bool, cssClass string) *ChromaRenderer {
	return &ChromaRenderer{
		lineNumbers: lineNumbers,
		cssClass:    cssClass,
	}
}

// Render tokenizes code with the lexer for language, formats it with the
// named theme, and returns markup plus stylesheet. Unknown language or theme
// tags produce an error naming the bad tag.
func (cr *ChromaRenderer) Render(code, language, theme string) (result *Result, err error) {
	// The tokenizer is an external collaborator; a panic in it must fail the
	// one request, not the process.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("rendering failed: %v", r)
		}
	}()

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("no lexer for language %q", language)
	}
	lexer = chroma.Coalesce(lexer)

	style, err := cr.lookupStyle(theme)
	if err != nil {
		return nil, err
	}

	opts := []html.Option{
		html.WithClasses(true),
		html.ClassPrefix(cr.cssClass + "-"),
	}
	if cr.lineNumbers {
		opts = append(opts, html.WithLineNumbers(true))
	}
	formatter := html.New(opts...)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenizing failed: %w", err)
	}

	var markup bytes.Buffer
	if err := formatter.Format(&markup, style, iterator); err != nil {
		return nil, fmt.Errorf("formatting failed: %w", err)
	}

	var css bytes.Buffer
	if err := formatter.WriteCSS(&css, style); err != nil {
		return nil, fmt.Errorf("generating stylesheet failed: %w", err)
	}

	return &Result{HTML: markup.String(), CSS: css.String()}, nil
}

// lookupStyle resolves a theme tag to a chroma style. "default" and the empty
// string map to the fallback style; anything else must name a registered style.
func (cr *ChromaRenderer) lookupStyle(theme string) (*chroma.Style, error) {
	if theme == "" || theme == defaultTheme {
		return styles.Fallback, nil
	}
	if !slices.Contains(styles.Names(), theme) {
		return nil, fmt.Errorf("no style for theme %q", theme)
	}
	return styles.Get(theme), nil
}
