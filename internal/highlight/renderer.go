// Package highlight renders source snippets as styled HTML. The actual
// tokenizing and formatting is delegated to an external library; this package
// only defines the collaborator contract and the chroma-backed implementation.
package highlight

// Result holds rendered markup plus the stylesheet needed to display it.
type Result struct {
	// HTML is the highlighted markup (a <pre> block with span classes).
	HTML string
	// CSS is the stylesheet for the classes referenced by HTML.
	CSS string
}

// Renderer turns a code snippet plus language and theme tags into markup and
// style metadata. Implementations fail with a descriptive error when either
// tag is unrecognized; callers should not assume stable wording.
type Renderer interface {
	Render(code, language, theme string) (*Result, error)
}
