// Package styles carries the stylesheet injected at the top of rendered
// resumes. The default sheet is embedded at compile time; callers may load a
// replacement sheet from disk instead.
package styles

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed default.css
var defaultCSS string

// Default returns the embedded stylesheet wrapped as a style block.
func Default() string {
	return Wrap(defaultCSS)
}

// Wrap embeds a raw CSS sheet in an HTML style element, ready to lead a
// Markdown document.
func Wrap(css string) string {
	return fmt.Sprintf("<style>\n%s\n</style>\n", css)
}

// Load reads a CSS file from disk and wraps it as a style block.
func Load(path string) (string, error) {
	css, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}
	return Wrap(string(css)), nil
}
