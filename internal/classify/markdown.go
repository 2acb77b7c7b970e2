package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// DocTitle returns the first heading of a Markdown file, for use as a
// description when the name-based heuristics produce nothing. Non-Markdown
// paths, unreadable files and documents without a heading all yield "".
func DocTitle(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
	default:
		return ""
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	doc := markdown.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = headingText(heading, source)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(title)
}

// headingText extracts the plain text of a heading node.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}
