// Package markup renders post bodies from markdown and prepares
// summaries for syndication.
package markup

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Render converts markdown source to sanitized HTML.
func Render(md string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	unsafe := markdown.Render(doc, renderer)
	return strings.TrimSpace(string(sanitizer.SanitizeBytes(unsafe)))
}

// Summary renders markdown and truncates the result to the given number
// of words without breaking tags.
func Summary(md string, words int) string {
	return TruncateWordsHTML(Render(md), words)
}
