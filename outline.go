package mdhtml

import "github.com/riverfjs/mdhtml-go/internal/parser"

// Outline reports the block structure of a Markdown summary (headings,
// tables, lists, blockquotes, rules, code spans) as parsed by goldmark.
func Outline(markdown string) Structure {
	return parser.Outline(markdown)
}
