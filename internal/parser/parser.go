package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/mdhtml-go/internal/types"
)

// StandardOptions goldmark 扩展配置；摘要里的表格是 GFM 管道表格
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
}

var md = goldmark.New(StandardOptions...)

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) (ast.Node, []byte) {
	source := []byte(markdown)
	return md.Parser().Parse(text.NewReader(source)), source
}

// Outline 解析 Markdown 并统计标题、表格、列表等块结构
//
// 与转换器互相独立，可用于核对转换结果或在渲染前检查摘要。
func Outline(markdown string) types.Structure {
	structure := types.Structure{
		Headings: make([]types.Heading, 0),
	}
	if markdown == "" {
		return structure
	}

	node, source := ParseAST(markdown)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			structure.Headings = append(structure.Headings, types.Heading{
				Level: n.Level,
				Text:  strings.TrimSpace(plainText(n, source)),
			})
			return ast.WalkSkipChildren, nil
		case *east.Table:
			structure.Tables++
		case *ast.List:
			structure.Lists++
		case *ast.ListItem:
			structure.ListItems++
		case *ast.Blockquote:
			structure.Blockquotes++
		case *ast.CodeSpan:
			structure.CodeSpans++
		case *ast.ThematicBreak:
			structure.Rules++
		}
		return ast.WalkContinue, nil
	})

	return structure
}

// plainText 收集节点下所有文本，去掉强调等行内标记
func plainText(n ast.Node, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(plainText(c, source))
		}
	}
	return buf.String()
}
