package mdhtml

import (
	"github.com/riverfjs/mdhtml-go/internal/converter"
	"github.com/riverfjs/mdhtml-go/internal/normalize"
	"github.com/riverfjs/mdhtml-go/internal/sanitize"
)

// RenderWithOptions 使用给定 Option 将 Markdown 转换为 HTML
func RenderWithOptions(markdown string, opts ...Option) string {
	options := applyOptions(opts...)

	source := markdown
	if options.HTMLInput {
		source = normalizeHTML(source)
	}

	html, _ := RenderWithSegments(source, options.Config)
	return html
}

// RenderWithSegments 将 Markdown 转换为 (html, segments)
//
// 类似 Render()，但还返回按源行顺序排列的块级 segment 信息
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: HTML 片段
//   - []Segment: 标题、段落行、表格、列表等块信息
func RenderWithSegments(markdown string, config *RenderConfig) (string, []Segment) {
	if config == nil {
		config = DefaultConfig()
	}

	html, segments := converter.Convert(markdown, config)
	if config.Sanitize && html != "" {
		html = sanitize.HTML(html, config.TableClass)
	}
	return html, segments
}

// normalizeHTML 把 HTML 摘要转换回 Markdown 子集，失败时保留原文
func normalizeHTML(source string) string {
	markdown, err := normalize.ToMarkdown(source)
	if err != nil {
		Logger.Printf("HTML input kept as-is: %v", err)
		return source
	}
	return markdown
}
