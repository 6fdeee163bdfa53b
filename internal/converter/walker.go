package converter

import (
	"fmt"
	"strings"

	"github.com/riverfjs/mdhtml-go/internal/buffer"
	"github.com/riverfjs/mdhtml-go/internal/types"
)

// SegmentWalker 按顺序遍历 segments 并生成 HTML
type SegmentWalker struct {
	buf    *buffer.MarkupBuffer
	config *RenderConfig
}

// NewSegmentWalker 创建新的 SegmentWalker
func NewSegmentWalker(config *RenderConfig) *SegmentWalker {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	return &SegmentWalker{
		buf:    buffer.New(),
		config: config,
	}
}

// Walk 处理一个 segment
func (w *SegmentWalker) Walk(seg Segment) {
	switch seg.Kind {
	case types.Blank:
		// 空行：段落分隔
		w.buf.CloseParagraph()

	case types.RawLine:
		w.onLine(seg.Lines[0])

	case types.HeadingLine:
		w.buf.CloseParagraph()
		w.buf.Write(fmt.Sprintf("<h%d>%s</h%d>", seg.Level, FormatInline(firstItem(seg)), seg.Level))

	case types.Blockquote:
		w.buf.CloseParagraph()
		w.buf.Write("<blockquote>" + FormatInline(firstItem(seg)) + "</blockquote>")

	case types.Rule:
		w.buf.CloseParagraph()
		w.buf.Write(w.config.Rule)

	case types.TableBlock:
		w.buf.CloseParagraph()
		w.buf.Write(RenderTable(seg.Items, w.config))

	case types.BulletList:
		w.buf.CloseParagraph()
		w.onList("ul", seg.Items)

	case types.NumberedList:
		w.buf.CloseParagraph()
		w.onList("ol", seg.Items)
	}
}

// Result 关闭未结束的段落并返回 HTML
func (w *SegmentWalker) Result() string {
	w.buf.CloseParagraph()
	return w.buf.String()
}

// onLine 普通文本行：段落内用换行标签连接
func (w *SegmentWalker) onLine(line string) {
	if !w.buf.InParagraph() {
		w.buf.OpenParagraph(!StartsWithMarkup(line))
	}
	w.buf.WriteLine(FormatInline(line), w.config.LineBreak)
}

func (w *SegmentWalker) onList(tag string, items []string) {
	if len(items) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString("<" + tag + ">")
	for _, item := range items {
		sb.WriteString("<li>")
		sb.WriteString(FormatInline(item))
		sb.WriteString("</li>")
	}
	sb.WriteString("</" + tag + ">")
	w.buf.Write(sb.String())
}

func firstItem(seg Segment) string {
	if len(seg.Items) == 0 {
		return ""
	}
	return seg.Items[0]
}

// Convert 将 Markdown 转换为 HTML，同时返回中间 segments
//
// 空输入返回空字符串。不做任何转义。
func Convert(markdown string, config *RenderConfig) (string, []Segment) {
	if markdown == "" {
		return "", nil
	}

	lines := SplitLines(markdown)
	segments := GroupBlocks(ScanTables(lines))

	walker := NewSegmentWalker(config)
	for _, seg := range segments {
		walker.Walk(seg)
	}
	return walker.Result(), segments
}
