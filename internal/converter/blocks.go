package converter

import "github.com/riverfjs/mdhtml-go/internal/types"

// blockGrouper 对表格扫描后剩下的单行 segment 做块级分类，并把相邻的列表项合并
type blockGrouper struct {
	out  []Segment
	list *Segment
}

// GroupBlocks 识别标题、列表、引用和分隔线
//
// 列表是线性扫描：遇到第一个匹配行时打开列表，遇到第一个不匹配的行时关闭。
// 无序列表和有序列表互不合并。
func GroupBlocks(segments []Segment) []Segment {
	g := &blockGrouper{
		out: make([]Segment, 0, len(segments)),
	}

	for _, seg := range segments {
		if seg.Kind != types.RawLine {
			g.emit(seg)
			continue
		}
		g.classify(seg)
	}
	g.closeList()

	return g.out
}

func (g *blockGrouper) classify(seg Segment) {
	line := seg.Lines[0]

	if level, text := matchHeading(line); level > 0 {
		seg.Kind = types.HeadingLine
		seg.Level = level
		seg.Items = []string{text}
		g.emit(seg)
		return
	}
	if item, ok := matchBullet(line); ok {
		g.addItem(types.BulletList, seg, item)
		return
	}
	if item, ok := matchNumbered(line); ok {
		g.addItem(types.NumberedList, seg, item)
		return
	}
	if text, ok := matchBlockquote(line); ok {
		seg.Kind = types.Blockquote
		seg.Items = []string{text}
		g.emit(seg)
		return
	}
	if isRule(line) {
		seg.Kind = types.Rule
		g.emit(seg)
		return
	}
	g.emit(seg)
}

func (g *blockGrouper) addItem(kind SegmentKind, seg Segment, item string) {
	if g.list != nil && g.list.Kind == kind {
		appendLine(g.list, seg.StartLine, seg.Lines[0])
		g.list.Items = append(g.list.Items, item)
		return
	}
	g.closeList()
	seg.Kind = kind
	seg.Items = []string{item}
	g.list = &seg
}

func (g *blockGrouper) emit(seg Segment) {
	g.closeList()
	g.out = append(g.out, seg)
}

func (g *blockGrouper) closeList() {
	if g.list == nil {
		return
	}
	g.out = append(g.out, *g.list)
	g.list = nil
}
