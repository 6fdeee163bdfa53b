package converter

import (
	"html"
	"strings"

	"github.com/riverfjs/mdhtml-go/internal/types"
)

// tableScanner 维护“是否在表格中”的状态和累积的表格行
type tableScanner struct {
	segments []Segment
	table    *Segment
}

// ScanTables 逐行扫描，把管道表格收拢成 TableBlock，其余每行一个 segment
//
// 规则：
//   - 含 | 的行且下一行是分隔行、当前不在表格中 → 开始表格，该行作为表头
//   - 已在表格中的含 | 行 → 追加（分隔行也会被追加，渲染时丢弃）
//   - 不在表格中的分隔行 → 丢弃
//   - 不含 | 的行 → 结束表格：多于一行则生成表格，否则原样输出
//   - 输入结束时按同样规则结束未闭合的表格
func ScanTables(lines []string) []Segment {
	s := &tableScanner{
		segments: make([]Segment, 0, len(lines)),
	}

	for i, line := range lines {
		hasPipe := strings.Contains(line, "|")
		switch {
		case hasPipe && s.table == nil && i+1 < len(lines) && IsSeparator(lines[i+1]):
			seg := newLineSegment(types.TableBlock, i, line)
			s.table = &seg
		case hasPipe && s.table != nil:
			appendLine(s.table, i, line)
		case hasPipe && IsSeparator(line):
			// 表格外的分隔行
		case hasPipe:
			s.emitLine(i, line)
		default:
			s.flush()
			s.emitLine(i, line)
		}
	}
	s.flush()

	return s.segments
}

func (s *tableScanner) emitLine(index int, line string) {
	kind := types.RawLine
	if line == "" {
		kind = types.Blank
	}
	s.segments = append(s.segments, newLineSegment(kind, index, line))
}

// flush 结束当前累积的表格
func (s *tableScanner) flush() {
	if s.table == nil {
		return
	}
	table := s.table
	s.table = nil

	if len(table.Lines) < 2 {
		// 误判：只有一行，原样输出
		for i, line := range table.Lines {
			s.emitLine(table.StartLine+i, line)
		}
		return
	}

	table.Items = tableRows(table.Lines)
	s.segments = append(s.segments, *table)
}

// tableRows 返回表头行和所有非分隔行的正文行
func tableRows(lines []string) []string {
	rows := []string{lines[0]}
	for _, line := range lines[1:] {
		if IsSeparator(line) {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// splitCells 按 | 拆分并去除空白，丢弃首尾 | 产生的空单元格
func splitCells(row string) []string {
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// RenderTable 将表格行渲染为 <table>，第一行为表头
func RenderTable(rows []string, config *RenderConfig) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if config.TableClass != "" {
		sb.WriteString(`<table class="`)
		sb.WriteString(html.EscapeString(config.TableClass))
		sb.WriteString(`">`)
	} else {
		sb.WriteString("<table>")
	}

	sb.WriteString("<thead><tr>")
	for _, cell := range splitCells(rows[0]) {
		sb.WriteString("<th>")
		sb.WriteString(FormatInline(cell))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead><tbody>")

	for _, row := range rows[1:] {
		cells := splitCells(row)
		if len(cells) == 0 {
			continue
		}
		sb.WriteString("<tr>")
		for _, cell := range cells {
			sb.WriteString("<td>")
			sb.WriteString(FormatInline(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</tbody></table>")
	return sb.String()
}
