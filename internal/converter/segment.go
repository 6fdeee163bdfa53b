package converter

import "github.com/riverfjs/mdhtml-go/internal/types"

type (
	Segment      = types.Segment
	SegmentKind  = types.SegmentKind
	RenderConfig = types.RenderConfig
)

// newLineSegment 创建只覆盖一行的 segment
func newLineSegment(kind SegmentKind, index int, line string) Segment {
	return Segment{
		Kind:      kind,
		StartLine: index,
		EndLine:   index,
		Lines:     []string{line},
	}
}

// appendLine 将下一行并入 segment
func appendLine(s *Segment, index int, line string) {
	s.Lines = append(s.Lines, line)
	s.EndLine = index
}
