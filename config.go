package mdhtml

import (
	"sync"

	"github.com/riverfjs/mdhtml-go/internal/types"
)

// 导出类型别名
type (
	RenderConfig = types.RenderConfig
	Segment      = types.Segment
	SegmentKind  = types.SegmentKind
	Structure    = types.Structure
	Heading      = types.Heading
)

// Segment kinds.
const (
	RawLine      = types.RawLine
	Blank        = types.Blank
	HeadingLine  = types.HeadingLine
	Blockquote   = types.Blockquote
	Rule         = types.Rule
	TableBlock   = types.TableBlock
	BulletList   = types.BulletList
	NumberedList = types.NumberedList
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// The returned value is shared; copy it before changing fields.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
