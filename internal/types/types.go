package types

// SegmentKind 表示一段连续源行被归类成的块类型
type SegmentKind int

const (
	// RawLine is a plain text line that ends up inside a paragraph.
	RawLine SegmentKind = iota
	// Blank is an empty source line; it separates paragraphs.
	Blank
	// HeadingLine is a single `#`, `##` or `###` line.
	HeadingLine
	// Blockquote is a single `> text` line.
	Blockquote
	// Rule is a `---` or `***` line.
	Rule
	// TableBlock is a header row, separator and body rows of a pipe table.
	TableBlock
	// BulletList is a run of adjacent `-`, `*` or `+` items.
	BulletList
	// NumberedList is a run of adjacent `1.` style items.
	NumberedList
)

var segmentKindNames = map[SegmentKind]string{
	RawLine:      "raw_line",
	Blank:        "blank",
	HeadingLine:  "heading",
	Blockquote:   "blockquote",
	Rule:         "rule",
	TableBlock:   "table",
	BulletList:   "bullet_list",
	NumberedList: "numbered_list",
}

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	if name, ok := segmentKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets segments serialise with readable kinds.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment 记录一段源行的块类型和位置
type Segment struct {
	Kind      SegmentKind `json:"kind"`
	StartLine int         `json:"start_line"` // 起始行（0 开始）
	EndLine   int         `json:"end_line"`   // 结束行（包含）
	Level     int         `json:"level,omitempty"`
	Lines     []string    `json:"lines"`           // 去除首尾空白后的源行
	Items     []string    `json:"items,omitempty"` // 列表项文本，或表格中保留下来的行
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// TableClass is set as the class attribute of every rendered table.
	// Empty means no attribute.
	TableClass string
	LineBreak  string
	Rule       string
	// Sanitize runs the rendered markup through an allow-list policy.
	Sanitize bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		TableClass: "markdown-table",
		LineBreak:  "<br>",
		Rule:       "<hr>",
		Sanitize:   false,
	}
}

// Heading is one heading found by the outline walker.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Structure summarises the block structure of a Markdown document.
type Structure struct {
	Headings    []Heading `json:"headings"`
	Tables      int       `json:"tables"`
	Lists       int       `json:"lists"`
	ListItems   int       `json:"list_items"`
	Blockquotes int       `json:"blockquotes"`
	CodeSpans   int       `json:"code_spans"`
	Rules       int       `json:"rules"`
}
