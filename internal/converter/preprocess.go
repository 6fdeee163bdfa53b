package converter

import (
	"regexp"
	"strings"
)

var (
	// 强调：按 ***、**、* 的顺序替换，避免互相吞掉
	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)

	// 行内代码
	inlineCodeRe = regexp.MustCompile("`(.+?)`")

	// 表格分隔行：只含空白、-、: 和 |
	separatorRe = regexp.MustCompile(`^\|?[\s\-:|]+\|?$`)

	bulletItemRe   = regexp.MustCompile(`^[*\-+] (.*)$`)
	numberedItemRe = regexp.MustCompile(`^\d+\. (.*)$`)
	blockquoteRe   = regexp.MustCompile(`^> (.*)$`)

	// 已经以标签开头的行不再包一层 <p>
	markupStartRe = regexp.MustCompile(`^<[A-Za-z/!]`)
)

// headingPrefixes 按最长前缀优先排列
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// SplitLines 统一换行符并拆分为去除首尾空白的行
func SplitLines(markdown string) []string {
	normalized := strings.ReplaceAll(markdown, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// FormatInline 处理行内强调和行内代码
func FormatInline(text string) string {
	text = boldItalicRe.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicRe.ReplaceAllString(text, "<em>$1</em>")
	text = inlineCodeRe.ReplaceAllString(text, "<code>$1</code>")
	return text
}

// IsSeparator reports whether line is a table separator row.
func IsSeparator(line string) bool {
	return separatorRe.MatchString(line)
}

// StartsWithMarkup reports whether text already begins with a tag.
func StartsWithMarkup(text string) bool {
	return markupStartRe.MatchString(text)
}

// matchHeading 返回标题级别和内容；不是标题时 level 为 0
func matchHeading(line string) (int, string) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return h.level, strings.TrimSpace(line[len(h.prefix):])
		}
	}
	return 0, ""
}

func matchBullet(line string) (string, bool) {
	return submatch(bulletItemRe, line)
}

func matchNumbered(line string) (string, bool) {
	return submatch(numberedItemRe, line)
}

func matchBlockquote(line string) (string, bool) {
	return submatch(blockquoteRe, line)
}

func isRule(line string) bool {
	return line == "---" || line == "***"
}

func submatch(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
