// Package mdhtml 将 AI 生成的 Markdown 摘要转换为可直接插入页面的 HTML 片段
//
// 只支持一个窄子集：
//   - 一到三级标题
//   - 粗体、斜体、粗斜体、行内代码
//   - 管道表格
//   - 无序列表、有序列表
//   - 引用、分隔线、段落和换行
//
// 转换是纯函数：不做 I/O、不共享可变状态，可以并发调用。
// 默认不做转义或清洗，输入中的 HTML 会原样保留；需要时使用 WithSanitize。
//
// 主要 API：
//   - Render(): 使用默认配置转换
//   - RenderWithOptions(): 使用 Option 转换
//   - RenderWithSegments(): 同时返回中间 segments
//   - RenderAll(): 并发批量转换
//   - Outline(): 基于 goldmark 的结构分析
//
// 示例：
//
//	html := mdhtml.Render("# 标题\n\n- a\n- b")
//
//	htmls, err := mdhtml.RenderAll(ctx, summaries, 4, mdhtml.WithSanitize(true))
package mdhtml

// Render 使用默认配置将 Markdown 转换为 HTML
//
// 空输入返回空字符串，任何输入都不会 panic。
func Render(markdown string) string {
	return RenderWithOptions(markdown)
}

// RenderBytes is Render for byte input; a nil slice renders to "".
func RenderBytes(markdown []byte) string {
	if markdown == nil {
		return ""
	}
	return Render(string(markdown))
}
