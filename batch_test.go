package mdhtml

import (
	"context"
	"fmt"
	"testing"
)

// TestRenderAll_Order 测试批量转换保持输入顺序
func TestRenderAll_Order(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		workers int
	}{
		{name: "single worker", count: 10, workers: 1},
		{name: "more workers than summaries", count: 3, workers: 16},
		{name: "default workers", count: 50, workers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := make([]string, tt.count)
			for i := range summaries {
				summaries[i] = fmt.Sprintf("# Ausschreibung %d", i)
			}

			got, err := RenderAll(context.Background(), summaries, tt.workers)
			if err != nil {
				t.Fatalf("RenderAll() error = %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("RenderAll() len = %d, want %d", len(got), tt.count)
			}
			for i, html := range got {
				want := fmt.Sprintf("<h1>Ausschreibung %d</h1>", i)
				if html != want {
					t.Errorf("RenderAll()[%d] = %q, want %q", i, html, want)
				}
			}
		})
	}
}

// TestRenderAll_Empty 测试空输入
func TestRenderAll_Empty(t *testing.T) {
	got, err := RenderAll(context.Background(), nil, 4)
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("RenderAll() len = %d, want 0", len(got))
	}
}

// TestRenderAll_Cancelled 测试已取消的上下文
func TestRenderAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := RenderAll(ctx, []string{"**a**", "**b**"}, 2)
	if err != context.Canceled {
		t.Fatalf("RenderAll() error = %v, want %v", err, context.Canceled)
	}
	for i, html := range got {
		if html != "" {
			t.Errorf("RenderAll()[%d] = %q, want empty after cancel", i, html)
		}
	}
}

// TestBatch_Options 测试批量转换使用给定选项
func TestBatch_Options(t *testing.T) {
	batch := NewBatch(2, WithTableClass("t"), WithSanitize(true))
	got, err := batch.RenderAll(context.Background(), []string{"A|B\n-|-\n1|2", "<script>x</script>ok"})
	if err != nil {
		t.Fatalf("Batch.RenderAll() error = %v", err)
	}
	want := `<table class="t"><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>`
	if got[0] != want {
		t.Errorf("Batch.RenderAll()[0] = %q, want %q", got[0], want)
	}
	if got[1] != "ok" {
		t.Errorf("Batch.RenderAll()[1] = %q, want %q", got[1], "ok")
	}
}
