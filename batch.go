package mdhtml

import (
	"context"
	"runtime"
	"sync"
)

// Batch renders many summaries concurrently with a fixed set of options.
type Batch struct {
	// Workers bounds the number of goroutines; <= 0 means runtime.NumCPU().
	Workers int
	Options []Option
}

// NewBatch creates a Batch.
func NewBatch(workers int, opts ...Option) *Batch {
	return &Batch{
		Workers: workers,
		Options: opts,
	}
}

// RenderAll 并发转换多篇摘要，结果顺序与输入一致
//
// 参数：
//   - ctx: 上下文，取消后不再派发新的摘要
//   - summaries: Markdown 摘要列表
//   - workers: 并发数，<= 0 时使用 CPU 数
//   - opts: 渲染选项
//
// 返回：
//   - []string: 与 summaries 一一对应的 HTML
//   - error: 上下文被取消时返回 ctx.Err()
func RenderAll(ctx context.Context, summaries []string, workers int, opts ...Option) ([]string, error) {
	return NewBatch(workers, opts...).RenderAll(ctx, summaries)
}

// RenderAll renders summaries in input order. If ctx is cancelled before
// every summary has been dispatched, the partial result is returned together
// with ctx.Err().
func (b *Batch) RenderAll(ctx context.Context, summaries []string) ([]string, error) {
	result := make([]string, len(summaries))
	if len(summaries) == 0 {
		return result, ctx.Err()
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(summaries) {
		workers = len(summaries)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result[i] = b.renderOne(i, summaries[i])
			}
		}()
	}

	var err error
dispatch:
	for i := range summaries {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return result, err
}

// renderOne 转换单篇摘要；出现 panic 时记录日志并原样返回输入
func (b *Batch) renderOne(index int, summary string) (html string) {
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("summary %d not rendered: %v", index, r)
			html = summary
		}
	}()
	return RenderWithOptions(summary, b.Options...)
}
