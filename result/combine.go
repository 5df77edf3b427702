package result

import (
	"context"
	"sync"
)

// Combine 按顺序扫描多个结果，返回第一个失败；全部成功时返回 Ok(Void{})
//
// 用于聚合多个相互独立的校验，保证“第一个失败胜出”的确定性。
// 失败结果原样返回，不做包装。
func Combine(results ...IResult) IResult {
	for _, r := range results {
		if r.IsFailure() {
			return r
		}
	}
	return Done()
}

// Task 异步结果任务
type Task func(ctx context.Context) IResult

// CombineAsync 并发执行多个结果任务，全部完成后按输入顺序做首败归约
//
// 任务之间没有顺序依赖；“第一个失败”以输入顺序为准，与任务完成顺序无关。
// 本函数不提供取消或超时语义，ctx 仅透传给任务本身。
func CombineAsync(ctx context.Context, tasks ...Task) IResult {
	if len(tasks) == 0 {
		return Done()
	}

	results := make([]IResult, len(tasks))
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task Task) {
			defer wg.Done()
			results[i] = task(ctx)
		}(i, task)
	}
	wg.Wait()

	return Combine(results...)
}
