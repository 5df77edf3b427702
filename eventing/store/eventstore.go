// Package store 定义事件存储接口与内存实现
package store

import (
	"context"
	"fmt"

	"seedwork/errors"
	"seedwork/eventing"
)

// IEventStore 事件存储接口（最小化设计）
//
// 实现约定：
//   - AppendEvents 使用 expectedVersion 做乐观锁：
//     expectedVersion 表示当前已持久化事件流的最后版本号，0 表示新聚合；
//     不匹配时返回 CONCURRENCY_ERROR
//   - 追加的事件版本必须从 expectedVersion+1 起连续递增
//   - LoadEvents 按版本号升序返回
type IEventStore interface {
	// AppendEvents 追加事件到指定聚合的事件流
	AppendEvents(ctx context.Context, aggregateID string, events []*eventing.Event, expectedVersion int64) error

	// LoadEvents 加载聚合的事件历史（不含 afterVersion，0 表示从头加载）
	LoadEvents(ctx context.Context, aggregateID string, afterVersion int64) ([]*eventing.Event, error)

	// GetAggregateVersion 获取聚合当前版本号（0 表示聚合不存在）
	GetAggregateVersion(ctx context.Context, aggregateID string) (int64, error)
}

// validateBatch 校验一批待追加事件的完整性与版本连续性
func validateBatch(events []*eventing.Event, expectedVersion int64) error {
	for i, e := range events {
		if err := e.Validate(); err != nil {
			return err
		}
		want := expectedVersion + int64(i) + 1
		if e.Version != want {
			return fmt.Errorf("事件版本不连续: 期望 %d, 实际 %d", want, e.Version)
		}
	}
	return nil
}

// concurrencyError 构造版本冲突错误
func concurrencyError(aggregateID string, expected, current int64) error {
	return errors.NewConcurrencyError(fmt.Sprintf(
		"聚合 %s 版本冲突: 期望 %d, 当前 %d", aggregateID, expected, current))
}
