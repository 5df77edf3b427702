// Package publish 提供领域事件的发布出口
//
// 发布器是核心之外的基础设施协作方：持久化成功后由它将
// 聚合缓冲的事件送往总线或消息中间件，并完成提交确认。
package publish

import (
	"context"
	"fmt"

	"seedwork/domain/entity"
	"seedwork/eventing"
	"seedwork/eventing/bus"
	"seedwork/eventing/store"
)

// IEventPublisher 事件发布器接口
type IEventPublisher interface {
	// PublishEvents 按顺序发布一批事件
	PublishEvents(ctx context.Context, events []eventing.IEvent) error

	// Close 释放底层连接
	Close() error
}

// BusPublisher 基于内存事件总线的发布器
type BusPublisher struct {
	bus bus.IEventBus
}

var _ IEventPublisher = (*BusPublisher)(nil)

// NewBusPublisher 创建总线发布器
func NewBusPublisher(b bus.IEventBus) *BusPublisher {
	return &BusPublisher{bus: b}
}

// PublishEvents 实现 IEventPublisher 接口
func (p *BusPublisher) PublishEvents(ctx context.Context, events []eventing.IEvent) error {
	return p.bus.PublishAll(ctx, events)
}

// Close 实现 IEventPublisher 接口
func (p *BusPublisher) Close() error { return nil }

// CommitEvents 提交聚合的未提交事件
//
// 这是唯一被认可的事件缓冲排空路径：
//  1. 将未提交事件追加到事件存储（乐观锁以首个事件版本的前一版本为准）
//  2. 通过发布器对外发布
//  3. 对聚合做提交确认（清空缓冲，版本号加一）
//
// 存储或发布失败时聚合保持未提交状态，调用方可以重试。
// eventStore 与 publisher 均可为 nil，表示跳过对应步骤。
func CommitEvents(ctx context.Context, agg entity.IAggregate, eventStore store.IEventStore, publisher IEventPublisher) error {
	events := agg.GetUncommittedEvents()
	if len(events) == 0 {
		return nil
	}

	if eventStore != nil {
		storable := make([]*eventing.Event, len(events))
		for i, e := range events {
			se, ok := e.(*eventing.Event)
			if !ok {
				return fmt.Errorf("不支持的事件类型: %T", e)
			}
			storable[i] = se
		}
		expected := storable[0].Version - 1
		if err := eventStore.AppendEvents(ctx, agg.GetID(), storable, expected); err != nil {
			return err
		}
	}

	if publisher != nil {
		if err := publisher.PublishEvents(ctx, events); err != nil {
			return err
		}
	}

	agg.MarkAsCommitted()
	return nil
}
