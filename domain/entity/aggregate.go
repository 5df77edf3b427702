// Package entity 聚合根实现
package entity

import (
	"sync"

	"seedwork/eventing"
	"seedwork/result"
)

// IAggregate 聚合根接口
//
// 聚合根是业务一致性边界，在实体之上增加：
//   - 待发布领域事件缓冲（只追加，提交后清空）
//   - 乐观锁版本号（仅通过提交确认推进）
type IAggregate interface {
	IEntity

	// GetVersion 返回乐观锁版本号（新聚合为 0）
	GetVersion() int64

	// GetDomainEvents 获取未提交的领域事件（副本）
	GetDomainEvents() []eventing.IEvent

	// GetUncommittedEvents GetDomainEvents 的语义化别名
	GetUncommittedEvents() []eventing.IEvent

	// HasUncommittedEvents 是否存在未提交事件
	HasUncommittedEvents() bool

	// AddDomainEvent 追加领域事件（不推进版本号）
	AddDomainEvent(evt eventing.IEvent)

	// ClearDomainEvents 清空事件缓冲（不推进版本号）
	ClearDomainEvents()

	// MarkAsCommitted 提交确认：清空事件缓冲并将版本号恰好加一
	// 由持久化协作方在写入成功后立即调用
	MarkAsCommitted()
}

// ApplyFunc 事件应用钩子，由具体聚合提供
type ApplyFunc func(evt eventing.IEvent) error

// AggregateRoot 聚合根基础实现
//
// 事件缓冲与版本号由聚合实例独占，仅能通过本类型的方法修改；
// 读取方法返回副本，外部无法拼接事件列表或直接设置版本号。
//
// 示例:
//
//	type Order struct {
//	    *entity.AggregateRoot[orderProps]
//	}
//
//	func (o *Order) Place() result.Result[result.Void] {
//	    return o.UpdateAndRecord(
//	        func(p orderProps) orderProps { p.Status = "placed"; return p },
//	        eventing.NewEvent(o.GetID(), o.GetEntityType(), "OrderPlaced", o.GetVersion()+1, nil),
//	    )
//	}
type AggregateRoot[T any] struct {
	Entity[T]

	mu      sync.RWMutex
	events  []eventing.IEvent
	version int64
}

// NewAggregate 创建聚合根（版本号从 0 开始，事件缓冲为空）
func NewAggregate[T any](aggregateType string, props T, validator Validator[T], id ...string) result.Result[*AggregateRoot[T]] {
	base := New(aggregateType, props, validator, id...)
	if base.IsFailure() {
		return result.Fail[*AggregateRoot[T]](base.Err())
	}
	return result.Ok(&AggregateRoot[T]{Entity: *base.Value()})
}

// GetVersion 实现 IAggregate 接口
func (a *AggregateRoot[T]) GetVersion() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.version
}

// GetDomainEvents 实现 IAggregate 接口
func (a *AggregateRoot[T]) GetDomainEvents() []eventing.IEvent {
	a.mu.RLock()
	defer a.mu.RUnlock()
	// 返回副本，缓冲不对外暴露
	events := make([]eventing.IEvent, len(a.events))
	copy(events, a.events)
	return events
}

// GetUncommittedEvents 实现 IAggregate 接口
func (a *AggregateRoot[T]) GetUncommittedEvents() []eventing.IEvent {
	return a.GetDomainEvents()
}

// HasUncommittedEvents 实现 IAggregate 接口
func (a *AggregateRoot[T]) HasUncommittedEvents() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.events) > 0
}

// AddDomainEvent 实现 IAggregate 接口
func (a *AggregateRoot[T]) AddDomainEvent(evt eventing.IEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, evt)
}

// ClearDomainEvents 实现 IAggregate 接口
func (a *AggregateRoot[T]) ClearDomainEvents() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = nil
}

// MarkAsCommitted 实现 IAggregate 接口
//
// 无论缓冲中有多少事件，版本号恰好加一。
func (a *AggregateRoot[T]) MarkAsCommitted() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = nil
	a.version++
}

// UpdateAndRecord 校验通过后修改属性并记录一个领域事件
//
// 校验失败时整个操作被拒绝：标识、属性、版本号与事件缓冲全部保持不变。
// 成功时不推进版本号（版本号只在 MarkAsCommitted 时推进）。
func (a *AggregateRoot[T]) UpdateAndRecord(patch func(props T) T, evt eventing.IEvent) result.Result[result.Void] {
	r := a.Update(patch)
	if r.IsFailure() {
		return r
	}
	a.AddDomainEvent(evt)
	return result.Done()
}

// LoadFromHistory 从事件历史重建聚合状态
//
// 仅用于重建，不用于新建聚合。每应用一个事件版本号加一；
// apply 返回错误时中止，已重放的事件保持生效。
// 重放不会进入事件缓冲。
func (a *AggregateRoot[T]) LoadFromHistory(events []eventing.IEvent, apply ApplyFunc) error {
	for _, evt := range events {
		if apply != nil {
			if err := apply(evt); err != nil {
				return err
			}
		}
		a.mu.Lock()
		a.version++
		a.mu.Unlock()
	}
	return nil
}
