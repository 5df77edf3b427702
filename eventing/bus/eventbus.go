// Package bus 提供事件总线的内存实现
//
// 事件按类型路由到已订阅的处理器，"*" 订阅接收所有事件。
// 分发为同步调用，处理器错误向发布方传播。
package bus

import (
	"context"
	"sync"

	"seedwork/eventing"
	"seedwork/logging"
)

// Wildcard 通配订阅类型，匹配所有事件
const Wildcard = "*"

// IEventHandler 事件处理器接口
type IEventHandler interface {
	// HandleEvent 处理单个事件
	HandleEvent(ctx context.Context, evt eventing.IEvent) error

	// GetHandlerName 返回处理器名称（用于日志与去重）
	GetHandlerName() string
}

// EventHandlerFunc 函数式事件处理器
type EventHandlerFunc func(ctx context.Context, evt eventing.IEvent) error

func (f EventHandlerFunc) HandleEvent(ctx context.Context, evt eventing.IEvent) error {
	return f(ctx, evt)
}

func (f EventHandlerFunc) GetHandlerName() string { return "EventHandlerFunc" }

// IEventBus 事件总线接口
type IEventBus interface {
	// Publish 发布单个事件
	Publish(ctx context.Context, evt eventing.IEvent) error

	// PublishAll 按顺序发布多个事件
	PublishAll(ctx context.Context, events []eventing.IEvent) error

	// Subscribe 订阅指定类型的事件
	Subscribe(eventType string, handler IEventHandler)

	// Unsubscribe 取消订阅
	Unsubscribe(eventType string, handler IEventHandler)
}

// MemoryEventBus 内存事件总线
type MemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]IEventHandler
	logger   logging.Logger
}

// NewMemoryEventBus 创建内存事件总线
func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[string][]IEventHandler),
		logger:   logging.GetLogger().WithFields(logging.String("component", "eventbus")),
	}
}

// Publish 实现 IEventBus 接口
func (b *MemoryEventBus) Publish(ctx context.Context, evt eventing.IEvent) error {
	b.mu.RLock()
	targets := make([]IEventHandler, 0, len(b.handlers[evt.GetType()])+len(b.handlers[Wildcard]))
	targets = append(targets, b.handlers[evt.GetType()]...)
	targets = append(targets, b.handlers[Wildcard]...)
	b.mu.RUnlock()

	for _, h := range targets {
		if err := h.HandleEvent(ctx, evt); err != nil {
			b.logger.Error(ctx, "事件处理失败",
				logging.String("event_type", evt.GetType()),
				logging.String("handler", h.GetHandlerName()),
				logging.Error(err))
			return err
		}
	}
	return nil
}

// PublishAll 实现 IEventBus 接口
func (b *MemoryEventBus) PublishAll(ctx context.Context, events []eventing.IEvent) error {
	for _, evt := range events {
		if err := b.Publish(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe 实现 IEventBus 接口
func (b *MemoryEventBus) Subscribe(eventType string, handler IEventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Unsubscribe 实现 IEventBus 接口
func (b *MemoryEventBus) Unsubscribe(eventType string, handler IEventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	handlers := b.handlers[eventType]
	for i, h := range handlers {
		if h.GetHandlerName() == handler.GetHandlerName() {
			b.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}
