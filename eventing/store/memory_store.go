package store

import (
	"context"
	"sync"

	"seedwork/eventing"
)

// MemoryEventStore 内存事件存储，用于测试与示例
type MemoryEventStore struct {
	mu     sync.RWMutex
	events map[string][]*eventing.Event // aggregateID -> ordered events
}

// NewMemoryEventStore 创建内存事件存储
func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{
		events: make(map[string][]*eventing.Event),
	}
}

// AppendEvents 实现 IEventStore 接口
func (m *MemoryEventStore) AppendEvents(ctx context.Context, aggregateID string, events []*eventing.Event, expectedVersion int64) error {
	if len(events) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.currentVersionLocked(aggregateID)
	if current != expectedVersion {
		return concurrencyError(aggregateID, expectedVersion, current)
	}
	if err := validateBatch(events, expectedVersion); err != nil {
		return err
	}
	m.events[aggregateID] = append(m.events[aggregateID], events...)
	return nil
}

// LoadEvents 实现 IEventStore 接口
func (m *MemoryEventStore) LoadEvents(ctx context.Context, aggregateID string, afterVersion int64) ([]*eventing.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.events[aggregateID]
	out := make([]*eventing.Event, 0, len(stored))
	for _, e := range stored {
		if e.Version > afterVersion {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetAggregateVersion 实现 IEventStore 接口
func (m *MemoryEventStore) GetAggregateVersion(ctx context.Context, aggregateID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentVersionLocked(aggregateID), nil
}

func (m *MemoryEventStore) currentVersionLocked(aggregateID string) int64 {
	stored := m.events[aggregateID]
	if len(stored) == 0 {
		return 0
	}
	return stored[len(stored)-1].Version
}
