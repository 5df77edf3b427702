// Package eventing 定义领域事件的核心抽象
package eventing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IEvent 领域事件接口
//
// 包含事件路由与持久化所需的最小信息。
// 注意两个版本号语义不同：
//   - GetVersion: 事件在聚合事件流中的序号，用于排序和重放
//   - SchemaVersion: 事件载荷的模式版本，用于事件升级
type IEvent interface {
	// GetID 获取事件ID
	GetID() string

	// GetType 获取事件类型
	GetType() string

	// GetTimestamp 获取发生时间
	GetTimestamp() time.Time

	// GetPayload 获取事件载荷
	GetPayload() any

	// GetMetadata 获取元数据
	GetMetadata() map[string]any

	// GetAggregateID 获取所属聚合标识（ULID 字符串）
	GetAggregateID() string

	// GetAggregateType 获取所属聚合类型
	GetAggregateType() string

	// GetVersion 获取事件在聚合事件流中的序号
	GetVersion() int64
}

// Event 领域事件实现
type Event struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Timestamp     time.Time      `json:"timestamp"`
	Payload       any            `json:"payload"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	AggregateID   string         `json:"aggregate_id"`
	AggregateType string         `json:"aggregate_type"`
	Version       int64          `json:"version"`
	SchemaVersion int            `json:"schema_version"`
}

func (e *Event) GetID() string            { return e.ID }
func (e *Event) GetType() string          { return e.Type }
func (e *Event) GetTimestamp() time.Time  { return e.Timestamp }
func (e *Event) GetPayload() any          { return e.Payload }
func (e *Event) GetAggregateID() string   { return e.AggregateID }
func (e *Event) GetAggregateType() string { return e.AggregateType }
func (e *Event) GetVersion() int64        { return e.Version }

// GetMetadata 获取元数据（惰性初始化）
func (e *Event) GetMetadata() map[string]any {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	return e.Metadata
}

// Validate 校验事件的存储完整性
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("事件ID不能为空")
	}
	if e.Type == "" {
		return fmt.Errorf("事件类型不能为空")
	}
	if e.AggregateID == "" {
		return fmt.Errorf("聚合标识不能为空")
	}
	if e.AggregateType == "" {
		return fmt.Errorf("聚合类型不能为空")
	}
	if e.Version <= 0 {
		return fmt.Errorf("事件版本必须大于0")
	}
	return nil
}

// NewEvent 创建领域事件
func NewEvent(aggregateID, aggregateType, eventType string, version int64, payload any) *Event {
	return &Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		Timestamp:     time.Now(),
		Payload:       payload,
		Metadata:      make(map[string]any),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		Version:       version,
		SchemaVersion: 1,
	}
}
