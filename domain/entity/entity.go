// Package entity 定义领域实体与聚合根的核心接口体系
//
// 设计原则：
// 1. 实体身份与属性分离 - 相等性只看标识，永远不看属性
// 2. 构造与更新都必须通过校验 - 不存在部分有效的实体
// 3. 标识使用 26 字符可排序的 ULID，未提供时在构造期生成
package entity

import (
	"seedwork/errors"
	"seedwork/idgen/ulid"
	"seedwork/result"
)

// IEntity 实体接口
type IEntity interface {
	// GetID 返回实体的唯一标识（ULID 字符串）
	GetID() string

	// GetEntityType 返回实体类型标签
	// 类型标签在相等性比较中先于标识参与判断，
	// 保证不同类型的实体即使标识碰巧相同也不相等
	GetEntityType() string
}

// Validator 实体属性校验函数
type Validator[T any] func(props T) error

// Entity 实体基础实现
//
// 属性记录可变，但只能通过 Update 修改；
// 更新校验失败时实体可观测状态保持不变。
//
// 示例:
//
//	type userProps struct {
//	    Name  string
//	    Email identifier.Email
//	}
//
//	type User struct {
//	    *entity.Entity[userProps]
//	}
type Entity[T any] struct {
	id         string
	entityType string
	props      T
	validate   Validator[T]
}

// New 创建实体
//
// id 省略时自动生成 ULID；提供时必须是合法的 ULID。
// 构造期运行校验器，失败返回失败结果。
func New[T any](entityType string, props T, validator Validator[T], id ...string) result.Result[*Entity[T]] {
	if entityType == "" {
		return result.Fail[*Entity[T]](errors.NewInvalidEntity("实体类型不能为空"))
	}

	entityID := ""
	if len(id) > 0 && id[0] != "" {
		if !ulid.IsValid(id[0]) {
			return result.Fail[*Entity[T]](errors.NewInvalidEntity("实体标识不是合法的 ULID: " + id[0]))
		}
		entityID = id[0]
	} else {
		entityID = ulid.Generate()
	}

	if validator != nil {
		if err := validator(props); err != nil {
			return result.Fail[*Entity[T]](err)
		}
	}

	return result.Ok(&Entity[T]{
		id:         entityID,
		entityType: entityType,
		props:      props,
		validate:   validator,
	})
}

// GetID 实现 IEntity 接口
func (e *Entity[T]) GetID() string {
	return e.id
}

// GetEntityType 实现 IEntity 接口
func (e *Entity[T]) GetEntityType() string {
	return e.entityType
}

// Props 获取属性记录（值拷贝）
func (e *Entity[T]) Props() T {
	return e.props
}

// Update 通过补丁函数修改属性
//
// 新属性必须通过与构造时相同的校验；校验失败时
// 更新被整体拒绝，原有状态保留，返回失败结果。
func (e *Entity[T]) Update(patch func(props T) T) result.Result[result.Void] {
	next := patch(e.props)
	if e.validate != nil {
		if err := e.validate(next); err != nil {
			return result.Fail[result.Void](err)
		}
	}
	e.props = next
	return result.Done()
}

// Equals 判断与另一个实体是否为同一实体
//
// 比较顺序：能力检查（对方是实体）→ 类型标签 → 标识。
// 属性永远不参与比较。
func (e *Entity[T]) Equals(other IEntity) bool {
	if other == nil {
		return false
	}
	if e.entityType != other.GetEntityType() {
		return false
	}
	return e.id == other.GetID()
}
