// Package specification 提供可组合的业务规则（规约模式）
//
// 规约是候选对象上的无状态谓词，通过 And/Or/Not 组合成新规约，
// 组合不修改操作数。每个规约携带人类可读的不满足原因，
// 原因在每次调用时惰性渲染，结构与布尔组合结构一致。
package specification

import "fmt"

// ISpecification 规约接口
type ISpecification[T any] interface {
	// IsSatisfiedBy 判断候选对象是否满足规约
	IsSatisfiedBy(candidate T) bool

	// ReasonForDissatisfaction 渲染不满足原因
	ReasonForDissatisfaction() string
}

// Spec 规约实现
//
// 示例:
//
//	adult := specification.New("年龄不小于18岁", func(u User) bool { return u.Age >= 18 })
//	active := specification.New("账号处于激活状态", func(u User) bool { return u.Active })
//	canLogin := adult.And(active)
//	if !canLogin.IsSatisfiedBy(user) {
//	    fmt.Println(canLogin.ReasonForDissatisfaction()) // (年龄不小于18岁 AND 账号处于激活状态)
//	}
type Spec[T any] struct {
	satisfied func(candidate T) bool
	reason    func() string
}

// New 创建规约
func New[T any](reason string, predicate func(candidate T) bool) *Spec[T] {
	return &Spec[T]{
		satisfied: predicate,
		reason:    func() string { return reason },
	}
}

// IsSatisfiedBy 实现 ISpecification 接口
func (s *Spec[T]) IsSatisfiedBy(candidate T) bool {
	return s.satisfied(candidate)
}

// ReasonForDissatisfaction 实现 ISpecification 接口
func (s *Spec[T]) ReasonForDissatisfaction() string {
	return s.reason()
}

// And 与组合：两个规约都满足时才满足，从左到右短路求值
func (s *Spec[T]) And(other ISpecification[T]) *Spec[T] {
	return &Spec[T]{
		satisfied: func(c T) bool {
			return s.IsSatisfiedBy(c) && other.IsSatisfiedBy(c)
		},
		reason: func() string {
			return fmt.Sprintf("(%s AND %s)",
				s.ReasonForDissatisfaction(), other.ReasonForDissatisfaction())
		},
	}
}

// Or 或组合：任一规约满足即满足，从左到右短路求值
func (s *Spec[T]) Or(other ISpecification[T]) *Spec[T] {
	return &Spec[T]{
		satisfied: func(c T) bool {
			return s.IsSatisfiedBy(c) || other.IsSatisfiedBy(c)
		},
		reason: func() string {
			return fmt.Sprintf("(%s OR %s)",
				s.ReasonForDissatisfaction(), other.ReasonForDissatisfaction())
		},
	}
}

// Not 非组合：取反
func (s *Spec[T]) Not() *Spec[T] {
	return &Spec[T]{
		satisfied: func(c T) bool {
			return !s.IsSatisfiedBy(c)
		},
		reason: func() string {
			return fmt.Sprintf("NOT (%s)", s.ReasonForDissatisfaction())
		},
	}
}

// True 恒满足的规约
func True[T any]() *Spec[T] {
	return New("恒真", func(T) bool { return true })
}

// False 恒不满足的规约
func False[T any]() *Spec[T] {
	return New("恒假", func(T) bool { return false })
}

// Filter 过滤出满足规约的元素
func Filter[T any](s ISpecification[T], items []T) []T {
	out := make([]T, 0)
	for _, item := range items {
		if s.IsSatisfiedBy(item) {
			out = append(out, item)
		}
	}
	return out
}

// Any 是否存在满足规约的元素
func Any[T any](s ISpecification[T], items []T) bool {
	for _, item := range items {
		if s.IsSatisfiedBy(item) {
			return true
		}
	}
	return false
}

// All 是否所有元素都满足规约
func All[T any](s ISpecification[T], items []T) bool {
	for _, item := range items {
		if !s.IsSatisfiedBy(item) {
			return false
		}
	}
	return true
}

// Count 统计满足规约的元素数量
func Count[T any](s ISpecification[T], items []T) int {
	n := 0
	for _, item := range items {
		if s.IsSatisfiedBy(item) {
			n++
		}
	}
	return n
}
