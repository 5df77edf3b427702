// Package vo 定义值对象基础实现
//
// 值对象没有身份标识，完全由属性定义：
// 1. 构造时必须通过校验器，校验失败则对象不会被创建
// 2. 创建后不可变，CopyWith 产生经过同一校验的新实例
// 3. 相等性为递归的结构相等，而非引用相等
package vo

import (
	"seedwork/result"
)

// IValueObject 值对象接口
//
// rawProps 为密封方法：只有嵌入 ValueObject 的类型才能实现本接口，
// 保证跨类型比较时双方都是值对象。
type IValueObject interface {
	// Equals 判断与另一个值对象是否结构相等
	Equals(other IValueObject) bool

	rawProps() any
}

// Validator 属性校验函数
type Validator[T any] func(props T) error

// ValueObject 值对象基础实现（用于嵌入）
//
// 示例:
//
//	type addressProps struct {
//	    Street string
//	    City   string
//	}
//
//	type Address struct {
//	    vo.ValueObject[addressProps]
//	}
//
//	func NewAddress(street, city string) result.Result[Address] {
//	    base := vo.New(addressProps{Street: street, City: city}, validateAddress)
//	    if base.IsFailure() {
//	        return result.Fail[Address](base.Err())
//	    }
//	    return result.Ok(Address{base.Value()})
//	}
type ValueObject[T any] struct {
	props    T
	validate Validator[T]
}

// New 创建值对象，构造时运行校验器
//
// 校验失败返回失败结果，不会产生部分有效的实例。
// validator 为 nil 时视为无条件通过。
func New[T any](props T, validator Validator[T]) result.Result[ValueObject[T]] {
	if validator != nil {
		if err := validator(props); err != nil {
			return result.Fail[ValueObject[T]](err)
		}
	}
	return result.Ok(ValueObject[T]{props: props, validate: validator})
}

// MustNew 创建值对象，校验失败时 panic
//
// 仅用于调用方能静态保证输入合法的场景（快速失败契约）。
func MustNew[T any](props T, validator Validator[T]) ValueObject[T] {
	r := New(props, validator)
	if r.IsFailure() {
		panic("vo: MustNew with invalid props: " + r.Err().Error())
	}
	return r.Value()
}

// Props 获取属性记录（值拷贝）
func (v ValueObject[T]) Props() T {
	return v.props
}

// Equals 实现 IValueObject 接口
//
// 属性类型不同的值对象永远不相等。
func (v ValueObject[T]) Equals(other IValueObject) bool {
	if other == nil {
		return false
	}
	return PropsEqual(v.props, other.rawProps())
}

// rawProps 实现 IValueObject 接口
func (v ValueObject[T]) rawProps() any {
	return v.props
}

// CopyWith 合并补丁产生新实例，重新运行完整校验
//
// 校验失败返回失败结果，原实例不受影响。
func (v ValueObject[T]) CopyWith(patch func(props T) T) result.Result[ValueObject[T]] {
	return New(patch(v.props), v.validate)
}
