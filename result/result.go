// Package result 提供铁路式（railway-oriented）的可失败计算结果类型
//
// 设计原则：
// 1. 预期的业务失败通过 Result 传递，调用方通过 IsSuccess/IsFailure 分支处理
// 2. 程序员错误（构造非法 Result、读取失败结果的值）立即 panic，不做恢复
// 3. Result 一旦创建即不可变
package result

// Void 表示没有载荷的成功结果
type Void struct{}

// IResult 结果接口（用于异构 Result 的聚合操作）
type IResult interface {
	// IsSuccess 是否为成功结果
	IsSuccess() bool

	// IsFailure 是否为失败结果
	IsFailure() bool

	// Err 获取失败原因（成功结果返回 nil）
	Err() error
}

// Result 可失败计算的结果
//
// 成功与失败互斥：成功结果不携带错误，失败结果不携带值。
// 只能通过 Ok/Fail 构造，零值不应在包外出现。
//
// 示例:
//
//	r := result.Ok(42)
//	if r.IsSuccess() {
//	    fmt.Println(r.Value())
//	}
type Result[T any] struct {
	value   T
	err     error
	failure bool
}

// Ok 创建成功结果
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Done 创建无载荷的成功结果
func Done() Result[Void] {
	return Ok(Void{})
}

// Fail 创建失败结果
//
// err 为 nil 属于程序员错误，会立即 panic。
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err, failure: true}
}

// IsSuccess 实现 IResult 接口
func (r Result[T]) IsSuccess() bool {
	return !r.failure
}

// IsFailure 实现 IResult 接口
func (r Result[T]) IsFailure() bool {
	return r.failure
}

// Err 实现 IResult 接口
func (r Result[T]) Err() error {
	return r.err
}

// Value 获取成功结果的值
//
// 在失败结果上调用属于程序员错误，会立即 panic。
// 调用方必须先检查 IsSuccess。
func (r Result[T]) Value() T {
	if r.failure {
		panic("result: Value called on a failed result: " + r.err.Error())
	}
	return r.value
}

// ValueOr 获取成功结果的值，失败时返回兜底值
func (r Result[T]) ValueOr(fallback T) T {
	if r.failure {
		return fallback
	}
	return r.value
}

// MapError 变换失败结果的错误，成功结果原样返回
func (r Result[T]) MapError(f func(error) error) Result[T] {
	if !r.failure {
		return r
	}
	return Fail[T](f(r.err))
}

// Map 对成功结果的值应用纯函数，失败结果原样透传
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.failure {
		return Fail[U](r.err)
	}
	return Ok(f(r.value))
}

// FlatMap 单子绑定：串联可失败操作，遇到第一个失败即短路
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.failure {
		return Fail[U](r.err)
	}
	return f(r.value)
}
