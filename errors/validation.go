package errors

import (
	"fmt"
	"strings"
)

// ValidationError 字段级验证错误
type ValidationError struct {
	DomainError
	field string
}

// NewValidationError 创建验证错误
//
// field 可以为空，表示与具体字段无关的验证失败。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		DomainError: *New(ErrCodeValidation, message),
		field:       field,
	}
}

// NewValidationErrorf 创建格式化消息的验证错误
func NewValidationErrorf(field, format string, args ...any) *ValidationError {
	return NewValidationError(field, fmt.Sprintf(format, args...))
}

// Field 获取失败字段名
func (e *ValidationError) Field() string {
	return e.field
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	if e.field == "" {
		return e.DomainError.Error()
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code(), e.field, e.Message())
}

// AggregateValidationError 聚合多个字段验证错误
//
// 多个字段同时验证失败时使用，保留每个子错误自身的代码与消息，
// 不将其折叠为单条通用消息。子错误顺序即加入顺序。
type AggregateValidationError struct {
	DomainError
	errors []*ValidationError
}

// NewAggregateValidationError 创建聚合验证错误
func NewAggregateValidationError(errs ...*ValidationError) *AggregateValidationError {
	return &AggregateValidationError{
		DomainError: *New(ErrCodeAggregateValidation, "多个字段验证失败"),
		errors:      append([]*ValidationError(nil), errs...),
	}
}

// Errors 获取全部子错误（按加入顺序）
func (e *AggregateValidationError) Errors() []*ValidationError {
	out := make([]*ValidationError, len(e.errors))
	copy(out, e.errors)
	return out
}

// Len 获取子错误数量
func (e *AggregateValidationError) Len() int {
	return len(e.errors)
}

// Error 实现 error 接口，拼接所有子错误消息
func (e *AggregateValidationError) Error() string {
	if len(e.errors) == 0 {
		return e.DomainError.Error()
	}
	parts := make([]string, len(e.errors))
	for i, ve := range e.errors {
		parts[i] = ve.Error()
	}
	return fmt.Sprintf("[%s] %s", e.Code(), strings.Join(parts, "; "))
}

// Unwrap 支持 errors.Is/As 遍历子错误
func (e *AggregateValidationError) Unwrap() []error {
	out := make([]error, len(e.errors))
	for i, ve := range e.errors {
		out[i] = ve
	}
	return out
}
