// Package errors 定义领域错误分类体系
//
// 每个领域错误携带稳定的机器可读错误代码与建议的传输层状态码。
// 状态码仅供外部表示层做转换参考，本包自身不做任何传输层翻译。
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 预定义错误代码
const (
	ErrCodeEntityNotFound        ErrorCode = "ENTITY_NOT_FOUND"
	ErrCodeInvalidEntity         ErrorCode = "INVALID_ENTITY"
	ErrCodeBusinessRuleViolation ErrorCode = "BUSINESS_RULE_VIOLATION"
	ErrCodeConcurrency           ErrorCode = "CONCURRENCY_ERROR"
	ErrCodeAuthorization         ErrorCode = "AUTHORIZATION_ERROR"
	ErrCodeValidation            ErrorCode = "VALIDATION_ERROR"
	ErrCodeAggregateValidation   ErrorCode = "AGGREGATE_VALIDATION_ERROR"
)

// IDomainError 领域错误接口
type IDomainError interface {
	error

	// Code 获取稳定的机器可读错误代码
	Code() ErrorCode

	// StatusCode 获取建议的传输层状态码（默认 400）
	StatusCode() int
}

// DomainError 领域错误基础实现
type DomainError struct {
	code       ErrorCode
	message    string
	statusCode int
	cause      error
}

// New 创建领域错误（状态码默认 400）
func New(code ErrorCode, message string) *DomainError {
	return &DomainError{
		code:       code,
		message:    message,
		statusCode: 400,
	}
}

// NewWithStatus 创建带自定义状态码的领域错误
func NewWithStatus(code ErrorCode, message string, statusCode int) *DomainError {
	return &DomainError{
		code:       code,
		message:    message,
		statusCode: statusCode,
	}
}

// Error 实现 error 接口
func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code 获取错误代码
func (e *DomainError) Code() ErrorCode {
	return e.code
}

// Message 获取错误消息
func (e *DomainError) Message() string {
	return e.message
}

// StatusCode 获取建议的传输层状态码
func (e *DomainError) StatusCode() int {
	return e.statusCode
}

// Unwrap 解包错误（支持 errors.Unwrap）
func (e *DomainError) Unwrap() error {
	return e.cause
}

// WithCause 附加原始错误，返回新实例
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		code:       e.code,
		message:    e.message,
		statusCode: e.statusCode,
		cause:      cause,
	}
}

// Is 按错误代码判断等价性
func (e *DomainError) Is(target error) bool {
	if target == nil {
		return false
	}
	if de, ok := target.(*DomainError); ok {
		return e.code == de.code
	}
	if e.cause != nil {
		return stdErrors.Is(e.cause, target)
	}
	return false
}

// NewEntityNotFound 创建实体未找到错误
func NewEntityNotFound(entityType string, id any) *DomainError {
	return NewWithStatus(ErrCodeEntityNotFound,
		fmt.Sprintf("%s 未找到: %v", entityType, id), 404)
}

// NewInvalidEntity 创建实体无效错误
func NewInvalidEntity(message string) *DomainError {
	return New(ErrCodeInvalidEntity, message)
}

// NewBusinessRuleViolation 创建业务规则违反错误
func NewBusinessRuleViolation(message string) *DomainError {
	return NewWithStatus(ErrCodeBusinessRuleViolation, message, 422)
}

// NewConcurrencyError 创建并发冲突错误（乐观锁失败）
func NewConcurrencyError(message string) *DomainError {
	return NewWithStatus(ErrCodeConcurrency, message, 409)
}

// NewAuthorizationError 创建授权错误
func NewAuthorizationError(message string) *DomainError {
	return NewWithStatus(ErrCodeAuthorization, message, 403)
}

// IsCode 检查是否为指定错误代码
func IsCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	var de IDomainError
	if stdErrors.As(err, &de) {
		return de.Code() == code
	}
	return false
}

// GetCode 获取错误代码（非领域错误返回空）
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var de IDomainError
	if stdErrors.As(err, &de) {
		return de.Code()
	}
	return ""
}

// GetStatusCode 获取建议状态码（非领域错误按内部错误处理，返回 500）
func GetStatusCode(err error) int {
	if err == nil {
		return 0
	}
	var de IDomainError
	if stdErrors.As(err, &de) {
		return de.StatusCode()
	}
	return 500
}
