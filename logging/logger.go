// Package logging 提供统一的日志接口抽象
//
// 核心领域代码不直接依赖具体日志实现，基础设施协作方
// 通过本接口输出结构化日志。
package logging

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Logger 日志接口
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	// WithFields 附加字段，返回新的 Logger
	WithFields(fields ...Field) Logger
}

// Field 日志字段
type Field struct {
	Key   string
	Value any
}

// String 字符串字段
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int 整数字段
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 64位整数字段
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Any 任意值字段
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Error 错误字段
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// StdLogger 标准库 log 实现
type StdLogger struct {
	fields []Field
}

// NewStdLogger 创建标准库 Logger
func NewStdLogger() *StdLogger {
	return &StdLogger{}
}

func (l *StdLogger) emit(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(msg)
	for _, f := range append(l.fields, fields...) {
		b.WriteString(" ")
		b.WriteString(f.Key)
		b.WriteString("=")
		switch v := f.Value.(type) {
		case string:
			b.WriteString(v)
		case error:
			b.WriteString(v.Error())
		default:
			fmt.Fprint(&b, v)
		}
	}
	log.Println(b.String())
}

func (l *StdLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.emit("DEBUG", msg, fields)
}

func (l *StdLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.emit("INFO", msg, fields)
}

func (l *StdLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.emit("WARN", msg, fields)
}

func (l *StdLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.emit("ERROR", msg, fields)
}

func (l *StdLogger) WithFields(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &StdLogger{fields: merged}
}

// NoopLogger 空日志实现（用于测试）
type NoopLogger struct{}

// NewNoopLogger 创建空 Logger
func NewNoopLogger() *NoopLogger { return &NoopLogger{} }

func (l *NoopLogger) Debug(ctx context.Context, msg string, fields ...Field) {}
func (l *NoopLogger) Info(ctx context.Context, msg string, fields ...Field)  {}
func (l *NoopLogger) Warn(ctx context.Context, msg string, fields ...Field)  {}
func (l *NoopLogger) Error(ctx context.Context, msg string, fields ...Field) {}
func (l *NoopLogger) WithFields(fields ...Field) Logger                      { return l }

var globalLogger Logger = NewStdLogger()

// SetLogger 设置全局 Logger
func SetLogger(logger Logger) {
	globalLogger = logger
}

// GetLogger 获取全局 Logger
func GetLogger() Logger {
	return globalLogger
}
