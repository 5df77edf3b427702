// Package ulid 提供进程级的 ULID 标识生成器
//
// ULID 是 26 个字符、按字典序可排序的唯一标识，
// 用作实体与聚合根的默认主键类型。
package ulid

import (
	"crypto/rand"
	"sync"
	"time"

	oklog "github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = oklog.Monotonic(rand.Reader, 0)
)

// Generate 生成一个新的 ULID 字符串
//
// 同一毫秒内的多次调用保持单调递增，保证排序稳定。
func Generate() string {
	mu.Lock()
	defer mu.Unlock()
	return oklog.MustNew(oklog.Timestamp(time.Now()), entropy).String()
}

// IsValid 检查字符串是否为合法的 ULID
func IsValid(s string) bool {
	if len(s) != oklog.EncodedSize {
		return false
	}
	_, err := oklog.ParseStrict(s)
	return err == nil
}

// Timestamp 解出 ULID 中编码的时间戳
func Timestamp(s string) (time.Time, error) {
	id, err := oklog.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return oklog.Time(id.Time()), nil
}
