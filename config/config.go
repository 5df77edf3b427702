// Package config 基础设施协作方的环境配置
//
// 核心领域代码不读取配置；本包仅服务于事件发布器与事件存储等
// 基础设施适配器。配置从环境变量加载（前缀 SEEDWORK_）。
package config

import (
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Config 基础设施配置
type Config struct {
	// NATSURL NATS 服务地址
	NATSURL string `envconfig:"NATS_URL" default:"nats://127.0.0.1:4222"`

	// NATSStream JetStream 流名称
	NATSStream string `envconfig:"NATS_STREAM" default:"SEEDWORK"`

	// RedisAddr Redis 服务地址
	RedisAddr string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	// RedisDB Redis 数据库编号
	RedisDB int `envconfig:"REDIS_DB" default:"0"`

	// EventStoreDSN 事件存储的数据库连接串
	EventStoreDSN string `envconfig:"EVENT_STORE_DSN" default:"file::memory:?cache=shared"`

	// EventTable 事件表名称
	EventTable string `envconfig:"EVENT_TABLE" default:"event_store"`
}

var (
	mu     sync.RWMutex
	loaded *Config
)

// Load 从环境变量加载配置并缓存
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("seedwork", &cfg); err != nil {
		return nil, err
	}
	mu.Lock()
	loaded = &cfg
	mu.Unlock()
	return &cfg, nil
}

// MustGet 获取已加载的配置
//
// 在 Load 之前调用属于程序员错误，会立即 panic。
func MustGet() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if loaded == nil {
		panic("config: MustGet called before Load")
	}
	return loaded
}

// Reset 清除已加载的配置（用于测试）
func Reset() {
	mu.Lock()
	loaded = nil
	mu.Unlock()
}
