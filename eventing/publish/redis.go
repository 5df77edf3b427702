package publish

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"seedwork/config"
	"seedwork/eventing"
	"seedwork/logging"
)

// RedisConfig Redis Streams 发布器配置
type RedisConfig struct {
	// Client 可选：复用已有客户端（发布器不负责关闭它）
	Client redis.UniversalClient

	Addr         string
	Username     string
	Password     string
	DB           int
	StreamPrefix string
	MaxLen       int64 // 每个流的近似长度上限，0 表示不裁剪
	Logger       logging.Logger
}

// RedisPublisher 基于 Redis Streams 的事件发布器
//
// 每个事件类型对应一个流（StreamPrefix + 事件类型），
// 事件以 JSON 形式写入 event 字段。
type RedisPublisher struct {
	cfg       RedisConfig
	client    redis.UniversalClient
	ownClient bool
	logger    logging.Logger
}

var _ IEventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisherFromConfig 按环境配置创建 Redis Streams 发布器
func NewRedisPublisherFromConfig(cfg *config.Config) (*RedisPublisher, error) {
	return NewRedisPublisher(RedisConfig{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
}

// NewRedisPublisher 创建 Redis Streams 发布器
func NewRedisPublisher(cfg RedisConfig) (*RedisPublisher, error) {
	if cfg.StreamPrefix == "" {
		cfg.StreamPrefix = "events:"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetLogger().WithFields(logging.String("component", "publish.redis"))
	}

	client := cfg.Client
	ownClient := false
	if client == nil {
		if cfg.Addr == "" {
			return nil, errors.New("redis 地址未配置")
		}
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		ownClient = true
	}

	return &RedisPublisher{
		cfg:       cfg,
		client:    client,
		ownClient: ownClient,
		logger:    cfg.Logger,
	}, nil
}

// PublishEvents 实现 IEventPublisher 接口
func (p *RedisPublisher) PublishEvents(ctx context.Context, events []eventing.IEvent) error {
	for _, evt := range events {
		data, err := json.Marshal(evt)
		if err != nil {
			return err
		}
		stream := p.cfg.StreamPrefix + evt.GetType()
		args := &redis.XAddArgs{
			Stream: stream,
			Values: map[string]any{
				"event_id":   evt.GetID(),
				"event_type": evt.GetType(),
				"event":      string(data),
			},
		}
		if p.cfg.MaxLen > 0 {
			args.MaxLen = p.cfg.MaxLen
			args.Approx = true
		}
		if err := p.client.XAdd(ctx, args).Err(); err != nil {
			p.logger.Error(ctx, "Redis 发布失败",
				logging.String("stream", stream),
				logging.Error(err))
			return err
		}
	}
	return nil
}

// Close 实现 IEventPublisher 接口
func (p *RedisPublisher) Close() error {
	if p.ownClient && p.client != nil {
		return p.client.Close()
	}
	return nil
}
