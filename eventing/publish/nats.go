package publish

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"seedwork/config"
	"seedwork/eventing"
	"seedwork/logging"
)

// NATSConfig NATS JetStream 发布器配置
type NATSConfig struct {
	URL           string
	Stream        string
	SubjectPrefix string
	ConnectWait   time.Duration
	Logger        logging.Logger

	// Conn 可选：复用已有连接（发布器不负责关闭它）
	Conn *nats.Conn
}

// NATSPublisher 基于 NATS JetStream 的事件发布器
type NATSPublisher struct {
	cfg      NATSConfig
	conn     *nats.Conn
	js       nats.JetStreamContext
	ownsConn bool
	logger   logging.Logger
}

var _ IEventPublisher = (*NATSPublisher)(nil)

// NewNATSPublisherFromConfig 按环境配置创建 JetStream 发布器
func NewNATSPublisherFromConfig(cfg *config.Config) (*NATSPublisher, error) {
	return NewNATSPublisher(NATSConfig{
		URL:    cfg.NATSURL,
		Stream: cfg.NATSStream,
	})
}

// NewNATSPublisher 创建并连接 JetStream 发布器
//
// 流不存在时自动创建，主题为 SubjectPrefix + 事件类型。
func NewNATSPublisher(cfg NATSConfig) (*NATSPublisher, error) {
	if cfg.Stream == "" {
		cfg.Stream = "SEEDWORK"
	}
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = "events."
	}
	if cfg.ConnectWait <= 0 {
		cfg.ConnectWait = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetLogger().WithFields(logging.String("component", "publish.nats"))
	}

	conn := cfg.Conn
	ownsConn := false
	if conn == nil {
		if cfg.URL == "" {
			return nil, errors.New("NATS URL 未配置")
		}
		c, err := nats.Connect(cfg.URL, nats.Timeout(cfg.ConnectWait))
		if err != nil {
			return nil, err
		}
		conn = c
		ownsConn = true
	}

	js, err := conn.JetStream()
	if err != nil {
		if ownsConn {
			conn.Close()
		}
		return nil, err
	}

	if _, err := js.StreamInfo(cfg.Stream); err != nil {
		if !errors.Is(err, nats.ErrStreamNotFound) {
			if ownsConn {
				conn.Close()
			}
			return nil, err
		}
		if _, err := js.AddStream(&nats.StreamConfig{
			Name:     cfg.Stream,
			Subjects: []string{cfg.SubjectPrefix + ">"},
		}); err != nil {
			if ownsConn {
				conn.Close()
			}
			return nil, err
		}
	}

	return &NATSPublisher{
		cfg:      cfg,
		conn:     conn,
		js:       js,
		ownsConn: ownsConn,
		logger:   cfg.Logger,
	}, nil
}

// PublishEvents 实现 IEventPublisher 接口
func (p *NATSPublisher) PublishEvents(ctx context.Context, events []eventing.IEvent) error {
	for _, evt := range events {
		data, err := json.Marshal(evt)
		if err != nil {
			return err
		}
		subject := p.subjectName(evt.GetType())
		if _, err := p.js.Publish(subject, data, nats.Context(ctx)); err != nil {
			p.logger.Error(ctx, "NATS 发布失败",
				logging.String("subject", subject),
				logging.Error(err))
			return err
		}
	}
	return nil
}

// Close 实现 IEventPublisher 接口
func (p *NATSPublisher) Close() error {
	if p.ownsConn && p.conn != nil {
		p.conn.Close()
	}
	return nil
}

func (p *NATSPublisher) subjectName(eventType string) string {
	// JetStream 主题不允许空格
	return p.cfg.SubjectPrefix + strings.ReplaceAll(eventType, " ", "_")
}
