// Package sqlstore 基于 database/sql 的事件存储实现
//
// 不绑定具体数据库：调用方传入 *sql.DB（测试中使用 modernc.org/sqlite）。
// 事件载荷与元数据以 JSON 序列化存储。
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"seedwork/eventing"
	"seedwork/eventing/store"
	"seedwork/logging"

	dmerrors "seedwork/errors"
)

const defaultTableName = "event_store"

// SQLEventStore SQL 事件存储
type SQLEventStore struct {
	db        *sql.DB
	tableName string
	logger    logging.Logger
}

var _ store.IEventStore = (*SQLEventStore)(nil)

// New 创建 SQL 事件存储（tableName 为空时使用 event_store）
func New(db *sql.DB, tableName string) *SQLEventStore {
	if tableName == "" {
		tableName = defaultTableName
	}
	return &SQLEventStore{
		db:        db,
		tableName: tableName,
		logger:    logging.GetLogger().WithFields(logging.String("component", "sqlstore")),
	}
}

// Init 建表（幂等）
func (s *SQLEventStore) Init(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id             TEXT PRIMARY KEY,
		aggregate_id   TEXT NOT NULL,
		aggregate_type TEXT NOT NULL,
		event_type     TEXT NOT NULL,
		version        INTEGER NOT NULL,
		schema_version INTEGER NOT NULL DEFAULT 1,
		payload        TEXT,
		metadata       TEXT,
		occurred_at    TIMESTAMP NOT NULL,
		UNIQUE (aggregate_id, version)
	)`, s.tableName)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("初始化事件表失败: %w", err)
	}
	return nil
}

// AppendEvents 实现 IEventStore 接口
//
// 在单个事务内检查当前版本并批量插入；
// 版本不匹配返回 CONCURRENCY_ERROR，事务回滚。
func (s *SQLEventStore) AppendEvents(ctx context.Context, aggregateID string, events []*eventing.Event, expectedVersion int64) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := s.currentVersion(ctx, tx, aggregateID)
	if err != nil {
		return err
	}
	if current != expectedVersion {
		return dmerrors.NewConcurrencyError(fmt.Sprintf(
			"聚合 %s 版本冲突: 期望 %d, 当前 %d", aggregateID, expectedVersion, current))
	}

	insert := fmt.Sprintf(`INSERT INTO %s
		(id, aggregate_id, aggregate_type, event_type, version, schema_version, payload, metadata, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, s.tableName)

	for i, e := range events {
		if err := e.Validate(); err != nil {
			return err
		}
		want := expectedVersion + int64(i) + 1
		if e.Version != want {
			return fmt.Errorf("事件版本不连续: 期望 %d, 实际 %d", want, e.Version)
		}
		payload, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("序列化事件载荷失败: %w", err)
		}
		metadata, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("序列化事件元数据失败: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insert,
			e.ID, e.AggregateID, e.AggregateType, e.Type,
			e.Version, e.SchemaVersion, string(payload), string(metadata),
			e.Timestamp.UTC()); err != nil {
			return fmt.Errorf("写入事件失败: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	s.logger.Debug(ctx, "事件已写入",
		logging.String("aggregate_id", aggregateID),
		logging.Int("count", len(events)))
	return nil
}

// LoadEvents 实现 IEventStore 接口
func (s *SQLEventStore) LoadEvents(ctx context.Context, aggregateID string, afterVersion int64) ([]*eventing.Event, error) {
	query := fmt.Sprintf(`SELECT id, aggregate_id, aggregate_type, event_type,
		version, schema_version, payload, metadata, occurred_at
		FROM %s WHERE aggregate_id = ? AND version > ? ORDER BY version ASC`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query, aggregateID, afterVersion)
	if err != nil {
		return nil, fmt.Errorf("读取事件失败: %w", err)
	}
	defer rows.Close()

	var events []*eventing.Event
	for rows.Next() {
		var (
			e          eventing.Event
			payload    string
			metadata   string
			occurredAt time.Time
		)
		if err := rows.Scan(&e.ID, &e.AggregateID, &e.AggregateType, &e.Type,
			&e.Version, &e.SchemaVersion, &payload, &metadata, &occurredAt); err != nil {
			return nil, fmt.Errorf("扫描事件行失败: %w", err)
		}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
				return nil, fmt.Errorf("反序列化事件载荷失败: %w", err)
			}
		}
		if metadata != "" {
			if err := json.Unmarshal([]byte(metadata), &e.Metadata); err != nil {
				return nil, fmt.Errorf("反序列化事件元数据失败: %w", err)
			}
		}
		e.Timestamp = occurredAt
		events = append(events, &e)
	}
	return events, rows.Err()
}

// GetAggregateVersion 实现 IEventStore 接口
func (s *SQLEventStore) GetAggregateVersion(ctx context.Context, aggregateID string) (int64, error) {
	return s.currentVersion(ctx, s.db, aggregateID)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLEventStore) currentVersion(ctx context.Context, q queryer, aggregateID string) (int64, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(version), 0) FROM %s WHERE aggregate_id = ?`, s.tableName)
	var version int64
	if err := q.QueryRowContext(ctx, query, aggregateID).Scan(&version); err != nil {
		return 0, fmt.Errorf("查询聚合版本失败: %w", err)
	}
	return version, nil
}
