package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS baselines (
			user_id			TEXT	NOT NULL,
			vital_type		TEXT	NOT NULL,
			mean			NUMERIC	NOT NULL,
			std_dev			NUMERIC	NOT NULL,
			min_value		NUMERIC	NOT NULL,
			max_value		NUMERIC	NOT NULL,
			sample_count	INT		NOT NULL,
			percentiles		JSONB	NOT NULL,
			last_updated	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_baselines PRIMARY KEY (user_id, vital_type)
		);

		CREATE TABLE IF NOT EXISTS escalations (
			escalation_id		TEXT	NOT NULL,
			alert_id			TEXT	NOT NULL,
			alert_type			TEXT	NOT NULL,
			user_id				TEXT	NOT NULL,
			family_id			TEXT	NULL,
			policy_id			TEXT	NOT NULL,
			current_level		INT		NOT NULL DEFAULT 0,
			max_level			INT		NOT NULL,
			status				TEXT	NOT NULL,
			created_at			timestamp with time zone NOT NULL,
			last_escalated_at	timestamp with time zone NOT NULL,
			next_escalation_at	timestamp with time zone NULL,
			acknowledged_by		TEXT	NULL,
			acknowledged_at		timestamp with time zone NULL,
			resolved_by			TEXT	NULL,
			resolved_at			timestamp with time zone NULL,
			notifications_sent	JSONB	NULL,
			CONSTRAINT pkey_escalations PRIMARY KEY (escalation_id)
		);

		CREATE TABLE IF NOT EXISTS events (
			event_id		TEXT	NOT NULL,
			correlation_id	TEXT	NOT NULL,
			category		TEXT	NOT NULL,
			type			TEXT	NOT NULL,
			severity		TEXT	NOT NULL,
			user_id			TEXT	NULL,
			source			TEXT	NULL,
			data			JSONB	NULL,
			time			timestamp with time zone NOT NULL,
			CONSTRAINT pkey_events PRIMARY KEY (event_id)
		);

		CREATE TABLE IF NOT EXISTS metrics (
			time	timestamp with time zone NOT NULL,
			name	TEXT	NOT NULL,
			value	NUMERIC	NOT NULL,
			tags	JSONB	NULL
		);

		CREATE TABLE IF NOT EXISTS audit_log (
			entry_id		TEXT	NOT NULL,
			correlation_id	TEXT	NOT NULL,
			escalation_id	TEXT	NULL,
			alert_id		TEXT	NULL,
			action			TEXT	NOT NULL,
			actor			TEXT	NULL,
			severity		TEXT	NOT NULL,
			details			JSONB	NULL,
			time			timestamp with time zone NOT NULL,
			CONSTRAINT pkey_audit_log PRIMARY KEY (entry_id)
		);

		CREATE TABLE IF NOT EXISTS health_scores (
			user_id		TEXT	NOT NULL,
			score		NUMERIC	NOT NULL,
			components	JSONB	NOT NULL,
			trend		TEXT	NOT NULL,
			time		timestamp with time zone NOT NULL,
			CONSTRAINT pkey_health_scores PRIMARY KEY (user_id, time)
		);

		CREATE TABLE IF NOT EXISTS families (
			family_id	TEXT	NOT NULL,
			name		TEXT	NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_families PRIMARY KEY (family_id)
		);

		CREATE TABLE IF NOT EXISTS family_members (
			user_id			TEXT	NOT NULL,
			family_id		TEXT	NOT NULL,
			name			TEXT	NULL,
			role			TEXT	NOT NULL,
			notify_roles	TEXT[]	NOT NULL DEFAULT '{}',
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_family_members PRIMARY KEY (user_id, family_id)
		);

		CREATE INDEX IF NOT EXISTS escalations_alert_idx ON escalations (alert_id);
		CREATE INDEX IF NOT EXISTS escalations_due_idx ON escalations (next_escalation_at) WHERE status = 'active';
		CREATE INDEX IF NOT EXISTS events_user_time_idx ON events (user_id, time);
		CREATE INDEX IF NOT EXISTS audit_log_alert_idx ON audit_log (alert_id);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
