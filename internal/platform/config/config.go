package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"treasury/pkg/domain"
	strs "treasury/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	LogLevel      string
	JWTSigningKey string
	JWTIssuer     string

	// VoteRecorderEnabled mounts POST /votes/{org}/{id}, which sets vote outcomes
	// on the in-process voting adapter by hand. Development only.
	VoteRecorderEnabled bool

	Treasury Treasury
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// Treasury holds the accounts the proposal service acts with.
type Treasury struct {
	// Adapter is this service's own custody account ("self").
	Adapter domain.Address
	// Account is the organization's pooled treasury ledger account.
	Account  domain.Address
	Reserved []domain.Address
	LockTTL  time.Duration
}

// DatabaseConfig selects the PostgreSQL proposal store when URL is set.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// TxTimeout bounds a proposal transaction whose context has no deadline.
	// Zero leaves it unbounded.
	TxTimeout time.Duration
}

// RedisConfig selects the Redis organization lock when URL is set.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig selects the Kafka audit sink when Brokers is non-empty.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
	QueueSize  int
}

const (
	defaultAdapterAccount  = "0xad00000000000000000000000000000000000001"
	defaultTreasuryAccount = "0x000000000000000000000000000000000000dead"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	adapter, err := domain.ParseAddress(getEnv("ADAPTER_ACCOUNT", defaultAdapterAccount))
	if err != nil {
		return Server{}, fmt.Errorf("ADAPTER_ACCOUNT: %w", err)
	}
	treasury, err := domain.ParseAddress(getEnv("TREASURY_ACCOUNT", defaultTreasuryAccount))
	if err != nil {
		return Server{}, fmt.Errorf("TREASURY_ACCOUNT: %w", err)
	}
	var reserved []domain.Address
	for _, raw := range strs.SplitListLower(os.Getenv("RESERVED_ACCOUNTS")) {
		a, err := domain.ParseAddress(raw)
		if err != nil {
			return Server{}, fmt.Errorf("RESERVED_ACCOUNTS: %w", err)
		}
		reserved = append(reserved, a)
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          getEnv("TREASURY_ADDR", ":8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSigningKey: jwtSigningKey,
		JWTIssuer:     getEnv("JWT_ISSUER", "treasury"),

		VoteRecorderEnabled: getBool("VOTE_RECORDER_ENABLED", false),

		Treasury: Treasury{
			Adapter:  adapter,
			Account:  treasury,
			Reserved: reserved,
			LockTTL:  getDuration("LOCK_TTL", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			TxTimeout:       getDuration("DB_TX_TIMEOUT", 0),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    strs.SplitList(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: getEnv("AUDIT_TOPIC", "treasury.audit"),
			QueueSize:  getInt("AUDIT_QUEUE_SIZE", 1024),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
