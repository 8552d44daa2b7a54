package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-console/storage"
)

// Closer releases whatever a backend holds open.
type Closer func(context.Context) error

func noopCloser(context.Context) error { return nil }

func newRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// OpenStorage connects the durable backend named by STORAGE_DRIVER.
func OpenStorage(ctx context.Context, cfg *Config, log *slog.Logger) (storage.Backend, Closer, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return storage.NewMemoryBackend(0), noopCloser, nil

	case DriverMySQL:
		db, err := ConnectDatabase()
		if err != nil {
			return nil, nil, fmt.Errorf("mysql: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("mysql: %w", err)
		}
		return storage.NewGormBackend(db), func(context.Context) error { return sqlDB.Close() }, nil

	case DriverRedis:
		client := newRedisClient(cfg)
		b := storage.NewRedisBackend(client, "hotel:", 0)
		if err := b.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return b, func(context.Context) error { return client.Close() }, nil

	case DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		coll := client.Database(cfg.MongoDB).Collection("kv_items")
		return storage.NewMongoBackend(coll), client.Disconnect, nil
	}
	return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}

// OpenSessions connects the short-lived area sessions are kept in. Entries
// expire SESSION_TTL after login.
func OpenSessions(ctx context.Context, cfg *Config) (storage.Backend, Closer, error) {
	switch cfg.SessionDriver {
	case DriverMemory:
		return storage.NewMemoryBackend(cfg.SessionTTL), noopCloser, nil
	case DriverRedis:
		client := newRedisClient(cfg)
		b := storage.NewRedisBackend(client, "hotel:", cfg.SessionTTL)
		if err := b.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis sessions: %w", err)
		}
		return b, func(context.Context) error { return client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown SESSION_DRIVER %q", cfg.SessionDriver)
}
