package setup

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/cinecritique/internal/cfg"
	"github.com/IsaacDSC/cinecritique/internal/kvstore"
	"github.com/IsaacDSC/cinecritique/pkg/logs"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

// Closer releases the connections behind a store.
type Closer func(ctx context.Context) error

// NewStore opens the key/value store selected by conf.Driver and checks it is reachable.
func NewStore(ctx context.Context, conf cfg.Cache) (kvstore.Store, Closer, error) {
	noop := func(context.Context) error { return nil }

	switch conf.Driver {
	case DriverMemory, "":
		store, err := kvstore.NewMemStore()
		if err != nil {
			return nil, noop, fmt.Errorf("create memory store: %w", err)
		}
		logs.Info("cache store ready", "driver", DriverMemory)
		return store, noop, nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: conf.CacheAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("ping redis %s: %w", conf.CacheAddr, err)
		}
		logs.Info("cache store ready", "driver", DriverRedis, "addr", conf.CacheAddr)
		return kvstore.NewRedisStore(client), func(context.Context) error { return client.Close() }, nil

	case DriverMongo:
		client, err := mongo.Connect(options.Client().ApplyURI(conf.MongoConn))
		if err != nil {
			return nil, noop, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, noop, fmt.Errorf("ping mongo: %w", err)
		}
		logs.Info("cache store ready", "driver", DriverMongo)
		return kvstore.NewMongoStore(client), client.Disconnect, nil

	default:
		return nil, noop, fmt.Errorf("unknown cache driver %q", conf.Driver)
	}
}
