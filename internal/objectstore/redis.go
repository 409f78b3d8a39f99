package objectstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"guild-service/internal/config"
	"sort"
	"strconv"
	"sync"
	"time"
)

const (
	registryKey = "guild:registry"

	dataField    = "data"
	versionField = "version"
)

func NewRedisClient(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Infow("connected to redis", "addr", cfg.Addr)

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down redis client")
		if err := client.Close(); err != nil {
			logger.Errorw("failed to close redis client", "error", err)
		}
	}()

	return client, nil
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) ObjectStore {
	return &redisStore{client: client}
}

func objectKey(groupId string, name string) string {
	return fmt.Sprintf("guild:%s:object:%s", groupId, name)
}

func (r *redisStore) GetObjects(ctx context.Context, groupId string, names []string) (map[string]Object, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipe := r.client.Pipeline()
	cmds := make([]*redis.SliceCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.HMGet(ctx, objectKey(groupId, name), dataField, versionField)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	result := make(map[string]Object, len(names))
	for i, cmd := range cmds {
		vals := cmd.Val()
		data, ok := vals[0].(string)
		if !ok {
			continue
		}

		var version int64
		if raw, ok := vals[1].(string); ok {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid version for object %s: %w", names[i], err)
			}
			version = v
		}

		result[names[i]] = Object{Data: json.RawMessage(data), Version: version}
	}

	return result, nil
}

func (r *redisStore) SetObjects(ctx context.Context, groupId string, objects []SetObject) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	keys := make([]string, len(objects))
	for i, o := range objects {
		keys[i] = objectKey(groupId, o.Name)
	}

	txf := func(tx *redis.Tx) error {
		for i, o := range objects {
			if o.ExpectedVersion == nil {
				continue
			}

			stored, err := tx.HGet(ctx, keys[i], versionField).Int64()
			if errors.Is(err, redis.Nil) {
				stored = 0
			} else if err != nil {
				return err
			}

			if stored != *o.ExpectedVersion {
				return ErrVersionConflict
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, o := range objects {
				pipe.HSet(ctx, keys[i], dataField, string(o.Data))
				pipe.HIncrBy(ctx, keys[i], versionField, 1)
			}
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, keys...)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrVersionConflict
	}
	return err
}

type redisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(client *redis.Client) Registry {
	return &redisRegistry{client: client}
}

func (r *redisRegistry) Register(ctx context.Context, groupId string, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.client.HSet(ctx, registryKey, groupId, name).Err()
}

func (r *redisRegistry) Name(ctx context.Context, groupId string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	name, err := r.client.HGet(ctx, registryKey, groupId).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotRegistered
	}
	return name, err
}

// List returns the registry sorted by name, then group id.
func (r *redisRegistry) List(ctx context.Context) ([]RegistryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	all, err := r.client.HGetAll(ctx, registryKey).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]RegistryEntry, 0, len(all))
	for id, name := range all {
		entries = append(entries, RegistryEntry{GroupId: id, Name: name})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name == entries[j].Name {
			return entries[i].GroupId < entries[j].GroupId
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
