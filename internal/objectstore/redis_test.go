package objectstore

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log"
	"os"
	"testing"
)

var (
	client   *redis.Client
	store    ObjectStore
	registry Registry
)

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not constuct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(cfg *docker.HostConfig) {
		cfg.AutoRemove = true
		cfg.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		log.Fatalf("could not start resource: %s", err)
	}

	err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp"))})
		return client.Ping(context.Background()).Err()
	})
	if err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	store = NewRedisStore(client)
	registry = NewRedisRegistry(client)

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("could not purge resource: %s", err)
	}

	os.Exit(code)
}

func versionOf(v int64) *int64 {
	return &v
}

func TestRedisStore_GetObjects(t *testing.T) {
	ctx := context.Background()

	objects, err := store.GetObjects(ctx, "g1", []string{"GuildInfo"})
	assert.NoError(t, err)
	assert.Empty(t, objects)

	err = store.SetObjects(ctx, "g1", []SetObject{
		{Name: "GuildInfo", Data: json.RawMessage(`{"level":1}`)},
		{Name: "Applications", Data: json.RawMessage(`[]`)},
	})
	require.NoError(t, err)

	objects, err = store.GetObjects(ctx, "g1", []string{"GuildInfo", "Applications", "Missing"})
	assert.NoError(t, err)
	assert.Len(t, objects, 2)
	assert.JSONEq(t, `{"level":1}`, string(objects["GuildInfo"].Data))
	assert.Equal(t, int64(1), objects["GuildInfo"].Version)
	assert.JSONEq(t, `[]`, string(objects["Applications"].Data))

	// Objects are scoped per group
	objects, err = store.GetObjects(ctx, "g2", []string{"GuildInfo"})
	assert.NoError(t, err)
	assert.Empty(t, objects)

	cleanup()
}

func TestRedisStore_SetObjects(t *testing.T) {
	tests := map[string]struct {
		// stored is written unconditionally before the conditional write
		stored          *SetObject
		expectedVersion *int64

		wantErr     error
		wantVersion int64
	}{
		"unconditional write": {
			stored:      &SetObject{Name: "GuildInfo", Data: json.RawMessage(`{"notice":"a"}`)},
			wantVersion: 2,
		},
		"create when absent": {
			expectedVersion: versionOf(0),
			wantVersion:     1,
		},
		"matching version": {
			stored:          &SetObject{Name: "GuildInfo", Data: json.RawMessage(`{"notice":"a"}`)},
			expectedVersion: versionOf(1),
			wantVersion:     2,
		},
		"stale version": {
			stored:          &SetObject{Name: "GuildInfo", Data: json.RawMessage(`{"notice":"a"}`)},
			expectedVersion: versionOf(0),
			wantErr:         ErrVersionConflict,
			wantVersion:     1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			defer cleanup()
			ctx := context.Background()

			if tc.stored != nil {
				require.NoError(t, store.SetObjects(ctx, "g1", []SetObject{*tc.stored}))
			}

			err := store.SetObjects(ctx, "g1", []SetObject{
				{Name: "GuildInfo", Data: json.RawMessage(`{"notice":"b"}`), ExpectedVersion: tc.expectedVersion},
			})
			assert.Equal(t, tc.wantErr, err)

			objects, err := store.GetObjects(ctx, "g1", []string{"GuildInfo"})
			require.NoError(t, err)
			assert.Equal(t, tc.wantVersion, objects["GuildInfo"].Version)
			if tc.wantErr == nil {
				assert.JSONEq(t, `{"notice":"b"}`, string(objects["GuildInfo"].Data))
			}
		})
	}
}

func TestRedisRegistry(t *testing.T) {
	ctx := context.Background()

	entries, err := registry.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, registry.Register(ctx, "g2", "PandaClan"))
	require.NoError(t, registry.Register(ctx, "g1", "Foothold"))

	entries, err = registry.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []RegistryEntry{
		{GroupId: "g1", Name: "Foothold"},
		{GroupId: "g2", Name: "PandaClan"},
	}, entries)

	name, err := registry.Name(ctx, "g2")
	assert.NoError(t, err)
	assert.Equal(t, "PandaClan", name)

	_, err = registry.Name(ctx, "g3")
	assert.Equal(t, ErrNotRegistered, err)

	cleanup()
}

func cleanup() {
	if err := client.FlushDB(context.Background()).Err(); err != nil {
		log.Panicf("could not flush redis: %s", err)
	}
}
