package objectstore

//go:generate mockgen -source=public.go -destination=mock_public.go -package=objectstore

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrVersionConflict = errors.New("object version conflict")
	ErrNotRegistered   = errors.New("guild not registered")
)

// Object is a named JSON document stored for a group.
type Object struct {
	Data json.RawMessage
	// Version is incremented on every write. Zero means the object has never been written.
	Version int64
}

type SetObject struct {
	Name string
	Data json.RawMessage

	// ExpectedVersion makes the write conditional: if the stored version differs the whole
	// SetObjects call fails with ErrVersionConflict and nothing is written.
	ExpectedVersion *int64
}

// ObjectStore holds per-group named JSON objects.
type ObjectStore interface {
	// GetObjects returns the requested objects. Names that were never written are absent from the map.
	GetObjects(ctx context.Context, groupId string, names []string) (map[string]Object, error)
	SetObjects(ctx context.Context, groupId string, objects []SetObject) error
}

type RegistryEntry struct {
	GroupId string `json:"groupId"`
	Name    string `json:"name"`
}

// Registry lists every known guild by name.
type Registry interface {
	Register(ctx context.Context, groupId string, name string) error
	Name(ctx context.Context, groupId string) (string, error)
	List(ctx context.Context) ([]RegistryEntry, error)
}
