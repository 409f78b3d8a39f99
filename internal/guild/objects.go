package guild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"guild-service/internal/objectstore"
	"time"
)

const (
	applicationsObject = "Applications"
	infoObject         = "GuildInfo"
)

// Application is a pending join request. DisplayName and Power are captured when applying.
type Application struct {
	PlayerId    string    `json:"playerId"`
	EntityId    string    `json:"entityId"`
	DisplayName string    `json:"displayName"`
	Power       int64     `json:"power"`
	AppliedAt   time.Time `json:"appliedAt"`
}

type Info struct {
	Level      int    `json:"level"`
	Experience int64  `json:"experience"`
	Notice     string `json:"notice"`
}

func newInfo() Info {
	return Info{Level: 1}
}

func removeApplication(apps []Application, playerId string) ([]Application, bool) {
	for i, a := range apps {
		if a.PlayerId == playerId {
			return append(apps[:i], apps[i+1:]...), true
		}
	}
	return apps, false
}

// readObject decodes the named object into value and returns its version.
// Missing objects leave value untouched and report version 0.
func (e *Engine) readObject(ctx context.Context, guildId string, name string, value any) (int64, error) {
	objects, err := e.objects.GetObjects(ctx, guildId, []string{name})
	if err != nil {
		return 0, upstream("read "+name, err)
	}

	obj, ok := objects[name]
	if !ok {
		return 0, nil
	}

	if err := json.Unmarshal(obj.Data, value); err != nil {
		return 0, upstream("decode "+name, err)
	}
	return obj.Version, nil
}

var errNoChange = errors.New("no change")

// updateObject runs a versioned read-modify-write of one guild object. When the write loses a race
// the object is re-read and mutate is applied again. mutate may return errNoChange to skip the write;
// any other error aborts and is returned as is.
func updateObject[T any](ctx context.Context, e *Engine, guildId string, name string, initial func() T, mutate func(value *T) error) (T, error) {
	var value T
	for attempt := 1; attempt <= e.casAttempts; attempt++ {
		value = initial()
		version, err := e.readObject(ctx, guildId, name, &value)
		if err != nil {
			return value, err
		}

		if err := mutate(&value); err != nil {
			if errors.Is(err, errNoChange) {
				return value, nil
			}
			return value, err
		}

		data, err := json.Marshal(value)
		if err != nil {
			return value, upstream("encode "+name, err)
		}

		err = e.objects.SetObjects(ctx, guildId, []objectstore.SetObject{
			{Name: name, Data: data, ExpectedVersion: &version},
		})
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, objectstore.ErrVersionConflict) {
			return value, upstream("write "+name, err)
		}

		e.logger.Debugw("guild object changed concurrently, retrying", "guildId", guildId, "object", name, "attempt", attempt)
	}

	return value, fmt.Errorf("%w: %s of guild %s kept changing after %d attempts", ErrUpstream, name, guildId, e.casAttempts)
}
