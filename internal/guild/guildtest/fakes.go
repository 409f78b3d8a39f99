// Package guildtest provides in-memory implementations of the engine's collaborators.
package guildtest

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"guild-service/internal/kafka/notifier"
	"guild-service/internal/objectstore"
	"guild-service/internal/repository"
	"guild-service/internal/repository/model"
	"sort"
	"sync"
	"time"
)

// failures hands out injected errors, one per call, in the order they were queued.
type failures struct {
	mu      sync.Mutex
	pending map[string][]error
}

func (f *failures) FailNext(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending == nil {
		f.pending = make(map[string][]error)
	}
	f.pending[method] = append(f.pending[method], err)
}

func (f *failures) take(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	queue := f.pending[method]
	if len(queue) == 0 {
		return nil
	}
	f.pending[method] = queue[1:]
	return queue[0]
}

// Repository is an in-memory repository.Repository.
type Repository struct {
	failures

	mu      sync.Mutex
	groups  map[string]*model.Group
	order   []string
	players map[string]*model.Player
	created int
}

var _ repository.Repository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{
		groups:  make(map[string]*model.Group),
		players: make(map[string]*model.Player),
	}
}

func (r *Repository) AddPlayer(p model.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[p.Id] = &p
}

// Group returns a copy of the stored group, or nil.
func (r *Repository) Group(groupId string) *model.Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.groups[groupId]
	if !ok {
		return nil
	}
	cp := *g
	cp.Roles = append([]model.Role(nil), g.Roles...)
	cp.Members = append([]model.Member(nil), g.Members...)
	return &cp
}

func (r *Repository) CreateGroup(_ context.Context, name string) (string, error) {
	if err := r.take("CreateGroup"); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.created++
	g := model.NewGroup(uuid.NewString(), name, time.Unix(int64(r.created), 0))
	r.groups[g.Id] = g
	r.order = append(r.order, g.Id)
	return g.Id, nil
}

func (r *Repository) AddMembers(_ context.Context, groupId string, roleId string, entityIds []string) error {
	if err := r.take("AddMembers"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupId]
	if !ok {
		return repository.ErrGroupNotFound
	}
	if !g.HasRole(roleId) {
		return repository.ErrRoleNotFound
	}
	for _, id := range entityIds {
		if !g.IsMember(id) {
			g.Members = append(g.Members, model.Member{EntityId: id, RoleId: roleId})
		}
	}
	return nil
}

func (r *Repository) RemoveMembers(_ context.Context, groupId string, entityIds []string) error {
	if err := r.take("RemoveMembers"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupId]
	if !ok {
		return repository.ErrGroupNotFound
	}
	remove := make(map[string]bool, len(entityIds))
	for _, id := range entityIds {
		remove[id] = true
	}
	kept := make([]model.Member, 0, len(g.Members))
	for _, m := range g.Members {
		if !remove[m.EntityId] {
			kept = append(kept, m)
		}
	}
	g.Members = kept
	return nil
}

func (r *Repository) ListMembership(_ context.Context, entityId string) ([]string, error) {
	if err := r.take("ListMembership"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0)
	for _, id := range r.order {
		if r.groups[id].IsMember(entityId) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *Repository) ListMembers(_ context.Context, groupId string) ([]model.RoleMembers, error) {
	if err := r.take("ListMembers"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupId]
	if !ok {
		return nil, repository.ErrGroupNotFound
	}
	return g.RoleMembers(), nil
}

func (r *Repository) ChangeRole(_ context.Context, groupId string, originRoleId string, destRoleId string, entityIds []string) error {
	if err := r.take("ChangeRole"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupId]
	if !ok {
		return repository.ErrGroupNotFound
	}
	if !g.HasRole(destRoleId) {
		return repository.ErrRoleNotFound
	}
	changed := false
	for i, m := range g.Members {
		for _, id := range entityIds {
			if m.EntityId == id && m.RoleId == originRoleId {
				g.Members[i].RoleId = destRoleId
				changed = true
			}
		}
	}
	if !changed {
		return repository.ErrMemberNotInRole
	}
	return nil
}

func (r *Repository) CreateRole(_ context.Context, groupId string, roleId string, roleName string) error {
	if err := r.take("CreateRole"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupId]
	if !ok {
		return repository.ErrGroupNotFound
	}
	if g.HasRole(roleId) {
		return repository.ErrRoleAlreadyExists
	}
	g.Roles = append(g.Roles, model.Role{Id: roleId, Name: roleName})
	return nil
}

func (r *Repository) RenameRole(_ context.Context, groupId string, roleId string, newName string) error {
	if err := r.take("RenameRole"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupId]
	if !ok {
		return repository.ErrGroupNotFound
	}
	for i, role := range g.Roles {
		if role.Id == roleId {
			g.Roles[i].Name = newName
			return nil
		}
	}
	return repository.ErrRoleNotFound
}

func (r *Repository) player(playerId string) (*model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[playerId]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *Repository) ResolveEntity(_ context.Context, playerId string) (string, error) {
	if err := r.take("ResolveEntity"); err != nil {
		return "", err
	}
	p, err := r.player(playerId)
	if err != nil {
		return "", err
	}
	return p.EntityId, nil
}

func (r *Repository) GetDisplayName(_ context.Context, playerId string) (string, error) {
	p, err := r.player(playerId)
	if err != nil {
		return "", err
	}
	return p.DisplayName, nil
}

func (r *Repository) GetPower(_ context.Context, playerId string) (int64, error) {
	p, err := r.player(playerId)
	if err != nil {
		return 0, err
	}
	return p.Power, nil
}

func (r *Repository) GetPlayersByEntityIds(_ context.Context, entityIds []string) ([]*model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]*model.Player, 0)
	for _, p := range r.players {
		for _, id := range entityIds {
			if p.EntityId == id {
				cp := *p
				players = append(players, &cp)
			}
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Id < players[j].Id })
	return players, nil
}

func (r *Repository) GetLastAttendance(_ context.Context, playerId string) (string, error) {
	p, err := r.player(playerId)
	if err != nil {
		return "", err
	}
	return p.LastAttendance, nil
}

func (r *Repository) RecordAttendance(_ context.Context, playerId string, dateKey string) error {
	if err := r.take("RecordAttendance"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerId]
	if !ok {
		return repository.ErrPlayerNotFound
	}
	if p.LastAttendance == dateKey {
		return repository.ErrAttendanceAlreadyRecorded
	}
	p.LastAttendance = dateKey
	return nil
}

type storedObject struct {
	data    json.RawMessage
	version int64
}

// ObjectStore is an in-memory objectstore.ObjectStore with the same version semantics as Redis.
type ObjectStore struct {
	failures

	mu      sync.Mutex
	objects map[string]storedObject

	// AfterGet, if set, runs after every GetObjects call. Tests use it to interleave writers.
	AfterGet func(groupId string, names []string)
}

var _ objectstore.ObjectStore = (*ObjectStore)(nil)

func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: make(map[string]storedObject)}
}

func objectKey(groupId string, name string) string {
	return groupId + "/" + name
}

func (s *ObjectStore) GetObjects(_ context.Context, groupId string, names []string) (map[string]objectstore.Object, error) {
	if err := s.take("GetObjects"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	result := make(map[string]objectstore.Object)
	for _, name := range names {
		if obj, ok := s.objects[objectKey(groupId, name)]; ok {
			result[name] = objectstore.Object{Data: append(json.RawMessage(nil), obj.data...), Version: obj.version}
		}
	}
	s.mu.Unlock()

	if s.AfterGet != nil {
		s.AfterGet(groupId, names)
	}
	return result, nil
}

func (s *ObjectStore) SetObjects(_ context.Context, groupId string, objects []objectstore.SetObject) error {
	if err := s.take("SetObjects"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range objects {
		if o.ExpectedVersion != nil && s.objects[objectKey(groupId, o.Name)].version != *o.ExpectedVersion {
			return objectstore.ErrVersionConflict
		}
	}
	for _, o := range objects {
		key := objectKey(groupId, o.Name)
		s.objects[key] = storedObject{data: append(json.RawMessage(nil), o.Data...), version: s.objects[key].version + 1}
	}
	return nil
}

// Decode reads an object straight from the store.
func (s *ObjectStore) Decode(groupId string, name string, value any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[objectKey(groupId, name)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(obj.data, value)
}

// Registry is an in-memory objectstore.Registry.
type Registry struct {
	failures

	mu      sync.Mutex
	entries map[string]string
}

var _ objectstore.Registry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]string)}
}

func (r *Registry) Register(_ context.Context, groupId string, name string) error {
	if err := r.take("Register"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[groupId] = name
	return nil
}

func (r *Registry) Name(_ context.Context, groupId string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.entries[groupId]
	if !ok {
		return "", objectstore.ErrNotRegistered
	}
	return name, nil
}

func (r *Registry) List(_ context.Context) ([]objectstore.RegistryEntry, error) {
	if err := r.take("List"); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]objectstore.RegistryEntry, 0, len(r.entries))
	for id, name := range r.entries {
		entries = append(entries, objectstore.RegistryEntry{GroupId: id, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Notifier records every event it is given.
type Notifier struct {
	mu     sync.Mutex
	Events []string
}

var _ notifier.Notifier = (*Notifier)(nil)

func (n *Notifier) record(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, event)
}

func (n *Notifier) GuildUpdate(_ context.Context, guildId string, changeType notifier.GuildChangeType) error {
	n.record(fmt.Sprintf("guild %s %s", guildId, changeType))
	return nil
}

func (n *Notifier) MemberUpdate(_ context.Context, guildId string, playerId string, changeType notifier.MemberChangeType) error {
	n.record(fmt.Sprintf("member %s %s %s", guildId, playerId, changeType))
	return nil
}

func (n *Notifier) RoleUpdate(_ context.Context, guildId string, playerId string, role string) error {
	n.record(fmt.Sprintf("role %s %s %s", guildId, playerId, role))
	return nil
}
