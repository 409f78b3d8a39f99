package guild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"golang.org/x/sync/errgroup"
	"guild-service/internal/kafka/notifier"
	"guild-service/internal/objectstore"
	"guild-service/internal/repository/model"
	"strings"
)

const searchConcurrency = 8

type CreateResult struct {
	GuildId   string `json:"guildId"`
	GuildName string `json:"guildName"`
}

// CreateGuild creates the directory group, sets up the role table and adds the creator as Master.
// Steps after the group exists are not rolled back when they fail.
func (e *Engine) CreateGuild(ctx context.Context, playerId string, guildName string) (*CreateResult, error) {
	if err := validatePlayerId("player id", playerId); err != nil {
		return nil, err
	}
	name, err := normalizeGuildName(guildName)
	if err != nil {
		return nil, err
	}

	entityId, err := e.resolveEntity(ctx, playerId)
	if err != nil {
		return nil, err
	}
	if err := e.requireNoGuild(ctx, entityId); err != nil {
		return nil, err
	}

	guildId, err := e.directory.CreateGroup(ctx, name)
	if err != nil {
		return nil, upstream("create group", err)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"create role " + string(RoleSubMaster), func() error {
			return e.directory.CreateRole(ctx, guildId, RoleSubMaster.DirectoryId(), string(RoleSubMaster))
		}},
		{"rename role " + string(RoleMaster), func() error {
			return e.directory.RenameRole(ctx, guildId, RoleMaster.DirectoryId(), string(RoleMaster))
		}},
		{"rename role " + string(RoleMember), func() error {
			return e.directory.RenameRole(ctx, guildId, RoleMember.DirectoryId(), string(RoleMember))
		}},
		{"add master", func() error {
			return e.directory.AddMembers(ctx, guildId, RoleMaster.DirectoryId(), []string{entityId})
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			e.partialFailure(guildId, step.name, err)
			return nil, upstream(fmt.Sprintf("guild %s created but %s failed", guildId, step.name), err)
		}
	}

	if err := e.registry.Register(ctx, guildId, name); err != nil {
		e.partialFailure(guildId, "register guild", err)
	}
	if err := e.initInfo(ctx, guildId); err != nil {
		e.partialFailure(guildId, "initialise guild info", err)
	}

	e.notifyGuild(ctx, guildId, notifier.GuildCreated)
	e.notifyMember(ctx, guildId, playerId, notifier.MemberJoined)

	return &CreateResult{GuildId: guildId, GuildName: name}, nil
}

func (e *Engine) initInfo(ctx context.Context, guildId string) error {
	data, err := json.Marshal(newInfo())
	if err != nil {
		return err
	}

	var absent int64
	err = e.objects.SetObjects(ctx, guildId, []objectstore.SetObject{
		{Name: infoObject, Data: data, ExpectedVersion: &absent},
	})
	if errors.Is(err, objectstore.ErrVersionConflict) {
		// Someone already wrote it, which is all we wanted.
		return nil
	}
	return err
}

// LeaveGuild removes the player from their guild whatever their role.
func (e *Engine) LeaveGuild(ctx context.Context, playerId string) error {
	if err := validatePlayerId("player id", playerId); err != nil {
		return err
	}

	entityId, guildId, err := e.requireGuild(ctx, playerId)
	if err != nil {
		return err
	}

	if err := e.directory.RemoveMembers(ctx, guildId, []string{entityId}); err != nil {
		return upstream("remove member", err)
	}

	e.notifyMember(ctx, guildId, playerId, notifier.MemberLeft)
	return nil
}

type SearchResult struct {
	GuildId     string `json:"guildId"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}

// SearchGuilds matches registry names case-insensitively by substring and counts the members of
// each match across all of its roles.
func (e *Engine) SearchGuilds(ctx context.Context, query string) ([]SearchResult, error) {
	entries, err := e.registry.List(ctx)
	if err != nil {
		return nil, upstream("list registry", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]SearchResult, 0)
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			results = append(results, SearchResult{GuildId: entry.GroupId, Name: entry.Name})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(searchConcurrency)
	for i := range results {
		i := i
		g.Go(func() error {
			roster, err := e.directory.ListMembers(gctx, results[i].GuildId)
			if err != nil {
				return upstream("list members of "+results[i].GuildId, err)
			}
			for _, group := range roster {
				results[i].MemberCount += len(group.EntityIds)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

type MemberDetails struct {
	PlayerId    string `json:"playerId"`
	EntityId    string `json:"entityId"`
	DisplayName string `json:"displayName"`
	Power       int64  `json:"power"`
	Role        Role   `json:"role"`
}

type Details struct {
	GuildId string          `json:"guildId"`
	Name    string          `json:"name"`
	Info    Info            `json:"info"`
	Members []MemberDetails `json:"members"`
}

// GetGuild describes the player's guild: its info object and every member with their role.
func (e *Engine) GetGuild(ctx context.Context, playerId string) (*Details, error) {
	if err := validatePlayerId("player id", playerId); err != nil {
		return nil, err
	}

	_, guildId, err := e.requireGuild(ctx, playerId)
	if err != nil {
		return nil, err
	}

	name, err := e.registry.Name(ctx, guildId)
	if err != nil && !errors.Is(err, objectstore.ErrNotRegistered) {
		return nil, upstream("lookup guild name", err)
	}

	info := newInfo()
	if _, err := e.readObject(ctx, guildId, infoObject, &info); err != nil {
		return nil, err
	}

	roster, err := e.roster(ctx, guildId)
	if err != nil {
		return nil, err
	}

	members, err := e.memberDetails(ctx, roster)
	if err != nil {
		return nil, err
	}

	return &Details{GuildId: guildId, Name: name, Info: info, Members: members}, nil
}

func (e *Engine) memberDetails(ctx context.Context, roster []model.RoleMembers) ([]MemberDetails, error) {
	members := make([]MemberDetails, 0)
	entityIds := make([]string, 0)
	for _, group := range roster {
		role, ok := roleForDirectoryId(group.RoleId)
		if !ok {
			continue
		}
		for _, id := range group.EntityIds {
			members = append(members, MemberDetails{EntityId: id, Role: role})
			entityIds = append(entityIds, id)
		}
	}
	if len(entityIds) == 0 {
		return members, nil
	}

	players, err := e.identity.GetPlayersByEntityIds(ctx, entityIds)
	if err != nil {
		return nil, upstream("get players", err)
	}

	byEntity := make(map[string]*model.Player, len(players))
	for _, p := range players {
		byEntity[p.EntityId] = p
	}
	for i := range members {
		if p, ok := byEntity[members[i].EntityId]; ok {
			members[i].PlayerId = p.Id
			members[i].DisplayName = p.DisplayName
			members[i].Power = p.Power
		}
	}

	return members, nil
}
