// Package guild implements the guild workflow: every player request is turned into a sequence of
// directory and object store calls. The Engine keeps no state between calls.
package guild

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"guild-service/internal/config"
	"guild-service/internal/kafka/notifier"
	"guild-service/internal/objectstore"
	"guild-service/internal/repository"
	"guild-service/internal/repository/model"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxGuildNameLength = 24
	maxNoticeLength    = 200
	maxPlayerIdLength  = 64
)

type Engine struct {
	logger *zap.SugaredLogger

	directory  repository.Directory
	identity   repository.IdentityResolver
	attendance repository.AttendanceRepository
	objects    objectstore.ObjectStore
	registry   objectstore.Registry
	notif      notifier.Notifier

	restrictReview bool
	casAttempts    int
	now            func() time.Time
}

func NewEngine(logger *zap.SugaredLogger, cfg config.GuildConfig, repo repository.Repository,
	objects objectstore.ObjectStore, registry objectstore.Registry, notif notifier.Notifier) *Engine {

	attempts := cfg.CASMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Engine{
		logger:         logger,
		directory:      repo,
		identity:       repo,
		attendance:     repo,
		objects:        objects,
		registry:       registry,
		notif:          notif,
		restrictReview: cfg.RestrictApplicationReview,
		casAttempts:    attempts,
		now:            time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func validatePlayerId(field string, playerId string) error {
	if strings.TrimSpace(playerId) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(playerId) > maxPlayerIdLength {
		return fmt.Errorf("%w: %s is too long", ErrValidation, field)
	}
	return nil
}

func validateGuildId(guildId string) error {
	if _, err := uuid.Parse(guildId); err != nil {
		return fmt.Errorf("%w: invalid guild id %q", ErrValidation, guildId)
	}
	return nil
}

func normalizeGuildName(name string) (string, error) {
	name = strings.TrimSpace(name)
	length := utf8.RuneCountInString(name)
	if length == 0 {
		return "", fmt.Errorf("%w: guild name is required", ErrValidation)
	}
	if length > maxGuildNameLength {
		return "", fmt.Errorf("%w: guild name exceeds %d characters", ErrValidation, maxGuildNameLength)
	}
	return name, nil
}

func (e *Engine) resolveEntity(ctx context.Context, playerId string) (string, error) {
	entityId, err := e.identity.ResolveEntity(ctx, playerId)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return "", fmt.Errorf("%w: player %s", ErrNotFound, playerId)
		}
		return "", upstream("resolve entity", err)
	}
	return entityId, nil
}

func (e *Engine) memberships(ctx context.Context, entityId string) ([]string, error) {
	groups, err := e.directory.ListMembership(ctx, entityId)
	if err != nil {
		return nil, upstream("list membership", err)
	}
	return groups, nil
}

// resolveGuild returns the player's entity id and first guild. guildId is empty if the player has none.
func (e *Engine) resolveGuild(ctx context.Context, playerId string) (entityId string, guildId string, err error) {
	entityId, err = e.resolveEntity(ctx, playerId)
	if err != nil {
		return "", "", err
	}

	groups, err := e.memberships(ctx, entityId)
	if err != nil {
		return "", "", err
	}
	if len(groups) == 0 {
		return entityId, "", nil
	}
	return entityId, groups[0], nil
}

// requireGuild is resolveGuild for operations that fail when the player has no guild.
func (e *Engine) requireGuild(ctx context.Context, playerId string) (string, string, error) {
	entityId, guildId, err := e.resolveGuild(ctx, playerId)
	if err != nil {
		return "", "", err
	}
	if guildId == "" {
		return "", "", fmt.Errorf("%w: player %s is not in a guild", ErrNotFound, playerId)
	}
	return entityId, guildId, nil
}

// requireNoGuild enforces that a player belongs to at most one guild.
func (e *Engine) requireNoGuild(ctx context.Context, entityId string) error {
	groups, err := e.memberships(ctx, entityId)
	if err != nil {
		return err
	}
	if len(groups) > 0 {
		return fmt.Errorf("%w: already a member of guild %s", ErrDuplicate, groups[0])
	}
	return nil
}

func (e *Engine) roster(ctx context.Context, guildId string) ([]model.RoleMembers, error) {
	groups, err := e.directory.ListMembers(ctx, guildId)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, fmt.Errorf("%w: guild %s", ErrNotFound, guildId)
		}
		return nil, upstream("list members", err)
	}
	return groups, nil
}

func (e *Engine) requireReviewer(roster []model.RoleMembers, entityId string) error {
	if !e.restrictReview {
		return nil
	}

	role, ok := roleOf(roster, entityId)
	if !ok || !canReviewApplications(role) {
		return fmt.Errorf("%w: only a Master or SubMaster may review join requests", ErrAuthorization)
	}
	return nil
}

func (e *Engine) partialFailure(guildId string, step string, err error) {
	e.logger.Errorw("guild operation partially failed", "guildId", guildId, "step", step, "error", err)
}

func (e *Engine) notifyGuild(ctx context.Context, guildId string, changeType notifier.GuildChangeType) {
	if err := e.notif.GuildUpdate(ctx, guildId, changeType); err != nil {
		e.logger.Errorw("error sending guild update notification", "guildId", guildId, "error", err)
	}
}

func (e *Engine) notifyMember(ctx context.Context, guildId string, playerId string, changeType notifier.MemberChangeType) {
	if err := e.notif.MemberUpdate(ctx, guildId, playerId, changeType); err != nil {
		e.logger.Errorw("error sending member update notification", "guildId", guildId, "error", err)
	}
}

func (e *Engine) notifyRole(ctx context.Context, guildId string, playerId string, role Role) {
	if err := e.notif.RoleUpdate(ctx, guildId, playerId, string(role)); err != nil {
		e.logger.Errorw("error sending role update notification", "guildId", guildId, "error", err)
	}
}
