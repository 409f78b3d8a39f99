package guild

import (
	"context"
	"fmt"
	"guild-service/internal/kafka/notifier"
)

// ChangeGuildRole lets the Master move another member between roles. Promoting someone to Master
// demotes the requestor to Member; if that demotion fails the promotion is reverted so the guild
// keeps a single Master.
func (e *Engine) ChangeGuildRole(ctx context.Context, requestorId string, targetId string, newRole Role) error {
	if err := validatePlayerId("requestor id", requestorId); err != nil {
		return err
	}
	if err := validatePlayerId("target id", targetId); err != nil {
		return err
	}
	if newRole.DirectoryId() == "" {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, newRole)
	}
	if requestorId == targetId {
		return fmt.Errorf("%w: cannot change your own role", ErrValidation)
	}

	requestorEntityId, guildId, err := e.requireGuild(ctx, requestorId)
	if err != nil {
		return err
	}
	targetEntityId, err := e.resolveEntity(ctx, targetId)
	if err != nil {
		return err
	}

	roster, err := e.roster(ctx, guildId)
	if err != nil {
		return err
	}

	if role, ok := roleOf(roster, requestorEntityId); !ok || role != RoleMaster {
		return fmt.Errorf("%w: only the Master may change roles", ErrAuthorization)
	}
	originRole, ok := roleOf(roster, targetEntityId)
	if !ok {
		return fmt.Errorf("%w: player %s is not in this guild", ErrNotFound, targetId)
	}
	if originRole == newRole {
		return nil
	}

	err = e.directory.ChangeRole(ctx, guildId, originRole.DirectoryId(), newRole.DirectoryId(), []string{targetEntityId})
	if err != nil {
		return upstream("change role", err)
	}

	if newRole == RoleMaster {
		err := e.directory.ChangeRole(ctx, guildId, RoleMaster.DirectoryId(), RoleMember.DirectoryId(), []string{requestorEntityId})
		if err != nil {
			e.compensatePromotion(ctx, guildId, targetEntityId, originRole)
			return upstream("demote previous master", err)
		}
		e.notifyRole(ctx, guildId, requestorId, RoleMember)
	}

	e.notifyRole(ctx, guildId, targetId, newRole)
	return nil
}

func (e *Engine) compensatePromotion(ctx context.Context, guildId string, targetEntityId string, originRole Role) {
	err := e.directory.ChangeRole(ctx, guildId, RoleMaster.DirectoryId(), originRole.DirectoryId(), []string{targetEntityId})
	if err != nil {
		// Both players now hold Master.
		e.partialFailure(guildId, "revert promotion to "+string(RoleMaster), err)
	}
}

// BanGuildMember removes a lower-ranked member from the requestor's guild.
func (e *Engine) BanGuildMember(ctx context.Context, requestorId string, targetId string) error {
	if err := validatePlayerId("requestor id", requestorId); err != nil {
		return err
	}
	if err := validatePlayerId("target id", targetId); err != nil {
		return err
	}

	requestorEntityId, guildId, err := e.requireGuild(ctx, requestorId)
	if err != nil {
		return err
	}
	targetEntityId, err := e.resolveEntity(ctx, targetId)
	if err != nil {
		return err
	}

	roster, err := e.roster(ctx, guildId)
	if err != nil {
		return err
	}

	requestorRole, ok := roleOf(roster, requestorEntityId)
	if !ok {
		return fmt.Errorf("%w: requestor has no role in guild %s", ErrAuthorization, guildId)
	}
	targetRole, ok := roleOf(roster, targetEntityId)
	if !ok {
		return fmt.Errorf("%w: player %s is not in this guild", ErrNotFound, targetId)
	}

	if !canBan(requestorRole, targetRole) {
		return fmt.Errorf("%w: a %s cannot ban a %s", ErrAuthorization, requestorRole, targetRole)
	}

	if err := e.directory.RemoveMembers(ctx, guildId, []string{targetEntityId}); err != nil {
		return upstream("remove member", err)
	}

	e.notifyMember(ctx, guildId, targetId, notifier.MemberBanned)
	return nil
}
