package guild

import (
	"context"
	"fmt"
	"guild-service/internal/kafka/notifier"
)

func noApplications() []Application {
	return make([]Application, 0)
}

// RequestToJoin appends an application to the target guild's queue. The applicant's name and power
// are captured now and not refreshed later.
func (e *Engine) RequestToJoin(ctx context.Context, playerId string, guildId string) error {
	if err := validatePlayerId("player id", playerId); err != nil {
		return err
	}
	if err := validateGuildId(guildId); err != nil {
		return err
	}

	entityId, err := e.resolveEntity(ctx, playerId)
	if err != nil {
		return err
	}

	groups, err := e.memberships(ctx, entityId)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if g == guildId {
			return fmt.Errorf("%w: already a member of guild %s", ErrDuplicate, guildId)
		}
	}
	if len(groups) > 0 {
		return fmt.Errorf("%w: already a member of guild %s", ErrDuplicate, groups[0])
	}

	if _, err := e.roster(ctx, guildId); err != nil {
		return err
	}

	displayName, err := e.identity.GetDisplayName(ctx, playerId)
	if err != nil {
		return upstream("get display name", err)
	}
	power, err := e.identity.GetPower(ctx, playerId)
	if err != nil {
		return upstream("get power", err)
	}

	application := Application{
		PlayerId:    playerId,
		EntityId:    entityId,
		DisplayName: displayName,
		Power:       power,
		AppliedAt:   e.now().UTC(),
	}

	_, err = updateObject(ctx, e, guildId, applicationsObject, noApplications, func(apps *[]Application) error {
		for _, a := range *apps {
			if a.PlayerId == playerId {
				return fmt.Errorf("%w: already applied to guild %s", ErrDuplicate, guildId)
			}
		}
		*apps = append(*apps, application)
		return nil
	})
	if err != nil {
		return err
	}

	e.notifyMember(ctx, guildId, playerId, notifier.MemberApplied)
	return nil
}

// ListJoinRequests returns the pending applications of the caller's guild, or nothing if the caller
// has no guild.
func (e *Engine) ListJoinRequests(ctx context.Context, playerId string) ([]Application, error) {
	if err := validatePlayerId("player id", playerId); err != nil {
		return nil, err
	}

	entityId, guildId, err := e.resolveGuild(ctx, playerId)
	if err != nil {
		return nil, err
	}
	if guildId == "" {
		return noApplications(), nil
	}

	if e.restrictReview {
		roster, err := e.roster(ctx, guildId)
		if err != nil {
			return nil, err
		}
		if err := e.requireReviewer(roster, entityId); err != nil {
			return nil, err
		}
	}

	apps := noApplications()
	if _, err := e.readObject(ctx, guildId, applicationsObject, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// ApproveJoinRequest adds the applicant as a Member and drops their application. A missing
// application is not an error, so approving twice is harmless.
func (e *Engine) ApproveJoinRequest(ctx context.Context, approverId string, applicantId string) error {
	guildId, applicantEntityId, err := e.reviewTarget(ctx, approverId, applicantId)
	if err != nil {
		return err
	}

	groups, err := e.memberships(ctx, applicantEntityId)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if g != guildId {
			return fmt.Errorf("%w: applicant already belongs to guild %s", ErrDuplicate, g)
		}
	}

	if err := e.directory.AddMembers(ctx, guildId, RoleMember.DirectoryId(), []string{applicantEntityId}); err != nil {
		return upstream("add member", err)
	}

	if err := e.dropApplication(ctx, guildId, applicantId); err != nil {
		// The applicant is a member now; the stale application is only bookkeeping.
		e.partialFailure(guildId, "remove approved application", err)
	}

	e.notifyMember(ctx, guildId, applicantId, notifier.MemberJoined)
	return nil
}

// DeclineJoinRequest drops the application without touching membership.
func (e *Engine) DeclineJoinRequest(ctx context.Context, approverId string, applicantId string) error {
	guildId, _, err := e.reviewTarget(ctx, approverId, applicantId)
	if err != nil {
		return err
	}

	if err := e.dropApplication(ctx, guildId, applicantId); err != nil {
		return err
	}

	e.notifyMember(ctx, guildId, applicantId, notifier.MemberDeclined)
	return nil
}

// reviewTarget resolves the reviewer's guild and the applicant's entity id, applying the review policy.
func (e *Engine) reviewTarget(ctx context.Context, approverId string, applicantId string) (string, string, error) {
	if err := validatePlayerId("approver id", approverId); err != nil {
		return "", "", err
	}
	if err := validatePlayerId("applicant id", applicantId); err != nil {
		return "", "", err
	}

	approverEntityId, guildId, err := e.requireGuild(ctx, approverId)
	if err != nil {
		return "", "", err
	}

	if e.restrictReview {
		roster, err := e.roster(ctx, guildId)
		if err != nil {
			return "", "", err
		}
		if err := e.requireReviewer(roster, approverEntityId); err != nil {
			return "", "", err
		}
	}

	applicantEntityId, err := e.resolveEntity(ctx, applicantId)
	if err != nil {
		return "", "", err
	}

	return guildId, applicantEntityId, nil
}

func (e *Engine) dropApplication(ctx context.Context, guildId string, applicantId string) error {
	_, err := updateObject(ctx, e, guildId, applicationsObject, noApplications, func(apps *[]Application) error {
		remaining, found := removeApplication(*apps, applicantId)
		if !found {
			return errNoChange
		}
		*apps = remaining
		return nil
	})
	return err
}
