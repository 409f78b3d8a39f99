package repository

//go:generate mockgen -source=public.go -destination=mock_public.go -package=repository

import (
	"context"
	"guild-service/internal/repository/model"
)

// Directory is the system of record for groups, their roles and memberships.
type Directory interface {
	CreateGroup(ctx context.Context, name string) (string, error)
	AddMembers(ctx context.Context, groupId string, roleId string, entityIds []string) error
	RemoveMembers(ctx context.Context, groupId string, entityIds []string) error
	// ListMembership returns the ids of the groups the entity belongs to, oldest group first.
	ListMembership(ctx context.Context, entityId string) ([]string, error)
	ListMembers(ctx context.Context, groupId string) ([]model.RoleMembers, error)
	ChangeRole(ctx context.Context, groupId string, originRoleId string, destRoleId string, entityIds []string) error
	CreateRole(ctx context.Context, groupId string, roleId string, roleName string) error
	RenameRole(ctx context.Context, groupId string, roleId string, newName string) error
}

type IdentityResolver interface {
	ResolveEntity(ctx context.Context, playerId string) (string, error)
	GetDisplayName(ctx context.Context, playerId string) (string, error)
	GetPower(ctx context.Context, playerId string) (int64, error)
	GetPlayersByEntityIds(ctx context.Context, entityIds []string) ([]*model.Player, error)
}

type AttendanceRepository interface {
	// GetLastAttendance returns an empty string if the player never checked in.
	GetLastAttendance(ctx context.Context, playerId string) (string, error)
	// RecordAttendance fails with ErrAttendanceAlreadyRecorded if dateKey is already stored.
	RecordAttendance(ctx context.Context, playerId string, dateKey string) error
}

type Repository interface {
	Directory
	IdentityResolver
	AttendanceRepository
}
