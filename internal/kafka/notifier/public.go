package notifier

//go:generate mockgen -source=public.go -destination=mock_public.go -package=notifier

import "context"

type GuildChangeType string

const (
	GuildCreated       GuildChangeType = "CREATED"
	GuildNoticeUpdated GuildChangeType = "NOTICE_UPDATED"
	GuildExpGained     GuildChangeType = "EXPERIENCE_GAINED"
)

type MemberChangeType string

const (
	MemberApplied  MemberChangeType = "APPLIED"
	MemberDeclined MemberChangeType = "DECLINED"
	MemberJoined   MemberChangeType = "JOINED"
	MemberBanned   MemberChangeType = "BANNED"
	MemberLeft     MemberChangeType = "LEFT"
)

type Notifier interface {
	GuildUpdate(ctx context.Context, guildId string, changeType GuildChangeType) error
	MemberUpdate(ctx context.Context, guildId string, playerId string, changeType MemberChangeType) error
	RoleUpdate(ctx context.Context, guildId string, playerId string, role string) error
}
