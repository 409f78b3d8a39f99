package guild

import (
	"context"
	"errors"
	"fmt"
	"guild-service/internal/kafka/notifier"
	"guild-service/internal/repository"
	"time"
	"unicode/utf8"
)

const (
	attendanceBonus = 100
	dateKeyLayout   = "2006-01-02"
)

// Attendance days roll over at midnight UTC+9.
var guildZone = time.FixedZone("UTC+9", 9*60*60)

func dateKey(t time.Time) string {
	return t.In(guildZone).Format(dateKeyLayout)
}

type AttendanceResult struct {
	DateKey string `json:"dateKey"`
	GuildId string `json:"guildId,omitempty"`

	// BonusApplied reports whether the guild experience bonus was stored.
	BonusApplied    bool  `json:"bonusApplied"`
	GuildExperience int64 `json:"guildExperience,omitempty"`
}

// RecordAttendance checks the player in once per day. The guild experience bonus is best-effort and
// never fails a check-in that was recorded.
func (e *Engine) RecordAttendance(ctx context.Context, playerId string) (*AttendanceResult, error) {
	if err := validatePlayerId("player id", playerId); err != nil {
		return nil, err
	}

	today := dateKey(e.now())

	last, err := e.attendance.GetLastAttendance(ctx, playerId)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerId)
		}
		return nil, upstream("get last attendance", err)
	}
	if last == today {
		return nil, fmt.Errorf("%w: already checked in on %s", ErrDuplicate, today)
	}

	if err := e.attendance.RecordAttendance(ctx, playerId, today); err != nil {
		if errors.Is(err, repository.ErrAttendanceAlreadyRecorded) {
			return nil, fmt.Errorf("%w: already checked in on %s", ErrDuplicate, today)
		}
		return nil, upstream("record attendance", err)
	}

	result := &AttendanceResult{DateKey: today}

	_, guildId, err := e.resolveGuild(ctx, playerId)
	if err != nil {
		e.logger.Warnw("attendance recorded without guild bonus", "playerId", playerId, "error", err)
		return result, nil
	}
	if guildId == "" {
		return result, nil
	}
	result.GuildId = guildId

	info, err := updateObject(ctx, e, guildId, infoObject, newInfo, func(info *Info) error {
		info.Experience += attendanceBonus
		return nil
	})
	if err != nil {
		e.partialFailure(guildId, "attendance experience bonus", err)
		return result, nil
	}

	result.BonusApplied = true
	result.GuildExperience = info.Experience
	e.notifyGuild(ctx, guildId, notifier.GuildExpGained)
	return result, nil
}

// UpdateGuildNotice replaces the notice of the player's guild. Level and experience are preserved.
func (e *Engine) UpdateGuildNotice(ctx context.Context, playerId string, notice string) error {
	if err := validatePlayerId("player id", playerId); err != nil {
		return err
	}
	if utf8.RuneCountInString(notice) > maxNoticeLength {
		return fmt.Errorf("%w: notice exceeds %d characters", ErrValidation, maxNoticeLength)
	}

	_, guildId, err := e.requireGuild(ctx, playerId)
	if err != nil {
		return err
	}

	_, err = updateObject(ctx, e, guildId, infoObject, newInfo, func(info *Info) error {
		info.Notice = notice
		return nil
	})
	if err != nil {
		return err
	}

	e.notifyGuild(ctx, guildId, notifier.GuildNoticeUpdated)
	return nil
}
