package service

import (
	"context"
	"encoding/json"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"guild-service/internal/guild"
)

type guildService struct {
	logger *zap.SugaredLogger
	engine Engine
}

func NewGuildService(logger *zap.SugaredLogger, engine Engine) GuildServiceServer {
	return &guildService{
		logger: logger,
		engine: engine,
	}
}

func (s *guildService) CreateGuild(ctx context.Context, req *CreateGuildRequest) (*Response, error) {
	res, err := s.engine.CreateGuild(ctx, req.PlayerId, req.GuildName)
	if err != nil {
		return s.failure("CreateGuild", err), nil
	}
	return s.success("guild created", res)
}

func (s *guildService) RequestToJoin(ctx context.Context, req *RequestToJoinRequest) (*Response, error) {
	if err := s.engine.RequestToJoin(ctx, req.PlayerId, req.GuildId); err != nil {
		return s.failure("RequestToJoin", err), nil
	}
	return s.success("join request submitted", nil)
}

func (s *guildService) ListJoinRequests(ctx context.Context, req *PlayerRequest) (*Response, error) {
	apps, err := s.engine.ListJoinRequests(ctx, req.PlayerId)
	if err != nil {
		return s.failure("ListJoinRequests", err), nil
	}
	return s.success("join requests listed", apps)
}

func (s *guildService) ApproveJoinRequest(ctx context.Context, req *ReviewRequest) (*Response, error) {
	if err := s.engine.ApproveJoinRequest(ctx, req.ApproverId, req.ApplicantId); err != nil {
		return s.failure("ApproveJoinRequest", err), nil
	}
	return s.success("join request approved", nil)
}

func (s *guildService) DeclineJoinRequest(ctx context.Context, req *ReviewRequest) (*Response, error) {
	if err := s.engine.DeclineJoinRequest(ctx, req.ApproverId, req.ApplicantId); err != nil {
		return s.failure("DeclineJoinRequest", err), nil
	}
	return s.success("join request declined", nil)
}

func (s *guildService) ChangeGuildRole(ctx context.Context, req *ChangeRoleRequest) (*Response, error) {
	role, err := guild.ParseRole(req.NewRole)
	if err != nil {
		return s.failure("ChangeGuildRole", err), nil
	}

	if err := s.engine.ChangeGuildRole(ctx, req.RequestorId, req.TargetId, role); err != nil {
		return s.failure("ChangeGuildRole", err), nil
	}
	return s.success("role changed", nil)
}

func (s *guildService) BanGuildMember(ctx context.Context, req *BanRequest) (*Response, error) {
	if err := s.engine.BanGuildMember(ctx, req.RequestorId, req.TargetId); err != nil {
		return s.failure("BanGuildMember", err), nil
	}
	return s.success("member banned", nil)
}

func (s *guildService) LeaveGuild(ctx context.Context, req *PlayerRequest) (*Response, error) {
	if err := s.engine.LeaveGuild(ctx, req.PlayerId); err != nil {
		return s.failure("LeaveGuild", err), nil
	}
	return s.success("left guild", nil)
}

func (s *guildService) RecordAttendance(ctx context.Context, req *PlayerRequest) (*Response, error) {
	res, err := s.engine.RecordAttendance(ctx, req.PlayerId)
	if err != nil {
		return s.failure("RecordAttendance", err), nil
	}
	return s.success("attendance recorded", res)
}

func (s *guildService) UpdateGuildNotice(ctx context.Context, req *UpdateNoticeRequest) (*Response, error) {
	if err := s.engine.UpdateGuildNotice(ctx, req.PlayerId, req.Notice); err != nil {
		return s.failure("UpdateGuildNotice", err), nil
	}
	return s.success("notice updated", nil)
}

func (s *guildService) SearchGuilds(ctx context.Context, req *SearchRequest) (*Response, error) {
	results, err := s.engine.SearchGuilds(ctx, req.Query)
	if err != nil {
		return s.failure("SearchGuilds", err), nil
	}
	return s.success("guilds found", results)
}

func (s *guildService) GetGuild(ctx context.Context, req *PlayerRequest) (*Response, error) {
	details, err := s.engine.GetGuild(ctx, req.PlayerId)
	if err != nil {
		return s.failure("GetGuild", err), nil
	}
	return s.success("guild found", details)
}

func (s *guildService) success(message string, payload any) (*Response, error) {
	res := &Response{Success: true, Message: message}
	if payload == nil {
		return res, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Errorw("failed to encode response payload", "error", err)
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	res.Payload = data
	return res, nil
}

// failure reports a business outcome. Only upstream failures are logged as errors; the rest are the
// caller's fault.
func (s *guildService) failure(method string, err error) *Response {
	errType := guild.ErrorTypeOf(err)
	if errType == guild.ErrorTypeUpstream {
		s.logger.Errorw("guild operation failed", "method", method, "error", err)
	} else {
		s.logger.Debugw("guild operation rejected", "method", method, "errorType", errType, "error", err)
	}

	return &Response{Message: err.Error(), ErrorType: string(errType)}
}
