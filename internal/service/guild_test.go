package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"guild-service/internal/guild"
	"testing"
)

func TestGuildService_CreateGuild(t *testing.T) {
	tests := map[string]struct {
		engineRes *guild.CreateResult
		engineErr error

		want *Response
	}{
		"success": {
			engineRes: &guild.CreateResult{GuildId: "g1", GuildName: "Alpha"},
			want: &Response{
				Success: true,
				Message: "guild created",
				Payload: []byte(`{"guildId":"g1","guildName":"Alpha"}`),
			},
		},
		"validation": {
			engineErr: fmt.Errorf("%w: guild name is required", guild.ErrValidation),
			want: &Response{
				Message:   "invalid request: guild name is required",
				ErrorType: "VALIDATION",
			},
		},
		"already in a guild": {
			engineErr: fmt.Errorf("%w: already a member of guild g0", guild.ErrDuplicate),
			want: &Response{
				Message:   "duplicate: already a member of guild g0",
				ErrorType: "DUPLICATE",
			},
		},
		"unclassified engine error": {
			engineErr: errors.New("boom"),
			want: &Response{
				Message:   "boom",
				ErrorType: "UPSTREAM",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockCntrl := gomock.NewController(t)
			mockEngine := NewMockEngine(mockCntrl)
			svc := NewGuildService(zap.NewNop().Sugar(), mockEngine)

			mockEngine.EXPECT().CreateGuild(context.Background(), "player-a", "Alpha").Return(tc.engineRes, tc.engineErr)

			res, err := svc.CreateGuild(context.Background(), &CreateGuildRequest{PlayerId: "player-a", GuildName: "Alpha"})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestGuildService_ChangeGuildRole(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockEngine := NewMockEngine(mockCntrl)
	svc := NewGuildService(zap.NewNop().Sugar(), mockEngine)
	ctx := context.Background()

	mockEngine.EXPECT().ChangeGuildRole(ctx, "player-a", "player-b", guild.RoleSubMaster).Return(nil)

	res, err := svc.ChangeGuildRole(ctx, &ChangeRoleRequest{RequestorId: "player-a", TargetId: "player-b", NewRole: "submaster"})
	assert.NoError(t, err)
	assert.Equal(t, &Response{Success: true, Message: "role changed"}, res)

	// Unknown roles never reach the engine
	res, err = svc.ChangeGuildRole(ctx, &ChangeRoleRequest{RequestorId: "player-a", TargetId: "player-b", NewRole: "Officer"})
	assert.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "VALIDATION", res.ErrorType)

	mockEngine.EXPECT().ChangeGuildRole(ctx, "player-b", "player-a", guild.RoleMember).
		Return(fmt.Errorf("%w: only the Master may change roles", guild.ErrAuthorization))

	res, err = svc.ChangeGuildRole(ctx, &ChangeRoleRequest{RequestorId: "player-b", TargetId: "player-a", NewRole: "Member"})
	assert.NoError(t, err)
	assert.Equal(t, &Response{Message: "not authorized: only the Master may change roles", ErrorType: "AUTHORIZATION"}, res)
}

func TestGuildService_Payloads(t *testing.T) {
	mockCntrl := gomock.NewController(t)
	mockEngine := NewMockEngine(mockCntrl)
	svc := NewGuildService(zap.NewNop().Sugar(), mockEngine)
	ctx := context.Background()

	mockEngine.EXPECT().ListJoinRequests(ctx, "player-a").Return([]guild.Application{}, nil)
	res, err := svc.ListJoinRequests(ctx, &PlayerRequest{PlayerId: "player-a"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.JSONEq(t, `[]`, string(res.Payload))

	mockEngine.EXPECT().SearchGuilds(ctx, "anda").Return([]guild.SearchResult{{GuildId: "g1", Name: "PandaClan", MemberCount: 3}}, nil)
	res, err = svc.SearchGuilds(ctx, &SearchRequest{Query: "anda"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"guildId":"g1","name":"PandaClan","memberCount":3}]`, string(res.Payload))

	mockEngine.EXPECT().RecordAttendance(ctx, "player-a").Return(&guild.AttendanceResult{DateKey: "2024-05-01"}, nil)
	res, err = svc.RecordAttendance(ctx, &PlayerRequest{PlayerId: "player-a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dateKey":"2024-05-01","bonusApplied":false}`, string(res.Payload))

	mockEngine.EXPECT().GetGuild(ctx, "player-c").Return(nil, fmt.Errorf("%w: player player-c is not in a guild", guild.ErrNotFound))
	res, err = svc.GetGuild(ctx, &PlayerRequest{PlayerId: "player-c"})
	require.NoError(t, err)
	assert.Equal(t, "NOT_FOUND", res.ErrorType)
	assert.Nil(t, res.Payload)
}

func TestGuildService_NoPayloadOperations(t *testing.T) {
	upstreamErr := fmt.Errorf("%w: remove member: timeout", guild.ErrUpstream)

	tests := map[string]struct {
		expect func(m *MockEngine)
		call   func(svc GuildServiceServer) (*Response, error)

		wantMessage   string
		wantErrorType string
	}{
		"request to join": {
			expect: func(m *MockEngine) {
				m.EXPECT().RequestToJoin(gomock.Any(), "player-c", "g1").Return(nil)
			},
			call: func(svc GuildServiceServer) (*Response, error) {
				return svc.RequestToJoin(context.Background(), &RequestToJoinRequest{PlayerId: "player-c", GuildId: "g1"})
			},
			wantMessage: "join request submitted",
		},
		"approve": {
			expect: func(m *MockEngine) {
				m.EXPECT().ApproveJoinRequest(gomock.Any(), "player-a", "player-c").Return(nil)
			},
			call: func(svc GuildServiceServer) (*Response, error) {
				return svc.ApproveJoinRequest(context.Background(), &ReviewRequest{ApproverId: "player-a", ApplicantId: "player-c"})
			},
			wantMessage: "join request approved",
		},
		"decline": {
			expect: func(m *MockEngine) {
				m.EXPECT().DeclineJoinRequest(gomock.Any(), "player-a", "player-c").Return(nil)
			},
			call: func(svc GuildServiceServer) (*Response, error) {
				return svc.DeclineJoinRequest(context.Background(), &ReviewRequest{ApproverId: "player-a", ApplicantId: "player-c"})
			},
			wantMessage: "join request declined",
		},
		"ban upstream failure": {
			expect: func(m *MockEngine) {
				m.EXPECT().BanGuildMember(gomock.Any(), "player-a", "player-b").Return(upstreamErr)
			},
			call: func(svc GuildServiceServer) (*Response, error) {
				return svc.BanGuildMember(context.Background(), &BanRequest{RequestorId: "player-a", TargetId: "player-b"})
			},
			wantMessage:   upstreamErr.Error(),
			wantErrorType: "UPSTREAM",
		},
		"leave": {
			expect: func(m *MockEngine) {
				m.EXPECT().LeaveGuild(gomock.Any(), "player-b").Return(nil)
			},
			call: func(svc GuildServiceServer) (*Response, error) {
				return svc.LeaveGuild(context.Background(), &PlayerRequest{PlayerId: "player-b"})
			},
			wantMessage: "left guild",
		},
		"notice": {
			expect: func(m *MockEngine) {
				m.EXPECT().UpdateGuildNotice(gomock.Any(), "player-b", "Raid at 9").Return(nil)
			},
			call: func(svc GuildServiceServer) (*Response, error) {
				return svc.UpdateGuildNotice(context.Background(), &UpdateNoticeRequest{PlayerId: "player-b", Notice: "Raid at 9"})
			},
			wantMessage: "notice updated",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockCntrl := gomock.NewController(t)
			mockEngine := NewMockEngine(mockCntrl)
			svc := NewGuildService(zap.NewNop().Sugar(), mockEngine)
			tc.expect(mockEngine)

			res, err := tc.call(svc)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantErrorType == "", res.Success)
			assert.Equal(t, tc.wantMessage, res.Message)
			assert.Equal(t, tc.wantErrorType, res.ErrorType)
			assert.Nil(t, res.Payload)
		})
	}
}
