package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"guild-service/internal/guild"
	"guild-service/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.MockEngine) {
	mockCntrl := gomock.NewController(t)
	mockEngine := service.NewMockEngine(mockCntrl)
	svc := service.NewGuildService(zap.NewNop().Sugar(), mockEngine)
	return NewRouter(zap.NewNop().Sugar(), svc), mockEngine
}

func post(t *testing.T, router *gin.Engine, path string, body string) *service.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res service.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return &res
}

func TestRouter_Routes(t *testing.T) {
	tests := map[string]struct {
		path   string
		body   string
		expect func(m *service.MockEngine)

		wantSuccess   bool
		wantErrorType string
		wantPayload   string
	}{
		"create": {
			path: "/v1/guild/create",
			body: `{"playerId":"player-a","guildName":"Alpha"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().CreateGuild(gomock.Any(), "player-a", "Alpha").
					Return(&guild.CreateResult{GuildId: "g1", GuildName: "Alpha"}, nil)
			},
			wantSuccess: true,
			wantPayload: `{"guildId":"g1","guildName":"Alpha"}`,
		},
		"join": {
			path: "/v1/guild/join-requests",
			body: `{"playerId":"player-c","guildId":"g1"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().RequestToJoin(gomock.Any(), "player-c", "g1").
					Return(fmt.Errorf("%w: already applied to guild g1", guild.ErrDuplicate))
			},
			wantErrorType: "DUPLICATE",
		},
		"list join requests": {
			path: "/v1/guild/join-requests/list",
			body: `{"playerId":"player-a"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().ListJoinRequests(gomock.Any(), "player-a").Return([]guild.Application{}, nil)
			},
			wantSuccess: true,
			wantPayload: `[]`,
		},
		"approve": {
			path: "/v1/guild/join-requests/approve",
			body: `{"approverId":"player-a","applicantId":"player-c"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().ApproveJoinRequest(gomock.Any(), "player-a", "player-c").Return(nil)
			},
			wantSuccess: true,
		},
		"decline": {
			path: "/v1/guild/join-requests/decline",
			body: `{"approverId":"player-a","applicantId":"player-c"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().DeclineJoinRequest(gomock.Any(), "player-a", "player-c").Return(nil)
			},
			wantSuccess: true,
		},
		"change role": {
			path: "/v1/guild/members/role",
			body: `{"requestorId":"player-a","targetId":"player-b","newRole":"Master"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().ChangeGuildRole(gomock.Any(), "player-a", "player-b", guild.RoleMaster).
					Return(fmt.Errorf("%w: demote previous master: timeout", guild.ErrUpstream))
			},
			wantErrorType: "UPSTREAM",
		},
		"ban": {
			path: "/v1/guild/members/ban",
			body: `{"requestorId":"player-b","targetId":"player-a"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().BanGuildMember(gomock.Any(), "player-b", "player-a").
					Return(fmt.Errorf("%w: a Member cannot ban a Master", guild.ErrAuthorization))
			},
			wantErrorType: "AUTHORIZATION",
		},
		"leave": {
			path: "/v1/guild/leave",
			body: `{"playerId":"player-b"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().LeaveGuild(gomock.Any(), "player-b").Return(nil)
			},
			wantSuccess: true,
		},
		"attendance": {
			path: "/v1/guild/attendance",
			body: `{"playerId":"player-a"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().RecordAttendance(gomock.Any(), "player-a").
					Return(&guild.AttendanceResult{DateKey: "2024-05-01", GuildId: "g1", BonusApplied: true, GuildExperience: 100}, nil)
			},
			wantSuccess: true,
			wantPayload: `{"dateKey":"2024-05-01","guildId":"g1","bonusApplied":true,"guildExperience":100}`,
		},
		"notice": {
			path: "/v1/guild/notice",
			body: `{"playerId":"player-a","notice":"Raid at 9"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().UpdateGuildNotice(gomock.Any(), "player-a", "Raid at 9").Return(nil)
			},
			wantSuccess: true,
		},
		"search": {
			path: "/v1/guild/search",
			body: `{"query":"anda"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().SearchGuilds(gomock.Any(), "anda").
					Return([]guild.SearchResult{{GuildId: "g1", Name: "PandaClan", MemberCount: 3}}, nil)
			},
			wantSuccess: true,
			wantPayload: `[{"guildId":"g1","name":"PandaClan","memberCount":3}]`,
		},
		"get": {
			path: "/v1/guild/get",
			body: `{"playerId":"player-c"}`,
			expect: func(m *service.MockEngine) {
				m.EXPECT().GetGuild(gomock.Any(), "player-c").
					Return(nil, fmt.Errorf("%w: player player-c is not in a guild", guild.ErrNotFound))
			},
			wantErrorType: "NOT_FOUND",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			router, mockEngine := newTestRouter(t)
			tc.expect(mockEngine)

			res := post(t, router, tc.path, tc.body)
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Equal(t, tc.wantErrorType, res.ErrorType)
			assert.NotEmpty(t, res.Message)
			if tc.wantPayload != "" {
				assert.JSONEq(t, tc.wantPayload, string(res.Payload))
			} else {
				assert.Empty(t, res.Payload)
			}
		})
	}
}

func TestRouter_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	res := post(t, router, "/v1/guild/create", `{"playerId":`)
	assert.False(t, res.Success)
	assert.Equal(t, "VALIDATION", res.ErrorType)
}

func TestHandle_TransportError(t *testing.T) {
	router := gin.New()
	router.POST("/fail", handle(func(context.Context, *service.PlayerRequest) (*service.Response, error) {
		return nil, errors.New("encoder exploded")
	}))

	res := post(t, router, "/fail", `{"playerId":"player-a"}`)
	assert.False(t, res.Success)
	assert.Equal(t, "UPSTREAM", res.ErrorType)
	assert.Equal(t, "internal error", res.Message)
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
