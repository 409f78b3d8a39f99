package service

import "encoding/json"

// Response is returned by every guild method. Business failures are reported through Success and
// ErrorType, never as transport errors.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorType string `json:"errorType,omitempty"`

	Payload json.RawMessage `json:"payload,omitempty"`
}

type CreateGuildRequest struct {
	PlayerId  string `json:"playerId"`
	GuildName string `json:"guildName"`
}

type RequestToJoinRequest struct {
	PlayerId string `json:"playerId"`
	GuildId  string `json:"guildId"`
}

// PlayerRequest is used by the operations that only need the calling player.
type PlayerRequest struct {
	PlayerId string `json:"playerId"`
}

type ReviewRequest struct {
	ApproverId  string `json:"approverId"`
	ApplicantId string `json:"applicantId"`
}

type ChangeRoleRequest struct {
	RequestorId string `json:"requestorId"`
	TargetId    string `json:"targetId"`
	NewRole     string `json:"newRole"`
}

type BanRequest struct {
	RequestorId string `json:"requestorId"`
	TargetId    string `json:"targetId"`
}

type UpdateNoticeRequest struct {
	PlayerId string `json:"playerId"`
	Notice   string `json:"notice"`
}

type SearchRequest struct {
	Query string `json:"query"`
}
