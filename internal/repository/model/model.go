package model

import "time"

// Every group is created with these two roles. Callers may rename them but not remove them.
const (
	DefaultAdminRoleId  = "admins"
	DefaultMemberRoleId = "members"

	defaultAdminRoleName  = "Administrators"
	defaultMemberRoleName = "Members"
)

type Group struct {
	Id        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Roles     []Role    `bson:"roles"`
	Members   []Member  `bson:"members"`
	CreatedAt time.Time `bson:"createdAt"`
}

func NewGroup(id string, name string, createdAt time.Time) *Group {
	return &Group{
		Id:   id,
		Name: name,
		Roles: []Role{
			{Id: DefaultAdminRoleId, Name: defaultAdminRoleName},
			{Id: DefaultMemberRoleId, Name: defaultMemberRoleName},
		},
		Members:   make([]Member, 0),
		CreatedAt: createdAt,
	}
}

func (g *Group) HasRole(roleId string) bool {
	for _, r := range g.Roles {
		if r.Id == roleId {
			return true
		}
	}
	return false
}

func (g *Group) IsMember(entityId string) bool {
	for _, m := range g.Members {
		if m.EntityId == entityId {
			return true
		}
	}
	return false
}

// RoleMembers groups the members by role, in role order. Roles without members are included.
func (g *Group) RoleMembers() []RoleMembers {
	result := make([]RoleMembers, len(g.Roles))
	for i, r := range g.Roles {
		result[i] = RoleMembers{RoleId: r.Id, RoleName: r.Name, EntityIds: make([]string, 0)}
		for _, m := range g.Members {
			if m.RoleId == r.Id {
				result[i].EntityIds = append(result[i].EntityIds, m.EntityId)
			}
		}
	}
	return result
}

type Role struct {
	Id   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type Member struct {
	EntityId string `bson:"entityId" json:"entityId"`
	RoleId   string `bson:"roleId" json:"roleId"`
}

// RoleMembers is one role group of a group's roster.
type RoleMembers struct {
	RoleId    string   `json:"roleId"`
	RoleName  string   `json:"roleName"`
	EntityIds []string `json:"entityIds"`
}

// Player is owned by the account service. This service only reads the identity fields
// and maintains LastAttendance.
type Player struct {
	Id          string `bson:"_id" json:"id"`
	EntityId    string `bson:"entityId" json:"entityId"`
	DisplayName string `bson:"displayName" json:"displayName"`
	Power       int64  `bson:"power" json:"power"`

	// LastAttendance is the date key (yyyy-mm-dd, guild time zone) of the last check-in.
	LastAttendance string `bson:"lastAttendance,omitempty" json:"lastAttendance,omitempty"`
}
