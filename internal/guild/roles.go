package guild

import (
	"fmt"
	"guild-service/internal/repository/model"
	"strings"
)

type Role string

const (
	RoleMaster    Role = "Master"
	RoleSubMaster Role = "SubMaster"
	RoleMember    Role = "Member"
)

const subMasterRoleId = "submasters"

type roleEntry struct {
	role        Role
	directoryId string
	rank        int
}

// roleTable is the only place guild roles are mapped to directory roles.
// Master and Member reuse the directory's built-in roles; SubMaster is created with the guild.
var roleTable = []roleEntry{
	{role: RoleMaster, directoryId: model.DefaultAdminRoleId, rank: 3},
	{role: RoleSubMaster, directoryId: subMasterRoleId, rank: 2},
	{role: RoleMember, directoryId: model.DefaultMemberRoleId, rank: 1},
}

func ParseRole(s string) (Role, error) {
	for _, e := range roleTable {
		if strings.EqualFold(string(e.role), strings.TrimSpace(s)) {
			return e.role, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

func (r Role) entry() roleEntry {
	for _, e := range roleTable {
		if e.role == r {
			return e
		}
	}
	return roleEntry{}
}

func (r Role) DirectoryId() string {
	return r.entry().directoryId
}

func roleForDirectoryId(directoryId string) (Role, bool) {
	for _, e := range roleTable {
		if e.directoryId == directoryId {
			return e.role, true
		}
	}
	return "", false
}

// canBan: Masters may ban SubMasters and Members, SubMasters may ban Members, Members may ban nobody.
func canBan(requestor Role, target Role) bool {
	if requestor == RoleMember {
		return false
	}
	return requestor.entry().rank > target.entry().rank
}

func canReviewApplications(r Role) bool {
	return r == RoleMaster || r == RoleSubMaster
}

// roleOf scans every role group of the roster for the entity.
func roleOf(roster []model.RoleMembers, entityId string) (Role, bool) {
	for _, group := range roster {
		for _, id := range group.EntityIds {
			if id != entityId {
				continue
			}
			if role, ok := roleForDirectoryId(group.RoleId); ok {
				return role, true
			}
		}
	}
	return "", false
}
