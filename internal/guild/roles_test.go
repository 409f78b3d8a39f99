package guild

import (
	"github.com/stretchr/testify/assert"
	"guild-service/internal/repository/model"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Role
		wantErr bool
	}{
		"exact":      {input: "Master", want: RoleMaster},
		"lower case": {input: "submaster", want: RoleSubMaster},
		"padded":     {input: " MEMBER ", want: RoleMember},
		"unknown":    {input: "Officer", wantErr: true},
		"empty":      {input: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseRole(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRole_DirectoryId(t *testing.T) {
	assert.Equal(t, model.DefaultAdminRoleId, RoleMaster.DirectoryId())
	assert.Equal(t, subMasterRoleId, RoleSubMaster.DirectoryId())
	assert.Equal(t, model.DefaultMemberRoleId, RoleMember.DirectoryId())
	assert.Empty(t, Role("Officer").DirectoryId())
}

func TestCanBan(t *testing.T) {
	assert.True(t, canBan(RoleMaster, RoleSubMaster))
	assert.True(t, canBan(RoleMaster, RoleMember))
	assert.True(t, canBan(RoleSubMaster, RoleMember))

	assert.False(t, canBan(RoleMaster, RoleMaster))
	assert.False(t, canBan(RoleSubMaster, RoleMaster))
	assert.False(t, canBan(RoleSubMaster, RoleSubMaster))
	assert.False(t, canBan(RoleMember, RoleMaster))
	assert.False(t, canBan(RoleMember, RoleSubMaster))
	assert.False(t, canBan(RoleMember, RoleMember))
}

func TestRoleOf(t *testing.T) {
	roster := []model.RoleMembers{
		{RoleId: model.DefaultAdminRoleId, EntityIds: []string{"a"}},
		{RoleId: model.DefaultMemberRoleId, EntityIds: []string{"b", "c"}},
		{RoleId: subMasterRoleId, EntityIds: []string{"d"}},
		{RoleId: "unmapped", EntityIds: []string{"e"}},
	}

	role, ok := roleOf(roster, "c")
	assert.True(t, ok)
	assert.Equal(t, RoleMember, role)

	role, ok = roleOf(roster, "d")
	assert.True(t, ok)
	assert.Equal(t, RoleSubMaster, role)

	_, ok = roleOf(roster, "e")
	assert.False(t, ok)

	_, ok = roleOf(roster, "z")
	assert.False(t, ok)
}
