package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionValid(t *testing.T) {
	assert.True(t, PermManageUserGroup.Valid())
	assert.True(t, PermViewer3dAccess.Valid())
	assert.False(t, Permission("GENERAL_SOMETHING_ELSE").Valid())
	assert.False(t, Permission("").Valid())
}

func TestPermissionDomain(t *testing.T) {
	assert.Equal(t, AccessModuleGeneral, PermViewProjectLog.Domain())
	assert.Equal(t, AccessModuleViewer3d, PermViewer3dMarkup.Domain())
	assert.Equal(t, "", Permission("bogus").Domain())
}

func TestPermissionSetUnion(t *testing.T) {
	a := NewPermissionSet(PermManageMember, PermViewProjectLog)
	b := NewPermissionSet(PermViewProjectLog, PermViewAuditLog)

	merged := a.Union(b)

	assert.Len(t, merged, 3)
	assert.True(t, merged.Has(PermManageMember))
	assert.True(t, merged.Has(PermViewAuditLog))
}

func TestPermissionSetValuesSorted(t *testing.T) {
	s := NewPermissionSet(PermViewProjectLog, PermEditProjectSetting, PermManageMember)
	values := s.Values()

	assert.Len(t, values, 3)
	for i := 1; i < len(values); i++ {
		assert.True(t, values[i-1] < values[i])
	}
}
