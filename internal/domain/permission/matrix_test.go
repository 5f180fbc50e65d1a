package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/actor"
)

const ownerID = uint(42)

var (
	ownerClient = actor.Actor{ID: ownerID, Role: actor.RoleClient}
	otherClient = actor.Actor{ID: 7, Role: actor.RoleClient}
	support     = actor.Actor{ID: 100, Role: actor.RoleSupport}
	admin       = actor.Actor{ID: 1, Role: actor.RoleAdmin}
)

func TestCan_RequestActions(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		owner  bool
		other  bool
		supp   bool
		adm    bool
	}{
		{"create request", ActionCreateRequest, true, true, false, true},
		{"view request", ActionViewRequest, true, false, true, true},
		{"edit request", ActionEditRequest, true, false, false, true},
		{"change status", ActionChangeStatus, false, false, true, true},
		{"delete request", ActionDeleteRequest, true, false, false, true},
		{"reply", ActionReply, true, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.owner, Can(ownerClient, tt.action, ownerID), "owner client")
			assert.Equal(t, tt.other, Can(otherClient, tt.action, ownerID), "non-owner client")
			assert.Equal(t, tt.supp, Can(support, tt.action, ownerID), "support")
			assert.Equal(t, tt.adm, Can(admin, tt.action, ownerID), "admin")
		})
	}
}

func TestCan_ResponseActions(t *testing.T) {
	responderID := support.ID

	// Support staff manage only their own responses.
	assert.True(t, Can(support, ActionEditResponse, responderID))
	assert.True(t, Can(support, ActionDeleteResponse, responderID))
	assert.False(t, Can(support, ActionEditResponse, admin.ID))

	// Admins manage anyone's responses.
	assert.True(t, Can(admin, ActionEditResponse, responderID))
	assert.True(t, Can(admin, ActionDeleteResponse, responderID))

	// Clients never edit or delete responses, not even their own follow-ups.
	assert.False(t, Can(ownerClient, ActionEditResponse, ownerID))
	assert.False(t, Can(ownerClient, ActionDeleteResponse, ownerID))
}

func TestCan_ManageUsers(t *testing.T) {
	assert.True(t, Can(admin, ActionManageUsers, 0))
	assert.False(t, Can(support, ActionManageUsers, 0))
	assert.False(t, Can(ownerClient, ActionManageUsers, 0))
}

// The matrix must be total: any role and action combination returns a
// boolean without panicking, including unknown actions.
func TestCan_Total(t *testing.T) {
	actions := []Action{
		ActionCreateRequest, ActionViewRequest, ActionEditRequest,
		ActionChangeStatus, ActionDeleteRequest, ActionReply,
		ActionEditResponse, ActionDeleteResponse, ActionManageUsers,
		Action("unknown_action"),
	}
	actors := []actor.Actor{ownerClient, otherClient, support, admin, {}}

	for _, a := range actors {
		for _, action := range actions {
			assert.NotPanics(t, func() {
				_ = Can(a, action, ownerID)
			})
		}
	}

	// Unknown actions are denied for everyone.
	assert.False(t, Can(admin, Action("unknown_action"), ownerID))
}

func TestRequestActions_PerRole(t *testing.T) {
	assert.Equal(t,
		[]Action{ActionViewRequest, ActionEditRequest, ActionReply, ActionDeleteRequest},
		RequestActions(ownerClient, ownerID))

	assert.Empty(t, RequestActions(otherClient, ownerID))

	assert.Equal(t,
		[]Action{ActionViewRequest, ActionChangeStatus, ActionReply},
		RequestActions(support, ownerID))

	assert.Equal(t,
		[]Action{ActionViewRequest, ActionEditRequest, ActionChangeStatus, ActionReply, ActionDeleteRequest},
		RequestActions(admin, ownerID))
}

func TestRequestActions_Deterministic(t *testing.T) {
	first := RequestActions(support, ownerID)
	second := RequestActions(support, ownerID)
	assert.Equal(t, first, second)
}
