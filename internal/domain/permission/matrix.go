// Package permission holds the role-to-action capability matrix. Every entry
// point that gates an operation consults Can; the matrix is never duplicated
// per view.
package permission

import "helpdesk/internal/shared/actor"

// Action enumerates every gated operation in the system.
type Action string

const (
	ActionCreateRequest  Action = "create_request"
	ActionViewRequest    Action = "view_request"
	ActionEditRequest    Action = "edit_request"
	ActionChangeStatus   Action = "change_status"
	ActionDeleteRequest  Action = "delete_request"
	ActionReply          Action = "reply"
	ActionEditResponse   Action = "edit_response"
	ActionDeleteResponse Action = "delete_response"
	ActionManageUsers    Action = "manage_users"
)

func (a Action) String() string {
	return string(a)
}

// Can reports whether the actor may perform action on a resource owned by
// ownerID. For request actions ownerID is the ticket owner; for response
// actions it is the responder; for user management it is ignored. The
// function is total: every (action, role) pair yields a boolean.
func Can(a actor.Actor, action Action, ownerID uint) bool {
	switch action {
	case ActionCreateRequest:
		// Clients file their own tickets; admins may file on behalf of
		// someone. Support staff do not open tickets.
		return a.Role.IsClient() || a.Role.IsAdmin()
	case ActionViewRequest:
		return a.Role.IsStaff() || a.Owns(ownerID)
	case ActionEditRequest:
		return a.Role.IsAdmin() || (a.Role.IsClient() && a.Owns(ownerID))
	case ActionChangeStatus:
		return a.Role.IsStaff()
	case ActionDeleteRequest:
		return a.Role.IsAdmin() || (a.Role.IsClient() && a.Owns(ownerID))
	case ActionReply:
		return a.Role.IsStaff() || (a.Role.IsClient() && a.Owns(ownerID))
	case ActionEditResponse, ActionDeleteResponse:
		// Staff manage their own responses; admins manage anyone's.
		return a.Role.IsAdmin() || (a.Role.IsSupport() && a.Owns(ownerID))
	case ActionManageUsers:
		return a.Role.IsAdmin()
	}
	return false
}

// RequestActions returns the enabled actions for one request item, in a
// stable order, for the given actor.
func RequestActions(a actor.Actor, ownerID uint) []Action {
	candidates := []Action{
		ActionViewRequest,
		ActionEditRequest,
		ActionChangeStatus,
		ActionReply,
		ActionDeleteRequest,
	}
	return enabled(a, candidates, ownerID)
}

// ResponseActions returns the enabled actions for one response item.
func ResponseActions(a actor.Actor, responderID uint) []Action {
	candidates := []Action{
		ActionEditResponse,
		ActionDeleteResponse,
	}
	return enabled(a, candidates, responderID)
}

// UserActions returns the enabled actions for one user record.
func UserActions(a actor.Actor) []Action {
	return enabled(a, []Action{ActionManageUsers}, 0)
}

func enabled(a actor.Actor, candidates []Action, ownerID uint) []Action {
	actions := make([]Action, 0, len(candidates))
	for _, action := range candidates {
		if Can(a, action, ownerID) {
			actions = append(actions, action)
		}
	}
	return actions
}
