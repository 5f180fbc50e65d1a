// Package view derives permission-scoped projections from entity collections.
// The filter functions are pure: given an actor, a collection and the filter
// inputs they return the matching items with their enabled action sets. All
// three listing views go through this package instead of filtering inline.
package view

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"helpdesk/internal/domain/permission"
	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/actor"
)

// StatusFilterAll matches every status.
const StatusFilterAll = "all"

// fold normalizes a string with Unicode case folding for comparison. A Caser
// is stateful and must not be shared across goroutines, so one is created per
// call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// RequestItem is one ticket row with the actions the actor may take on it.
type RequestItem struct {
	Request *request.Request
	Actions []permission.Action
}

// ResponseItem is one response row joined with its request and responder.
type ResponseItem struct {
	Response *response.Response
	Request  *request.Request
	User     *user.User
	Actions  []permission.Action
}

// UserItem is one user row with the actions the actor may take on it.
type UserItem struct {
	User    *user.User
	Actions []permission.Action
}

// FilterRequests projects a request collection for the actor. Search matches
// the request number (string form) and description, case-insensitively. The
// status filter is an exact match; StatusFilterAll or an empty value passes
// everything through. Ownership scoping is the repository's job; this
// function only computes visibility-independent matches and action sets.
func FilterRequests(a actor.Actor, requests []*request.Request, search, statusFilter string) []RequestItem {
	needle := fold(search)
	items := make([]RequestItem, 0, len(requests))

	for _, req := range requests {
		if !matchStatus(req.Status(), statusFilter) {
			continue
		}
		if needle != "" && !matchRequest(req, needle) {
			continue
		}
		items = append(items, RequestItem{
			Request: req,
			Actions: permission.RequestActions(a, req.UserID()),
		})
	}
	return items
}

// FilterResponses projects a response collection for the actor. Requests and
// users are companion collections for the joins; search matches the response
// text, the joined request number and the responder's email.
func FilterResponses(
	a actor.Actor,
	responses []*response.Response,
	requests []*request.Request,
	users []*user.User,
	search string,
) []ResponseItem {
	requestByID := make(map[uint]*request.Request, len(requests))
	for _, req := range requests {
		requestByID[req.ID()] = req
	}
	userByID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		userByID[u.ID()] = u
	}

	needle := fold(search)
	items := make([]ResponseItem, 0, len(responses))

	for _, resp := range responses {
		req := requestByID[resp.RequestID()]
		responder := userByID[resp.UserID()]

		if needle != "" && !matchResponse(resp, req, responder, needle) {
			continue
		}
		items = append(items, ResponseItem{
			Response: resp,
			Request:  req,
			User:     responder,
			Actions:  permission.ResponseActions(a, resp.UserID()),
		})
	}
	return items
}

// FilterUsers projects a user collection for the actor. Search matches the
// email address.
func FilterUsers(a actor.Actor, users []*user.User, search string) []UserItem {
	needle := fold(search)
	items := make([]UserItem, 0, len(users))

	for _, u := range users {
		if needle != "" && !contains(u.Email().String(), needle) {
			continue
		}
		items = append(items, UserItem{
			User:    u,
			Actions: permission.UserActions(a),
		})
	}
	return items
}

func matchStatus(status valueobjects.Status, filter string) bool {
	if filter == "" || filter == StatusFilterAll {
		return true
	}
	return status.String() == filter
}

func matchRequest(req *request.Request, needle string) bool {
	return contains(strconv.FormatUint(uint64(req.Number()), 10), needle) ||
		contains(req.Description(), needle)
}

func matchResponse(resp *response.Response, req *request.Request, responder *user.User, needle string) bool {
	if contains(resp.Text(), needle) {
		return true
	}
	if req != nil && contains(strconv.FormatUint(uint64(req.Number()), 10), needle) {
		return true
	}
	if responder != nil && contains(responder.Email().String(), needle) {
		return true
	}
	return false
}

// contains reports whether haystack contains the already-folded needle,
// comparing with Unicode case folding.
func contains(haystack, needle string) bool {
	return strings.Contains(fold(haystack), needle)
}
