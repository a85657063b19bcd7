package domain

import "github.com/google/uuid"

// Requester is the authenticated caller of an operation. Identity and group
// membership are established by the auth layer; the core only consumes them.
type Requester struct {
	UserID     uuid.UUID
	GroupID    *uuid.UUID
	GroupAdmin bool
}

// HasGroup reports whether the requester belongs to a group.
func (r Requester) HasGroup() bool { return r.GroupID != nil }

// QueryFilter is the storage predicate for resolving queries. Nil fields are
// not constrained. It is built only through the Scope* helpers so the
// visibility rule cannot drift between operations.
type QueryFilter struct {
	ID            *uuid.UUID
	UserID        *uuid.UUID
	GroupID       *uuid.UUID
	PublicOnly    bool
	ExcludeUserID *uuid.UUID
}

// ScopedQueryFilter resolves a single query id under the visibility rule:
// group admins see every query owned by a user in their group; regular users
// see only their own. A NotFound under this filter never distinguishes
// "doesn't exist" from "not visible".
func ScopedQueryFilter(req Requester, queryID uuid.UUID) QueryFilter {
	f := QueryFilter{ID: &queryID}
	if req.GroupAdmin && req.GroupID != nil {
		f.GroupID = req.GroupID
	} else {
		userID := req.UserID
		f.UserID = &userID
	}
	return f
}

// OwnQueriesFilter lists every query owned by the requester.
func OwnQueriesFilter(req Requester) QueryFilter {
	userID := req.UserID
	return QueryFilter{UserID: &userID}
}

// GroupQueriesFilter lists public queries of the requester's group peers,
// excluding the requester's own. Only valid when the requester has a group.
func GroupQueriesFilter(req Requester) QueryFilter {
	userID := req.UserID
	return QueryFilter{
		GroupID:       req.GroupID,
		PublicOnly:    true,
		ExcludeUserID: &userID,
	}
}
