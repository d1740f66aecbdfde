package team

import (
	"errors"
	"net/http"
)

// Transition errors. Handlers translate these into HTTP responses with a
// machine-readable reason; anything not in this list is a server failure.
var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrNotOwner         = errors.New("only the team owner may perform this action")
	ErrNotAllowed       = errors.New("this action is not allowed on the target")
	ErrOwnerCannotLeave = errors.New("the owner cannot leave the team")
	ErrAlreadyRelated   = errors.New("user already has a relationship with this team")
	ErrTeamFull         = errors.New("team has reached its maximum size")
	ErrTeamClosed       = errors.New("team is not open for new requests")
	ErrTargetNotFound   = errors.New("target is not in the expected state")
	ErrValidation       = errors.New("invalid input")
)

// Reason returns the wire-level reason string for a transition error, or ""
// for unrecognized errors.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrTeamNotFound):
		return "team_not_found"
	case errors.Is(err, ErrNotOwner):
		return "not_owner"
	case errors.Is(err, ErrOwnerCannotLeave):
		return "owner_cannot_leave"
	case errors.Is(err, ErrNotAllowed):
		return "not_allowed"
	case errors.Is(err, ErrAlreadyRelated):
		return "already_related"
	case errors.Is(err, ErrTeamFull):
		return "team_full"
	case errors.Is(err, ErrTeamClosed):
		return "team_closed"
	case errors.Is(err, ErrTargetNotFound):
		return "target_not_found"
	case errors.Is(err, ErrValidation):
		return "validation_failure"
	}
	return ""
}

// HTTPStatus maps a transition error to its response status. Unknown errors
// map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrTargetNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrNotAllowed), errors.Is(err, ErrOwnerCannotLeave):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyRelated), errors.Is(err, ErrTeamFull), errors.Is(err, ErrTeamClosed):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
