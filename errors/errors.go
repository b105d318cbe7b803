package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrInvalidUserID    = fmt.Errorf("invalid user id")
	ErrNotFound         = fmt.Errorf("not found")
	ErrForbidden        = fmt.Errorf("forbidden")
	ErrUnauthorized     = fmt.Errorf("unauthorized")
	ErrInvalidCommand   = fmt.Errorf("invalid command")
	ErrEmptyMessage     = fmt.Errorf("message content or file is required")
	ErrSelfTarget       = fmt.Errorf("sender and receiver must differ")
	ErrBackpressure     = fmt.Errorf("connection send queue is full")
	ErrConnectionClosed = fmt.Errorf("connection is closed")
	ErrUnknownConn      = fmt.Errorf("unknown connection")
	ErrInvalidToken     = fmt.Errorf("invalid token")
	ErrAlreadyFriends   = fmt.Errorf("users are already friends")
	ErrDuplicateRequest = fmt.Errorf("friend request already pending")
	ErrNotFriends       = fmt.Errorf("users are not friends")
)

// HTTPStatus maps domain errors to the status code returned by the REST edge.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyFriends), errors.Is(err, ErrDuplicateRequest):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidCommand),
		errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrSelfTarget), errors.Is(err, ErrNotFriends):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
