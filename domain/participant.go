// Package domain contains core concepts of the presence system.
// This file defines participant identities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"chat-presence/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxUserIDLength = 64

var validate = validator.New()

// UserID is the stable identifier of a registered account.
type UserID string

// ConnectionID is an opaque, transport-assigned token for one live connection.
// It is created on connect and never reused.
type ConnectionID string

func (u UserID) String() string { return string(u) }

func (c ConnectionID) String() string { return string(c) }

// ParseUserID trims and validates an identity coming from the outside world.
// Colons and slashes are rejected because ids are embedded in storage keys and URLs.
func ParseUserID(raw string) (UserID, error) {
	id := strings.TrimSpace(raw)
	if err := validate.Var(id, "required,printascii"); err != nil {
		return "", errors.ErrInvalidUserID
	}
	if len(id) > maxUserIDLength || strings.ContainsAny(id, " :/") {
		return "", errors.ErrInvalidUserID
	}
	return UserID(id), nil
}
