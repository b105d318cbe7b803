// Package domain contains core concepts of the presence system.
// This file defines Notification records, their kinds and reference models.
package domain

import (
	"chat-presence/errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindMessage       NotificationKind = "message"
	KindFriendRequest NotificationKind = "friend_request"
	KindFriendAccept  NotificationKind = "friend_accept"
	KindForumPost     NotificationKind = "forum_post"
	KindForumComment  NotificationKind = "forum_comment"
	KindLike          NotificationKind = "like"
	KindMention       NotificationKind = "mention"
	KindForumJoin     NotificationKind = "forum_join"
	KindForumLeave    NotificationKind = "forum_leave"
)

var notificationKinds = map[NotificationKind]struct{}{
	KindMessage: {}, KindFriendRequest: {}, KindFriendAccept: {}, KindForumPost: {},
	KindForumComment: {}, KindLike: {}, KindMention: {}, KindForumJoin: {}, KindForumLeave: {},
}

func (k NotificationKind) Valid() bool {
	_, ok := notificationKinds[k]
	return ok
}

// RefModel names the kind of entity a notification points to.
type RefModel string

const (
	RefMessage RefModel = "Message"
	RefPost    RefModel = "Post"
	RefForum   RefModel = "Forum"
	RefComment RefModel = "Comment"
)

func (r RefModel) Valid() bool {
	switch r {
	case RefMessage, RefPost, RefForum, RefComment:
		return true
	}
	return false
}

// Reference is the optional polymorphic pointer to the originating entity.
type Reference struct {
	ID    string   `json:"referenceId"`
	Model RefModel `json:"refModel"`
}

// ParseReference validates a reference coming from the outside world.
// Like user ids, reference ids end up in storage keys, so colons and slashes are rejected.
func ParseReference(model, rawID string) (Reference, error) {
	ref := Reference{ID: strings.TrimSpace(rawID), Model: RefModel(model)}
	if !ref.Model.Valid() {
		return Reference{}, fmt.Errorf("%w: unknown reference model %q", errors.ErrInvalidCommand, model)
	}
	if err := validate.Var(ref.ID, "required,printascii,max=128"); err != nil || strings.ContainsAny(ref.ID, " :/") {
		return Reference{}, fmt.Errorf("%w: malformed reference id %q", errors.ErrInvalidCommand, rawID)
	}
	return ref, nil
}

// Notification is the durable record of a noteworthy event directed at Recipient.
// It exists independently of whether real-time delivery succeeded.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Recipient UserID           `json:"user"`
	Sender    UserID           `json:"sender"`
	Kind      NotificationKind `json:"type"`
	Text      string           `json:"message"`
	Reference *Reference       `json:"reference,omitempty"`
	IsRead    bool             `json:"isRead"`
	ReadAt    *time.Time       `json:"readAt"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NewNotification builds an unread record stamped at now.
func NewNotification(recipient, sender UserID, kind NotificationKind, text string, ref *Reference, now time.Time) Notification {
	return Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Sender:    sender,
		Kind:      kind,
		Text:      text,
		Reference: ref,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PointsAt reports whether the notification references exactly ref.
func (n Notification) PointsAt(ref Reference) bool {
	return n.Reference != nil && *n.Reference == ref
}

// Involves reports whether userID sent or received the notification.
func (n Notification) Involves(userID UserID) bool {
	return userID != "" && (n.Recipient == userID || n.Sender == userID)
}

// MarkRead is idempotent: an already read notification keeps its first ReadAt.
func (n *Notification) MarkRead(now time.Time) {
	if n.IsRead {
		return
	}
	n.IsRead = true
	n.ReadAt = &now
	n.UpdatedAt = now
}
