package domain

import "time"

// NotifyCommand is issued by a domain action that must inform one or more users.
// The actor is never notified about its own action.
type NotifyCommand struct {
	ActorID    UserID           `validate:"required"`
	Recipients []UserID         `validate:"required,min=1"`
	Kind       NotificationKind `validate:"required"`
	Text       string           `validate:"required,max=1000"`
	Reference  *Reference
	At         time.Time
}

// RelayCommand is the client-initiated sendNotification request.
// It is pushed in real time only and never persisted.
type RelayCommand struct {
	ReceiverID   string         `json:"receiverId" validate:"required"`
	Notification map[string]any `json:"notification" validate:"required"`
}

type SendMessageCommand struct {
	SenderID   UserID `validate:"required"`
	SenderName string
	ReceiverID UserID `validate:"required"`
	Content    string `validate:"max=4000"`
	FileURL    string `validate:"omitempty,url"`
	At         time.Time
}

// PresenceStats is a point-in-time view of the connection population.
type PresenceStats struct {
	OnlineUsers           int
	IdentifiedConnections int
	OpenConnections       int
}
