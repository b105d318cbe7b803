package domain

// Client to server events.
const (
	EventUserConnected    = "userConnected"
	EventSendNotification = "sendNotification"
)

// Server to client events.
const (
	EventUpdateOnlineUsers   = "updateOnlineUsers"
	EventReceiveNotification = "receiveNotification"
	EventReceiveMessage      = "receiveMessage"
	EventError               = "error"
)

// OutboundEvent is one named payload pushed to a connection.
type OutboundEvent struct {
	Name    string
	Payload any
}

func NewOutboundEvent(name string, payload any) OutboundEvent {
	return OutboundEvent{Name: name, Payload: payload}
}
