package services

import (
	"chat-presence/contract"
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IMessageService interface {
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.DirectMessage, error)
	Conversation(ctx context.Context, userID, peerID domain.UserID, limit int) ([]domain.DirectMessage, error)
}

type MessageService struct {
	repository    repositories.IMessageRepository
	notifications INotificationService
	router        contract.IRouter
	filter        contract.ContentFilter
	validate      *validator.Validate
	log           *slog.Logger
	now           func() time.Time
}

func NewMessageService(
	log *slog.Logger,
	repository repositories.IMessageRepository,
	notifications INotificationService,
	router contract.IRouter,
) *MessageService {
	return &MessageService{
		repository:    repository,
		notifications: notifications,
		router:        router,
		validate:      validator.New(),
		log:           log,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithFilter masks banned words in message contents before they are stored.
func (s *MessageService) WithFilter(filter contract.ContentFilter) *MessageService {
	s.filter = filter
	return s
}

// SendMessage stores the message and its notification, then pushes receiveMessage
// to every live connection of the receiver. The notification push is done by Notify.
func (s *MessageService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.DirectMessage, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.DirectMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	content := strings.TrimSpace(cmd.Content)
	if content == "" && cmd.FileURL == "" {
		return domain.DirectMessage{}, errors.ErrEmptyMessage
	}
	if cmd.SenderID == cmd.ReceiverID {
		return domain.DirectMessage{}, errors.ErrSelfTarget
	}
	if s.filter != nil && content != "" {
		if cleaned, changed := s.filter.Clean(content); changed {
			s.log.Info("Message censored", "sender", cmd.SenderID)
			content = cleaned
		}
	}
	at := cmd.At
	if at.IsZero() {
		at = s.now()
	}

	message := domain.DirectMessage{
		ID:        uuid.New(),
		Sender:    cmd.SenderID,
		Receiver:  cmd.ReceiverID,
		Content:   content,
		FileURL:   cmd.FileURL,
		CreatedAt: at,
	}
	if err := s.repository.StoreMessage(message); err != nil {
		return domain.DirectMessage{}, fmt.Errorf("store message: %w", err)
	}

	name := cmd.SenderName
	if name == "" {
		name = cmd.SenderID.String()
	}
	// The message is already committed: the notification follows it, even if it fails.
	_, err := s.notifications.Notify(ctx, domain.NotifyCommand{
		ActorID:    cmd.SenderID,
		Recipients: []domain.UserID{cmd.ReceiverID},
		Kind:       domain.KindMessage,
		Text:       fmt.Sprintf("New message from %s: \"%s...\"", name, message.Preview()),
		Reference:  &domain.Reference{ID: message.ID.String(), Model: domain.RefMessage},
		At:         at,
	})
	if err != nil {
		s.log.Error("Failed to record message notification", "message_id", message.ID, "error", err)
	}

	s.router.EmitToUser(cmd.ReceiverID, domain.EventReceiveMessage, message)
	return message, nil
}

func (s *MessageService) Conversation(_ context.Context, userID, peerID domain.UserID, limit int) ([]domain.DirectMessage, error) {
	return s.repository.GetConversation(userID, peerID, limit)
}
