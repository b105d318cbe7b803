//go:generate go run go.uber.org/mock/mockgen -source=notification_service.go -destination=../mocks/mock_notification_service.go -package=mocks
package services

import (
	"chat-presence/contract"
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("chat-presence/services")

type INotificationService interface {
	Notify(ctx context.Context, cmd domain.NotifyCommand) ([]domain.Notification, error)
	Relay(ctx context.Context, senderID domain.UserID, cmd domain.RelayCommand) (int, error)
	List(ctx context.Context, userID domain.UserID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID domain.UserID, id uuid.UUID) (domain.Notification, error)
	MarkAllRead(ctx context.Context, userID domain.UserID) (int, error)
	Delete(ctx context.Context, userID domain.UserID, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID domain.UserID) (int, error)
	DeleteByReference(ctx context.Context, userID domain.UserID, ref domain.Reference) (int, error)
}

// NotificationService is the domain side of the fan-out: it persists first, then pushes.
// A push that reaches nobody is not an error, the record stays available
// through List for users who were offline.
type NotificationService struct {
	repository repositories.INotificationRepository
	router     contract.IRouter
	authorizer contract.Authorizer
	filter     contract.ContentFilter
	validate   *validator.Validate
	log        *slog.Logger
	now        func() time.Time
}

func NewNotificationService(
	log *slog.Logger,
	repository repositories.INotificationRepository,
	router contract.IRouter,
	authorizer contract.Authorizer,
) *NotificationService {
	return &NotificationService{
		repository: repository,
		router:     router,
		authorizer: authorizer,
		validate:   validator.New(),
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithFilter masks banned words in notification texts and relayed messages.
func (s *NotificationService) WithFilter(filter contract.ContentFilter) *NotificationService {
	s.filter = filter
	return s
}

// Notify stores one record per recipient, the actor excluded, then emits
// receiveNotification to each of them.
func (s *NotificationService) Notify(ctx context.Context, cmd domain.NotifyCommand) ([]domain.Notification, error) {
	_, span := tracer.Start(ctx, "notification.notify")
	defer span.End()
	span.SetAttributes(
		attribute.String("notification.kind", string(cmd.Kind)),
		attribute.Int("notification.recipients", len(cmd.Recipients)),
	)

	if err := s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	if !cmd.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown notification kind %q", errors.ErrInvalidCommand, cmd.Kind)
	}
	if cmd.Reference != nil {
		ref, err := domain.ParseReference(string(cmd.Reference.Model), cmd.Reference.ID)
		if err != nil {
			return nil, err
		}
		cmd.Reference = &ref
	}
	at := cmd.At
	if at.IsZero() {
		at = s.now()
	}

	recipients := lo.Without(lo.Uniq(cmd.Recipients), cmd.ActorID, "")
	if len(recipients) == 0 {
		return []domain.Notification{}, nil
	}
	text := s.clean(cmd.Text)
	notifications := lo.Map(recipients, func(recipient domain.UserID, _ int) domain.Notification {
		return domain.NewNotification(recipient, cmd.ActorID, cmd.Kind, text, cmd.Reference, at)
	})
	if err := s.repository.StoreNotifications(notifications...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store notifications")
		return nil, fmt.Errorf("store notifications: %w", err)
	}

	for _, notification := range notifications {
		delivered := s.router.EmitToUser(notification.Recipient, domain.EventReceiveNotification, notification)
		s.log.Debug("Notification emitted",
			"recipient", notification.Recipient,
			"kind", notification.Kind,
			"connections", delivered)
	}
	return notifications, nil
}

// Relay handles a client-initiated sendNotification. The caller must be identified
// and allowed to notify the receiver; the sender field is forced to the caller.
func (s *NotificationService) Relay(ctx context.Context, senderID domain.UserID, cmd domain.RelayCommand) (int, error) {
	_, span := tracer.Start(ctx, "notification.relay")
	defer span.End()

	if senderID == "" {
		return 0, errors.ErrUnauthorized
	}
	if err := s.validate.Struct(cmd); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	receiverID, err := domain.ParseUserID(cmd.ReceiverID)
	if err != nil {
		return 0, err
	}
	if receiverID == senderID {
		return 0, errors.ErrSelfTarget
	}
	allowed, err := s.authorizer.CanNotify(ctx, senderID, receiverID)
	if err != nil {
		return 0, fmt.Errorf("authorize relay: %w", err)
	}
	if !allowed {
		s.log.Warn("Relay refused", "sender", senderID, "receiver", receiverID)
		return 0, errors.ErrForbidden
	}

	payload := make(map[string]any, len(cmd.Notification)+1)
	for k, v := range cmd.Notification {
		payload[k] = v
	}
	if message, ok := payload["message"].(string); ok {
		payload["message"] = s.clean(message)
	}
	payload["sender"] = senderID
	return s.router.EmitToUser(receiverID, domain.EventReceiveNotification, payload), nil
}

func (s *NotificationService) List(_ context.Context, userID domain.UserID) ([]domain.Notification, error) {
	return s.repository.ListNotifications(userID, 0)
}

func (s *NotificationService) MarkRead(_ context.Context, userID domain.UserID, id uuid.UUID) (domain.Notification, error) {
	notification, err := s.owned(userID, id)
	if err != nil {
		return domain.Notification{}, err
	}
	notification.MarkRead(s.now())
	if err = s.repository.UpdateNotification(notification); err != nil {
		return domain.Notification{}, err
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(_ context.Context, userID domain.UserID) (int, error) {
	return s.repository.MarkAllRead(userID, s.now())
}

func (s *NotificationService) Delete(_ context.Context, userID domain.UserID, id uuid.UUID) error {
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.repository.DeleteNotification(id)
}

func (s *NotificationService) DeleteAll(_ context.Context, userID domain.UserID) (int, error) {
	return s.repository.DeleteAllNotifications(userID)
}

// DeleteByReference cascades the deletion of an entity to the notifications pointing at it.
// Only records the user sent or received are removed.
func (s *NotificationService) DeleteByReference(_ context.Context, userID domain.UserID, ref domain.Reference) (int, error) {
	return s.repository.DeleteByReference(ref, userID)
}

func (s *NotificationService) clean(text string) string {
	if s.filter == nil {
		return text
	}
	cleaned, changed := s.filter.Clean(text)
	if changed {
		s.log.Debug("Notification text censored")
	}
	return cleaned
}

// owned loads a notification and checks it belongs to userID.
func (s *NotificationService) owned(userID domain.UserID, id uuid.UUID) (domain.Notification, error) {
	notification, err := s.repository.GetNotification(id)
	if err != nil {
		return domain.Notification{}, err
	}
	if notification.Recipient != userID {
		return domain.Notification{}, errors.ErrForbidden
	}
	return notification, nil
}
