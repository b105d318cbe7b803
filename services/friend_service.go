package services

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/repositories"
	"context"
	"fmt"
	"log/slog"
)

type IFriendService interface {
	SendRequest(ctx context.Context, from, to domain.UserID) error
	HandleRequest(ctx context.Context, userID, from domain.UserID, accept bool) error
	RemoveFriend(ctx context.Context, userID, friendID domain.UserID) error
	ListFriends(ctx context.Context, userID domain.UserID) ([]domain.UserID, error)
}

// FriendService maintains friendships, which also gate ad hoc notification relays.
type FriendService struct {
	repository    repositories.IFriendRepository
	notifications INotificationService
	log           *slog.Logger
}

func NewFriendService(log *slog.Logger, repository repositories.IFriendRepository, notifications INotificationService) *FriendService {
	return &FriendService{repository: repository, notifications: notifications, log: log}
}

func (s *FriendService) SendRequest(ctx context.Context, from, to domain.UserID) error {
	if from == to {
		return errors.ErrSelfTarget
	}
	if err := s.repository.AddRequest(from, to); err != nil {
		return err
	}
	s.notify(ctx, from, to, domain.KindFriendRequest, fmt.Sprintf("%s sent you a friend request.", from))
	return nil
}

// HandleRequest accepts or rejects the pending request sent by from to userID.
func (s *FriendService) HandleRequest(ctx context.Context, userID, from domain.UserID, accept bool) error {
	pending, err := s.repository.HasRequest(from, userID)
	if err != nil {
		return err
	}
	if !pending {
		return fmt.Errorf("no pending friend request from %s: %w", from, errors.ErrNotFound)
	}
	if accept {
		if err = s.repository.AddFriendship(userID, from); err != nil {
			return err
		}
	}
	if err = s.repository.RemoveRequest(from, userID); err != nil {
		return err
	}
	if accept {
		s.notify(ctx, userID, from, domain.KindFriendAccept, fmt.Sprintf("%s accepted your friend request.", userID))
	}
	return nil
}

func (s *FriendService) RemoveFriend(_ context.Context, userID, friendID domain.UserID) error {
	return s.repository.RemoveFriendship(userID, friendID)
}

func (s *FriendService) ListFriends(_ context.Context, userID domain.UserID) ([]domain.UserID, error) {
	return s.repository.ListFriends(userID)
}

// notify never fails the friendship change that triggered it.
func (s *FriendService) notify(ctx context.Context, actor, recipient domain.UserID, kind domain.NotificationKind, text string) {
	_, err := s.notifications.Notify(ctx, domain.NotifyCommand{
		ActorID:    actor,
		Recipients: []domain.UserID{recipient},
		Kind:       kind,
		Text:       text,
	})
	if err != nil {
		s.log.Error("Failed to record friend notification", "kind", kind, "recipient", recipient, "error", err)
	}
}
