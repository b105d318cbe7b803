package repositories

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_Store_And_List_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	older := domain.NewNotification("carol", "bob", domain.KindMessage, "first", nil, at)
	newer := domain.NewNotification("carol", "dave", domain.KindLike, "second", nil, at.Add(time.Second))
	other := domain.NewNotification("erin", "bob", domain.KindMessage, "not yours", nil, at)

	req.NoError(repository.StoreNotifications(older, newer, other))

	listed, err := repository.ListNotifications("carol", 0)
	req.NoError(err)
	req.Equal([]domain.Notification{newer, older}, listed)

	listed, err = repository.ListNotifications("carol", 1)
	req.NoError(err)
	req.Equal([]domain.Notification{newer}, listed)

	empty, err := repository.ListNotifications("nobody", 0)
	req.NoError(err)
	req.Empty(empty)
}

func TestNotificationRepository_Get_And_Update(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	notification := domain.NewNotification("carol", "bob", domain.KindMessage, "hello", nil, at)
	req.NoError(repository.StoreNotifications(notification))

	fetched, err := repository.GetNotification(notification.ID)
	req.NoError(err)
	req.False(fetched.IsRead)

	fetched.MarkRead(at.Add(time.Minute))
	req.NoError(repository.UpdateNotification(fetched))

	fetched, err = repository.GetNotification(notification.ID)
	req.NoError(err)
	req.True(fetched.IsRead)
	req.NotNil(fetched.ReadAt)

	_, err = repository.GetNotification(uuid.New())
	req.ErrorIs(err, errors.ErrNotFound)
	req.ErrorIs(repository.UpdateNotification(domain.Notification{ID: uuid.New()}), errors.ErrNotFound)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	first := domain.NewNotification("carol", "bob", domain.KindMessage, "one", nil, at)
	second := domain.NewNotification("carol", "bob", domain.KindMessage, "two", nil, at.Add(time.Second))
	second.MarkRead(at)
	req.NoError(repository.StoreNotifications(first, second))

	changed, err := repository.MarkAllRead("carol", at.Add(time.Minute))
	req.NoError(err)
	req.Equal(1, changed)

	listed, err := repository.ListNotifications("carol", 0)
	req.NoError(err)
	for _, n := range listed {
		req.True(n.IsRead)
	}
}

func TestNotificationRepository_Delete(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	ref := &domain.Reference{ID: "forum-1", Model: domain.RefForum}
	kept := domain.NewNotification("carol", "bob", domain.KindMessage, "kept", nil, at)
	removed := domain.NewNotification("carol", "bob", domain.KindForumJoin, "removed", ref, at.Add(time.Second))
	req.NoError(repository.StoreNotifications(kept, removed))

	req.NoError(repository.DeleteNotification(removed.ID))
	req.ErrorIs(repository.DeleteNotification(removed.ID), errors.ErrNotFound)

	listed, err := repository.ListNotifications("carol", 0)
	req.NoError(err)
	req.Equal([]domain.Notification{kept}, listed)

	// Reference index was cleaned as well
	deleted, err := repository.DeleteByReference(*ref, "carol")
	req.NoError(err)
	req.Zero(deleted)

	deleted, err = repository.DeleteAllNotifications("carol")
	req.NoError(err)
	req.Equal(1, deleted)
	listed, err = repository.ListNotifications("carol", 0)
	req.NoError(err)
	req.Empty(listed)
}

func TestNotificationRepository_DeleteByReference_Cascade(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	forum := domain.Reference{ID: "forum-1", Model: domain.RefForum}
	otherForum := domain.Reference{ID: "forum-2", Model: domain.RefForum}
	req.NoError(repository.StoreNotifications(
		domain.NewNotification("carol", "bob", domain.KindForumJoin, "joined", &forum, at),
		domain.NewNotification("dave", "bob", domain.KindForumJoin, "joined", &forum, at),
		domain.NewNotification("dave", "bob", domain.KindForumJoin, "joined", &otherForum, at),
	))

	deleted, err := repository.DeleteByReference(forum, "bob")
	req.NoError(err)
	req.Equal(2, deleted)

	carol, err := repository.ListNotifications("carol", 0)
	req.NoError(err)
	req.Empty(carol)
	dave, err := repository.ListNotifications("dave", 0)
	req.NoError(err)
	req.Len(dave, 1)
	req.Equal(otherForum, *dave[0].Reference)
}

func TestNotificationRepository_DeleteByReference_Exact_Id_Only(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	forum := domain.Reference{ID: "1", Model: domain.RefForum}
	lookalike := domain.Reference{ID: "1:x", Model: domain.RefForum}
	kept := domain.NewNotification("carol", "bob", domain.KindForumPost, "other forum", &lookalike, at.Add(time.Second))
	req.NoError(repository.StoreNotifications(
		domain.NewNotification("carol", "bob", domain.KindForumPost, "forum", &forum, at),
		kept,
	))

	deleted, err := repository.DeleteByReference(forum, "carol")
	req.NoError(err)
	req.Equal(1, deleted)

	remaining, err := repository.ListNotifications("carol", 0)
	req.NoError(err)
	req.Equal([]domain.Notification{kept}, remaining)
}

func TestNotificationRepository_DeleteByReference_Scoped_To_Owner(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openDB(t), slog.Default())
	at := time.Now().UTC()
	forum := domain.Reference{ID: "forum-1", Model: domain.RefForum}
	req.NoError(repository.StoreNotifications(
		domain.NewNotification("carol", "bob", domain.KindForumPost, "posted", &forum, at),
		domain.NewNotification("dave", "erin", domain.KindForumPost, "posted", &forum, at),
	))

	// mallory neither sent nor received anything about the forum
	deleted, err := repository.DeleteByReference(forum, "mallory")
	req.NoError(err)
	req.Zero(deleted)

	// carol only removes her own copy
	deleted, err = repository.DeleteByReference(forum, "carol")
	req.NoError(err)
	req.Equal(1, deleted)
	dave, err := repository.ListNotifications("dave", 0)
	req.NoError(err)
	req.Len(dave, 1)

	deleted, err = repository.DeleteByReference(forum, "")
	req.NoError(err)
	req.Zero(deleted)
}
