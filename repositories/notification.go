//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
package repositories

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type INotificationRepository interface {
	StoreNotifications(notifications ...domain.Notification) error
	GetNotification(id uuid.UUID) (domain.Notification, error)
	ListNotifications(userID domain.UserID, limit int) ([]domain.Notification, error)
	UpdateNotification(notification domain.Notification) error
	MarkAllRead(userID domain.UserID, at time.Time) (int, error)
	DeleteNotification(id uuid.UUID) error
	DeleteAllNotifications(userID domain.UserID) (int, error)
	DeleteByReference(ref domain.Reference, owner domain.UserID) (int, error)
}

type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) NotificationRepository {
	return NotificationRepository{db: db, log: log}
}

// Primary key "notif:{user}:{timestamp_padded}:{uuid}" keeps a user's notifications
// sorted chronologically (19-digit zero padding) and unique per nanosecond.
// Two secondary indexes point back to it: by id and by referenced entity.
func notificationKey(n domain.Notification) []byte {
	return []byte(fmt.Sprintf("notif:%s:%019d:%s", n.Recipient, n.CreatedAt.UnixNano(), n.ID))
}

func notificationIDKey(id uuid.UUID) []byte {
	return []byte("notifid:" + id.String())
}

func referencePrefix(ref domain.Reference) []byte {
	return []byte(fmt.Sprintf("notifref:%s:%s:", ref.Model, ref.ID))
}

func referenceKey(n domain.Notification) []byte {
	return append(referencePrefix(*n.Reference), []byte(n.ID.String())...)
}

// StoreNotifications persists all records in a single transaction.
func (r NotificationRepository) StoreNotifications(notifications ...domain.Notification) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, n := range notifications {
			if err := setNotification(txn, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func setNotification(txn *badger.Txn, n domain.Notification) error {
	bytes, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", n.ID, err)
	}
	key := notificationKey(n)
	if err = txn.Set(key, bytes); err != nil {
		return err
	}
	if err = txn.Set(notificationIDKey(n.ID), key); err != nil {
		return err
	}
	if n.Reference != nil {
		return txn.Set(referenceKey(n), key)
	}
	return nil
}

func (r NotificationRepository) GetNotification(id uuid.UUID) (domain.Notification, error) {
	var notification domain.Notification
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		notification, _, err = getByID(txn, id)
		return err
	})
	return notification, err
}

func getByID(txn *badger.Txn, id uuid.UUID) (domain.Notification, []byte, error) {
	item, err := txn.Get(notificationIDKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Notification{}, nil, errors.ErrNotFound
	}
	if err != nil {
		return domain.Notification{}, nil, err
	}
	primary, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Notification{}, nil, err
	}
	notification, err := getByKey(txn, primary)
	return notification, primary, err
}

func getByKey(txn *badger.Txn, key []byte) (domain.Notification, error) {
	var notification domain.Notification
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return notification, errors.ErrNotFound
	}
	if err != nil {
		return notification, err
	}
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &notification)
	})
	return notification, err
}

// ListNotifications returns the user's notifications, newest first.
// A limit <= 0 returns everything.
func (r NotificationRepository) ListNotifications(userID domain.UserID, limit int) ([]domain.Notification, error) {
	notifications := make([]domain.Notification, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("notif:%s:", userID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Highest possible timestamp for this prefix, then walk backwards
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(notifications) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d notifications reached", limit))
				break
			}
			var notification domain.Notification
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &notification)
			})
			if err != nil {
				return err
			}
			notifications = append(notifications, notification)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// UpdateNotification rewrites an existing record in place.
func (r NotificationRepository) UpdateNotification(notification domain.Notification) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, _, err := getByID(txn, notification.ID); err != nil {
			return err
		}
		return setNotification(txn, notification)
	})
}

// MarkAllRead flags every unread notification of the user and returns how many changed.
func (r NotificationRepository) MarkAllRead(userID domain.UserID, at time.Time) (int, error) {
	notifications, err := r.ListNotifications(userID, 0)
	if err != nil {
		return 0, err
	}
	changed := 0
	err = r.db.Update(func(txn *badger.Txn) error {
		for _, n := range notifications {
			if n.IsRead {
				continue
			}
			n.MarkRead(at)
			if err := setNotification(txn, n); err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

func (r NotificationRepository) DeleteNotification(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		notification, primary, err := getByID(txn, id)
		if err != nil {
			return err
		}
		return deleteNotification(txn, notification, primary)
	})
}

func deleteNotification(txn *badger.Txn, n domain.Notification, primary []byte) error {
	if err := txn.Delete(primary); err != nil {
		return err
	}
	if err := txn.Delete(notificationIDKey(n.ID)); err != nil {
		return err
	}
	if n.Reference != nil {
		return txn.Delete(referenceKey(n))
	}
	return nil
}

func (r NotificationRepository) DeleteAllNotifications(userID domain.UserID) (int, error) {
	notifications, err := r.ListNotifications(userID, 0)
	if err != nil {
		return 0, err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		for _, n := range notifications {
			if err := deleteNotification(txn, n, notificationKey(n)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(notifications), nil
}

// DeleteByReference removes the notifications pointing at the entity that owner
// either sent or received, used when a forum is deleted.
func (r NotificationRepository) DeleteByReference(ref domain.Reference, owner domain.UserID) (int, error) {
	var primaries [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := referencePrefix(ref)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			primary, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			primaries = append(primaries, primary)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	deleted := 0
	err = r.db.Update(func(txn *badger.Txn) error {
		for _, primary := range primaries {
			notification, err := getByKey(txn, primary)
			if stderrors.Is(err, errors.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if !notification.PointsAt(ref) || !notification.Involves(owner) {
				continue
			}
			if err = deleteNotification(txn, notification, primary); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	return deleted, err
}
