//go:generate go run go.uber.org/mock/mockgen -source=friend.go -destination=../mocks/mock_friend_repository.go -package=mocks
package repositories

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"context"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

type IFriendRepository interface {
	AddRequest(from, to domain.UserID) error
	HasRequest(from, to domain.UserID) (bool, error)
	RemoveRequest(from, to domain.UserID) error
	AddFriendship(a, b domain.UserID) error
	RemoveFriendship(a, b domain.UserID) error
	AreFriends(a, b domain.UserID) (bool, error)
	ListFriends(userID domain.UserID) ([]domain.UserID, error)
}

// FriendRepository stores pending requests and symmetric friendships.
//
//	freq:{to}:{from}  pending request from -> to
//	friend:{a}:{b}    written for both directions
type FriendRepository struct {
	db *badger.DB
}

func NewFriendRepository(db *badger.DB) FriendRepository {
	return FriendRepository{db: db}
}

func requestKey(from, to domain.UserID) []byte {
	return []byte(fmt.Sprintf("freq:%s:%s", to, from))
}

func friendKey(a, b domain.UserID) []byte {
	return []byte(fmt.Sprintf("friend:%s:%s", a, b))
}

func (f FriendRepository) AddRequest(from, to domain.UserID) error {
	return f.db.Update(func(txn *badger.Txn) error {
		if exists(txn, friendKey(from, to)) {
			return errors.ErrAlreadyFriends
		}
		if exists(txn, requestKey(from, to)) {
			return errors.ErrDuplicateRequest
		}
		return txn.Set(requestKey(from, to), []byte{})
	})
}

func (f FriendRepository) HasRequest(from, to domain.UserID) (bool, error) {
	found := false
	err := f.db.View(func(txn *badger.Txn) error {
		found = exists(txn, requestKey(from, to))
		return nil
	})
	return found, err
}

func (f FriendRepository) RemoveRequest(from, to domain.UserID) error {
	return f.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(requestKey(from, to))
	})
}

func (f FriendRepository) AddFriendship(a, b domain.UserID) error {
	return f.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(friendKey(a, b), []byte{}); err != nil {
			return err
		}
		return txn.Set(friendKey(b, a), []byte{})
	})
}

func (f FriendRepository) RemoveFriendship(a, b domain.UserID) error {
	return f.db.Update(func(txn *badger.Txn) error {
		if !exists(txn, friendKey(a, b)) {
			return errors.ErrNotFriends
		}
		if err := txn.Delete(friendKey(a, b)); err != nil {
			return err
		}
		return txn.Delete(friendKey(b, a))
	})
}

func (f FriendRepository) AreFriends(a, b domain.UserID) (bool, error) {
	found := false
	err := f.db.View(func(txn *badger.Txn) error {
		found = exists(txn, friendKey(a, b))
		return nil
	})
	return found, err
}

func (f FriendRepository) ListFriends(userID domain.UserID) ([]domain.UserID, error) {
	friends := make([]domain.UserID, 0)
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("friend:%s:", userID))
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			friends = append(friends, domain.UserID(strings.TrimPrefix(key, string(prefix))))
		}
		return nil
	})
	return friends, err
}

// CanNotify only lets friends push ad hoc notifications to each other.
func (f FriendRepository) CanNotify(_ context.Context, from, to domain.UserID) (bool, error) {
	return f.AreFriends(from, to)
}

func exists(txn *badger.Txn, key []byte) bool {
	_, err := txn.Get(key)
	return err == nil
}
