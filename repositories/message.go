//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-presence/domain"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	StoreMessage(message domain.DirectMessage) error
	GetConversation(a, b domain.UserID, limit int) ([]domain.DirectMessage, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// conversationPrefix is the same whichever side of the conversation asks.
func conversationPrefix(a, b domain.UserID) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("dm:%s:%s:", a, b)
}

// StoreMessage persists a direct message in BadgerDB.
// The key is formatted as "dm:{low_user}:{high_user}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func (m MessageRepository) StoreMessage(message domain.DirectMessage) error {
	key := fmt.Sprintf("%s%019d:%s",
		conversationPrefix(message.Sender, message.Receiver),
		message.CreatedAt.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetConversation returns the messages exchanged between a and b, newest first.
// The smallest of limit and the configured limitMessages applies, zero meaning none.
func (m MessageRepository) GetConversation(a, b domain.UserID, limit int) ([]domain.DirectMessage, error) {
	if m.limitMessages != nil && (limit <= 0 || *m.limitMessages < limit) {
		limit = *m.limitMessages
	}
	messages := make([]domain.DirectMessage, 0)
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(conversationPrefix(a, b))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(messages) == limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", limit))
				break
			}
			var message domain.DirectMessage
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &message)
			})
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
