package repositories

import (
	"chat-presence/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func directMessage(from, to domain.UserID, content string, at time.Time) domain.DirectMessage {
	return domain.DirectMessage{ID: uuid.New(), Sender: from, Receiver: to, Content: content, CreatedAt: at}
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	at := time.Now().UTC()
	messages := []domain.DirectMessage{
		directMessage("alice", "bob", "hello", at),
		directMessage("bob", "alice", "hi", at.Add(1*time.Minute)),
		directMessage("alice", "bob", "how are you", at.Add(2*time.Minute)),
	}
	for _, m := range messages {
		req.NoError(repository.StoreMessage(m))
	}
	// Unrelated conversation
	req.NoError(repository.StoreMessage(directMessage("alice", "clara", "psst", at)))

	fetched, err := repository.GetConversation("bob", "alice", 0)
	req.NoError(err)
	req.Equal([]domain.DirectMessage{messages[2], messages[1], messages[0]}, fetched)
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openDB(t), slog.Default(), &limit)
	at := time.Now().UTC()
	for i := 0; i < 3; i++ {
		req.NoError(repository.StoreMessage(directMessage("alice", "bob", "msg", at.Add(time.Duration(i)*time.Second))))
	}

	fetched, err := repository.GetConversation("alice", "bob", 0)
	req.NoError(err)
	req.Len(fetched, limit)

	fetched, err = repository.GetConversation("alice", "bob", 1)
	req.NoError(err)
	req.Len(fetched, 1)
}

func Test_Empty_Conversation(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)

	fetched, err := repository.GetConversation("alice", "bob", 10)
	req.NoError(err)
	req.Empty(fetched)
}
