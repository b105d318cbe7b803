package main

import (
	"bytes"
	"chat-presence/auth"
	"chat-presence/domain"
	"chat-presence/repositories"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestInspect_Renders_Notifications(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repository := repositories.NewNotificationRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(repository.StoreNotifications(
		domain.NewNotification("bob", "alice", domain.KindLike, "alice liked your post", nil, at),
		domain.NewNotification("bob", "carol", domain.KindMention, "carol mentioned you", nil, at.Add(time.Second)),
	))

	var out bytes.Buffer
	req.NoError(inspect(&out, db, "notif:", 1))
	req.Contains(out.String(), "alice liked your post")
	req.Contains(out.String(), "LIKE")
	req.NotContains(out.String(), "carol mentioned you")
	req.Contains(out.String(), "1 row(s)")
}

func TestTokenCommand_Issues_Verifiable_Token(t *testing.T) {
	req := require.New(t)
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	code := exitOK
	root := buildRootCmd(&code)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"token", "alice"})
	req.NoError(root.ExecuteContext(context.Background()))

	userID, err := auth.NewTokens("0123456789abcdef", time.Hour).Verify(strings.TrimSpace(out.String()))
	req.NoError(err)
	req.Equal(domain.UserID("alice"), userID)
}

func TestExecute_Unknown_Command_Is_Config_Error(t *testing.T) {
	code, err := execute(context.Background(), []string{"nope"})
	require.Error(t, err)
	require.Equal(t, exitConfig, code)
}
