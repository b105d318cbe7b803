package repositories

import (
	"chat-presence/domain"
	"encoding/json"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// InspectMapper renders notification and direct message records for the Badger inspectors.
// Index keys (notifid:, notifref:, friend:, freq:) keep the default rendering.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "notif:"):
		var notification domain.Notification
		if err := json.Unmarshal(val, &notification); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = strings.ToUpper(string(notification.Kind))
		row.Detail = notification.Text
		if notification.IsRead {
			row.Detail += " (read)"
		}
	case strings.HasPrefix(key, "dm:"):
		var message domain.DirectMessage
		if err := json.Unmarshal(val, &message); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "DM"
		row.Detail = message.Preview()
	}
	return row
}
