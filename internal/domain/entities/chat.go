package entities

import (
	"fmt"
	"time"
)

// Chat is a pairwise conversation. ID is derived from the two owners so both
// directions resolve to the same chat.
type Chat struct {
	ID        string
	Owners    [2]int64
	CreatedAt time.Time
}

type ChatMessage struct {
	ID     string    `json:"id"`
	ChatID string    `json:"chat_id"`
	UserID int64     `json:"user_id"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

const MaxChatMessageLength = 2000

func ChatIDFor(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
