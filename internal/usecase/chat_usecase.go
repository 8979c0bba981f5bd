package usecase

import (
	"context"
	"strings"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=chat_usecase.go -destination=../adapter/http/handlers/mocks/mock_chat_usecase.go -package=mocks

var (
	ErrEmptyMessage      = newError(KindValidation, "Message text is required")
	ErrMessageTooLong    = newError(KindValidation, "Message must have at most 2000 characters")
	ErrSelfChat          = newError(KindValidation, "You can't send messages to yourself")
	ErrSelfFetch         = newError(KindValidation, "You can't fetch your own messages")
	ErrRecipientNotFound = newError(KindNotFound, "Recipient not found")
	ErrChatNotFound      = newError(KindNotFound, "This chat doesn't exist")
)

type IChatUseCase interface {
	Send(ctx context.Context, fromID, toID int64, text string) (entities.ChatMessage, error)
	Fetch(ctx context.Context, userID, otherID int64) ([]entities.ChatMessage, error)
}

type ChatUseCase struct {
	chats    interfaces.IChatRepository
	users    interfaces.IUserRepository
	notifier interfaces.INotifier
	logger   logrus.FieldLogger
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(chats interfaces.IChatRepository, users interfaces.IUserRepository, notifier interfaces.INotifier, logger logrus.FieldLogger) *ChatUseCase {
	return &ChatUseCase{
		chats:    chats,
		users:    users,
		notifier: notifier,
		logger:   logger.WithField("module", "chat"),
	}
}

func (u *ChatUseCase) Send(ctx context.Context, fromID, toID int64, text string) (entities.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ChatMessage{}, ErrEmptyMessage
	}
	if len([]rune(text)) > entities.MaxChatMessageLength {
		return entities.ChatMessage{}, ErrMessageTooLong
	}
	if fromID == toID {
		return entities.ChatMessage{}, ErrSelfChat
	}

	recipient, err := u.users.GetByID(ctx, toID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if recipient.ID == 0 {
		return entities.ChatMessage{}, ErrRecipientNotFound
	}

	now := time.Now().UTC()
	chatID := entities.ChatIDFor(fromID, toID)
	chat, err := u.chats.GetChat(ctx, chatID)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if chat.ID == "" {
		owners := [2]int64{fromID, toID}
		if owners[0] > owners[1] {
			owners[0], owners[1] = owners[1], owners[0]
		}
		if _, err := u.chats.CreateChat(ctx, entities.Chat{ID: chatID, Owners: owners, CreatedAt: now}); err != nil {
			return entities.ChatMessage{}, err
		}
	}

	msg, err := u.chats.AddMessage(ctx, entities.ChatMessage{
		ID:     uuid.NewString(),
		ChatID: chatID,
		UserID: fromID,
		Text:   text,
		SentAt: now,
	})
	if err != nil {
		return entities.ChatMessage{}, err
	}

	if u.notifier != nil {
		event := entities.Event{Type: entities.EventChatMessage, Data: msg, At: now}
		if err := u.notifier.Publish(ctx, toID, event); err != nil {
			u.logger.WithError(err).WithField("chat_id", chatID).Warn("failed to publish chat message")
		}
	}
	return msg, nil
}

func (u *ChatUseCase) Fetch(ctx context.Context, userID, otherID int64) ([]entities.ChatMessage, error) {
	if userID == otherID {
		return nil, ErrSelfFetch
	}
	chat, err := u.chats.GetChat(ctx, entities.ChatIDFor(userID, otherID))
	if err != nil {
		return nil, err
	}
	if chat.ID == "" {
		return nil, ErrChatNotFound
	}
	messages, err := u.chats.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []entities.ChatMessage{}
	}
	return messages, nil
}
