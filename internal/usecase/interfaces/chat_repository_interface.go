package interfaces

import (
	"context"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=chat_repository_interface.go -destination=mocks/mock_chat_repository.go -package=mock_interfaces

type IChatRepository interface {
	GetChat(ctx context.Context, chatID string) (entities.Chat, error)
	CreateChat(ctx context.Context, c entities.Chat) (entities.Chat, error)
	AddMessage(ctx context.Context, msg entities.ChatMessage) (entities.ChatMessage, error)
	ListMessages(ctx context.Context, chatID string) ([]entities.ChatMessage, error)
}
