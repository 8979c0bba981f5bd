package memory

import (
	"context"
	"sync"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"
)

type ChatRepository struct {
	mu       sync.RWMutex
	chats    map[string]entities.Chat
	messages map[string][]entities.ChatMessage
}

var _ interfaces.IChatRepository = (*ChatRepository)(nil)

func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		chats:    map[string]entities.Chat{},
		messages: map[string][]entities.ChatMessage{},
	}
}

func (r *ChatRepository) GetChat(_ context.Context, chatID string) (entities.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chats[chatID], nil
}

func (r *ChatRepository) CreateChat(_ context.Context, c entities.Chat) (entities.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.chats[c.ID]; ok {
		return existing, nil
	}
	r.chats[c.ID] = c
	return c, nil
}

func (r *ChatRepository) AddMessage(_ context.Context, m entities.ChatMessage) (entities.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.ChatID] = append(r.messages[m.ChatID], m)
	return m, nil
}

func (r *ChatRepository) ListMessages(_ context.Context, chatID string) ([]entities.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.ChatMessage{}, r.messages[chatID]...), nil
}
