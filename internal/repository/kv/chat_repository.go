package kv

import (
	"context"

	"glint-backend/internal/domain"
)

type chatRepository struct {
	chats *Collection[domain.Chat]
}

func NewChatRepository(store Store) domain.ChatRepository {
	return &chatRepository{chats: NewCollection[domain.Chat](store, "chats")}
}

func (r *chatRepository) GetAll(ctx context.Context) ([]domain.Chat, error) {
	return r.chats.All(ctx)
}

func (r *chatRepository) GetByID(ctx context.Context, id string) (*domain.Chat, error) {
	all, err := r.chats.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *chatRepository) Insert(ctx context.Context, chat *domain.Chat) error {
	all, err := r.chats.All(ctx)
	if err != nil {
		return err
	}
	return r.chats.Replace(ctx, append([]domain.Chat{*chat}, all...))
}

func (r *chatRepository) SaveAll(ctx context.Context, chats []domain.Chat) error {
	return r.chats.Replace(ctx, chats)
}

type messageRepository struct {
	messages *Collection[domain.ChatMessage]
}

func NewMessageRepository(store Store) domain.MessageRepository {
	return &messageRepository{messages: NewCollection[domain.ChatMessage](store, "messages")}
}

func (r *messageRepository) GetByChat(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	all, err := r.messages.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.ChatMessage
	for _, m := range all {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Insert appends: the message log is stored oldest-first.
func (r *messageRepository) Insert(ctx context.Context, msg *domain.ChatMessage) error {
	all, err := r.messages.All(ctx)
	if err != nil {
		return err
	}
	return r.messages.Replace(ctx, append(all, *msg))
}
