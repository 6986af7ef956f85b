package usecase

import (
	"context"
	"fmt"
	"sort"

	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"
)

type chatUsecase struct {
	chatRepo domain.ChatRepository
	msgRepo  domain.MessageRepository
	notifier *Notifier
}

func NewChatUsecase(chatRepo domain.ChatRepository, msgRepo domain.MessageRepository, notifier *Notifier) domain.ChatUsecase {
	return &chatUsecase{
		chatRepo: chatRepo,
		msgRepo:  msgRepo,
		notifier: notifier,
	}
}

func (u *chatUsecase) GetChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	all, err := u.chatRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Chat
	for _, c := range all {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	return out, nil
}

func (u *chatUsecase) GetMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	msgs, err := u.msgRepo.GetByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Timestamp < msgs[j].Timestamp })
	return msgs, nil
}

// StartOrGetChat returns the chat containing both participants regardless
// of argument order, creating it when absent. Repeated calls are
// idempotent.
func (u *chatUsecase) StartOrGetChat(ctx context.Context, userID, otherUserID string) (*domain.Chat, error) {
	if userID == "" || otherUserID == "" {
		return nil, apperror.BadRequest("Both participant ids are required")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	all, err := u.chatRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].HasParticipant(userID) && all[i].HasParticipant(otherUserID) {
			return &all[i], nil
		}
	}

	chat := &domain.Chat{
		ID:           newID("chat"),
		Participants: []string{userID, otherUserID},
		UpdatedAt:    nowMillis(),
	}
	if err := u.chatRepo.Insert(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// SendMessage appends to the chat's log, refreshes the chat's preview
// fields, and notifies the other participant.
func (u *chatUsecase) SendMessage(ctx context.Context, chatID, senderID, senderName, text string) (*domain.ChatMessage, error) {
	if text == "" {
		return nil, apperror.BadRequest("Message text is required")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	chats, err := u.chatRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var chat *domain.Chat
	for i := range chats {
		if chats[i].ID == chatID {
			chat = &chats[i]
			break
		}
	}
	if chat == nil {
		return nil, apperror.NotFound("Chat not found")
	}

	msg := &domain.ChatMessage{
		ID:         newID("msg"),
		ChatID:     chatID,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
		Timestamp:  nowMillis(),
	}
	if err := u.msgRepo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	chat.LastMessage = text
	chat.UpdatedAt = msg.Timestamp
	if err := u.chatRepo.SaveAll(ctx, chats); err != nil {
		return nil, err
	}

	for _, p := range chat.Participants {
		if p == senderID {
			continue
		}
		if err := u.notifier.Emit(ctx, &domain.Notification{
			UserID:       p,
			Type:         domain.NotifMessage,
			Message:      fmt.Sprintf("New message from %s", senderName),
			FromUserID:   senderID,
			FromUserName: senderName,
		}); err != nil {
			return nil, err
		}
	}

	return msg, nil
}
