package domain

import "context"

// Chat is a two-party conversation. At most one chat exists per unordered
// pair of participants; LastMessage is a denormalized preview of the most
// recent message.
type Chat struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
	LastMessage  string   `json:"lastMessage,omitempty"`
	UpdatedAt    int64    `json:"updatedAt"`
}

// HasParticipant reports whether the given user id is part of the chat.
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ChatMessage is append-only; messages within a chat order by ascending
// timestamp.
type ChatMessage struct {
	ID         string `json:"id"`
	ChatID     string `json:"chatId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"`
}

type ChatRepository interface {
	GetAll(ctx context.Context) ([]Chat, error)
	GetByID(ctx context.Context, id string) (*Chat, error)
	Insert(ctx context.Context, chat *Chat) error
	SaveAll(ctx context.Context, chats []Chat) error
}

type MessageRepository interface {
	GetByChat(ctx context.Context, chatID string) ([]ChatMessage, error)
	Insert(ctx context.Context, msg *ChatMessage) error
}

type ChatUsecase interface {
	GetChats(ctx context.Context, userID string) ([]Chat, error)
	GetMessages(ctx context.Context, chatID string) ([]ChatMessage, error)
	StartOrGetChat(ctx context.Context, userID, otherUserID string) (*Chat, error)
	SendMessage(ctx context.Context, chatID, senderID, senderName, text string) (*ChatMessage, error)
}
