package v1

import (
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

func NewChatHandler(r *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{chatUC: chatUC}

	chats := r.Group("/chats")
	{
		chats.GET("", handler.List)
		chats.POST("", handler.StartOrGet)
		chats.GET("/:id/messages", handler.ListMessages)
		chats.POST("/:id/messages", handler.SendMessage)
	}
}

type StartChatRequest struct {
	UserID      string `json:"userId" binding:"required"`
	OtherUserID string `json:"otherUserId" binding:"required"`
}

type SendMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	SenderName string `json:"senderName" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// List godoc
// @Summary      List chats for a user
// @Description  Most recently active first
// @Tags         chats
// @Produce      json
// @Param        user_id  query     string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /chats [get]
func (h *ChatHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Error(apperror.BadRequest("user_id query parameter is required"))
		return
	}

	chats, err := h.chatUC.GetChats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Chats retrieved", chats)
}

// StartOrGet godoc
// @Summary      Start or fetch the chat between two users
// @Description  Idempotent per unordered participant pair
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        chat  body      StartChatRequest  true  "Chat JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /chats [post]
func (h *ChatHandler) StartOrGet(c *gin.Context) {
	var req StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	chat, err := h.chatUC.StartOrGetChat(c.Request.Context(), req.UserID, req.OtherUserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Chat ready", chat)
}

// ListMessages godoc
// @Summary      List messages in a chat
// @Description  Oldest first
// @Tags         chats
// @Produce      json
// @Param        id   path      string  true  "Chat ID"
// @Success      200  {object}  response.Response
// @Router       /chats/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.chatUC.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages retrieved", msgs)
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Appends to the log, refreshes the chat preview and notifies the other participant
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Chat ID"
// @Param        message  body      SendMessageRequest  true  "Message JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /chats/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.chatUC.SendMessage(c.Request.Context(), c.Param("id"), req.SenderID, req.SenderName, req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}
