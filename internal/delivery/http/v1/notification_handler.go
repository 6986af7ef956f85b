package v1

import (
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifUC domain.NotificationUsecase
}

func NewNotificationHandler(r *gin.RouterGroup, notifUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notifUC: notifUC}

	notifications := r.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.POST("", handler.Create)
		notifications.POST("/read", handler.MarkRead)
		notifications.GET("/counts", handler.Counts)
	}
}

type CreateNotificationRequest struct {
	UserID       string `json:"userId" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=like follow view job_match message hire"`
	Message      string `json:"message" binding:"required"`
	FromUserID   string `json:"fromUserId"`
	FromUserName string `json:"fromUserName"`
}

type MarkReadRequest struct {
	UserID string `json:"userId" binding:"required"`
	// Empty marks everything; "message" and "activity" scope the sweep.
	TypeFilter string `json:"typeFilter" binding:"omitempty,oneof=message activity"`
}

// List godoc
// @Summary      List notifications for a user
// @Tags         notifications
// @Produce      json
// @Param        user_id  query     string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Error(apperror.BadRequest("user_id query parameter is required"))
		return
	}

	ns, err := h.notifUC.GetNotifications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications retrieved", ns)
}

// Create godoc
// @Summary      Append a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        notification  body      CreateNotificationRequest  true  "Notification JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	n, err := h.notifUC.AddNotification(c.Request.Context(), &domain.Notification{
		UserID:       req.UserID,
		Type:         domain.NotificationType(req.Type),
		Message:      req.Message,
		FromUserID:   req.FromUserID,
		FromUserName: req.FromUserName,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Notification added", n)
}

// MarkRead godoc
// @Summary      Mark notifications as read
// @Description  Scope with typeFilter: "message", "activity", or omit for all
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        filter  body      MarkReadRequest  true  "Filter JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /notifications/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.notifUC.MarkNotificationsAsRead(c.Request.Context(), req.UserID, req.TypeFilter); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications marked read", nil)
}

// Counts godoc
// @Summary      Unread and profile-completeness counters
// @Tags         notifications
// @Produce      json
// @Param        user_id  query     string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /notifications/counts [get]
func (h *NotificationHandler) Counts(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.Error(apperror.BadRequest("user_id query parameter is required"))
		return
	}

	counts, err := h.notifUC.GetCounts(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Counts retrieved", counts)
}
