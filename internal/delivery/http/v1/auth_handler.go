package v1

import (
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/login", handler.Login)
	}
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login godoc
// @Summary      Demo login
// @Description  Exchanges a known email for a session token. Demo bypass: no password is checked.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, token, err := h.authUC.Login(c.Request.Context(), req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"user":  user,
		"token": token,
	})
}
