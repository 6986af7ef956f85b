package v1

import (
	"net/http"
	"strings"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := r.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.GetDetails)
		users.PUT("/:id", handler.Update)
		users.POST("/:id/follow", handler.Follow)
		users.POST("/:id/unfollow", handler.Unfollow)
		users.POST("/:id/reviews", handler.AddReview)
	}

	r.GET("/creators/search", handler.SearchCreators)
}

type FollowRequest struct {
	FollowerID string `json:"followerId" binding:"required"`
}

type AddReviewRequest struct {
	ReviewerID string `json:"reviewerId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment    string `json:"comment" binding:"required"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.GetUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// GetDetails godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetDetails(c *gin.Context) {
	user, err := h.userUC.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(apperror.NotFound("User not found"))
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// Update godoc
// @Summary      Update a user profile
// @Description  Overwrites profile fields; the follow graph and creation time are preserved
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "User ID"
// @Param        user  body      domain.User  true  "User JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	user.ID = c.Param("id")

	updated, err := h.userUC.UpdateUser(c.Request.Context(), &user)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", updated)
}

// Follow godoc
// @Summary      Follow a user
// @Description  Idempotent; notifies the target only when a new follower is gained
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Target user ID"
// @Param        follow  body      FollowRequest  true  "Follow JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/follow [post]
func (h *UserHandler) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	follower, err := h.userUC.FollowUser(c.Request.Context(), req.FollowerID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Followed", follower)
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Target user ID"
// @Param        follow  body      FollowRequest  true  "Unfollow JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/unfollow [post]
func (h *UserHandler) Unfollow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	follower, err := h.userUC.UnfollowUser(c.Request.Context(), req.FollowerID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unfollowed", follower)
}

// AddReview godoc
// @Summary      Leave a review on a creator profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path      string            true  "Target user ID"
// @Param        review  body      AddReviewRequest  true  "Review JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/reviews [post]
func (h *UserHandler) AddReview(c *gin.Context) {
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.AddReview(c.Request.Context(), c.Param("id"), &domain.Review{
		ReviewerID: req.ReviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Review added", user)
}

// SearchCreators godoc
// @Summary      Search creators
// @Description  Free-text query on name or skill tags, plus verbatim skill filters
// @Tags         users
// @Produce      json
// @Param        q       query     string  false  "Free-text query"
// @Param        skills  query     string  false  "Comma-separated skill filters"
// @Success      200  {object}  response.Response
// @Router       /creators/search [get]
func (h *UserHandler) SearchCreators(c *gin.Context) {
	var skills []string
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}

	creators, err := h.userUC.SearchCreators(c.Request.Context(), c.Query("q"), skills)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Creators retrieved", creators)
}
