package v1

import (
	"net/http"

	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(r *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	posts := r.Group("/posts")
	{
		posts.GET("", handler.List)
		posts.POST("", handler.Create)
		posts.GET("/:id", handler.GetDetails)
		posts.POST("/:id/like", handler.ToggleLike)
		posts.GET("/:id/comments", handler.ListComments)
		posts.POST("/:id/comments", handler.AddComment)
	}

	r.GET("/feed/:userId", handler.Feed)
}

type CreatePostRequest struct {
	CreatorID   string   `json:"creatorId" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=image video case_study code"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	SkillTags   []string `json:"skillTags"`
	MediaURL    string   `json:"mediaUrl"`
}

type ToggleLikeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type AddCommentRequest struct {
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// List godoc
// @Summary      Public post ranking
// @Description  All posts ordered by engagement score, newest first on ties
// @Tags         posts
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUC.GetPosts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posts retrieved", posts)
}

// Create godoc
// @Summary      Publish a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post  body      CreatePostRequest  true  "Post JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.postUC.CreatePost(c.Request.Context(), &domain.Post{
		CreatorID:   req.CreatorID,
		Type:        domain.PostType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		SkillTags:   req.SkillTags,
		MediaURL:    req.MediaURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Post created", post)
}

// GetDetails godoc
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id} [get]
func (h *PostHandler) GetDetails(c *gin.Context) {
	post, err := h.postUC.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(apperror.NotFound("Post not found"))
		return
	}
	response.Success(c, http.StatusOK, "Post retrieved", post)
}

// ToggleLike godoc
// @Summary      Toggle a like on a post
// @Description  Adds the user to the like set, or removes them if already present
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post ID"
// @Param        like  body      ToggleLikeRequest  true  "Like JSON"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.postUC.ToggleLikePost(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Like toggled", post)
}

// ListComments godoc
// @Summary      List comments on a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  response.Response
// @Router       /posts/{id}/comments [get]
func (h *PostHandler) ListComments(c *gin.Context) {
	comments, err := h.postUC.GetComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comments retrieved", comments)
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Post ID"
// @Param        comment  body      AddCommentRequest  true  "Comment JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	comment, err := h.postUC.AddComment(c.Request.Context(), c.Param("id"), req.UserID, req.UserName, req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Comment added", comment)
}

// Feed godoc
// @Summary      Personal feed for a user
// @Description  Following-authored, own and top recommended posts, deduplicated, newest first
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /feed/{userId} [get]
func (h *PostHandler) Feed(c *gin.Context) {
	feed, err := h.postUC.GetFeedForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Feed retrieved", feed)
}
