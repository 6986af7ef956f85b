package v1

import (
	"net/http"

	"glint-backend/config"
	"glint-backend/internal/delivery/http/middleware"
	"glint-backend/internal/delivery/http/response"
	"glint-backend/internal/domain"
	"glint-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC   domain.AuthUsecase
	UserUC   domain.UserUsecase
	PostUC   domain.PostUsecase
	JobUC    domain.JobUsecase
	HireUC   domain.HireUsecase
	NotifUC  domain.NotificationUsecase
	ChatUC   domain.ChatUsecase
	Sessions *auth.SessionManager
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Session(deps.Sessions))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewAuthHandler(v1, deps.AuthUC)
	NewUserHandler(v1, deps.UserUC)
	NewPostHandler(v1, deps.PostUC)
	NewJobHandler(v1, deps.JobUC)
	NewHireHandler(v1, deps.HireUC)
	NewNotificationHandler(v1, deps.NotifUC)
	NewChatHandler(v1, deps.ChatUC)
	NewMediaHandler(v1)

	return r
}
