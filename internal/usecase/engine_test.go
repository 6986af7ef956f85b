package usecase_test

import (
	"context"
	"testing"

	"glint-backend/internal/domain"
	"glint-backend/internal/repository/kv"
	"glint-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// engine wires every usecase over a fresh in-memory store so tests can
// exercise cross-collection behavior end to end.
type engine struct {
	store    *kv.MemoryStore
	userRepo domain.UserRepository
	postRepo domain.PostRepository
	jobRepo  domain.JobRepository
	hireRepo domain.HireRepository
	noteRepo domain.NotificationRepository

	userUC  domain.UserUsecase
	postUC  domain.PostUsecase
	jobUC   domain.JobUsecase
	hireUC  domain.HireUsecase
	chatUC  domain.ChatUsecase
	notifUC domain.NotificationUsecase
}

func newEngine() *engine {
	store := kv.NewMemoryStore()

	userRepo := kv.NewUserRepository(store)
	postRepo := kv.NewPostRepository(store)
	commentRepo := kv.NewCommentRepository(store)
	jobRepo := kv.NewJobRepository(store)
	hireRepo := kv.NewHireRepository(store)
	chatRepo := kv.NewChatRepository(store)
	msgRepo := kv.NewMessageRepository(store)
	noteRepo := kv.NewNotificationRepository(store)

	notifier := usecase.NewNotifier(noteRepo, nil)
	validate := validator.New()

	return &engine{
		store:    store,
		userRepo: userRepo,
		postRepo: postRepo,
		jobRepo:  jobRepo,
		hireRepo: hireRepo,
		noteRepo: noteRepo,
		userUC:   usecase.NewUserUsecase(userRepo, notifier, validate),
		postUC:   usecase.NewPostUsecase(postRepo, commentRepo, userRepo, notifier),
		jobUC:    usecase.NewJobUsecase(jobRepo, userRepo, notifier),
		hireUC:   usecase.NewHireUsecase(hireRepo, userRepo, notifier),
		chatUC:   usecase.NewChatUsecase(chatRepo, msgRepo, notifier),
		notifUC:  usecase.NewNotificationUsecase(noteRepo, userRepo, notifier),
	}
}

func (e *engine) addUser(t *testing.T, user domain.User) {
	t.Helper()
	require.NoError(t, e.userRepo.Save(context.Background(), &user))
}

func (e *engine) notificationsFor(t *testing.T, userID string) []domain.Notification {
	t.Helper()
	ns, err := e.notifUC.GetNotifications(context.Background(), userID)
	require.NoError(t, err)
	return ns
}
