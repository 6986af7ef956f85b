package usecase

import (
	"context"
	"fmt"
	"strings"

	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	userRepo domain.UserRepository
	notifier *Notifier
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, notifier *Notifier, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		notifier: notifier,
		validate: validate,
	}
}

func (u *userUsecase) GetUsers(ctx context.Context) ([]domain.User, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return u.userRepo.GetAll(ctx)
}

func (u *userUsecase) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return u.userRepo.GetByID(ctx, id)
}

// UpdateUser overwrites the profile but keeps CreatedAt and both sides of
// the follow graph under the engine's control.
func (u *userUsecase) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		return nil, apperror.BadRequest("User id is required")
	}
	if user.Email != "" {
		if err := u.validate.Var(user.Email, "email"); err != nil {
			return nil, apperror.BadRequest("Invalid email address")
		}
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	user.CreatedAt = existing.CreatedAt
	user.Following = existing.Following
	user.Followers = existing.Followers

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FollowUser is idempotent and self-healing: each side is added
// independently, so a half-linked pair repairs itself on the next call.
// The follow notification fires only when the target actually gains the
// follower.
func (u *userUsecase) FollowUser(ctx context.Context, followerID, targetID string) (*domain.User, error) {
	if followerID == targetID {
		return nil, apperror.BadRequest("Cannot follow yourself")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	follower, err := u.userRepo.GetByID(ctx, followerID)
	if err != nil {
		return nil, apperror.NotFound("Follower not found")
	}
	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, apperror.NotFound("Target user not found")
	}

	if !contains(follower.Following, targetID) {
		follower.Following = append(follower.Following, targetID)
	}

	if !contains(target.Followers, followerID) {
		target.Followers = append(target.Followers, followerID)

		if err := u.notifier.Emit(ctx, &domain.Notification{
			UserID:       targetID,
			Type:         domain.NotifFollow,
			Message:      fmt.Sprintf("%s started following you", follower.Name),
			FromUserID:   followerID,
			FromUserName: follower.Name,
		}); err != nil {
			return nil, err
		}
	}

	if err := u.userRepo.Save(ctx, follower); err != nil {
		return nil, err
	}
	if err := u.userRepo.Save(ctx, target); err != nil {
		return nil, err
	}
	return follower, nil
}

// UnfollowUser removes both edges. No notification is emitted.
func (u *userUsecase) UnfollowUser(ctx context.Context, followerID, targetID string) (*domain.User, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	follower, err := u.userRepo.GetByID(ctx, followerID)
	if err != nil {
		return nil, apperror.NotFound("Follower not found")
	}
	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, apperror.NotFound("Target user not found")
	}

	follower.Following = remove(follower.Following, targetID)
	target.Followers = remove(target.Followers, followerID)

	if err := u.userRepo.Save(ctx, follower); err != nil {
		return nil, err
	}
	if err := u.userRepo.Save(ctx, target); err != nil {
		return nil, err
	}
	return follower, nil
}

// SearchCreators filters creators by free-text query (case-insensitive
// substring on name or any skill tag) and by verbatim skill membership.
// Both predicates must hold; an empty query or skill list disables its
// predicate.
func (u *userUsecase) SearchCreators(ctx context.Context, query string, skills []string) ([]domain.User, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []domain.User
	for _, user := range users {
		if user.Role != domain.RoleCreator {
			continue
		}
		if q != "" && !matchesQuery(&user, q) {
			continue
		}
		if len(skills) > 0 && !overlaps(skills, user.SkillTags) {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func matchesQuery(user *domain.User, q string) bool {
	if strings.Contains(strings.ToLower(user.Name), q) {
		return true
	}
	for _, tag := range user.SkillTags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// AddReview appends a review to the target creator's profile.
func (u *userUsecase) AddReview(ctx context.Context, targetID string, review *domain.Review) (*domain.User, error) {
	if err := u.validate.Var(review.Rating, "gte=1,lte=5"); err != nil {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}
	if review.Comment == "" {
		return nil, apperror.BadRequest("Comment is required")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	review.ID = newID("rev")
	review.TargetID = targetID
	review.Timestamp = nowMillis()
	if reviewer, err := u.userRepo.GetByID(ctx, review.ReviewerID); err == nil {
		review.ReviewerName = reviewer.Name
		review.ReviewerAvatar = reviewer.Avatar
	}

	target.Reviews = append(target.Reviews, *review)
	if err := u.userRepo.Save(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	kept := ids[:0:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

func overlaps(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
