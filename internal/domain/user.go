package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type UserRole string

const (
	RoleCreator UserRole = "CREATOR"
	RoleHirer   UserRole = "HIRER"
	RoleUnset   UserRole = "UNSET"
)

type ExperienceLevel string

const (
	ExperienceJunior       ExperienceLevel = "Junior"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceSenior       ExperienceLevel = "Senior"
	ExperienceDirector     ExperienceLevel = "Director"
)

// RateCard holds a creator's pricing.
type RateCard struct {
	Hourly  float64 `json:"hourly"`
	Project float64 `json:"project"`
}

// ProjectItem is a portfolio entry on a creator profile.
type ProjectItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Review is a rating left on a creator profile by a hirer.
type Review struct {
	ID             string `json:"id"`
	ReviewerID     string `json:"reviewerId"`
	ReviewerName   string `json:"reviewerName"`
	ReviewerAvatar string `json:"reviewerAvatar,omitempty"`
	TargetID       string `json:"targetId"`
	Rating         int    `json:"rating"` // 1-5
	Comment        string `json:"comment"`
	Timestamp      int64  `json:"timestamp"`
}

// User is the canonical account record. Following and Followers hold user
// ids denormalized on both sides of the follow graph; the follow/unfollow
// operations keep them mutually consistent.
type User struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	Username        string          `json:"username"`
	Role            UserRole        `json:"role"`
	Avatar          string          `json:"avatar,omitempty"`
	Banner          string          `json:"banner,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	Title           string          `json:"title,omitempty"`
	Location        string          `json:"location,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	SkillTags       []string        `json:"skillTags"`
	Projects        []ProjectItem   `json:"projects,omitempty"`
	RateCard        *RateCard       `json:"rateCard,omitempty"`
	PortfolioURL    string          `json:"portfolioUrl,omitempty"`
	Balance         float64         `json:"balance"`
	Reviews         []Review        `json:"reviews,omitempty"`
	Availability    bool            `json:"availability"`
	Following       []string        `json:"following"`
	Followers       []string        `json:"followers"`
	CreatedAt       int64           `json:"createdAt"`
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
	SaveAll(ctx context.Context, users []User) error
}

type UserUsecase interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, user *User) (*User, error)
	FollowUser(ctx context.Context, followerID, targetID string) (*User, error)
	UnfollowUser(ctx context.Context, followerID, targetID string) (*User, error)
	SearchCreators(ctx context.Context, query string, skills []string) ([]User, error)
	AddReview(ctx context.Context, targetID string, review *Review) (*User, error)
}
