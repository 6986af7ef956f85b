// Package seed writes the demo dataset into absent collections so a fresh
// store starts with something to browse. Existing collections are never
// overwritten.
package seed

import (
	"context"
	"time"

	"glint-backend/internal/domain"
	"glint-backend/internal/repository/kv"
	"glint-backend/pkg/logger"
)

func demoUsers(now int64) []domain.User {
	return []domain.User{
		{
			ID:              "user1",
			Email:           "alex@creator.com",
			Name:            "Alex Rivera",
			Username:        "alex_edits",
			Role:            domain.RoleCreator,
			Avatar:          "https://picsum.photos/seed/alex/200/200",
			Bio:             "Professional Video Editor | After Effects Wizard",
			SkillTags:       []string{"Video Editing", "Motion Graphics", "Color Grading"},
			ExperienceLevel: domain.ExperienceSenior,
			RateCard:        &domain.RateCard{Hourly: 45, Project: 500},
			Availability:    true,
			Following:       []string{},
			Followers:       []string{},
			CreatedAt:       now,
		},
		{
			ID:        "user2",
			Email:     "sarah@startup.com",
			Name:      "Sarah Chen",
			Username:  "sarah_founder",
			Role:      domain.RoleHirer,
			Avatar:    "https://picsum.photos/seed/sarah/200/200",
			Bio:       "CEO at Lumina Tech",
			SkillTags: []string{"Tech", "Design", "AI"},
			Following: []string{},
			Followers: []string{},
			CreatedAt: now,
		},
	}
}

func demoPosts(now int64) []domain.Post {
	return []domain.Post{
		{
			ID:            "post1",
			CreatorID:     "user1",
			CreatorName:   "Alex Rivera",
			CreatorAvatar: "https://picsum.photos/seed/alex/200/200",
			Type:          domain.PostVideo,
			Title:         "Cyberpunk Aesthetic Edit",
			Description:   "Exploration of neon vibes and glitch transitions for a music video project.",
			SkillTags:     []string{"Motion Graphics", "After Effects"},
			MediaURL:      "https://picsum.photos/seed/vfx/800/450",
			Likes:         []string{"user2"},
			Saves:         []string{},
			CommentCount:  12,
			Timestamp:     now - time.Hour.Milliseconds(),
		},
		{
			ID:            "post2",
			CreatorID:     "user1",
			CreatorName:   "Alex Rivera",
			CreatorAvatar: "https://picsum.photos/seed/alex/200/200",
			Type:          domain.PostImage,
			Title:         "Minimalist Branding Concept",
			Description:   "Clean, bold identity for a modern architectural firm.",
			SkillTags:     []string{"Graphic Design", "Branding"},
			MediaURL:      "https://picsum.photos/seed/design/800/800",
			Likes:         []string{},
			Saves:         []string{"user2"},
			CommentCount:  5,
			Timestamp:     now - 2*time.Hour.Milliseconds(),
		},
	}
}

func demoJobs(now int64) []domain.Job {
	return []domain.Job{
		{
			ID:             "job1",
			HirerID:        "user2",
			HirerName:      "Sarah Chen",
			Title:          "Short Form Video Editor Needed",
			Description:    "Looking for someone to edit high-energy TikTok/Reels content for a tech brand.",
			RequiredSkills: []string{"Video Editing", "Short Form Content"},
			BudgetRange:    "$500 - $1000",
			Timeline:       "2 weeks",
			Status:         domain.JobOpen,
			Timestamp:      now,
		},
	}
}

// Initialize writes demo data into each collection that does not exist
// yet. Empty collections are also seeded as empty documents so later reads
// distinguish "initialized" from "never written".
func Initialize(ctx context.Context, store kv.Store) error {
	now := time.Now().UnixMilli()

	if err := ensure(ctx, store, "users", demoUsers(now)); err != nil {
		return err
	}
	if err := ensure(ctx, store, "posts", demoPosts(now)); err != nil {
		return err
	}
	if err := ensure(ctx, store, "jobs", demoJobs(now)); err != nil {
		return err
	}
	if err := ensure(ctx, store, "notifications", []domain.Notification{}); err != nil {
		return err
	}
	if err := ensure(ctx, store, "chats", []domain.Chat{}); err != nil {
		return err
	}
	if err := ensure(ctx, store, "messages", []domain.ChatMessage{}); err != nil {
		return err
	}
	if err := ensure(ctx, store, "comments", []domain.Comment{}); err != nil {
		return err
	}
	if err := ensure(ctx, store, "hires", []domain.Hire{}); err != nil {
		return err
	}

	logger.Log.Info("demo data initialized")
	return nil
}

func ensure[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	coll := kv.NewCollection[T](store, key)
	exists, err := coll.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return coll.Replace(ctx, items)
}
