package usecase_test

import (
	"context"
	"testing"

	"glint-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "h1", Name: "Sarah", Role: domain.RoleHirer})
	e.addUser(t, domain.User{ID: "c1", Name: "Alex", Role: domain.RoleCreator, SkillTags: []string{"React", "Motion Design"}})
	e.addUser(t, domain.User{ID: "c2", Name: "Jordan", Role: domain.RoleCreator, SkillTags: []string{"Go"}})
	e.addUser(t, domain.User{ID: "h2", Name: "Acme", Role: domain.RoleHirer, SkillTags: []string{"React"}})

	t.Run("Should open the job and fan out to matching creators only", func(t *testing.T) {
		job, err := e.jobUC.CreateJob(ctx, &domain.Job{
			HirerID:        "h1",
			Title:          "Landing page",
			RequiredSkills: []string{"React"},
		})
		require.NoError(t, err)

		assert.Equal(t, domain.JobOpen, job.Status)
		assert.Equal(t, "Sarah", job.HirerName)

		ns := e.notificationsFor(t, "c1")
		require.Len(t, ns, 1)
		assert.Equal(t, domain.NotifJobMatch, ns[0].Type)
		assert.Equal(t, "New job matching your skills: Landing page", ns[0].Message)

		assert.Empty(t, e.notificationsFor(t, "c2"), "non-matching creators are skipped")
		assert.Empty(t, e.notificationsFor(t, "h2"), "hirers never receive job matches")
	})

	t.Run("Should require at least one skill", func(t *testing.T) {
		_, err := e.jobUC.CreateJob(ctx, &domain.Job{HirerID: "h1", Title: "x"})
		assert.Error(t, err)
	})
}

func TestGetMatchingJobsForCreator(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "c1", Name: "Alex", Role: domain.RoleCreator, SkillTags: []string{"Go", "React"}})

	insert := func(id string, skills []string, status domain.JobStatus) {
		require.NoError(t, e.jobRepo.Insert(ctx, &domain.Job{
			ID: id, HirerID: "h1", Title: id, RequiredSkills: skills, Status: status,
		}))
	}
	insert("job_react", []string{"React", "Figma"}, domain.JobOpen)
	insert("job_rust", []string{"Rust"}, domain.JobOpen)
	insert("job_done", []string{"Go"}, domain.JobCompleted)

	t.Run("Should return open jobs sharing a skill tag", func(t *testing.T) {
		jobs, err := e.jobUC.GetMatchingJobsForCreator(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "job_react", jobs[0].ID)
	})

	t.Run("Should return empty for unknown creators", func(t *testing.T) {
		jobs, err := e.jobUC.GetMatchingJobsForCreator(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestGetJobsByHirer(t *testing.T) {
	e := newEngine()
	ctx := context.Background()

	require.NoError(t, e.jobRepo.Insert(ctx, &domain.Job{ID: "job_a", HirerID: "h1", Title: "A", Status: domain.JobOpen}))
	require.NoError(t, e.jobRepo.Insert(ctx, &domain.Job{ID: "job_b", HirerID: "h2", Title: "B", Status: domain.JobOpen}))

	jobs, err := e.jobUC.GetJobsByHirer(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job_a", jobs[0].ID)
}
