package usecase

import (
	"context"
	"fmt"
	"sort"

	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	userRepo domain.UserRepository
	notifier *Notifier
}

func NewJobUsecase(jobRepo domain.JobRepository, userRepo domain.UserRepository, notifier *Notifier) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (u *jobUsecase) GetJobs(ctx context.Context) ([]domain.Job, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return u.jobRepo.GetAll(ctx)
}

func (u *jobUsecase) GetJobsByHirer(ctx context.Context, hirerID string) ([]domain.Job, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	jobs, err := u.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Job
	for _, j := range jobs {
		if j.HirerID == hirerID {
			out = append(out, j)
		}
	}
	return out, nil
}

// GetMatchingJobsForCreator returns open jobs sharing at least one skill
// tag with the creator. Tag comparison is a case-sensitive exact match.
func (u *jobUsecase) GetMatchingJobsForCreator(ctx context.Context, creatorID string) ([]domain.Job, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	creator, err := u.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, nil
	}

	jobs, err := u.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Job
	for _, j := range jobs {
		if j.Status == domain.JobOpen && overlaps(j.RequiredSkills, creator.SkillTags) {
			out = append(out, j)
		}
	}
	return out, nil
}

// CreateJob opens a job and fans out a job_match notification to every
// creator whose skill tags overlap the requirement.
func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if job.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if job.HirerID == "" {
		return nil, apperror.BadRequest("HirerID is required")
	}
	if len(job.RequiredSkills) == 0 {
		return nil, apperror.BadRequest("At least one required skill is needed")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	if hirer, err := u.userRepo.GetByID(ctx, job.HirerID); err == nil {
		job.HirerName = hirer.Name
	}

	job.ID = newID("job")
	job.Status = domain.JobOpen
	job.Timestamp = nowMillis()

	if err := u.jobRepo.Insert(ctx, job); err != nil {
		return nil, err
	}

	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// Deterministic fan-out order for the recipients.
	sort.SliceStable(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	for _, user := range users {
		if user.Role != domain.RoleCreator || !overlaps(user.SkillTags, job.RequiredSkills) {
			continue
		}
		if err := u.notifier.Emit(ctx, &domain.Notification{
			UserID:       user.ID,
			Type:         domain.NotifJobMatch,
			Message:      fmt.Sprintf("New job matching your skills: %s", job.Title),
			FromUserID:   job.HirerID,
			FromUserName: job.HirerName,
		}); err != nil {
			return nil, err
		}
	}

	return job, nil
}
