package domain

import "context"

type JobStatus string

const (
	JobOpen      JobStatus = "open"
	JobActive    JobStatus = "active"
	JobCompleted JobStatus = "completed"
)

// Job is a work posting by a hirer. Skill matching against creators is a
// case-sensitive exact comparison on tag values.
type Job struct {
	ID             string    `json:"id"`
	HirerID        string    `json:"hirerId"`
	HirerName      string    `json:"hirerName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"requiredSkills"`
	BudgetRange    string    `json:"budgetRange"`
	Timeline       string    `json:"timeline"`
	Status         JobStatus `json:"status"`
	Timestamp      int64     `json:"timestamp"`
}

type JobRepository interface {
	GetAll(ctx context.Context) ([]Job, error)
	Insert(ctx context.Context, job *Job) error
}

type JobUsecase interface {
	GetJobs(ctx context.Context) ([]Job, error)
	GetJobsByHirer(ctx context.Context, hirerID string) ([]Job, error)
	GetMatchingJobsForCreator(ctx context.Context, creatorID string) ([]Job, error)
	CreateJob(ctx context.Context, job *Job) (*Job, error)
}
