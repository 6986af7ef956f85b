package domain

import "context"

type HireStatus string

const (
	HireRequested HireStatus = "requested"
	HireActive    HireStatus = "active"
	HireCompleted HireStatus = "completed"
)

// Hire is an engagement record between a hirer and a creator. Status moves
// requested -> active -> completed through explicit operator actions;
// transitions are not validated and completed is not terminal.
type Hire struct {
	ID        string     `json:"id"`
	CreatorID string     `json:"creatorId"`
	HirerID   string     `json:"hirerId"`
	JobTitle  string     `json:"jobTitle"`
	Budget    string     `json:"budget"`
	Status    HireStatus `json:"status"`
	Timestamp int64      `json:"timestamp"`
}

type HireRepository interface {
	GetAll(ctx context.Context) ([]Hire, error)
	Insert(ctx context.Context, hire *Hire) error
	SaveAll(ctx context.Context, hires []Hire) error
}

type HireUsecase interface {
	GetHires(ctx context.Context, userID string) ([]Hire, error)
	CreateHire(ctx context.Context, hirerID, creatorID, jobTitle, budget string) (*Hire, error)
	UpdateHireStatus(ctx context.Context, hireID string, status HireStatus) (*Hire, error)
	ExportHires(ctx context.Context, userID string) ([]byte, string, error)
}
