package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type hireUsecase struct {
	hireRepo domain.HireRepository
	userRepo domain.UserRepository
	notifier *Notifier
}

func NewHireUsecase(hireRepo domain.HireRepository, userRepo domain.UserRepository, notifier *Notifier) domain.HireUsecase {
	return &hireUsecase{
		hireRepo: hireRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// GetHires returns engagements where the user is on either side, newest
// first.
func (u *hireUsecase) GetHires(ctx context.Context, userID string) ([]domain.Hire, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return u.hiresForUser(ctx, userID)
}

func (u *hireUsecase) hiresForUser(ctx context.Context, userID string) ([]domain.Hire, error) {
	all, err := u.hireRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Hire
	for _, h := range all {
		if h.HirerID == userID || h.CreatorID == userID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

// CreateHire records a hire request and notifies the creator. A missing
// hirer record degrades to a generic actor name instead of failing.
func (u *hireUsecase) CreateHire(ctx context.Context, hirerID, creatorID, jobTitle, budget string) (*domain.Hire, error) {
	if hirerID == "" || creatorID == "" {
		return nil, apperror.BadRequest("HirerID and CreatorID are required")
	}
	if jobTitle == "" {
		return nil, apperror.BadRequest("Job title is required")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	hire := &domain.Hire{
		ID:        newID("hire"),
		HirerID:   hirerID,
		CreatorID: creatorID,
		JobTitle:  jobTitle,
		Budget:    budget,
		Status:    domain.HireRequested,
		Timestamp: nowMillis(),
	}
	if err := u.hireRepo.Insert(ctx, hire); err != nil {
		return nil, err
	}

	hirerName := "A hirer"
	if hirer, err := u.userRepo.GetByID(ctx, hirerID); err == nil {
		hirerName = hirer.Name
	}

	if err := u.notifier.Emit(ctx, &domain.Notification{
		UserID:       creatorID,
		Type:         domain.NotifHire,
		Message:      fmt.Sprintf("%s sent you a hire request for: %s", hirerName, jobTitle),
		FromUserID:   hirerID,
		FromUserName: hirerName,
	}); err != nil {
		return nil, err
	}

	return hire, nil
}

// UpdateHireStatus overwrites the status unconditionally and notifies a
// computed recipient: prior status requested routes to the hirer, a move
// to completed routes to the hirer, anything else routes to the creator.
// This asymmetric routing is the established contract; callers depend on
// it as-is.
func (u *hireUsecase) UpdateHireStatus(ctx context.Context, hireID string, status domain.HireStatus) (*domain.Hire, error) {
	switch status {
	case domain.HireRequested, domain.HireActive, domain.HireCompleted:
	default:
		return nil, apperror.BadRequest("Invalid hire status")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	hires, err := u.hireRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range hires {
		if hires[i].ID != hireID {
			continue
		}

		notifyID := hires[i].CreatorID
		if hires[i].Status == domain.HireRequested || status == domain.HireCompleted {
			notifyID = hires[i].HirerID
		}

		if err := u.notifier.Emit(ctx, &domain.Notification{
			UserID:  notifyID,
			Type:    domain.NotifHire,
			Message: fmt.Sprintf("Project %q is now %s", hires[i].JobTitle, strings.ToUpper(string(status))),
		}); err != nil {
			return nil, err
		}

		hires[i].Status = status
		if err := u.hireRepo.SaveAll(ctx, hires); err != nil {
			return nil, err
		}
		updated := hires[i]
		return &updated, nil
	}

	return nil, apperror.NotFound("Hire not found")
}

// ExportHires renders a user's engagements as a spreadsheet.
func (u *hireUsecase) ExportHires(ctx context.Context, userID string) ([]byte, string, error) {
	storeMu.RLock()
	hires, err := u.hiresForUser(ctx, userID)
	storeMu.RUnlock()
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Hires"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"JOB TITLE", "HIRER", "CREATOR", "BUDGET", "STATUS", "REQUESTED AT"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4B0082"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, h := range hires {
		values := []interface{}{
			h.JobTitle,
			h.HirerID,
			h.CreatorID,
			h.Budget,
			strings.ToUpper(string(h.Status)),
			time.UnixMilli(h.Timestamp).Format("2006-01-02 15:04"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	filename := fmt.Sprintf("hires_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
