package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"glint-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHireLifecycle(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "h1", Name: "Sarah", Role: domain.RoleHirer})
	e.addUser(t, domain.User{ID: "c1", Name: "Alex", Role: domain.RoleCreator})

	var hireID string

	t.Run("Should create as requested and notify the creator", func(t *testing.T) {
		hire, err := e.hireUC.CreateHire(ctx, "h1", "c1", "Logo design", "$500")
		require.NoError(t, err)
		hireID = hire.ID

		assert.Equal(t, domain.HireRequested, hire.Status)

		ns := e.notificationsFor(t, "c1")
		require.Len(t, ns, 1)
		assert.Equal(t, domain.NotifHire, ns[0].Type)
		assert.Equal(t, "Sarah sent you a hire request for: Logo design", ns[0].Message)
	})

	t.Run("Should route the acceptance notification to the hirer", func(t *testing.T) {
		hire, err := e.hireUC.UpdateHireStatus(ctx, hireID, domain.HireActive)
		require.NoError(t, err)
		assert.Equal(t, domain.HireActive, hire.Status)

		ns := e.notificationsFor(t, "h1")
		require.Len(t, ns, 1)
		assert.Equal(t, `Project "Logo design" is now ACTIVE`, ns[0].Message)
		assert.Empty(t, e.notificationsFor(t, "c1")[1:], "creator gets nothing on acceptance")
	})

	t.Run("Should route the completion notification to the hirer", func(t *testing.T) {
		_, err := e.hireUC.UpdateHireStatus(ctx, hireID, domain.HireCompleted)
		require.NoError(t, err)

		ns := e.notificationsFor(t, "h1")
		require.Len(t, ns, 2)
		assert.Equal(t, `Project "Logo design" is now COMPLETED`, ns[0].Message)
		assert.Len(t, e.notificationsFor(t, "c1"), 1)
	})

	t.Run("Should route other transitions to the creator", func(t *testing.T) {
		// completed -> active: neither special case applies.
		_, err := e.hireUC.UpdateHireStatus(ctx, hireID, domain.HireActive)
		require.NoError(t, err)

		assert.Len(t, e.notificationsFor(t, "c1"), 2)
		assert.Len(t, e.notificationsFor(t, "h1"), 2)
	})

	t.Run("Should reject unknown statuses", func(t *testing.T) {
		_, err := e.hireUC.UpdateHireStatus(ctx, hireID, "archived")
		assert.Error(t, err)
	})

	t.Run("Should fail on a missing hire", func(t *testing.T) {
		_, err := e.hireUC.UpdateHireStatus(ctx, "hire_missing", domain.HireActive)
		assert.Error(t, err)
	})
}

func TestGetHires(t *testing.T) {
	e := newEngine()
	ctx := context.Background()

	require.NoError(t, e.hireRepo.Insert(ctx, &domain.Hire{ID: "hire_a", HirerID: "h1", CreatorID: "c1", JobTitle: "A", Timestamp: 100}))
	require.NoError(t, e.hireRepo.Insert(ctx, &domain.Hire{ID: "hire_b", HirerID: "h1", CreatorID: "c2", JobTitle: "B", Timestamp: 200}))
	require.NoError(t, e.hireRepo.Insert(ctx, &domain.Hire{ID: "hire_c", HirerID: "h2", CreatorID: "c1", JobTitle: "C", Timestamp: 300}))

	t.Run("Should include both sides of the engagement, newest first", func(t *testing.T) {
		hires, err := e.hireUC.GetHires(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, hires, 2)
		assert.Equal(t, "hire_c", hires[0].ID)
		assert.Equal(t, "hire_a", hires[1].ID)
	})

	t.Run("Should return nothing for uninvolved users", func(t *testing.T) {
		hires, err := e.hireUC.GetHires(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, hires)
	})
}

func TestExportHires(t *testing.T) {
	e := newEngine()
	ctx := context.Background()

	require.NoError(t, e.hireRepo.Insert(ctx, &domain.Hire{
		ID: "hire_a", HirerID: "h1", CreatorID: "c1",
		JobTitle: "Logo design", Budget: "$500",
		Status: domain.HireActive, Timestamp: 1700000000000,
	}))

	data, filename, err := e.hireUC.ExportHires(ctx, "c1")
	require.NoError(t, err)
	assert.Regexp(t, `^hires_\d{8}_\d{6}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Hires", "A1")
	require.NoError(t, err)
	assert.Equal(t, "JOB TITLE", title)

	job, err := f.GetCellValue("Hires", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Logo design", job)

	status, err := f.GetCellValue("Hires", "E2")
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", status)
}
