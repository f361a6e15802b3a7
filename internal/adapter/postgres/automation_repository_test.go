package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

var automationCols = []string{"id", "name", "schedule", "campaign_id", "status", "created_at", "audience_ids"}

func TestAutomationRepository_ListRunning(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sched := time.Date(2025, 4, 20, 10, 15, 0, 0, time.UTC)
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.status = $1`)).
		WithArgs("Running").
		WillReturnRows(pgxmock.NewRows(automationCols).
			AddRow(int64(1), "spring", &sched, int64(3), "Running", created, []int64{1, 2}).
			AddRow(int64(2), "draft", (*time.Time)(nil), int64(4), "Running", created, []int64{}))

	repo := NewAutomationRepository(mock)
	got, err := repo.ListRunning(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, domain.StatusRunning, got[0].Status)
	require.NotNil(t, got[0].Schedule)
	assert.True(t, sched.Equal(*got[0].Schedule))
	assert.ElementsMatch(t, []int64{1, 2}, got[0].AudienceIDs)

	assert.Nil(t, got[1].Schedule)
	assert.Empty(t, got[1].AudienceIDs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_ListRunningStorageError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.status = $1`)).
		WithArgs("Running").
		WillReturnError(errors.New("connection refused"))

	repo := NewAutomationRepository(mock)
	_, err = repo.ListRunning(context.Background())

	var se *port.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list running automations", se.Op)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_GetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(automationCols))

	repo := NewAutomationRepository(mock)
	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, port.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_CreateLinksAudiences(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	sched := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	a := &domain.Automation{
		Name:        "launch",
		Schedule:    &sched,
		CampaignID:  3,
		AudienceIDs: []int64{1, 2},
		Status:      domain.StatusRunning,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO automations`)).
		WithArgs("launch", &sched, int64(3), "Running").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO automation_audiences`)).
		WithArgs(int64(7), []int64{1, 2}).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	repo := NewAutomationRepository(mock)
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, created, a.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_UpdateMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := &domain.Automation{ID: 9, Name: "x", CampaignID: 1, AudienceIDs: []int64{1}, Status: domain.StatusPaused}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE automations SET name`)).
		WithArgs("x", (*time.Time)(nil), int64(1), "Paused", int64(9)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	repo := NewAutomationRepository(mock)
	err = repo.Update(context.Background(), a)
	assert.ErrorIs(t, err, port.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_SetStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE automations SET status = $1 WHERE id = $2`)).
		WithArgs("Completed", int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE automations SET status = $1 WHERE id = $2`)).
		WithArgs("Completed", int64(6)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewAutomationRepository(mock)
	assert.NoError(t, repo.SetStatus(context.Background(), 5, domain.StatusCompleted))
	assert.ErrorIs(t, repo.SetStatus(context.Background(), 6, domain.StatusCompleted), port.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutomationRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM automations WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM automations WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewAutomationRepository(mock)
	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), port.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
