package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailflow/internal/core/domain"
)

func TestAudienceRepository_RecipientsEmptySkipsQuery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAudienceRepository(mock)
	got, err := repo.Recipients(context.Background(), domain.Automation{ID: 1})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAudienceRepository_GetByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email FROM audiences WHERE id = ANY($1)`)).
		WithArgs([]int64{1, 2}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email"}).
			AddRow(int64(2), "b@example.com").
			AddRow(int64(1), "a@example.com"))

	repo := NewAudienceRepository(mock)
	got, err := repo.Recipients(context.Background(), domain.Automation{AudienceIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Recipient{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAudienceRepository_ExistingIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM audiences WHERE id = ANY($1)`)).
		WithArgs([]int64{1, 5}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	repo := NewAudienceRepository(mock)
	got, err := repo.ExistingIDs(context.Background(), []int64{1, 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
