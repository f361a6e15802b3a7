package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
	"mailflow/internal/core/port/mocks"
)

func TestFormatResolvesRecipients(t *testing.T) {
	resolver := mocks.NewMockRecipientResolver(t)
	sched := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	a := domain.Automation{
		ID:          1,
		Name:        "n",
		Schedule:    &sched,
		CampaignID:  2,
		AudienceIDs: []int64{1, 2, 3},
		Status:      domain.StatusRunning,
		CreatedAt:   created,
	}
	// audience 3 was deleted after the automation was stored
	resolver.EXPECT().Recipients(mock.Anything, a).Return([]domain.Recipient{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}, nil)

	view, err := NewFormatter(resolver).Format(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, port.AutomationView{
		ID:       1,
		Name:     "n",
		Schedule: &sched,
		Campaign: 2,
		Status:   domain.StatusRunning,
		Audiences: []domain.Recipient{
			{ID: 1, Email: "a@example.com"},
			{ID: 2, Email: "b@example.com"},
		},
		CreatedAt: created,
	}, *view)
}

func TestFormatKeepsStorageError(t *testing.T) {
	resolver := mocks.NewMockRecipientResolver(t)
	orig := &port.StorageError{Op: "get audiences by ids", Err: assert.AnError}
	resolver.EXPECT().Recipients(mock.Anything, mock.Anything).Return(nil, orig)

	_, err := NewFormatter(resolver).Format(context.Background(), domain.Automation{})

	var se *port.StorageError
	require.ErrorAs(t, err, &se)
	assert.Same(t, orig, se)
}

func TestFormatAllEmpty(t *testing.T) {
	resolver := mocks.NewMockRecipientResolver(t)

	out, err := NewFormatter(resolver).FormatAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
