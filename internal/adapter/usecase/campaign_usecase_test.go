package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
	"mailflow/internal/core/port/mocks"
)

func TestCampaignCreate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		Create(mock.Anything, &domain.Campaign{Name: "Spring", SubjectLine: "Hi", EmailContent: "<p>x</p>"}).
		Return(nil)

	c, err := NewCampaignUseCase(repo).Create(context.Background(), port.CampaignInput{
		CampaignName: "Spring",
		SubjectLine:  "Hi",
		EmailContent: "<p>x</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring", c.Name)
}

func TestCampaignCreateMissingFields(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	_, err := NewCampaignUseCase(repo).Create(context.Background(), port.CampaignInput{CampaignName: "Spring"})

	var ve *port.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{
		"subjectLine":  "is required",
		"emailContent": "is required",
	}, ve.Fields)
}

func TestCampaignUpdateMissing(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool { return c.ID == 8 })).
		Return(port.ErrNotFound)

	_, err := NewCampaignUseCase(repo).Update(context.Background(), 8, port.CampaignInput{
		CampaignName: "a", SubjectLine: "b", EmailContent: "c",
	})
	assert.ErrorIs(t, err, port.ErrNotFound)
}
