package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
	"mailflow/internal/core/port/mocks"
)

type automationDeps struct {
	automations *mocks.MockAutomationRepository
	campaigns   *mocks.MockCampaignRepository
	audiences   *mocks.MockAudienceRepository
	resolver    *mocks.MockRecipientResolver
}

func newAutomationUseCase(t *testing.T) (*AutomationUseCase, automationDeps) {
	d := automationDeps{
		automations: mocks.NewMockAutomationRepository(t),
		campaigns:   mocks.NewMockCampaignRepository(t),
		audiences:   mocks.NewMockAudienceRepository(t),
		resolver:    mocks.NewMockRecipientResolver(t),
	}
	return NewAutomationUseCase(d.automations, d.campaigns, d.audiences, d.resolver), d
}

func validAutomationInput() port.AutomationInput {
	sched := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	return port.AutomationInput{
		Name:        "Spring launch",
		Schedule:    &sched,
		Campaign:    3,
		AudienceIDs: []int64{2, 1, 2},
		Status:      domain.StatusRunning,
	}
}

func TestAutomationCreate(t *testing.T) {
	uc, d := newAutomationUseCase(t)
	in := validAutomationInput()

	d.audiences.EXPECT().ExistingIDs(mock.Anything, []int64{1, 2}).Return([]int64{1, 2}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Campaign{ID: 3}, nil)
	d.automations.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Automation")).
		Run(func(_ context.Context, a *domain.Automation) {
			a.ID = 11
		}).
		Return(nil)
	d.resolver.EXPECT().
		Recipients(mock.Anything, mock.MatchedBy(func(a domain.Automation) bool { return a.ID == 11 })).
		Return([]domain.Recipient{{ID: 1, Email: "a@example.com"}, {ID: 2, Email: "b@example.com"}}, nil)

	view, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(11), view.ID)
	assert.Equal(t, int64(3), view.Campaign)
	assert.Equal(t, domain.StatusRunning, view.Status)
	assert.Len(t, view.Audiences, 2)
}

func TestAutomationCreateRejectsUnknownAudiences(t *testing.T) {
	uc, d := newAutomationUseCase(t)
	in := validAutomationInput()
	in.AudienceIDs = []int64{1, 4, 5}

	d.audiences.EXPECT().ExistingIDs(mock.Anything, []int64{1, 4, 5}).Return([]int64{1}, nil)

	_, err := uc.Create(context.Background(), in)

	var ve *port.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid audience IDs: 4, 5", ve.Fields["audienceIds"])
}

func TestAutomationCreateRejectsUnknownCampaign(t *testing.T) {
	uc, d := newAutomationUseCase(t)

	d.audiences.EXPECT().ExistingIDs(mock.Anything, mock.Anything).Return([]int64{1, 2}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(nil, port.ErrNotFound)

	_, err := uc.Create(context.Background(), validAutomationInput())

	var ve *port.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "campaign")
}

func TestAutomationCreateSchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(in *port.AutomationInput)
		field string
	}{
		{"missing name", func(in *port.AutomationInput) { in.Name = "" }, "name"},
		{"zero campaign", func(in *port.AutomationInput) { in.Campaign = 0 }, "campaign"},
		{"negative campaign", func(in *port.AutomationInput) { in.Campaign = -1 }, "campaign"},
		{"empty audience list", func(in *port.AutomationInput) { in.AudienceIDs = []int64{} }, "audienceIds"},
		{"nil audience list", func(in *port.AutomationInput) { in.AudienceIDs = nil }, "audienceIds"},
		{"non positive audience id", func(in *port.AutomationInput) { in.AudienceIDs = []int64{1, 0} }, "audienceIds[1]"},
		{"unknown status", func(in *port.AutomationInput) { in.Status = "Stopped" }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newAutomationUseCase(t)
			in := validAutomationInput()
			tt.edit(&in)

			_, err := uc.Create(context.Background(), in)

			var ve *port.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestAutomationCreateAllowsNullSchedule(t *testing.T) {
	uc, d := newAutomationUseCase(t)
	in := validAutomationInput()
	in.Schedule = nil

	d.audiences.EXPECT().ExistingIDs(mock.Anything, mock.Anything).Return([]int64{1, 2}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Campaign{ID: 3}, nil)
	d.automations.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Automation")).Return(nil)
	d.resolver.EXPECT().Recipients(mock.Anything, mock.Anything).Return(nil, nil)

	view, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, view.Schedule)
	assert.NotNil(t, view.Audiences)
	assert.Empty(t, view.Audiences)
}

func TestAutomationUpdateMissing(t *testing.T) {
	uc, d := newAutomationUseCase(t)

	d.audiences.EXPECT().ExistingIDs(mock.Anything, mock.Anything).Return([]int64{1, 2}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Campaign{ID: 3}, nil)
	d.automations.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(a *domain.Automation) bool { return a.ID == 99 })).
		Return(port.ErrNotFound)

	_, err := uc.Update(context.Background(), 99, validAutomationInput())
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestAutomationGet(t *testing.T) {
	uc, d := newAutomationUseCase(t)

	stored := &domain.Automation{ID: 4, Name: "x", CampaignID: 1, AudienceIDs: []int64{}, Status: domain.StatusPaused}
	d.automations.EXPECT().GetByID(mock.Anything, int64(4)).Return(stored, nil)
	d.resolver.EXPECT().Recipients(mock.Anything, *stored).Return([]domain.Recipient{}, nil)

	view, err := uc.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "x", view.Name)
	assert.Empty(t, view.Audiences)

	d.automations.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, port.ErrNotFound)
	_, err = uc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestAutomationListResolverFailure(t *testing.T) {
	uc, d := newAutomationUseCase(t)

	d.automations.EXPECT().List(mock.Anything).Return([]domain.Automation{{ID: 1}, {ID: 2}}, nil)
	d.resolver.EXPECT().Recipients(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err := uc.List(context.Background())

	var se *port.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "resolve recipients", se.Op)
}

func TestAutomationDelete(t *testing.T) {
	uc, d := newAutomationUseCase(t)

	d.automations.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)
	d.automations.EXPECT().Delete(mock.Anything, int64(2)).Return(port.ErrNotFound)

	assert.NoError(t, uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), 2), port.ErrNotFound)
}
