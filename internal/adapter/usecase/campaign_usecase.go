package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	validate *validator.Validate
}

func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, validate: newValidator()}
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

func (u *CampaignUseCase) Create(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	c := &domain.Campaign{Name: in.CampaignName, SubjectLine: in.SubjectLine, EmailContent: in.EmailContent}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.List(ctx)
}

func (u *CampaignUseCase) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.repo.GetByID(ctx, id)
}

// Update replaces every field of the campaign. Running automations that
// reference it pick up the new content on their next dispatch.
func (u *CampaignUseCase) Update(ctx context.Context, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	c := &domain.Campaign{ID: id, Name: in.CampaignName, SubjectLine: in.SubjectLine, EmailContent: in.EmailContent}
	if err := u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete fails with port.ErrConflict while an automation still references
// the campaign.
func (u *CampaignUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
