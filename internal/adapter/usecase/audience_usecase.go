package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// AudienceUseCase implements port.AudienceUseCase.
type AudienceUseCase struct {
	repo     port.AudienceRepository
	validate *validator.Validate
}

func NewAudienceUseCase(repo port.AudienceRepository) *AudienceUseCase {
	return &AudienceUseCase{repo: repo, validate: newValidator()}
}

var _ port.AudienceUseCase = (*AudienceUseCase)(nil)

func (u *AudienceUseCase) Create(ctx context.Context, in port.AudienceInput) (*domain.Audience, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	a := &domain.Audience{Name: in.Name, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *AudienceUseCase) List(ctx context.Context) ([]domain.Audience, error) {
	return u.repo.List(ctx)
}

func (u *AudienceUseCase) Get(ctx context.Context, id int64) (*domain.Audience, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *AudienceUseCase) Update(ctx context.Context, id int64, in port.AudienceInput) (*domain.Audience, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	a := &domain.Audience{ID: id, Name: in.Name, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}
	if err := u.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *AudienceUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
