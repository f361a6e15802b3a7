package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// AutomationUseCase implements port.AutomationUseCase. Writes are checked
// against the campaign and audience stores before they reach the
// automation repository.
type AutomationUseCase struct {
	automations port.AutomationRepository
	campaigns   port.CampaignRepository
	audiences   port.AudienceRepository
	formatter   *Formatter
	validate    *validator.Validate
}

// NewAutomationUseCase wires the use case to its stores.
func NewAutomationUseCase(
	automations port.AutomationRepository,
	campaigns port.CampaignRepository,
	audiences port.AudienceRepository,
	resolver port.RecipientResolver,
) *AutomationUseCase {
	return &AutomationUseCase{
		automations: automations,
		campaigns:   campaigns,
		audiences:   audiences,
		formatter:   NewFormatter(resolver),
		validate:    newValidator(),
	}
}

var _ port.AutomationUseCase = (*AutomationUseCase)(nil)

func (u *AutomationUseCase) Create(ctx context.Context, in port.AutomationInput) (*port.AutomationView, error) {
	a, err := u.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	if err = u.automations.Create(ctx, a); err != nil {
		return nil, err
	}
	return u.formatter.Format(ctx, *a)
}

func (u *AutomationUseCase) List(ctx context.Context) ([]port.AutomationView, error) {
	list, err := u.automations.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.formatter.FormatAll(ctx, list)
}

func (u *AutomationUseCase) Get(ctx context.Context, id int64) (*port.AutomationView, error) {
	a, err := u.automations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.formatter.Format(ctx, *a)
}

// Update validates the payload before looking up the automation, so an
// invalid payload for a missing id is reported as a validation error.
func (u *AutomationUseCase) Update(ctx context.Context, id int64, in port.AutomationInput) (*port.AutomationView, error) {
	a, err := u.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	a.ID = id
	if err = u.automations.Update(ctx, a); err != nil {
		return nil, err
	}
	return u.formatter.Format(ctx, *a)
}

func (u *AutomationUseCase) Delete(ctx context.Context, id int64) error {
	return u.automations.Delete(ctx, id)
}

// prepare validates in and checks its references, returning the automation
// to persist. Audience ids are deduplicated and sorted.
func (u *AutomationUseCase) prepare(ctx context.Context, in port.AutomationInput) (*domain.Automation, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}

	ids := slices.Clone(in.AudienceIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	if err := u.checkAudiences(ctx, ids); err != nil {
		return nil, err
	}
	if _, err := u.campaigns.GetByID(ctx, in.Campaign); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, port.NewValidationError("campaign", fmt.Sprintf("Invalid campaign ID: %d", in.Campaign))
		}
		return nil, err
	}

	return &domain.Automation{
		Name:        in.Name,
		Schedule:    in.Schedule,
		CampaignID:  in.Campaign,
		AudienceIDs: ids,
		Status:      in.Status,
	}, nil
}

func (u *AutomationUseCase) checkAudiences(ctx context.Context, ids []int64) error {
	existing, err := u.audiences.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	var missing []string
	for _, id := range ids {
		if !slices.Contains(existing, id) {
			missing = append(missing, strconv.FormatInt(id, 10))
		}
	}
	if len(missing) > 0 {
		return port.NewValidationError("audienceIds", "Invalid audience IDs: "+strings.Join(missing, ", "))
	}
	return nil
}
