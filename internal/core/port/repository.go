package port

import (
	"context"

	"mailflow/internal/core/domain"
)

// AccountRepository persists administrator accounts.
type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, acc *domain.Account) error
	Delete(ctx context.Context, id int64) error
}

// AudienceRepository persists audience members.
type AudienceRepository interface {
	Create(ctx context.Context, a *domain.Audience) error
	List(ctx context.Context) ([]domain.Audience, error)
	GetByID(ctx context.Context, id int64) (*domain.Audience, error)
	Update(ctx context.Context, a *domain.Audience) error
	Delete(ctx context.Context, id int64) error
	// GetByIDs returns id and email for every existing audience in ids.
	// Unknown ids are silently omitted and the order is unspecified.
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Recipient, error)
	// ExistingIDs returns the subset of ids present in the store.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// CampaignRepository persists email campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	List(ctx context.Context) ([]domain.Campaign, error)
	// GetByID returns ErrNotFound when the campaign does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id int64) error
}

// AutomationRepository persists automations together with their audience
// association. Create and Update replace the association atomically.
type AutomationRepository interface {
	Create(ctx context.Context, a *domain.Automation) error
	List(ctx context.Context) ([]domain.Automation, error)
	GetByID(ctx context.Context, id int64) (*domain.Automation, error)
	Update(ctx context.Context, a *domain.Automation) error
	Delete(ctx context.Context, id int64) error

	// ListRunning returns every automation whose status is Running.
	ListRunning(ctx context.Context) ([]domain.Automation, error)
	// SetStatus overwrites the status of a single automation. It returns
	// ErrNotFound when the automation no longer exists.
	SetStatus(ctx context.Context, id int64, status domain.AutomationStatus) error
}

// RecipientResolver turns the audience association of an automation into
// deliverable recipients. It hides whether the association is stored as a
// join table or inline.
type RecipientResolver interface {
	Recipients(ctx context.Context, a domain.Automation) ([]domain.Recipient, error)
}
