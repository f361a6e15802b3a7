package port

import (
	"context"
	"time"

	"mailflow/internal/core/domain"
)

// AccountUseCase manages administrator accounts and password login.
type AccountUseCase interface {
	Create(ctx context.Context, in AccountInput) (*AccountView, error)
	List(ctx context.Context) ([]AccountView, error)
	Get(ctx context.Context, id int64) (*AccountView, error)
	Update(ctx context.Context, id int64, in AccountInput) (*AccountView, error)
	Delete(ctx context.Context, id int64) error
	// Login checks the password for email. A wrong password or unknown
	// email is reported through the result, not as an error.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// AudienceUseCase manages audience members.
type AudienceUseCase interface {
	Create(ctx context.Context, in AudienceInput) (*domain.Audience, error)
	List(ctx context.Context) ([]domain.Audience, error)
	Get(ctx context.Context, id int64) (*domain.Audience, error)
	Update(ctx context.Context, id int64, in AudienceInput) (*domain.Audience, error)
	Delete(ctx context.Context, id int64) error
}

// CampaignUseCase manages email campaigns.
type CampaignUseCase interface {
	Create(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	Update(ctx context.Context, id int64, in CampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, id int64) error
}

// AutomationUseCase manages automations. Every read returns the formatted
// view with resolved recipients.
type AutomationUseCase interface {
	Create(ctx context.Context, in AutomationInput) (*AutomationView, error)
	List(ctx context.Context) ([]AutomationView, error)
	Get(ctx context.Context, id int64) (*AutomationView, error)
	Update(ctx context.Context, id int64, in AutomationInput) (*AutomationView, error)
	Delete(ctx context.Context, id int64) error
}

// AccountInput is the create/update payload for an account. Password is
// plaintext and is hashed before storage.
type AccountInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountView is an account as exposed by the API. It never carries the
// password hash.
type AccountView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Login result statuses.
const (
	LoginSuccess = "success"
	LoginFailed  = "failed"
)

// LoginResult reports the outcome of a password check. No session or token
// is issued.
type LoginResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AudienceInput is the create/update payload for an audience member.
type AudienceInput struct {
	Name      string `json:"name" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// CampaignInput is the create/update payload for a campaign.
type CampaignInput struct {
	CampaignName string `json:"campaignName" validate:"required"`
	SubjectLine  string `json:"subjectLine" validate:"required"`
	EmailContent string `json:"emailContent" validate:"required"`
}

// AutomationInput is the create/update payload for an automation. Update
// replaces every field, including the audience set.
type AutomationInput struct {
	Name        string                  `json:"name" validate:"required"`
	Schedule    *time.Time              `json:"schedule"`
	Campaign    int64                   `json:"campaign" validate:"required,gt=0"`
	AudienceIDs []int64                 `json:"audienceIds" validate:"required,min=1,dive,gt=0"`
	Status      domain.AutomationStatus `json:"status" validate:"required,oneof=Running Paused Completed"`
}

// AutomationView is the API shape of an automation with its audience
// association resolved against the live audience table. Audiences is never
// nil; its order is not significant.
type AutomationView struct {
	ID        int64                   `json:"id"`
	Name      string                  `json:"name"`
	Schedule  *time.Time              `json:"schedule"`
	Campaign  int64                   `json:"campaign"`
	Status    domain.AutomationStatus `json:"status"`
	Audiences []domain.Recipient      `json:"audiences"`
	CreatedAt time.Time               `json:"created_at"`
}
