package usecase

import (
	"context"
	"errors"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// Formatter turns stored automations into API views with their audience
// association resolved to live recipients.
type Formatter struct {
	resolver port.RecipientResolver
}

// NewFormatter returns a Formatter backed by resolver.
func NewFormatter(resolver port.RecipientResolver) *Formatter {
	return &Formatter{resolver: resolver}
}

// Format resolves the recipients of a. An automation without audiences
// yields an empty, non-nil Audiences slice. Audience ids that no longer
// exist are dropped silently.
func (f *Formatter) Format(ctx context.Context, a domain.Automation) (*port.AutomationView, error) {
	recipients, err := f.resolver.Recipients(ctx, a)
	if err != nil {
		var se *port.StorageError
		if !errors.As(err, &se) {
			err = &port.StorageError{Op: "resolve recipients", Err: err}
		}
		return nil, err
	}
	if recipients == nil {
		recipients = []domain.Recipient{}
	}
	return &port.AutomationView{
		ID:        a.ID,
		Name:      a.Name,
		Schedule:  a.Schedule,
		Campaign:  a.CampaignID,
		Status:    a.Status,
		Audiences: recipients,
		CreatedAt: a.CreatedAt,
	}, nil
}

// FormatAll formats every automation in order, stopping at the first error.
func (f *Formatter) FormatAll(ctx context.Context, list []domain.Automation) ([]port.AutomationView, error) {
	out := make([]port.AutomationView, 0, len(list))
	for _, a := range list {
		v, err := f.Format(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}
