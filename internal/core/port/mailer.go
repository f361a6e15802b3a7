package port

import (
	"context"

	"mailflow/internal/core/domain"
)

// Mailer delivers a single email. Implementations return a *SendError on
// failure.
type Mailer interface {
	Send(ctx context.Context, msg domain.Email) error
}
