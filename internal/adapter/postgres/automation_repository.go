package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// AutomationRepository implements port.AutomationRepository. The audience
// association lives in the automation_audiences join table and is read
// back as an aggregated id array.
type AutomationRepository struct {
	db DB
}

// NewAutomationRepository returns a new repository instance.
func NewAutomationRepository(db DB) *AutomationRepository {
	return &AutomationRepository{db: db}
}

var _ port.AutomationRepository = (*AutomationRepository)(nil)

// automationSelect is formatted with an optional WHERE clause.
const automationSelect = `
	SELECT
		a.id,
		a.name,
		a.schedule,
		a.campaign_id,
		a.status,
		a.created_at,
		COALESCE(array_agg(aa.audience_id ORDER BY aa.audience_id)
			FILTER (WHERE aa.audience_id IS NOT NULL), '{}')::bigint[]
	FROM automations a
	LEFT JOIN automation_audiences aa ON aa.automation_id = a.id
	%s
	GROUP BY a.id
	ORDER BY a.id`

func scanAutomation(row pgx.Row) (domain.Automation, error) {
	var (
		a      domain.Automation
		status string
	)
	err := row.Scan(&a.ID, &a.Name, &a.Schedule, &a.CampaignID, &status, &a.CreatedAt, &a.AudienceIDs)
	a.Status = domain.AutomationStatus(status)
	if a.AudienceIDs == nil {
		a.AudienceIDs = []int64{}
	}
	return a, err
}

func (r *AutomationRepository) query(ctx context.Context, op, where string, args ...any) ([]domain.Automation, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(automationSelect, where), args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Automation, error) {
		return scanAutomation(row)
	})
	if err != nil {
		return nil, storageErr(op, err)
	}
	return out, nil
}

// Create inserts the automation and its audience association in one
// transaction.
func (r *AutomationRepository) Create(ctx context.Context, a *domain.Automation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storageErr("create automation", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx,
		`INSERT INTO automations (name, schedule, campaign_id, status)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		a.Name, a.Schedule, a.CampaignID, string(a.Status),
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return storageErr("create automation", err)
	}
	if err = linkAudiences(ctx, tx, a.ID, a.AudienceIDs); err != nil {
		return storageErr("create automation", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return storageErr("create automation", err)
	}
	return nil
}

// Update replaces name, schedule, campaign, status and the audience set.
func (r *AutomationRepository) Update(ctx context.Context, a *domain.Automation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storageErr("update automation", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var createdAt time.Time
	err = tx.QueryRow(ctx,
		`UPDATE automations SET name = $1, schedule = $2, campaign_id = $3, status = $4
		 WHERE id = $5 RETURNING created_at`,
		a.Name, a.Schedule, a.CampaignID, string(a.Status), a.ID,
	).Scan(&createdAt)
	if err != nil {
		return storageErr("update automation", err)
	}
	a.CreatedAt = createdAt

	if _, err = tx.Exec(ctx, `DELETE FROM automation_audiences WHERE automation_id = $1`, a.ID); err != nil {
		return storageErr("update automation", err)
	}
	if err = linkAudiences(ctx, tx, a.ID, a.AudienceIDs); err != nil {
		return storageErr("update automation", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return storageErr("update automation", err)
	}
	return nil
}

func linkAudiences(ctx context.Context, tx pgx.Tx, automationID int64, audienceIDs []int64) error {
	if len(audienceIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO automation_audiences (automation_id, audience_id)
		 SELECT $1, unnest($2::bigint[])
		 ON CONFLICT DO NOTHING`,
		automationID, audienceIDs,
	)
	return err
}

// List returns every automation.
func (r *AutomationRepository) List(ctx context.Context) ([]domain.Automation, error) {
	return r.query(ctx, "list automations", "")
}

// GetByID returns a single automation.
func (r *AutomationRepository) GetByID(ctx context.Context, id int64) (*domain.Automation, error) {
	out, err := r.query(ctx, "get automation", "WHERE a.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, port.ErrNotFound
	}
	return &out[0], nil
}

// Delete removes an automation; its join rows cascade.
func (r *AutomationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM automations WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete automation", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ListRunning returns every automation in the Running state.
func (r *AutomationRepository) ListRunning(ctx context.Context) ([]domain.Automation, error) {
	return r.query(ctx, "list running automations", "WHERE a.status = $1", string(domain.StatusRunning))
}

// SetStatus overwrites the status of one automation.
func (r *AutomationRepository) SetStatus(ctx context.Context, id int64, status domain.AutomationStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE automations SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return storageErr("set automation status", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
