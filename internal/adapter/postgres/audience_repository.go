package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// AudienceRepository implements port.AudienceRepository and resolves the
// recipients of an automation from its audience id list.
type AudienceRepository struct {
	db DB
}

// NewAudienceRepository returns a new repository instance.
func NewAudienceRepository(db DB) *AudienceRepository {
	return &AudienceRepository{db: db}
}

var (
	_ port.AudienceRepository = (*AudienceRepository)(nil)
	_ port.RecipientResolver  = (*AudienceRepository)(nil)
)

const audienceColumns = `id, name, first_name, last_name, email, created_at`

func scanAudience(row pgx.Row) (domain.Audience, error) {
	var a domain.Audience
	err := row.Scan(&a.ID, &a.Name, &a.FirstName, &a.LastName, &a.Email, &a.CreatedAt)
	return a, err
}

// Create inserts an audience member.
func (r *AudienceRepository) Create(ctx context.Context, a *domain.Audience) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO audiences (name, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		a.Name, a.FirstName, a.LastName, a.Email,
	).Scan(&a.ID, &a.CreatedAt)
	return storageErr("create audience", err)
}

// List returns every audience member ordered by id.
func (r *AudienceRepository) List(ctx context.Context) ([]domain.Audience, error) {
	rows, err := r.db.Query(ctx, `SELECT `+audienceColumns+` FROM audiences ORDER BY id`)
	if err != nil {
		return nil, storageErr("list audiences", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Audience, error) {
		return scanAudience(row)
	})
	if err != nil {
		return nil, storageErr("list audiences", err)
	}
	return out, nil
}

// GetByID returns an audience member by id.
func (r *AudienceRepository) GetByID(ctx context.Context, id int64) (*domain.Audience, error) {
	a, err := scanAudience(r.db.QueryRow(ctx, `SELECT `+audienceColumns+` FROM audiences WHERE id = $1`, id))
	if err != nil {
		return nil, storageErr("get audience", err)
	}
	return &a, nil
}

// Update overwrites an audience member.
func (r *AudienceRepository) Update(ctx context.Context, a *domain.Audience) error {
	err := r.db.QueryRow(ctx,
		`UPDATE audiences SET name = $1, first_name = $2, last_name = $3, email = $4
		 WHERE id = $5 RETURNING created_at`,
		a.Name, a.FirstName, a.LastName, a.Email, a.ID,
	).Scan(&a.CreatedAt)
	return storageErr("update audience", err)
}

// Delete removes an audience member. Join rows referencing it are removed
// by the schema.
func (r *AudienceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM audiences WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete audience", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// GetByIDs returns id and email of every existing audience in ids.
func (r *AudienceRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Recipient, error) {
	if len(ids) == 0 {
		return []domain.Recipient{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id, email FROM audiences WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, storageErr("get audiences by ids", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recipient, error) {
		var rc domain.Recipient
		err := row.Scan(&rc.ID, &rc.Email)
		return rc, err
	})
	if err != nil {
		return nil, storageErr("get audiences by ids", err)
	}
	return out, nil
}

// ExistingIDs returns the subset of ids that exist.
func (r *AudienceRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM audiences WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, storageErr("check audience ids", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, storageErr("check audience ids", err)
	}
	return out, nil
}

// Recipients resolves the audience association of a.
func (r *AudienceRepository) Recipients(ctx context.Context, a domain.Automation) ([]domain.Recipient, error) {
	return r.GetByIDs(ctx, a.AudienceIDs)
}
