package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// AccountRepository implements port.AccountRepository.
type AccountRepository struct {
	db DB
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

var _ port.AccountRepository = (*AccountRepository)(nil)

const accountColumns = `id, email, password, created_at, updated_at`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create inserts an account. A duplicate email yields port.ErrConflict.
func (r *AccountRepository) Create(ctx context.Context, acc *domain.Account) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO account (email, password) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		acc.Email, acc.PasswordHash,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	return storageErr("create account", err)
}

// List returns every account ordered by id.
func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM account ORDER BY id`)
	if err != nil {
		return nil, storageErr("list accounts", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, storageErr("list accounts", err)
	}
	return out, nil
}

// GetByID returns an account by id.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM account WHERE id = $1`, id))
	if err != nil {
		return nil, storageErr("get account", err)
	}
	return &a, nil
}

// GetByEmail returns an account by its unique email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM account WHERE email = $1`, email))
	if err != nil {
		return nil, storageErr("get account by email", err)
	}
	return &a, nil
}

// Update overwrites email and password hash.
func (r *AccountRepository) Update(ctx context.Context, acc *domain.Account) error {
	err := r.db.QueryRow(ctx,
		`UPDATE account SET email = $1, password = $2, updated_at = now()
		 WHERE id = $3 RETURNING created_at, updated_at`,
		acc.Email, acc.PasswordHash, acc.ID,
	).Scan(&acc.CreatedAt, &acc.UpdatedAt)
	return storageErr("update account", err)
}

// Delete removes an account.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM account WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete account", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
