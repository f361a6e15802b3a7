package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// Login messages reported to the client.
const (
	msgLoginOK         = "Login successful"
	msgAccountNotFound = "No account found!"
	msgInvalidPassword = "Invalid password!"
)

// AccountUseCase implements port.AccountUseCase. Passwords are stored as
// bcrypt hashes.
type AccountUseCase struct {
	repo     port.AccountRepository
	validate *validator.Validate
	cost     int
}

// NewAccountUseCase creates a new account use case.
func NewAccountUseCase(repo port.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo, validate: newValidator(), cost: bcrypt.DefaultCost}
}

var _ port.AccountUseCase = (*AccountUseCase)(nil)

func toAccountView(a *domain.Account) *port.AccountView {
	return &port.AccountView{ID: a.ID, Email: a.Email, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func (u *AccountUseCase) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Create stores a new account. A duplicate email yields port.ErrConflict.
func (u *AccountUseCase) Create(ctx context.Context, in port.AccountInput) (*port.AccountView, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	h, err := u.hash(in.Password)
	if err != nil {
		return nil, err
	}
	acc := &domain.Account{Email: in.Email, PasswordHash: h}
	if err = u.repo.Create(ctx, acc); err != nil {
		return nil, err
	}
	return toAccountView(acc), nil
}

func (u *AccountUseCase) List(ctx context.Context) ([]port.AccountView, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]port.AccountView, 0, len(list))
	for i := range list {
		out = append(out, *toAccountView(&list[i]))
	}
	return out, nil
}

func (u *AccountUseCase) Get(ctx context.Context, id int64) (*port.AccountView, error) {
	acc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAccountView(acc), nil
}

// Update replaces email and password. The password is re-hashed.
func (u *AccountUseCase) Update(ctx context.Context, id int64, in port.AccountInput) (*port.AccountView, error) {
	if err := validateInput(u.validate, in); err != nil {
		return nil, err
	}
	h, err := u.hash(in.Password)
	if err != nil {
		return nil, err
	}
	acc := &domain.Account{ID: id, Email: in.Email, PasswordHash: h}
	if err = u.repo.Update(ctx, acc); err != nil {
		return nil, err
	}
	return toAccountView(acc), nil
}

func (u *AccountUseCase) Delete(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}

// Login compares password with the stored hash for email.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*port.LoginResult, error) {
	if err := validateInput(u.validate, port.AccountInput{Email: email, Password: password}); err != nil {
		return nil, err
	}
	acc, err := u.repo.GetByEmail(ctx, email)
	if errors.Is(err, port.ErrNotFound) {
		return &port.LoginResult{Status: port.LoginFailed, Message: msgAccountNotFound}, nil
	}
	if err != nil {
		return nil, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return &port.LoginResult{Status: port.LoginFailed, Message: msgInvalidPassword}, nil
	}
	if err != nil {
		return nil, err
	}
	return &port.LoginResult{Status: port.LoginSuccess, Message: msgLoginOK}, nil
}
