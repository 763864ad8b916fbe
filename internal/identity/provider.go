package identity

import (
	"context"
	"errors"

	"github.com/teamcal/teamcal-api/internal/domain"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match an account. Unknown usernames and wrong passwords are deliberately
// indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Provider is the read-only identity collaborator. Implementations decide
// how accounts are stored; the calendar core only reads Team and Email.
type Provider interface {
	// ListAccounts returns every known account, in stable order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// Authenticate verifies the username/password pair and returns the
	// matching account, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
}
