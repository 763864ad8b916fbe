package identity

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/teamcal/teamcal-api/internal/domain"
)

// FileProvider reads accounts from a YAML document once at startup and
// serves them read-only afterwards. Password hashes are bcrypt; use
// cmd/hash-generator to produce them when seeding the file.
type FileProvider struct {
	accounts []domain.Account
	logger   *slog.Logger
}

// accountsDocument is the on-disk shape of the accounts file.
type accountsDocument struct {
	Accounts []domain.Account `yaml:"accounts"`
}

// NewFileProvider loads and validates the accounts document at path.
func NewFileProvider(path string, logger *slog.Logger) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading accounts file %s: %w", path, err)
	}

	var doc accountsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing accounts file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(doc.Accounts))
	for i := range doc.Accounts {
		acct := &doc.Accounts[i]
		if err := acct.Validate(); err != nil {
			return nil, fmt.Errorf("accounts file %s, entry %d: %w", path, i, err)
		}
		if _, dup := seen[acct.Username]; dup {
			return nil, fmt.Errorf("accounts file %s: duplicate username %q", path, acct.Username)
		}
		seen[acct.Username] = struct{}{}
	}

	logger.Info("accounts loaded", "path", path, "count", len(doc.Accounts))
	return &FileProvider{
		accounts: doc.Accounts,
		logger:   logger.With("component", "identity"),
	}, nil
}

// ListAccounts returns the accounts in file order.
func (p *FileProvider) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, len(p.accounts))
	copy(out, p.accounts)
	return out, nil
}

// Authenticate verifies the password against the stored bcrypt hash.
func (p *FileProvider) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	for i := range p.accounts {
		if p.accounts[i].Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(
			[]byte(p.accounts[i].PasswordHash), []byte(password)); err != nil {
			p.logger.Warn("failed login attempt", "username", username)
			return nil, ErrInvalidCredentials
		}
		acct := p.accounts[i]
		return &acct, nil
	}
	return nil, ErrInvalidCredentials
}
