package domain

import "fmt"

// Account is a user record owned by the identity provider. The calendar
// core only reads Team and Email from it: Team scopes every task operation
// and Email routes the daily digest.
type Account struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Team         string `yaml:"team"`
	Nickname     string `yaml:"nickname"`
	Email        string `yaml:"email,omitempty"`
}

// Validate checks the fields every account must carry. Email is optional;
// accounts without one are skipped by the digest.
func (a *Account) Validate() error {
	if a.Username == "" {
		return fmt.Errorf("%w: account username is required", ErrValidation)
	}
	if a.PasswordHash == "" {
		return fmt.Errorf("%w: account %q has no password hash", ErrValidation, a.Username)
	}
	if a.Team == "" {
		return fmt.Errorf("%w: account %q has no team", ErrValidation, a.Username)
	}
	return nil
}
