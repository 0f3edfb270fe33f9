package auth

import (
	"errors"

	"github.com/mobosolo/jdr/internal/util"
)

// ErrNotConfigured is returned when the login flow cannot work because
// a required server-side value is absent. Callers must surface it as a
// generic server error, distinct from invalid credentials.
var ErrNotConfigured = errors.New("admin credentials not configured")

// Credentials holds the expected admin login values, built once at
// startup from configuration and immutable afterwards.
type Credentials struct {
	Username     string
	Password     string // plaintext fallback, compared constant-time
	PasswordHash string // bcrypt hash, takes precedence when set
	TokenSecret  string
}

func (c Credentials) Configured() bool {
	if c.Username == "" || c.TokenSecret == "" {
		return false
	}
	return c.Password != "" || c.PasswordHash != ""
}

// Verify checks a submitted username/password pair. Both comparisons
// run before the results are combined so a mismatched username does
// not short-circuit the password check.
func (c Credentials) Verify(username, password string) (bool, error) {
	if !c.Configured() {
		return false, ErrNotConfigured
	}

	userOK := util.ConstantTimeEqual(username, c.Username)

	var passOK bool
	if c.PasswordHash != "" {
		passOK = util.CheckPasswordHash(password, c.PasswordHash)
	} else {
		passOK = util.ConstantTimeEqual(password, c.Password)
	}

	return userOK && passOK, nil
}
