// Package auth holds the single administrator login and the session store
// that backs the HTTP surface.
package auth

import (
	"crypto/subtle"

	"github.com/jesses-code-adventures/cms/internal/config"
)

// Credentials checks a username and password against the configured admin account.
type Credentials struct {
	username     string
	password     string
	passwordHash string
}

func NewCredentials(cfg *config.Config) *Credentials {
	return &Credentials{
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
	}
}

// Configured reports whether an admin account exists. Without one every login fails.
func (c *Credentials) Configured() bool {
	return c.username != "" && (c.password != "" || c.passwordHash != "")
}

// Check prefers the argon2id hash when both a hash and a plain password are set.
func (c *Credentials) Check(username, password string) bool {
	if !c.Configured() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	var passOK bool
	if c.passwordHash != "" {
		passOK = VerifyPassword(password, c.passwordHash)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	}
	return userOK && passOK
}
