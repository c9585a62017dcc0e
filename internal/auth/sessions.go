package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/jesses-code-adventures/cms/internal/models"
)

const DefaultSessionTTL = 12 * time.Hour

type session struct {
	username string
	expires  time.Time
}

// Sessions is an in-memory session store. Cookie values are the session
// token followed by an HMAC of the token under the server secret, so a
// forged or truncated cookie is rejected before the map lookup.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	items map[string]session
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		items:  make(map[string]session),
	}
}

func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Create starts a session and returns the signed cookie value.
func (s *Sessions) Create(username string) string {
	token := models.NewUUID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.items[token] = session{username: username, expires: s.now().Add(s.ttl)}
	return token + "." + s.sign(token)
}

// Lookup returns the username for a valid, unexpired cookie value.
func (s *Sessions) Lookup(value string) (string, bool) {
	token, ok := s.verify(value)
	if !ok {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[token]
	if !ok {
		return "", false
	}
	if !s.now().Before(sess.expires) {
		delete(s.items, token)
		return "", false
	}
	return sess.username, true
}

func (s *Sessions) Delete(value string) {
	token, ok := s.verify(value)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *Sessions) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Sessions) verify(value string) (string, bool) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" || sig == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(token))) {
		return "", false
	}
	return token, true
}

func (s *Sessions) pruneLocked() {
	now := s.now()
	for token, sess := range s.items {
		if !now.Before(sess.expires) {
			delete(s.items, token)
		}
	}
}
