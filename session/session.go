package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/neelammkw/elearning-client/models"
)

var ErrNoToken = errors.New("session: no access token")

// Session is the explicit, read-only authentication state passed to every
// consumer. It is created from a successful login and cleared on logout;
// leaf components never reach into global state for the current user.
type Session struct {
	user        *models.User
	accessToken string
	expiresAt   time.Time
}

// Anonymous returns the unauthenticated session.
func Anonymous() *Session {
	return &Session{}
}

// FromToken builds a session from the login response. The token signature is
// the server's concern; the client only reads the claims it was handed, so
// the token is parsed without verification.
func FromToken(accessToken string, user models.User) (*Session, error) {
	if accessToken == "" {
		return nil, ErrNoToken
	}

	s := &Session{user: &user, accessToken: accessToken}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, err
	}

	if exp, ok := claims["exp"].(float64); ok {
		s.expiresAt = time.Unix(int64(exp), 0)
	}
	if s.user.ID == "" {
		if id, ok := claims["id"].(string); ok {
			s.user.ID = id
		}
	}

	return s, nil
}

// UserID reports the authenticated user id. ok is false for anonymous or
// expired sessions; callers use this to skip network calls entirely.
func (s *Session) UserID() (string, bool) {
	if s == nil || s.user == nil || s.user.ID == "" {
		return "", false
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", false
	}
	return s.user.ID, true
}

func (s *Session) User() (models.User, bool) {
	if _, ok := s.UserID(); !ok {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) AccessToken() string {
	if s == nil {
		return ""
	}
	return s.accessToken
}

func (s *Session) IsAdmin() bool {
	u, ok := s.User()
	return ok && u.IsAdmin()
}

// Clear drops the authenticated state in place (logout).
func (s *Session) Clear() {
	s.user = nil
	s.accessToken = ""
	s.expiresAt = time.Time{}
}
