package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neelammkw/elearning-client/models"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("testsecret"))
	require.NoError(t, err)
	return signed
}

func TestAnonymousSession(t *testing.T) {
	s := Anonymous()

	_, ok := s.UserID()
	assert.False(t, ok)
	_, ok = s.User()
	assert.False(t, ok)
	assert.False(t, s.IsAdmin())
	assert.Empty(t, s.AccessToken())
}

func TestFromTokenReadsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signToken(t, jwt.MapClaims{"id": "user_1", "exp": exp.Unix()})

	s, err := FromToken(token, models.User{Name: "Learner", Role: "user"})
	require.NoError(t, err)

	// The user id comes from the token when the login payload omits it.
	id, ok := s.UserID()
	require.True(t, ok)
	assert.Equal(t, "user_1", id)
	assert.Equal(t, token, s.AccessToken())

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Learner", u.Name)
}

func TestFromTokenPrefersLoginPayloadID(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "claim_id", "exp": time.Now().Add(time.Hour).Unix()})

	s, err := FromToken(token, models.User{ID: "payload_id"})
	require.NoError(t, err)

	id, ok := s.UserID()
	require.True(t, ok)
	assert.Equal(t, "payload_id", id)
}

func TestFromTokenRejectsEmptyToken(t *testing.T) {
	_, err := FromToken("", models.User{ID: "user_1"})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestFromTokenRejectsMalformedToken(t *testing.T) {
	_, err := FromToken("not.a.jwt", models.User{ID: "user_1"})
	assert.Error(t, err)
}

func TestExpiredSessionReadsAsAnonymous(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "user_1", "exp": time.Now().Add(-time.Minute).Unix()})

	s, err := FromToken(token, models.User{ID: "user_1"})
	require.NoError(t, err)

	_, ok := s.UserID()
	assert.False(t, ok, "expired sessions must not report a user id")
	assert.False(t, s.IsAdmin())
}

func TestIsAdmin(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "user_1", "exp": time.Now().Add(time.Hour).Unix()})

	admin, err := FromToken(token, models.User{ID: "user_1", Role: "admin"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	learner, err := FromToken(token, models.User{ID: "user_1", Role: "user"})
	require.NoError(t, err)
	assert.False(t, learner.IsAdmin())
}

func TestClear(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"id": "user_1", "exp": time.Now().Add(time.Hour).Unix()})
	s, err := FromToken(token, models.User{ID: "user_1"})
	require.NoError(t, err)

	s.Clear()
	_, ok := s.UserID()
	assert.False(t, ok)
	assert.Empty(t, s.AccessToken())
}
