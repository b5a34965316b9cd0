// auth_test.go

package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTSetsCredentialCookie(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/jwt", gin.H{"email": "alice@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decodeBody(t, w, &body)
	assert.Equal(t, true, body["success"])

	var token *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			token = cookie
		}
	}
	require.NotNil(t, token)
	assert.NotEmpty(t, token.Value)
	assert.True(t, token.HttpOnly)
	assert.True(t, token.Secure)
	assert.Equal(t, http.SameSiteNoneMode, token.SameSite)
	assert.Equal(t, 3600, token.MaxAge)

	claims, err := parseToken(token.Value, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestProtectedEndpointsRequireCookie(t *testing.T) {
	env := newTestEnv()

	for _, path := range []string{
		"/purchaseFood?email=alice@example.com",
		"/myFoods?email=alice@example.com",
	} {
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestGarbageCookieRejected(t *testing.T) {
	env := newTestEnv()

	cookie := &http.Cookie{Name: "token", Value: "not-a-jwt"}
	w := env.do(t, http.MethodGet, "/purchaseFood?email=alice@example.com", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv()

	claims := Claims{
		Email: "alice@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	cookie := &http.Cookie{Name: "token", Value: expired}
	w := env.do(t, http.MethodGet, "/purchaseFood?email=alice@example.com", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWrongSecretRejected(t *testing.T) {
	env := newTestEnv()

	forged, err := issueToken("alice@example.com", []byte("other-secret"))
	require.NoError(t, err)

	cookie := &http.Cookie{Name: "token", Value: forged}
	w := env.do(t, http.MethodGet, "/purchaseFood?email=alice@example.com", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScopeMismatchForbidden(t *testing.T) {
	env := newTestEnv()
	cookie := env.authCookie(t, "alice@example.com")

	for _, path := range []string{
		"/purchaseFood?email=bob@example.com",
		"/myFoods?email=bob@example.com",
	} {
		w := env.do(t, http.MethodGet, path, nil, cookie)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestCookieRoundTrip(t *testing.T) {
	env := newTestEnv()
	cookie := env.authCookie(t, "alice@example.com")

	w := env.do(t, http.MethodGet, "/purchaseFood?email=alice@example.com", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/logout", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var token *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			token = cookie
		}
	}
	require.NotNil(t, token)
	assert.Empty(t, token.Value)
	assert.Negative(t, token.MaxAge)
}

func TestRegisterThenLogin(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created User
	decodeBody(t, w, &created)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Empty(t, created.Password)
	assert.False(t, created.ID.IsZero())

	// stored as a hash, never plain
	require.Len(t, env.users.users, 1)
	stored := env.users.users[0]
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))

	w = env.do(t, http.MethodPost, "/login", gin.H{"email": "alice@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/login", gin.H{"email": "nobody@example.com", "password": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/login", gin.H{"email": "alice@example.com", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)

	var token *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			token = cookie
		}
	}
	require.NotNil(t, token)

	// the login cookie passes the auth gate like a /jwt one
	w = env.do(t, http.MethodGet, "/purchaseFood?email=alice@example.com", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
