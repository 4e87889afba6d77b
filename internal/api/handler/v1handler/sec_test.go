package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"midcar/internal/api/handler/v1handler"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type staffKeys struct {
	private   *rsa.PrivateKey
	publicPEM string
}

func newStaffKeys(tb testing.TB) staffKeys {
	tb.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	return staffKeys{
		private:   priv,
		publicPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}
}

func (k staffKeys) secHandler(tb testing.TB) *v1handler.SecHandler {
	tb.Helper()

	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: k.publicPEM})
	require.NoError(tb, err)

	return sh
}

func (k staffKeys) sign(tb testing.TB, claims jwt.Claims) string {
	tb.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.private)
	require.NoError(tb, err)

	return signed
}

// staffClaims are the claims the jwt command issues, valid for an hour from now.
func staffClaims(subject string, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func TestHandleBearerAuth_StaffToken(t *testing.T) {
	keys := newStaffKeys(t)
	sh := keys.secHandler(t)

	staff := uuid.New()
	ctx, err := sh.HandleBearerAuth(context.Background(), keys.sign(t, staffClaims(staff.String(), time.Now())))
	require.NoError(t, err)

	got, ok := ctx.Value(v1handler.UserIDKey).(domain.UserID)
	require.True(t, ok)
	require.Equal(t, domain.UserID(staff), got)
	require.Equal(t, got, v1handler.GetUserIDFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	keys := newStaffKeys(t)
	sh := keys.secHandler(t)
	other := newStaffKeys(t)
	now := time.Now()

	expired := staffClaims(uuid.NewString(), now.Add(-2*time.Hour))
	notYet := staffClaims(uuid.NewString(), now.Add(time.Hour))
	noExpiry := staffClaims(uuid.NewString(), now)
	noExpiry.ExpiresAt = nil

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, staffClaims(uuid.NewString(), now)).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "foreign key", token: other.sign(t, staffClaims(uuid.NewString(), now))},
		{name: "expired", token: keys.sign(t, expired)},
		{name: "not valid yet", token: keys.sign(t, notYet)},
		{name: "no expiry", token: keys.sign(t, noExpiry)},
		{name: "subject is not a staff id", token: keys.sign(t, staffClaims("admin@midcar.es", now))},
		{name: "hmac algorithm", token: hs256},
		{name: "garbage", token: "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := sh.HandleBearerAuth(context.Background(), tt.token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
			require.True(t, v1handler.GetUserIDFromContext(ctx).IsZero())
		})
	}
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestGetUserIDFromContext_Public(t *testing.T) {
	require.True(t, v1handler.GetUserIDFromContext(context.Background()).IsZero())
}

func TestSecHandler_Middleware(t *testing.T) {
	keys := newStaffKeys(t)
	sh := keys.secHandler(t)
	staff := uuid.New()

	r := gin.New()
	r.GET("/v1/dashboard", sh.Middleware(v1handler.New(v1handler.Deps{})), func(c *gin.Context) {
		c.String(http.StatusOK, v1handler.GetUserIDFromContext(c.Request.Context()).String())
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "Bearer " + keys.sign(t, staffClaims(staff.String(), time.Now())), status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + keys.sign(t, staffClaims(staff.String(), time.Now())), status: http.StatusOK},
		{name: "missing", status: http.StatusUnauthorized},
		{name: "basic auth", header: "Basic bWlkY2FyOnNlY3JldA==", status: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				require.Equal(t, staff.String(), rec.Body.String())
			}
		})
	}
}
