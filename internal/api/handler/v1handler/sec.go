package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"midcar/internal/config"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is the type of the context keys set by this package.
type CtxKey string

// UserIDKey holds the domain.UserID of the authenticated staff member.
const UserIDKey CtxKey = "userID"

// GetUserIDFromContext returns the authenticated user, or the zero UserID on
// public routes.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// HandleBearerAuth verifies token and stores its subject as the user id in
// the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	userID := domain.UserID(sub)
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = logger.WithFields(ctx, zap.String(string(UserIDKey), userID.String()))

	return ctx, nil
}

// Middleware rejects requests without a valid bearer token.
func (s SecHandler) Middleware(h *Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			h.fail(c, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			h.fail(c, err)

			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
