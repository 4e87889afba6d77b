package main

import (
	"context"
	"fmt"
	"midcar/internal/config"
	"midcar/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// staffToken signs an RS256 token for the staff member identified by subject.
func staffToken(privateKeyPEM string, subject uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})

	return token.SignedString(key)
}

// JWTCommand issues staff tokens for the back-office API.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues a staff token for the back-office API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			raw, _ := cmd.Flags().GetString("staff")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			staffID, err := uuid.Parse(raw)
			if err != nil {
				logger.Fatal(ctx, "staff id must be a uuid", zap.String("staff", raw), zap.Error(err))
			}
			if ttl <= 0 {
				logger.Fatal(ctx, "ttl must be positive", zap.Duration("ttl", ttl))
			}

			signed, err := staffToken(cfg.JWT.PrivateKey, staffID, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not issue staff token", zap.Error(err))
			}

			logger.Debug(ctx, "issued staff token", zap.Stringer("staff", staffID), zap.Duration("ttl", ttl))
			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("staff", "", "staff member id (uuid), becomes the token subject")
	cmd.Flags().Duration("ttl", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("staff")

	return cmd
}
