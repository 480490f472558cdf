package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-news-panel/pkg/log"
)

type tokenClaims struct {
	UserID string `json:"userID"`
	jwt.RegisteredClaims
}

// issueToken выпускает HS256-токен с claim userID и сроком auth.token_ttl.
func (s *Service) issueToken(ctx context.Context, userID string) (string, time.Time, error) {
	const op = "service/token/issueToken"

	now := s.now()
	expiresAt := now.Add(s.cfg.Auth.TokenTTL)

	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Auth.Issuer,
			Subject:   userID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		log.From(ctx).Error("token_sign_failed", "op", op, "err", err)

		return "", time.Time{}, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return signed, expiresAt, nil
}

// VerifyToken проверяет подпись, срок и издателя токена и возвращает userID.
// Любая ошибка проверки: ErrUnauthenticated.
func (s *Service) VerifyToken(ctx context.Context, token string) (string, error) {
	const op = "service/token/VerifyToken"

	lg := log.From(ctx).With("op", op)

	if token == "" {
		return "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Auth.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			lg.Warn("token expired")
		} else {
			lg.Warn("invalid token", "err", err)
		}

		return "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		lg.Warn("invalid token claims")

		return "", fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	return claims.UserID, nil
}
