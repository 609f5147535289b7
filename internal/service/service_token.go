// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/models"
)

const tracerName = "github.com/MKhiriev/go-ride-hail/internal/service"

var signingMethod = jwt.SigningMethodHS256

// tokenService signs HS256 tokens with one shared secret. All fields are
// read-only after construction, so the service is safe for concurrent use.
type tokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time

	logger *logger.Logger
}

// TokenOption customizes a token service.
type TokenOption func(*tokenService)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService builds a TokenService from cfg. It refuses an empty
// secret regardless of how the configuration was assembled.
func NewTokenService(cfg config.Auth, logger *logger.Logger, opts ...TokenOption) (TokenService, error) {
	if cfg.TokenSecret == "" {
		return nil, ErrEmptyTokenSecret
	}

	s := &tokenService{
		secret: []byte(cfg.TokenSecret),
		expiry: cfg.TokenExpiry.Duration(),
		issuer: cfg.TokenIssuer,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *tokenService) Issue(ctx context.Context, subjectID, email, role string) (models.Token, error) {
	if subjectID == "" {
		return models.Token{}, ErrEmptySubject
	}
	if role == "" {
		role = models.RoleUser
	}

	now := s.now()
	expiresAt := now.Add(s.expiry)
	claims := models.TokenClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subjectID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	return models.Token{
		SignedString: signed,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Identity, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "TokenService.Verify")
	defer span.End()

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(s.issuer))
	}

	claims := new(models.TokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOptions...)
	if err == nil && (!token.Valid || claims.Subject == "") {
		err = jwt.ErrTokenInvalidClaims
	}
	if err != nil {
		// the reason is logged, never returned
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		span.SetStatus(codes.Error, "token rejected")
		return models.Identity{}, apperror.NewAuthentication(app.MsgInvalidOrExpiredToken)
	}

	role := claims.Role
	if role == "" {
		role = models.RoleUser
	}
	span.SetAttributes(attribute.String("auth.role", role))

	return models.Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      role,
	}, nil
}
