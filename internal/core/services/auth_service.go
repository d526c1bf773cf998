package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService issues the HS256 access tokens checked by middleware.AuthMiddleware.
type tokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{secret: cfg.JWTSecret, expiry: cfg.JWTExpiryDuration, issuer: cfg.JWTIssuer}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

const oauthStateBytes = 24

// IDTokenValidator checks a Google ID token against an audience.
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleSignInOption configures the Google sign-in service.
type GoogleSignInOption func(*googleSignInService)

// WithGoogleEndpoint points the code exchange at another token endpoint.
func WithGoogleEndpoint(endpoint oauth2.Endpoint) GoogleSignInOption {
	return func(s *googleSignInService) { s.oauth.Endpoint = endpoint }
}

// WithIDTokenValidator replaces idtoken.Validate.
func WithIDTokenValidator(v IDTokenValidator) GoogleSignInOption {
	return func(s *googleSignInService) { s.validate = v }
}

type googleSignInService struct {
	BaseService
	oauth    oauth2.Config
	validate IDTokenValidator
}

// NewGoogleSignInService creates the Google sign-in service from the OAuth client settings.
func NewGoogleSignInService(cfg *config.Config, opts ...GoogleSignInOption) portssvc.GoogleSignInSvcFacade {
	s := &googleSignInService{
		oauth: oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *googleSignInService) LoginURL(ctx context.Context) (string, string, error) {
	state, err := utils.RandomURLToken(oauthStateBytes)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate OAuth state: %w", err)
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

func (s *googleSignInService) Identify(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	if s.oauth.ClientID == "" {
		return nil, apperrors.NewInternalServerError("Google sign-in is not configured")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
			return nil, apperrors.NewBadRequestError("Invalid or expired authorization code")
		}
		s.LogError(ctx, err, "Google code exchange failed")
		return nil, apperrors.NewBadGatewayError("Failed to communicate with Google")
	}

	raw, _ := token.Extra("id_token").(string)
	if raw == "" {
		return nil, apperrors.NewBadGatewayError("Google response carried no ID token")
	}

	payload, err := s.validate(ctx, raw, s.oauth.ClientID)
	if err != nil {
		s.LogWarn(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthorizedError("Invalid Google ID token")
	}

	identity := &domain.ExternalIdentity{Provider: domain.ProviderGoogle, ProviderUserID: payload.Subject}
	identity.Email, _ = payload.Claims["email"].(string)
	identity.Name, _ = payload.Claims["name"].(string)
	identity.EmailVerified, _ = payload.Claims["email_verified"].(bool)
	if identity.ProviderUserID == "" || identity.Email == "" {
		return nil, apperrors.NewUnauthorizedError("Google token is missing the subject or email")
	}
	return identity, nil
}
