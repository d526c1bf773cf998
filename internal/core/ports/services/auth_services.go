package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// TokenSvcFacade issues the application's access tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleSignInSvcFacade runs the server side of the Google authorization code flow.
type GoogleSignInSvcFacade interface {
	// LoginURL returns the consent URL and the CSRF state embedded in it.
	LoginURL(ctx context.Context) (url string, state string, err error)
	// Identify redeems an authorization code and returns the identity asserted
	// by Google's verified ID token.
	Identify(ctx context.Context, code string) (*domain.ExternalIdentity, error)
}
