package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.userRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	var saved domain.User
	suite.userRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.RegisterRequest{Email: " Ana@Example.COM ", Name: "Ana", Password: "s3cret-pass"})

	suite.Require().NoError(err)
	suite.Equal("ana@example.com", user.Email)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.NotEqual("s3cret-pass", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
	suite.Equal(user.UserID, saved.CreatedBy)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	suite.userRepo.On("SaveUser", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.RegisterRequest{Email: "ana@example.com", Name: "Ana", Password: "s3cret-pass"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)
	local := &domain.User{UserID: "user-1", Email: "ana@example.com", PasswordHash: hash, AuthProvider: domain.ProviderLocal}
	google := &domain.User{UserID: "user-2", Email: "bob@example.com", AuthProvider: domain.ProviderGoogle}

	suite.userRepo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(local, nil).Times(2)
	suite.userRepo.On("FindUserByEmail", suite.ctx, "bob@example.com").Return(google, nil).Once()
	suite.userRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(suite.ctx, "ANA@example.com", "s3cret-pass")
	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ana@example.com", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "bob@example.com", "")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "nobody@example.com", "x")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func googleIdentity(sub, email string, verified bool) domain.ExternalIdentity {
	return domain.ExternalIdentity{Provider: domain.ProviderGoogle, ProviderUserID: sub, Email: email, Name: "Ana", EmailVerified: verified}
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_Existing() {
	existing := &domain.User{UserID: "user-1", AuthProvider: domain.ProviderGoogle, ProviderUserID: "g-1"}
	suite.userRepo.On("FindUserByProviderDetails", suite.ctx, domain.ProviderGoogle, "g-1").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, googleIdentity("g-1", "ana@example.com", true))

	suite.Require().NoError(err)
	suite.Same(existing, user)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ReusesVerifiedEmail() {
	local := &domain.User{UserID: "user-1", Email: "ana@example.com", AuthProvider: domain.ProviderLocal}
	suite.userRepo.On("FindUserByProviderDetails", suite.ctx, domain.ProviderGoogle, "g-1").Return(nil, apperrors.ErrNotFound).Twice()
	suite.userRepo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(local, nil).Twice()

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, googleIdentity("g-1", "ana@example.com", true))
	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)

	_, err = suite.service.FindOrCreateOAuthUser(suite.ctx, googleIdentity("g-1", "ana@example.com", false))
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_Creates() {
	suite.userRepo.On("FindUserByProviderDetails", suite.ctx, domain.ProviderGoogle, "g-9").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("FindUserByEmail", suite.ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID == "g-9" && u.PasswordHash == "" && u.EmailVerified
	})).Return(nil).Once()

	identity := googleIdentity("g-9", "New@Example.com", true)
	identity.Name = "  "
	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, identity)

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Email)
	suite.Equal("new@example.com", user.Name)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", JWTExpiryDuration: 15 * time.Minute, JWTIssuer: "household-ledger"}
	svc := services.NewTokenService(cfg)

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), &domain.User{UserID: "user-1"})

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)
	claims, err := utils.ParseAndValidateJWT(token, "secret", "household-ledger")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func newTokenEndpoint(t *testing.T, status int, body map[string]any) oauth2.Endpoint {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
}

var googleCfg = &config.Config{GoogleClientID: "client-id", GoogleClientSecret: "s", GoogleRedirectURL: "http://localhost/cb"}

func TestGoogleSignIn_LoginURL(t *testing.T) {
	svc := services.NewGoogleSignInService(googleCfg)

	url, state, err := svc.LoginURL(context.Background())

	require.NoError(t, err)
	assert.Len(t, state, 32)
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "state="+state)
	assert.Contains(t, url, "client_id=client-id")
}

func TestGoogleSignIn_Identify(t *testing.T) {
	endpoint := newTokenEndpoint(t, http.StatusOK, map[string]any{
		"access_token": "google-access", "token_type": "Bearer", "expires_in": 3600, "id_token": "raw-id-token",
	})
	var gotToken, gotAudience string
	validator := func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
		gotToken, gotAudience = idToken, audience
		return &idtoken.Payload{Subject: "google-sub", Claims: map[string]any{
			"email": "ana@example.com", "name": "Ana", "email_verified": true,
		}}, nil
	}
	svc := services.NewGoogleSignInService(googleCfg, services.WithGoogleEndpoint(endpoint), services.WithIDTokenValidator(validator))

	identity, err := svc.Identify(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "raw-id-token", gotToken)
	assert.Equal(t, "client-id", gotAudience)
	assert.Equal(t, domain.ExternalIdentity{
		Provider: domain.ProviderGoogle, ProviderUserID: "google-sub",
		Email: "ana@example.com", Name: "Ana", EmailVerified: true,
	}, *identity)
}

func TestGoogleSignIn_IdentifyErrors(t *testing.T) {
	ctx := context.Background()
	accept := func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "google-sub", Claims: map[string]any{}}, nil
	}
	reject := func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("token expired")
	}
	withIDToken := map[string]any{"access_token": "a", "token_type": "Bearer", "id_token": "raw"}

	tests := []struct {
		name      string
		status    int
		body      map[string]any
		validator services.IDTokenValidator
		want      int
	}{
		{"invalid grant", http.StatusBadRequest, map[string]any{"error": "invalid_grant"}, accept, http.StatusBadRequest},
		{"google failure", http.StatusInternalServerError, map[string]any{"error": "server_error"}, accept, http.StatusBadGateway},
		{"no id token", http.StatusOK, map[string]any{"access_token": "a", "token_type": "Bearer"}, accept, http.StatusBadGateway},
		{"rejected id token", http.StatusOK, withIDToken, reject, http.StatusUnauthorized},
		{"missing email claim", http.StatusOK, withIDToken, accept, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewGoogleSignInService(googleCfg,
				services.WithGoogleEndpoint(newTokenEndpoint(t, tt.status, tt.body)),
				services.WithIDTokenValidator(tt.validator))

			_, err := svc.Identify(ctx, "code")

			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.StatusCode(err))
		})
	}

	_, err := services.NewGoogleSignInService(&config.Config{}).Identify(ctx, "code")
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
}
