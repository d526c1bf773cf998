package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google sign-in. The frontend receives the
// authorization code from Google and posts it here.
type GoogleOAuthHandler struct {
	signIn       portssvc.GoogleSignInSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func NewGoogleOAuthHandler(signIn portssvc.GoogleSignInSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{signIn: signIn, userService: us, tokenService: ts}
}

// LoginURLGoogle godoc
// @Summary Start Google sign-in
// @Description Returns the Google consent URL and the state value the frontend must check on return.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginURLGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	url, state, err := h.signIn.LoginURL(ctx)
	if err != nil {
		respondWithError(c, logger, err, "Failed to start Google sign-in")
		return
	}
	c.JSON(http.StatusOK, dto.GoogleLoginURLResponse{URL: url, State: state})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for access token
// @Description Redeems a Google authorization code, finds or creates the user and returns an application token.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 409 {object} ErrorResponse "Email registered with another provider"
// @Failure 502 {object} ErrorResponse "Google unreachable"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	identity, err := h.signIn.Identify(ctx, req.Code)
	if err != nil {
		respondWithError(c, logger, err, "Google sign-in failed")
		return
	}

	user, err := h.userService.FindOrCreateOAuthUser(ctx, *identity)
	if err != nil {
		respondWithError(c, logger, err, "Failed to process user authentication")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User signed in with Google", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleSignIn, services.User, services.TokenService)
	google := rg.Group("/google")
	{
		google.GET("/login", h.LoginURLGoogle)
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}
