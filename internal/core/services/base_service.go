package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/middleware"
)

// LedgerProvider hands out the cached ledger of a household.
// *ledger.Registry is the production implementation.
type LedgerProvider interface {
	Get(ctx context.Context, householdID string) (*ledger.Ledger, error)
	Invalidate(householdID string)
}

var _ LedgerProvider = (*ledger.Registry)(nil)

// BaseService provides common functionality for all services
type BaseService struct {
	HouseholdAuthorizer portssvc.HouseholdAuthorizerSvc
}

// GetLogger gets the request logger from context, or the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role in a household.
// A service built without an authorizer denies nothing; only tests do that.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, householdID string, requiredRole domain.HouseholdRole) error {
	if s.HouseholdAuthorizer != nil {
		return s.HouseholdAuthorizer.AuthorizeUserAction(ctx, userID, householdID, requiredRole)
	}
	s.LogDebug(ctx, "No household authorizer provided, access granted",
		slog.String("user_id", userID),
		slog.String("household_id", householdID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
