package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// EventName derives an analytics event name from a route template,
// e.g. "/api/v1/households/:household_id/transactions" -> "api_v1_households_transactions".
func EventName(fullPath string) string {
	segments := strings.Split(strings.Trim(fullPath, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "_")
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful authenticated API calls.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if householdID := c.Param("household_id"); householdID != "" {
			props["household_id"] = householdID
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
