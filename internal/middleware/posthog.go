package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/insightbud/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
	// Long-lived stream, tracked once on connect by the handler
	"/api/v1/rollover/surplus/stream": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.FullPath()] {
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

		// "/api/v1/goals/:goalID/contributions" -> "POST_api_v1_goals_goalID_contributions"
		route := strings.TrimPrefix(c.FullPath(), "/")
		if route == "" {
			return
		}
		route = strings.NewReplacer("/", "_", ":", "").Replace(route)
		eventName := c.Request.Method + "_" + route

		props := map[string]any{
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
