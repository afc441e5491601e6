package handler

import (
	"net/http"
	"time"

	"qr-register/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler that pings every dependency. A failed ping
// reports 503 with the failing dependency named.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				deps[checker.Name()] = err.Error()
				continue
			}
			deps[checker.Name()] = "ok"
		}

		c.JSON(status, gin.H{
			"status":       httpStatusWord(status),
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func httpStatusWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}
