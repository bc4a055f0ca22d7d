package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
)

const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, POST, PUT, PATCH, OPTIONS"
	corsMaxAge       = "600"
)

// CORSMiddleware echoes allowed origins back. With no origins configured
// every origin is allowed, which is what the booking widget needs in
// development.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	allow := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		allow[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		permitted := origin != ""
		if permitted && len(allow) > 0 {
			_, permitted = allow[origin]
		}

		if permitted {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Max-Age", corsMaxAge)
		}

		// 🔑 PRE-FLIGHT
		if c.Request.Method == http.MethodOptions {
			if origin != "" && !permitted {
				httperr.Abort(c, http.StatusForbidden, "origin_not_allowed", "Origen no permitido.")
				return
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
