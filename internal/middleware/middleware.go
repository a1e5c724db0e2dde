package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/auth"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// ContextUserID is the gin context key holding the authenticated user id
const ContextUserID = "user_id"

// CORS configures cross-origin access for the public site and admin panel
func CORS(allowedOrigins string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RequestLogger logs each request with a generated request id
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		log.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("Request handled")
	}
}

// AdminRequired gates mutating routes. It validates the bearer session
// token, loads the user behind it and fails closed unless the admin flag
// is set.
func AdminRequired(adminService service.AdminService, jwtSecret string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.FromAuthHeader(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			utils.UnauthorizedResponse(c, "Unauthorized: Admin access required")
			c.Abort()
			return
		}

		if claims.Role != auth.RoleAdmin {
			utils.UnauthorizedResponse(c, "Unauthorized: Admin access required")
			c.Abort()
			return
		}

		if err := adminService.EnsureAdmin(claims.UserID); err != nil {
			log.WithError(err).WithField("user_id", claims.UserID).Warn("Admin gate rejected request")
			utils.UnauthorizedResponse(c, "Unauthorized: Admin access required")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// NoRouteHandler answers unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found")
	}
}
