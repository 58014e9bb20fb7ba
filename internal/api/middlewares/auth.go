package middlewares

import (
	"net/http"

	"devconnector/internal/api/interfaces"
	"devconnector/internal/api/models"
	"devconnector/internal/auth"
	"devconnector/internal/metrics"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthRequired middleware validates the session token carried in the
// x-auth-token header. The token is used verbatim and never logged.
func AuthRequired(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := services.GetLogger().WithFields(map[string]interface{}{
			"request_id": c.GetString(requestIDKey),
			"component":  "auth_gate",
		})

		token := c.GetHeader(auth.HeaderName)
		if token == "" {
			services.GetMetrics().GateDecision(metrics.OutcomeMissing)
			log.Debug("Rejected request without token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{Msg: models.MsgNoToken})
			return
		}

		identity, err := services.TokenService().Verify(token)
		if err != nil {
			// Expired, tampered and malformed tokens get the same response
			services.GetMetrics().GateDecision(metrics.OutcomeInvalid)
			log.Debug("Rejected request with invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.MessageResponse{Msg: models.MsgInvalidToken})
			return
		}

		services.GetMetrics().GateDecision(metrics.OutcomeAllowed)
		c.Set(userIDKey, identity.ID)
		c.Next()
	}
}

// CurrentUserID returns the identity attached by AuthRequired
func CurrentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}
