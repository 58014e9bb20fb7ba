package middlewares

import (
	"net/http"

	"devconnector/internal/api/models"
	"devconnector/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"request_id": c.GetString(requestIDKey),
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.MessageResponse{Msg: models.MsgServerError})
	})
}
