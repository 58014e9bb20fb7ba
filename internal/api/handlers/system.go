package handlers

import (
	"context"
	"net/http"
	"time"

	"devconnector/internal/api/interfaces"
	"devconnector/internal/api/models"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

// HealthCheck reports process and database health
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := models.HealthResponse{
			Status:    "healthy",
			Database:  "connected",
			Timestamp: time.Now().Unix(),
			Version:   version,
		}

		if err := services.Ping(ctx); err != nil {
			services.GetLogger().WithError(err).Error("Database health check failed")
			resp.Status = "unhealthy"
			resp.Database = "unavailable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
