package handlers

import (
	"errors"
	"net/http"

	"devconnector/internal/api/interfaces"
	"devconnector/internal/api/middlewares"
	"devconnector/internal/api/models"
	"devconnector/internal/database"
	"devconnector/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterUser handles account registration and returns a session token
func RegisterUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if !bindRequest(c, &req) {
			return
		}

		ctx := c.Request.Context()

		exists, err := services.UserRepository().ExistsByEmail(ctx, req.Email)
		if err != nil {
			serverError(c, services, "register", err)
			return
		}
		if exists {
			c.JSON(http.StatusBadRequest, models.NewErrorList(models.MsgUserExists))
			return
		}

		hash, err := services.PasswordHasher().Hash(req.Password)
		if err != nil {
			serverError(c, services, "register", err)
			return
		}

		user := &database.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Avatar:       gravatarURL(req.Email),
		}

		// The unique index still catches a concurrent registration
		if err := services.UserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repositories.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, models.NewErrorList(models.MsgUserExists))
				return
			}
			serverError(c, services, "register", err)
			return
		}

		services.GetLogger().AuditEvent("user_registered", user.ID, "user", middlewares.RequestID(c))

		respondWithToken(c, services, "register", user.ID)
	}
}
