package handlers

import (
	"errors"
	"net/http"

	"devconnector/internal/api/interfaces"
	"devconnector/internal/api/middlewares"
	"devconnector/internal/api/models"
	"devconnector/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// GetAuthUser returns the authenticated user without the password hash
func GetAuthUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := services.UserRepository().GetByID(c.Request.Context(), currentUser(c))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Msg: models.MsgUserNotFound})
			return
		}
		if err != nil {
			serverError(c, services, "get_auth_user", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// Login checks credentials and returns a session token. Unknown email and
// wrong password produce the same response.
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if !bindRequest(c, &req) {
			return
		}

		user, err := services.UserRepository().GetByEmail(c.Request.Context(), req.Email)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			serverError(c, services, "login", err)
			return
		}

		if user == nil || !services.PasswordHasher().Verify(req.Password, user.PasswordHash) {
			services.GetLogger().SecurityEvent("login_failed", "", middlewares.RequestID(c))
			c.JSON(http.StatusBadRequest, models.NewErrorList(models.MsgInvalidLogin))
			return
		}

		respondWithToken(c, services, "login", user.ID)
	}
}
