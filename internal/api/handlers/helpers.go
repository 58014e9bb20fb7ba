package handlers

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"devconnector/internal/api/interfaces"
	"devconnector/internal/api/middlewares"
	"devconnector/internal/api/models"
	"devconnector/internal/auth"

	"github.com/gin-gonic/gin"
)

type validatable interface {
	Validate() error
}

// bindRequest decodes the JSON body into req and runs its validation rules.
// An empty body decodes to the zero value so the field messages are reported.
// It writes the 400 response itself and reports whether the handler may go on.
func bindRequest(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.NewErrorList(models.MsgInvalidRequest))
		return false
	}

	if errs := models.ValidationErrors(req.Validate()); errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return false
	}

	return true
}

// serverError counts a store failure and answers 500
func serverError(c *gin.Context, services interfaces.Services, operation string, err error) {
	services.GetMetrics().StoreError(operation)
	internalError(c, services, operation, err)
}

// internalError logs err once with the request id and answers 500. The cause
// is never sent to the client.
func internalError(c *gin.Context, services interfaces.Services, operation string, err error) {
	services.GetLogger().StructuredError("Request failed", err, map[string]interface{}{
		"request_id": middlewares.RequestID(c),
		"operation":  operation,
	})

	c.JSON(http.StatusInternalServerError, models.MessageResponse{Msg: models.MsgServerError})
}

// respondWithToken issues a session token for userID and writes it as the
// sole success payload
func respondWithToken(c *gin.Context, services interfaces.Services, operation, userID string) {
	token, err := services.TokenService().Issue(auth.Identity{ID: userID})
	if err != nil {
		services.GetMetrics().TokenSignError()
		internalError(c, services, operation, err)
		return
	}

	services.GetMetrics().TokenIssued()
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// currentUser reads the identity attached by the auth gate. Routes using it
// are always mounted behind AuthRequired.
func currentUser(c *gin.Context) string {
	id, _ := middlewares.CurrentUserID(c)
	return id
}

// gravatarURL builds the avatar reference for an email address
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("//www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
