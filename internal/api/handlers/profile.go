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

// GetMyProfile returns the profile of the authenticated user
func GetMyProfile(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := services.ProfileRepository().GetByUserID(c.Request.Context(), currentUser(c))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Msg: models.MsgNoProfile})
			return
		}
		if err != nil {
			serverError(c, services, "get_profile", err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// UpsertProfile creates the profile of the authenticated user or updates it.
// On update only non-empty fields overwrite; the social block is replaced.
func UpsertProfile(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProfileRequest
		if !bindRequest(c, &req) {
			return
		}

		ctx := c.Request.Context()
		userID := currentUser(c)

		if _, err := services.UserRepository().GetByID(ctx, userID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.MessageResponse{Msg: models.MsgUserNotFound})
				return
			}
			serverError(c, services, "upsert_profile", err)
			return
		}

		existing, err := services.ProfileRepository().GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			profile := &database.Profile{UserID: userID}
			applyProfileRequest(profile, req)
			err = services.ProfileRepository().Create(ctx, profile)
			if errors.Is(err, repositories.ErrProfileExists) {
				// Lost a race with a concurrent create; fall back to update
				err = services.ProfileRepository().Update(ctx, profile)
			}
		case err == nil:
			applyProfileRequest(existing, req)
			err = services.ProfileRepository().Update(ctx, existing)
		}
		if err != nil {
			serverError(c, services, "upsert_profile", err)
			return
		}

		services.GetLogger().AuditEvent("profile_saved", userID, "profile", middlewares.RequestID(c))

		respondWithProfile(c, services, "upsert_profile", userID)
	}
}

// ListProfiles returns every profile with its user summary
func ListProfiles(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := services.ProfileRepository().List(c.Request.Context())
		if err != nil {
			serverError(c, services, "list_profiles", err)
			return
		}

		c.JSON(http.StatusOK, profiles)
	}
}

// GetProfileByUserID returns the profile owned by the :user_id path parameter
func GetProfileByUserID(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := services.ProfileRepository().GetByUserID(c.Request.Context(), c.Param("user_id"))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Msg: models.MsgNoProfileForUser})
			return
		}
		if err != nil {
			serverError(c, services, "get_profile", err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// DeleteAccount removes the profile, its entries and the user record
func DeleteAccount(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUser(c)

		if err := services.ProfileRepository().DeleteWithUser(c.Request.Context(), userID); err != nil {
			serverError(c, services, "delete_account", err)
			return
		}

		services.GetLogger().AuditEvent("account_deleted", userID, "user", middlewares.RequestID(c))

		c.JSON(http.StatusOK, models.MessageResponse{Msg: models.MsgUserDeleted})
	}
}

// AddExperience prepends an experience entry to the user's profile
func AddExperience(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ExperienceRequest
		if !bindRequest(c, &req) {
			return
		}

		profile, ok := ownProfile(c, services, "add_experience")
		if !ok {
			return
		}

		exp := &database.Experience{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			From:        req.From,
			To:          req.To,
			Current:     req.Current,
			Description: req.Description,
		}
		if err := services.ProfileRepository().AddExperience(c.Request.Context(), profile.ID, exp); err != nil {
			serverError(c, services, "add_experience", err)
			return
		}

		respondWithProfile(c, services, "add_experience", profile.UserID)
	}
}

// DeleteExperience removes the :exp_id entry from the user's profile
func DeleteExperience(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := ownProfile(c, services, "delete_experience")
		if !ok {
			return
		}

		err := services.ProfileRepository().DeleteExperience(c.Request.Context(), profile.ID, c.Param("exp_id"))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Msg: models.MsgNoExperience})
			return
		}
		if err != nil {
			serverError(c, services, "delete_experience", err)
			return
		}

		respondWithProfile(c, services, "delete_experience", profile.UserID)
	}
}

// AddEducation prepends an education entry to the user's profile
func AddEducation(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EducationRequest
		if !bindRequest(c, &req) {
			return
		}

		profile, ok := ownProfile(c, services, "add_education")
		if !ok {
			return
		}

		edu := &database.Education{
			School:       req.School,
			Degree:       req.Degree,
			FieldOfStudy: req.FieldOfStudy,
			From:         req.From,
			To:           req.To,
			Current:      req.Current,
			Description:  req.Description,
		}
		if err := services.ProfileRepository().AddEducation(c.Request.Context(), profile.ID, edu); err != nil {
			serverError(c, services, "add_education", err)
			return
		}

		respondWithProfile(c, services, "add_education", profile.UserID)
	}
}

// DeleteEducation removes the :edu_id entry from the user's profile
func DeleteEducation(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := ownProfile(c, services, "delete_education")
		if !ok {
			return
		}

		err := services.ProfileRepository().DeleteEducation(c.Request.Context(), profile.ID, c.Param("edu_id"))
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Msg: models.MsgNoEducation})
			return
		}
		if err != nil {
			serverError(c, services, "delete_education", err)
			return
		}

		respondWithProfile(c, services, "delete_education", profile.UserID)
	}
}

// ownProfile loads the authenticated user's profile, answering 400 when
// there is none
func ownProfile(c *gin.Context, services interfaces.Services, operation string) (*database.Profile, bool) {
	profile, err := services.ProfileRepository().GetByUserID(c.Request.Context(), currentUser(c))
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Msg: models.MsgNoProfile})
		return nil, false
	}
	if err != nil {
		serverError(c, services, operation, err)
		return nil, false
	}
	return profile, true
}

func respondWithProfile(c *gin.Context, services interfaces.Services, operation, userID string) {
	profile, err := services.ProfileRepository().GetByUserID(c.Request.Context(), userID)
	if err != nil {
		serverError(c, services, operation, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func applyProfileRequest(profile *database.Profile, req models.ProfileRequest) {
	setIfPresent(&profile.Company, req.Company)
	setIfPresent(&profile.Website, req.Website)
	setIfPresent(&profile.Location, req.Location)
	setIfPresent(&profile.Bio, req.Bio)
	setIfPresent(&profile.Status, req.Status)
	setIfPresent(&profile.GithubUsername, req.GithubUsername)
	if skills := req.SkillList(); len(skills) > 0 {
		profile.Skills = skills
	}

	profile.Social = database.Social{
		YouTube:   req.YouTube,
		Facebook:  req.Facebook,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		LinkedIn:  req.LinkedIn,
	}
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
