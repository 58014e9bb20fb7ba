package models

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// DateLayout is the accepted format of from/to dates
const DateLayout = "2006-01-02"

// RegisterRequest represents user registration
type RegisterRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"secret123"`
}

// Validate checks the registration fields
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Please enter a valid email"),
			is.Email.Error("Please enter a valid email"),
		),
		// bcrypt ignores everything past 72 bytes
		validation.Field(&r.Password,
			validation.Required.Error("Please enter a password of at least 6 characters"),
			validation.RuneLength(6, 0).Error("Please enter a password of at least 6 characters"),
			validation.Length(0, 72).Error("Password must be at most 72 bytes"),
		),
	)
}

// LoginRequest represents authentication login request
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"secret123"`
}

// Validate checks the login fields
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Please enter a valid email"),
			is.Email.Error("Please enter a valid email"),
		),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

// ProfileRequest represents a profile create or update. Skills is a comma
// separated list.
type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" example:"Developer"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" example:"go, sql, docker"`
	YouTube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	LinkedIn       string `json:"linkedin"`
}

// Validate checks the profile fields
func (r ProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required.Error("status is required")),
		validation.Field(&r.Skills,
			validation.Required.Error("skills is required"),
			validation.By(hasSkill),
		),
	)
}

// SkillList splits Skills on commas, trimming and dropping empty entries
func (r ProfileRequest) SkillList() []string {
	skills := []string{}
	for _, skill := range strings.Split(r.Skills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func hasSkill(value interface{}) error {
	s, _ := value.(string)
	if len((ProfileRequest{Skills: s}).SkillList()) == 0 {
		return errors.New("skills is required")
	}
	return nil
}

// ExperienceRequest represents a new experience entry
type ExperienceRequest struct {
	Title       string `json:"title" example:"Backend Engineer"`
	Company     string `json:"company" example:"Acme"`
	Location    string `json:"location"`
	From        string `json:"from" example:"2019-06-01"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Validate checks the experience fields
func (r ExperienceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Company, validation.Required.Error("Company is required")),
		validation.Field(&r.From,
			validation.Required.Error("From is required"),
			validation.Date(DateLayout).Error("From must be a date (YYYY-MM-DD)"),
		),
		validation.Field(&r.To, validation.Date(DateLayout).Error("To must be a date (YYYY-MM-DD)")),
	)
}

// EducationRequest represents a new education entry
type EducationRequest struct {
	School       string `json:"school" example:"MIT"`
	Degree       string `json:"degree" example:"BSc"`
	FieldOfStudy string `json:"fieldofstudy" example:"Computer Science"`
	From         string `json:"from" example:"2012-09-01"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Validate checks the education fields
func (r EducationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.School, validation.Required.Error("School is required")),
		validation.Field(&r.Degree, validation.Required.Error("Degree is required")),
		validation.Field(&r.FieldOfStudy, validation.Required.Error("Field of study is required")),
		validation.Field(&r.From,
			validation.Required.Error("From is required"),
			validation.Date(DateLayout).Error("From must be a date (YYYY-MM-DD)"),
		),
		validation.Field(&r.To, validation.Date(DateLayout).Error("To must be a date (YYYY-MM-DD)")),
	)
}
