package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(resp *ErrorListResponse) []string {
	out := []string{}
	for _, e := range resp.Errors {
		out = append(out, e.Param)
	}
	return out
}

func TestRegisterRequest_Validate(t *testing.T) {
	assert.Nil(t, ValidationErrors(RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"}.Validate()))

	resp := ValidationErrors(RegisterRequest{}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"email", "name", "password"}, params(resp))
	assert.Equal(t, "Please enter a valid email", resp.Errors[0].Msg)
	assert.Equal(t, "name is required", resp.Errors[1].Msg)
	assert.Equal(t, "Please enter a password of at least 6 characters", resp.Errors[2].Msg)
	assert.Equal(t, "body", resp.Errors[0].Location)

	resp = ValidationErrors(RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "12345"}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"email", "password"}, params(resp))

	resp = ValidationErrors(RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: strings.Repeat("a", 73)}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"password"}, params(resp))
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.Nil(t, ValidationErrors(LoginRequest{Email: "jane@example.com", Password: "x"}.Validate()))

	resp := ValidationErrors(LoginRequest{Email: "jane@example.com"}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, "Password is required", resp.Errors[0].Msg)

	for _, email := range []string{"jane", "jane@", "@example.com", "jane example.com"} {
		resp = ValidationErrors(LoginRequest{Email: email, Password: "x"}.Validate())
		require.NotNil(t, resp, email)
		assert.Equal(t, "email", resp.Errors[0].Param, email)
		assert.Equal(t, "Please enter a valid email", resp.Errors[0].Msg, email)
	}
}

func TestProfileRequest_Skills(t *testing.T) {
	req := ProfileRequest{Status: "Developer", Skills: " go, sql ,, docker "}
	assert.Nil(t, ValidationErrors(req.Validate()))
	assert.Equal(t, []string{"go", "sql", "docker"}, req.SkillList())

	resp := ValidationErrors(ProfileRequest{Status: "Developer", Skills: " , ,"}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"skills"}, params(resp))
	assert.Equal(t, "skills is required", resp.Errors[0].Msg)

	resp = ValidationErrors(ProfileRequest{}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"skills", "status"}, params(resp))
}

func TestExperienceRequest_Validate(t *testing.T) {
	assert.Nil(t, ValidationErrors(ExperienceRequest{Title: "Dev", Company: "Acme", From: "2020-01-31"}.Validate()))

	resp := ValidationErrors(ExperienceRequest{Title: "Dev", Company: "Acme", From: "31/01/2020", To: "soon"}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"from", "to"}, params(resp))

	resp = ValidationErrors(ExperienceRequest{}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"company", "from", "title"}, params(resp))
}

func TestEducationRequest_Validate(t *testing.T) {
	resp := ValidationErrors(EducationRequest{}.Validate())
	require.NotNil(t, resp)
	assert.Equal(t, []string{"degree", "fieldofstudy", "from", "school"}, params(resp))
	assert.Equal(t, "Field of study is required", resp.Errors[1].Msg)
}

func TestNewErrorList(t *testing.T) {
	list := NewErrorList("user already exists")
	require.Len(t, list.Errors, 1)
	assert.Equal(t, FieldError{Msg: "user already exists"}, list.Errors[0])
}
