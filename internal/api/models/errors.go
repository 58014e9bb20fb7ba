package models

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Response messages shared by the gate and the handlers
const (
	MsgNoToken          = "No token, user not authorized"
	MsgInvalidToken     = "Token is not valid"
	MsgServerError      = "Server error"
	MsgInvalidRequest   = "Invalid request body"
	MsgUserExists       = "user already exists"
	MsgInvalidLogin     = "Invalid Credentials"
	MsgUserNotFound     = "User not found"
	MsgUserDeleted      = "User deleted"
	MsgNoProfile        = "There is no profile for this user"
	MsgNoProfileForUser = "There is no profile for that user"
	MsgNoExperience     = "Experience not found"
	MsgNoEducation      = "Education not found"
	bodyLocation        = "body"
)

// ValidationErrors converts an ozzo validation result into the error list
// body. Entries are ordered by field name so responses are stable. A nil
// result yields nil.
func ValidationErrors(err error) *ErrorListResponse {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		list := NewErrorList(err.Error())
		return &list
	}

	params := make([]string, 0, len(fieldErrs))
	for param := range fieldErrs {
		params = append(params, param)
	}
	sort.Strings(params)

	resp := &ErrorListResponse{Errors: make([]FieldError, 0, len(params))}
	for _, param := range params {
		resp.Errors = append(resp.Errors, FieldError{
			Msg:      fieldErrs[param].Error(),
			Param:    param,
			Location: bodyLocation,
		})
	}
	return resp
}
