// File: cmd/api/users.go
package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/validator"
)

// registerUserHandler handles user registration
func (app *app) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Role      string `json:"role,omitempty"` // Optional - defaults to cashier
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Role == "" {
		input.Role = "cashier"
	}

	user := &data.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		Email:     input.Email,
		IsActive:  false, // New users start inactive until activation
	}

	if err := user.Password.Set(input.Password); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateUser(v, user); !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err := app.models.Users.Insert(user); err != nil {
		switch {
		case errors.Is(err, data.ErrDuplicateEmail):
			v.AddError("email", "a user with this email address already exists")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	token, err := app.models.Tokens.New(user.ID, 3*24*time.Hour, data.ScopeActivation)
	if err != nil {
		app.logger.Error("failed to generate activation token", "user_id", user.ID, "error", err)
		// The user exists; they can request a new token later.
	}

	if app.mailer != nil && token != nil {
		app.background(func() {
			emailData := map[string]any{
				"userID":          user.ID,
				"firstName":       user.FirstName,
				"email":           user.Email,
				"activationToken": token.Plaintext,
			}
			if err := app.mailer.Send(user.Email, "user_welcome.tmpl", emailData); err != nil {
				app.logger.Error("failed to send activation email", "user_id", user.ID, "error", err)
			}
		})
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/users/%d", user.ID))

	if err := app.writeJSON(w, http.StatusCreated, envelope{"user": user}, headers); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// activateUserHandler handles user account activation.
func (app *app) activateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TokenPlaintext string `json:"token"`
	}

	if err := app.readJSON(w, r, &input); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateTokenPlaintext(v, input.TokenPlaintext)
	if !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetForToken(data.ScopeActivation, input.TokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			v.AddError("token", "invalid or expired activation token")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	user.IsActive = true
	err = app.models.Users.Update(user)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.models.Tokens.DeleteAllForUser(data.ScopeActivation, user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if err := app.writeJSON(w, http.StatusOK, envelope{"message": "account successfully activated"}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// showCurrentUserHandler handles retrieving the authenticated user's information.
func (app *app) showCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	if err := app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
