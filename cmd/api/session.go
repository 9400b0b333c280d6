// File: cmd/api/session.go
// Description: session lifecycle: login issues a signed cookie, the check
// endpoint resolves it to a user profile, logout clears it.
package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/token"
	"github.com/mflores-dev/posapi/internal/validator"
)

const sessionCookieName = "auth_token"

// setSessionCookie attaches a signed session token to the response.
func (app *app) setSessionCookie(w http.ResponseWriter, signed string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   app.config.env == "production",
	})
}

// clearSessionCookie instructs the client to delete its session cookie.
func (app *app) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   app.config.env == "production",
	})
}

// createSessionHandler handles login: it verifies the email/password pair and
// sets the session cookie.
func (app *app) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateEmail(v, input.Email)
	v.Check(input.Password != "", "password", "must be provided")
	if !v.IsValid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetByEmail(input.Email)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if !user.IsActive {
		v.AddError("email", "account must be activated to login")
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !match {
		app.invalidCredentialsResponse(w, r)
		return
	}

	signed, expiresAt, err := token.New(app.config.session.secret, user.ID, user.Role, app.config.session.ttl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.setSessionCookie(w, signed, expiresAt)

	err = app.writeJSON(w, http.StatusCreated, envelope{"user": user, "expires_at": expiresAt}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// checkSessionHandler returns the authenticated user's profile. The password
// hash is excluded from serialization by the model itself.
func (app *app) checkSessionHandler(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)

	err := app.writeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// deleteSessionHandler handles logout. It is idempotent: regardless of
// whether a valid session was presented, it succeeds and emits the clearing
// cookie. No server-side state is involved.
func (app *app) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	app.clearSessionCookie(w)

	err := app.writeJSON(w, http.StatusOK, envelope{"message": "logged out"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
