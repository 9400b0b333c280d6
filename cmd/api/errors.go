package main

import (
	"fmt"
	"net/http"
)

// logs the error message along with the request method and URL
func (app *app) logError(r *http.Request, err error) {
	method := r.Method
	uri := r.URL.RequestURI()
	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// Sends an error response in JSON format
func (app *app) errorResponseJSON(w http.ResponseWriter, r *http.Request, status int, message any) {
	errorData := envelope{"error": message}
	err := app.writeJSON(w, status, errorData, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// error response for total server failure with a 500 status code
func (app *app) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.errorResponseJSON(w, r, http.StatusInternalServerError, message)
}

// send an error response if our client messes up with a 404
func (app *app) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	// we only log server errors, not client errors
	message := "the requested resource could not be found"
	app.errorResponseJSON(w, r, http.StatusNotFound, message)
}

// send an error response if our client messes up with a 405
func (app *app) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponseJSON(w, r, http.StatusMethodNotAllowed, message)
}

// send an error response if our client messes up with a 400 (bad request)
func (app *app) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponseJSON(w, r, http.StatusBadRequest, err.Error())
}

// error response for failed validation checks with a 422 status code
func (app *app) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.errorResponseJSON(w, r, http.StatusUnprocessableEntity, errors)
}

// For rate limit exceeded errors with a 429 status code
func (app *app) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	app.errorResponseJSON(w, r, http.StatusTooManyRequests, message)
}

// for edit conflict status 409
func (app *app) editConflictResponse(w http.ResponseWriter, r *http.Request) {
	message := "unable to update the record due to an edit conflict, please try again"
	app.errorResponseJSON(w, r, http.StatusConflict, message)
}

// wrong email/password combination at login
func (app *app) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	message := "invalid authentication credentials"
	app.errorResponseJSON(w, r, http.StatusUnauthorized, message)
}

// no session cookie was presented at all; kept separate from the invalid-token
// case so the two show up distinctly in the logs
func (app *app) authenticationRequiredResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Info("request without session cookie", "method", r.Method, "uri", r.URL.RequestURI())
	message := "you must be authenticated to access this resource"
	app.errorResponseJSON(w, r, http.StatusUnauthorized, message)
}

// the presented session token failed verification or expired
func (app *app) invalidSessionResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Info("invalid session token", "method", r.Method, "uri", r.URL.RequestURI())
	message := "invalid or expired session token"
	app.errorResponseJSON(w, r, http.StatusUnauthorized, message)
}

// authenticated but lacking the required role, status 403
func (app *app) notPermittedResponse(w http.ResponseWriter, r *http.Request) {
	message := "your account does not have permission to access this resource"
	app.errorResponseJSON(w, r, http.StatusForbidden, message)
}

// the printer driver service (or another upstream) did not answer, status 502
func (app *app) upstreamUnreachableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the upstream service is unreachable"
	app.errorResponseJSON(w, r, http.StatusBadGateway, message)
}
