// File: cmd/api/media.go
// Description: static media delivery from the uploads directory.
package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mflores-dev/posapi/internal/media"
)

// serveMediaFile resolves and writes a single file from the media store,
// translating store errors into the usual HTTP responses. Successful responses
// carry a long-lived immutable cache header since uploaded files are never
// rewritten in place.
func (app *app) serveMediaFile(w http.ResponseWriter, r *http.Request, path string) {
	content, contentType, err := app.media.Read(path)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrInvalidPath):
			app.badRequestResponse(w, r, errors.New("invalid file path"))
		case errors.Is(err, media.ErrNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", media.CacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// mediaFileHandler serves GET /uploads/*filepath, /media/*filepath and
// /cdn/*filepath. The three prefixes exist for historical reasons and all
// resolve against the same uploads root.
func (app *app) mediaFileHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	app.serveMediaFile(w, r, params.ByName("filepath"))
}

// serveImageHandler serves GET /v1/serve-image?path=..., the query-parameter
// variant of the same lookup.
func (app *app) serveImageHandler(w http.ResponseWriter, r *http.Request) {
	path := app.getSingleQueryParameter(r.URL.Query(), "path", "")
	if path == "" {
		app.badRequestResponse(w, r, errors.New("path query parameter must be provided"))
		return
	}

	app.serveMediaFile(w, r, path)
}
