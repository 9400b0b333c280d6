package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/validator"
)

// creating an envelope type
type envelope map[string]any

func (app *app) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {

	// encodes data into json format by using indenting for better readability
	jsResponse, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	jsResponse = append(jsResponse, '\n')

	// add any headers that we want to the response
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(jsResponse)
	if err != nil {
		return err
	}

	return nil
}

func (app *app) readJSON(w http.ResponseWriter, r *http.Request, dest any) error {

	// limit the size of the request body to 256000 bytes
	maxBytes := 256_000
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	// our decoder will check for unknown fields
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dest)

	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("the body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("the body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("the body contains the incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("the body contains the incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("the body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("the body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	// call decode again to check if there is only a single json value in the body
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("the body must only contain a single JSON value")
	}

	return nil
}

// Helper function to read an id parameter from the url
func (app *app) readIDParam(r *http.Request) (int64, error) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}

	return id, nil
}

// get single string query parameter
func (app *app) getSingleQueryParameter(queryParameters url.Values, key string, defaultValue string) string {
	result := queryParameters.Get(key)
	if result == "" {
		return defaultValue
	}
	return result
}

// this method can cause a validation error if the parameter is not an integer
func (app *app) getSingleIntQueryParameter(queryParameters url.Values, key string, defaultValue int64, v *validator.Validator) int64 {
	result := queryParameters.Get(key)
	if result == "" {
		return defaultValue
	}

	intResult, err := strconv.ParseInt(result, 10, 64)
	if err != nil {
		v.AddError(key, "must be an integer value")
		return defaultValue
	}
	return intResult
}

// parse an optional YYYY-MM-DD query parameter
func (app *app) getSingleDateQueryParameter(queryParameters url.Values, key string, v *validator.Validator) *time.Time {
	result := queryParameters.Get(key)
	if result == "" {
		return nil
	}

	parsed, err := time.Parse("2006-01-02", result)
	if err != nil {
		v.AddError(key, "must be a valid date in YYYY-MM-DD format")
		return nil
	}
	return &parsed
}

// readFilters extracts the common pagination and sort parameters.
func (app *app) readFilters(queryParameters url.Values, defaultSort string, defaultPageSize int64, safeList []string, v *validator.Validator) data.Filter {
	return data.Filter{
		Page:         app.getSingleIntQueryParameter(queryParameters, "page", 1, v),
		PageSize:     app.getSingleIntQueryParameter(queryParameters, "page_size", defaultPageSize, v),
		SortBy:       app.getSingleQueryParameter(queryParameters, "sort", defaultSort),
		SortSafeList: safeList,
	}
}

// background launches a function in its own goroutine, recovering any panic
// and tracking it on the WaitGroup drained at shutdown.
func (app *app) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				app.logger.Error("background task panic", "error", fmt.Sprintf("%v", err))
			}
		}()

		fn()
	}()
}
