// File: cmd/api/media_test.go
// Description: tests for the media delivery routes

package main

import (
	"net/http"
	"testing"

	"github.com/mflores-dev/posapi/internal/media"
)

func TestMediaFileDelivery(t *testing.T) {
	app := newTestApp(t)
	seedMediaFile(t, app, "products/logo.png", []byte("png-bytes"))

	tests := []struct {
		name            string
		url             string
		expectedStatus  int
		expectedType    string
		expectCacheable bool
	}{
		{
			name:            "Existing file via uploads prefix",
			url:             "/uploads/products/logo.png",
			expectedStatus:  http.StatusOK,
			expectedType:    "image/png",
			expectCacheable: true,
		},
		{
			name:            "Existing file via media prefix",
			url:             "/media/products/logo.png",
			expectedStatus:  http.StatusOK,
			expectedType:    "image/png",
			expectCacheable: true,
		},
		{
			name:            "Existing file via cdn prefix",
			url:             "/cdn/products/logo.png",
			expectedStatus:  http.StatusOK,
			expectedType:    "image/png",
			expectCacheable: true,
		},
		{
			name:           "Missing file",
			url:            "/uploads/products/missing.png",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing file via media prefix",
			url:            "/media/products/missing.png",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing file via cdn prefix",
			url:            "/cdn/products/missing.png",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Traversal attempt",
			url:            "/uploads/../../etc/passwd",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Traversal attempt via media prefix",
			url:            "/media/../secret.txt",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := makeRequest(t, app, "GET", tt.url, nil, nil)
			checkResponseCode(t, tt.expectedStatus, rr.Code)

			if tt.expectedType != "" {
				if got := rr.Header().Get("Content-Type"); got != tt.expectedType {
					t.Errorf("Expected content type %q, got %q", tt.expectedType, got)
				}
			}
			if tt.expectCacheable {
				if got := rr.Header().Get("Cache-Control"); got != media.CacheControl {
					t.Errorf("Expected cache control %q, got %q", media.CacheControl, got)
				}
			}
		})
	}
}

func TestServeImageHandler(t *testing.T) {
	app := newTestApp(t)
	seedMediaFile(t, app, "banner.jpg", []byte("jpeg-bytes"))

	tests := []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{
			name:           "Existing file",
			url:            "/v1/serve-image?path=banner.jpg",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing path parameter",
			url:            "/v1/serve-image",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Traversal in path parameter",
			url:            "/v1/serve-image?path=..%2F..%2Fetc%2Fpasswd",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing file",
			url:            "/v1/serve-image?path=nope.jpg",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := makeRequest(t, app, "GET", tt.url, nil, nil)
			checkResponseCode(t, tt.expectedStatus, rr.Code)
		})
	}
}
