package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumePage = `<html><body><div class="a4-page">
<div class="name-header">Jane Doe</div>
<div class="section-title">Skills</div>
</div></body></html>`

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(resumePage))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "Jane Doe")
	assert.Equal(t, "text/html", result.ContentType)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.False(t, result.Rendered)
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.Header.Get("X-Api-Key"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := &Options{Headers: map[string]string{"X-Api-Key": "token"}}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		message string
	}{
		{name: "no scheme or host", url: "not-a-valid-url", message: "invalid URL"},
		{name: "file scheme", url: "file:///etc/passwd", message: "invalid URL"},
		{name: "ftp scheme", url: "ftp://example.com/resume.html", message: "unsupported scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := URL(context.Background(), tt.url, nil)
			require.Error(t, err)

			var fetchErr *Error
			assert.ErrorAs(t, err, &fetchErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, &Options{MaxBytes: 32})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 32 bytes")
}

func TestResume_ServedMarkupSkipsBrowser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resumePage))
	}))
	defer server.Close()

	// UseBrowser is set but the served page already has resume markup.
	result, err := Resume(context.Background(), server.URL, &Options{UseBrowser: true})
	require.NoError(t, err)
	assert.False(t, result.Rendered)
	assert.Contains(t, result.HTML, "name-header")
}

func TestResume_NoBrowserReturnsServedHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="root"></div></body></html>`))
	}))
	defer server.Close()

	result, err := Resume(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.False(t, result.Rendered)
	assert.Contains(t, result.HTML, `id="root"`)
}

func TestHasResumeMarkup(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected bool
	}{
		{name: "name header", html: `<div class="name-header">X</div>`, expected: true},
		{name: "section title only", html: `<div class="section-title">X</div>`, expected: true},
		{name: "empty shell", html: `<div id="app"></div>`, expected: false},
		{name: "similar class", html: `<span class="name-header">X</span>`, expected: false},
		{name: "empty", html: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasResumeMarkup(tt.html))
		})
	}
}
