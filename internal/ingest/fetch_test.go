package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "CareerAgent")
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer srv.Close()

	html, err := FetchURL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, html, "posting")
}

func TestFetchURL_InvalidURL(t *testing.T) {
	_, err := FetchURL(context.Background(), "not-a-url", nil)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "invalid URL")
}

func TestFetchURL_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchURL(context.Background(), srv.URL, nil)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "HTTP status 404")
}

func TestExtractPostingText_UsesJobSelectors(t *testing.T) {
	html := `<html><body>
		<nav>Navigation noise</nav>
		<div class="job-description">Looking for a Data Scientist with Python.</div>
		<footer>Footer noise</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Data Scientist")
	assert.NotContains(t, text, "Navigation noise")
	assert.NotContains(t, text, "Footer noise")
}

func TestExtractPostingText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractPostingText_CollapsesBlankLines(t *testing.T) {
	html := "<html><body><main>line one\n\n\n   line two   \n</main></body></html>"

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("too short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
