package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scriptedPage = `<html><body><div id="root"></div>
<script>
document.getElementById("root").innerHTML =
  '<div class="a4-page"><div class="name-header">Rendered Name</div></div>';
</script>
</body></html>`

func requireChrome(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return
		}
	}
	t.Skip("no Chrome or Chromium binary found")
}

func TestWithBrowser_RendersScriptedMarkup(t *testing.T) {
	requireChrome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scriptedPage))
	}))
	defer server.Close()

	html, err := WithBrowser(context.Background(), server.URL, 30*time.Second, false)
	require.NoError(t, err)
	assert.True(t, HasResumeMarkup(html))
}

func TestResume_FallsBackToBrowser(t *testing.T) {
	requireChrome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(scriptedPage))
	}))
	defer server.Close()

	result, err := Resume(context.Background(), server.URL, &Options{UseBrowser: true, Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.True(t, result.Rendered)
	assert.Contains(t, result.HTML, "Rendered Name")
}
