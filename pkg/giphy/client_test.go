package giphy

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("test-key", zap.NewNop())
	require.NoError(t, err)
	client.baseURL = baseURL
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("", zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GIPHY_API_KEY")
}

func TestFetchSendsExpectedSearchParams(t *testing.T) {
	var query map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"api_key": r.URL.Query().Get("api_key"),
			"q":       r.URL.Query().Get("q"),
			"limit":   r.URL.Query().Get("limit"),
			"sort":    r.URL.Query().Get("sort"),
			"lang":    r.URL.Query().Get("lang"),
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	newTestClient(t, server.URL).FetchRandomCelebrationGif()

	assert.Equal(t, "test-key", query["api_key"])
	assert.Equal(t, "celebration, success", query["q"])
	assert.Equal(t, "25", query["limit"])
	assert.Equal(t, "relevant", query["sort"])
	assert.Equal(t, "en", query["lang"])
}

func TestFetchReturnsFallbackOnEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	got := newTestClient(t, server.URL).FetchRandomCelebrationGif()
	assert.Equal(t, FallbackGifURL, got)
}

func TestFetchReturnsFallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	got := newTestClient(t, server.URL).FetchRandomCelebrationGif()
	assert.Equal(t, FallbackGifURL, got)
}

func TestFetchReturnsFallbackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	got := newTestClient(t, server.URL).FetchRandomCelebrationGif()
	assert.Equal(t, FallbackGifURL, got)
}

func TestFetchPicksAmongResults(t *testing.T) {
	body := `{"data":[
		{"images":{"original":{"url":"https://gifs.test/a.gif"}}},
		{"images":{"original":{"url":"https://gifs.test/b.gif"}}},
		{"images":{"original":{"url":"https://gifs.test/c.gif"}}}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.pick = func(n int) int {
		require.Equal(t, 3, n)
		return 1
	}

	got := client.FetchRandomCelebrationGif()
	assert.Equal(t, "https://gifs.test/b.gif", got)
}
