package giphy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/agnijaravdo/discord-bot/metrics"
)

// FallbackGifURL is returned whenever the Giphy search fails or comes back
// empty. A broken gif lookup must never fail the congratulation itself.
const FallbackGifURL = "https://media4.giphy.com/media/v1.Y2lkPTc5MGI3NjExcWVmZTFwYTZ2OTJmbmVxeWtrN3NubmN5MmJqcHRmeHFqNGo1MXZrdiZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/l0MYt5jPR6QX5pnqM/giphy.gif"

const defaultBaseURL = "https://api.giphy.com/v1/gifs/search"

const (
	searchQuery = "celebration, success"
	searchLimit = 25
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger

	// pick chooses an index in [0, n); swapped out in tests for a
	// deterministic draw.
	pick func(n int) int
}

func NewClient(apiKey string, log *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GIPHY_API_KEY is not set in environment variables")
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
		pick:       rand.Intn,
	}, nil
}

type searchResponse struct {
	Data []struct {
		Images struct {
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
		} `json:"images"`
	} `json:"data"`
}

// FetchRandomCelebrationGif returns the URL of one uniformly chosen result
// of a relevance-ranked celebration search, or FallbackGifURL when the
// search fails or has no results. It never returns an error.
func (c *Client) FetchRandomCelebrationGif() string {
	start := time.Now()
	gifURL, err := c.search()
	metrics.ExternalAPIDuration.WithLabelValues("giphy", "search").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalAPIFailureTotal.WithLabelValues("giphy", "search").Inc()
		c.log.Error("Error fetching GIF from Giphy", zap.Error(err))
		return FallbackGifURL
	}
	metrics.ExternalAPISuccessTotal.WithLabelValues("giphy", "search").Inc()
	if gifURL == "" {
		return FallbackGifURL
	}
	return gifURL
}

func (c *Client) search() (string, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("q", searchQuery)
	params.Set("limit", fmt.Sprintf("%d", searchLimit))
	params.Set("sort", "relevant")
	params.Set("lang", "en")

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("giphy search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Data) == 0 {
		return "", nil
	}
	return body.Data[c.pick(len(body.Data))].Images.Original.URL, nil
}
