package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// ErrBackendContract marks responses that do not match the backend's declared
// result shape. Callers treat it the same as an unavailable backend.
var ErrBackendContract = errors.New("search backend returned a malformed response")

// Candidate is a single document returned by the search backend.
type Candidate struct {
	DocID string  `json:"doc_id"`
	Score float64 `json:"score"`
	Title string  `json:"title,omitempty"`
	Text  string  `json:"text,omitempty"`
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type searchResponse struct {
	Results []Candidate `json:"results"`
}

// Client calls the NFCorpus vector-search backend over HTTP.
// A fresh client is scoped to each inbound request; nothing is shared.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Search posts the query to {baseURL}/search_nfcorpus and returns the parsed
// candidates. Network errors, non-2xx statuses and contract violations all
// surface as errors on the result channel.
func (c *Client) Search(ctx context.Context, query string, topK int) <-chan async.Result[[]Candidate] {
	return async.Go(func() ([]Candidate, error) {
		body, err := json.Marshal(searchRequest{Query: query, TopK: topK})
		if err != nil {
			return nil, fmt.Errorf("error marshaling search request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/search_nfcorpus", bytes.NewBuffer(body))
		if err != nil {
			return nil, fmt.Errorf("error creating search request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("search backend unreachable: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading search response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("search backend returned status %d: %s", resp.StatusCode, string(respBody))
		}

		parsed := searchResponse{}
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendContract, err)
		}

		for _, candidate := range parsed.Results {
			if candidate.DocID == "" {
				return nil, fmt.Errorf("%w: result with empty doc_id", ErrBackendContract)
			}
		}

		logger.Info("Search backend returned candidates",
			zap.String("query", query),
			zap.Int("count", len(parsed.Results)))

		return parsed.Results, nil
	})
}
