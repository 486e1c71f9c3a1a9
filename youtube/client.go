package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"comments-service/metrics"
	"comments-service/model"
)

const requestTimeout = 15 * time.Second

// StatusError is returned when the YouTube API answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("YouTube API error: %s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Client calls the YouTube Data API v3. One request per call, no retries;
// failures propagate to the request boundary.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// ListThreads fetches one page of comment threads for a video, including the
// truncated inline replies YouTube embeds in each thread.
func (c *Client) ListThreads(ctx context.Context, videoID string, maxResults int, pageToken, order string) (*model.CommentThreadResponse, error) {
	params := url.Values{
		"part":       {"snippet,replies"},
		"videoId":    {videoID},
		"maxResults": {strconv.Itoa(maxResults)},
		"order":      {order},
		"textFormat": {"plainText"},
		"key":        {c.apiKey},
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out model.CommentThreadResponse
	if err := c.get(ctx, "commentThreads", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReplies fetches one page of replies for a top-level comment.
func (c *Client) ListReplies(ctx context.Context, parentID string, maxResults int, pageToken string) (*model.CommentListResponse, error) {
	params := url.Values{
		"part":       {"snippet"},
		"parentId":   {parentID},
		"maxResults": {strconv.Itoa(maxResults)},
		"textFormat": {"plainText"},
		"key":        {c.apiKey},
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out model.CommentListResponse
	if err := c.get(ctx, "comments", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	apiURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.YouTubeAPIRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.YouTubeAPIRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.YouTubeAPIRequests.WithLabelValues(endpoint, "decode_error").Inc()
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}

	metrics.YouTubeAPIRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return nil
}
