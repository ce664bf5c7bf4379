// Package ingestion imports job postings from a remote feed, validating and
// normalizing the loosely-typed payload into structured job records.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultFeedURL is the remote job feed endpoint.
	DefaultFeedURL = "https://remotive.com/api/remote-jobs"

	// DefaultFeedLimit bounds how many postings one fetch requests.
	DefaultFeedLimit = 20

	httpTimeout = 15 * time.Second
)

// RawJob mirrors a single posting in the feed payload. Fields are loosely
// typed; they must pass through Normalizer before persistence.
type RawJob struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"candidate_required_location"`
	JobType     string `json:"job_type"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
}

// feedResponse mirrors the top-level feed JSON. Jobs stay raw so each can be
// schema-validated individually before unmarshaling.
type feedResponse struct {
	Jobs []json.RawMessage `json:"jobs"`
}

// FeedClient fetches job postings from the remote feed.
type FeedClient struct {
	baseURL string
	limit   int
	client  *http.Client
}

// NewFeedClient constructs a client with a shared HTTP client.
func NewFeedClient(baseURL string, limit int) *FeedClient {
	if baseURL == "" {
		baseURL = DefaultFeedURL
	}
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	return &FeedClient{
		baseURL: baseURL,
		limit:   limit,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// Fetch retrieves postings from the feed. Each posting is validated against
// the feed schema at the boundary; invalid entries are logged and skipped
// rather than failing the whole fetch. Returns the valid postings and the
// number skipped.
func (c *FeedClient) Fetch(ctx context.Context) ([]RawJob, int, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.limit))
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("feed returned %d: %s", resp.StatusCode, string(body))
	}

	var payload feedResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, 0, fmt.Errorf("json unmarshal: %w", err)
	}

	jobs := make([]RawJob, 0, len(payload.Jobs))
	skipped := 0
	for _, raw := range payload.Jobs {
		if err := ValidateFeedJob(raw); err != nil {
			log.Printf("[feed] Skipping invalid posting: %v", err)
			skipped++
			continue
		}
		var job RawJob
		if err := json.Unmarshal(raw, &job); err != nil {
			log.Printf("[feed] Skipping unparseable posting: %v", err)
			skipped++
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, skipped, nil
}
