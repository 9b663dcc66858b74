// Package tsml reads a TSML-compatible public meeting feed (the JSON export
// of the 12 Step Meeting List plugin) and caches it in process.
package tsml

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
)

// Client fetches and caches the meeting feed. The feed is read-only from our
// side; concurrent cache misses may refetch, which is harmless.
type Client struct {
	feedURL    string
	ttl        time.Duration
	httpClient *http.Client

	mu        sync.RWMutex
	cached    []domain.Meeting
	fetchedAt time.Time
}

// NewClient creates a feed client. With an empty feedURL all lookups return
// empty results, mirroring the original behavior when TSML was inactive.
func NewClient(feedURL string, ttl time.Duration) *Client {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Client{
		feedURL:    feedURL,
		ttl:        ttl,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// feedEntry is one meeting in the TSML export. Day arrives as either a JSON
// number or a numeric string depending on the feed generator's vintage.
type feedEntry struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Day     flexInt `json:"day"`
	Time    string  `json:"time"`
	Group   string  `json:"group"`
	GroupID int64   `json:"group_id"`
	Region  string  `json:"region"`
}

type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*f = -1
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid day value %q", s)
	}
	*f = flexInt(n)
	return nil
}

// Meetings returns all meetings from the feed, served from cache within the
// TTL window.
func (c *Client) Meetings(ctx context.Context) ([]domain.Meeting, error) {
	if c.feedURL == "" {
		return []domain.Meeting{}, nil
	}

	c.mu.RLock()
	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		cached := c.cached
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	meetings, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cached = meetings
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return meetings, nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.Meeting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build meeting feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meeting feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meeting feed returned status %d", resp.StatusCode)
	}

	var entries []feedEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("invalid meeting feed: %w", err)
	}

	meetings := make([]domain.Meeting, 0, len(entries))
	for _, e := range entries {
		meetings = append(meetings, domain.Meeting{
			ID:      e.ID,
			Name:    e.Name,
			Day:     int(e.Day),
			Time:    e.Time,
			Group:   e.Group,
			GroupID: e.GroupID,
			Region:  e.Region,
		})
	}
	return meetings, nil
}
