// Package scraper fetches and decodes the booking site's paginated schedule
// pages into an availability map.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://zhs-courtbuchung.de"

// Client scrapes one booking site.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a scraper for the booking site at baseURL. An empty
// baseURL selects the ZHS site; a nil httpClient falls back to
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log}
}

func (c *Client) pageURL(activity Activity, date time.Time, page int) string {
	return fmt.Sprintf("%s/reservations.php?action=showReservations&type_id=%d&date=%s&page=%d",
		c.baseURL, activity.Code(), date.Format("02.01.2006"), page)
}

// fetchDocument fetches a URL and parses it as an HTML document.
func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
