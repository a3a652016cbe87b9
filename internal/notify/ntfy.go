// Package notify delivers match summaries as push notifications.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"courtwatch/internal/model"
)

const (
	defaultBaseURL = "https://ntfy.sh"
	defaultTopic   = "zhsbot"
)

// Notifier delivers one plain-text message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Ntfy publishes messages to an ntfy topic.
type Ntfy struct {
	baseURL string
	topic   string
	http    *http.Client
}

// NewNtfy creates a notifier for the given ntfy server and topic. Empty
// arguments select ntfy.sh and the default topic; a nil httpClient falls
// back to http.DefaultClient.
func NewNtfy(baseURL, topic string, httpClient *http.Client) *Ntfy {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if topic == "" {
		topic = defaultTopic
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Ntfy{baseURL: baseURL, topic: topic, http: httpClient}
}

func (n *Ntfy) Notify(ctx context.Context, message string) error {
	url := fmt.Sprintf("%s/%s", n.baseURL, n.topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// Message renders an availability map as a notification body: one
// "Court <n>:" header per court, one line per interval, courts ascending.
func Message(a model.Availability) string {
	if len(a) == 0 {
		return "Sorry, nothing available"
	}

	var b strings.Builder
	for _, court := range a.Courts() {
		fmt.Fprintf(&b, "Court %d:\n", court)
		for _, iv := range a[court] {
			fmt.Fprintf(&b, "%s\n", iv)
		}
	}
	return b.String()
}
