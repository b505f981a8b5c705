package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"pharmacy-storefront/internal/domain"
)

// Client posts order snapshots to the backend order endpoint. Submissions
// are never retried here; failures go back to the caller once.
type Client struct {
	http   *http.Client
	url    string
	logger *log.Logger
}

func New(url string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		url:    url,
		logger: logger,
	}
}

// Submit sends the snapshot as the full request body. A non-2xx status maps
// to *domain.RejectedError with the backend's error message when present;
// transport failures and unreadable responses wrap domain.ErrNetwork.
func (c *Client) Submit(ctx context.Context, order *domain.OrderSnapshot) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		var ack map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrNetwork, err)
		}
		c.logger.Printf("order %s accepted", order.ID)
		return nil
	}

	msg := "order failed"
	var rejection struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rejection); err == nil && strings.TrimSpace(rejection.Error) != "" {
		msg = rejection.Error
	}
	return &domain.RejectedError{Message: msg}
}
