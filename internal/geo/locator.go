package geo

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pharmacy-storefront/internal/domain"
)

// DefaultTimeout bounds a single location attempt.
const DefaultTimeout = 6000 * time.Millisecond

// Locator acquires a best-effort device location. Implementations always
// return: a nil fix means "no location", never an error.
type Locator interface {
	Locate(ctx context.Context) *domain.LocationFix
}

// NoLocation is a Locator for deployments without a positioning capability.
type NoLocation struct{}

func (NoLocation) Locate(context.Context) *domain.LocationFix { return nil }

// Agent queries a positioning agent over HTTP for the current fix.
type Agent struct {
	client  *http.Client
	url     string
	timeout time.Duration
	logger  *log.Logger
}

func NewAgent(url string, timeout time.Duration, logger *log.Logger) *Agent {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Agent{
		client:  &http.Client{},
		url:     url,
		timeout: timeout,
		logger:  logger,
	}
}

// Locate resolves within the configured timeout or not at all. Timeouts,
// transport errors and malformed responses all yield no fix; checkout must
// never block or fail on location.
func (a *Agent) Locate(ctx context.Context) *domain.LocationFix {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url+"?accuracy=high", nil)
	if err != nil {
		a.logger.Printf("location request: %v", err)
		return nil
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Printf("no location fix: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Printf("no location fix: agent returned %d", resp.StatusCode)
		return nil
	}

	var fix domain.LocationFix
	if err := json.NewDecoder(resp.Body).Decode(&fix); err != nil {
		a.logger.Printf("no location fix: %v", err)
		return nil
	}
	return &fix
}
