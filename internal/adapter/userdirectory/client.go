package userdirectory

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"
)

// Outcome is the result of a user existence check. Every technical failure of
// the lookup collapses into OutcomeUnreachable: the admission policy treats a
// down directory and an errored one identically, so callers never see the
// difference.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unreachable"
	}
}

// Verifier checks whether a user exists in the user directory.
type Verifier interface {
	Verify(ctx context.Context, userID int64) Outcome
}

// HTTPClient implements Verifier via the user service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP directory client with the given wait bound.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse user service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("user service url must be absolute")
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Verify issues a single lookup for userID. It never returns an error: a 200
// yields OutcomeFound, a 404 OutcomeNotFound, and any transport failure,
// timeout, or unexpected status OutcomeUnreachable.
func (c *HTTPClient) Verify(ctx context.Context, userID int64) Outcome {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/users/", strconv.FormatInt(userID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		c.logger.Error("build user lookup request", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return OutcomeUnreachable
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("user directory unreachable", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return OutcomeUnreachable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return OutcomeFound
	case http.StatusNotFound:
		return OutcomeNotFound
	default:
		c.logger.Warn("unexpected user directory response", slog.Int64("user_id", userID), slog.Int("status", resp.StatusCode))
		return OutcomeUnreachable
	}
}
