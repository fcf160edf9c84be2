// Package cutter submits cut requests to the remote media-cutting service.
// Transient failures (transport errors, 5xx) are retried with linear backoff;
// client errors are surfaced immediately. Result locators are normalized to
// absolute https URLs.
package cutter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoResultLocator is returned when a success response carries no public URL.
var ErrNoResultLocator = errors.New("cutter: response missing public_url")

// Request is the wire payload for the cut endpoint.
type Request struct {
	VideoURL  string  `json:"video_url"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Title     string  `json:"title"`
}

// VideoInfo is the response of the info-lookup endpoint, used to pre-fill
// the new-clip form and seed a trim session's end hint.
type VideoInfo struct {
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	VideoURL  string  `json:"video_url"`
	Duration  float64 `json:"duration"`
}

type cutResponse struct {
	PublicURL string `json:"public_url"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type infoRequest struct {
	URL string `json:"url"`
}

// ServiceError is a non-2xx response from the cutting service.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("cutting service returned HTTP %d: %s", e.StatusCode, e.Detail)
}

// IsRetryable returns true for server errors (5xx).
// Client errors (4xx) are permanent until the request itself changes.
func (e *ServiceError) IsRetryable() bool {
	return e.StatusCode >= 500
}

// Client talks to the remote cutting service. It holds no per-call state;
// every Cut is independent and safe to re-issue after a failure.
type Client struct {
	baseURL    string
	policy     RetryPolicy
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a cutting service client for the given base URL.
func NewClient(baseURL string, policy RetryPolicy, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		policy:     policy,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// Cut submits a cut request, retrying transient failures per the client's
// policy, and returns the absolute https URL of the produced clip.
func (c *Client) Cut(ctx context.Context, videoURL string, start, end float64, title string) (string, error) {
	req := Request{
		VideoURL:  videoURL,
		StartTime: start,
		EndTime:   end,
		Title:     title,
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if d := c.policy.Delay(attempt); d > 0 {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("cut aborted after %d attempt(s): %w", attempt-1, ctx.Err())
			case <-time.After(d):
			}
		}

		locator, err := c.doCut(ctx, req)
		if err == nil {
			c.logger.Info("cut succeeded", "attempt", attempt, "result_url", locator)
			return locator, nil
		}
		lastErr = err

		if !c.policy.ShouldRetry(attempt, err) {
			return "", fmt.Errorf("cut failed after %d attempt(s): %w", attempt, lastErr)
		}
		c.logger.Warn("cut attempt failed, retrying",
			"attempt", attempt,
			"next_delay", c.policy.Delay(attempt+1),
			"error", err,
		)
	}
}

// doCut issues a single cut request.
func (c *Client) doCut(ctx context.Context, cutReq Request) (string, error) {
	body, err := json.Marshal(cutReq)
	if err != nil {
		return "", fmt.Errorf("marshal cut request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/cut", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ServiceError{StatusCode: resp.StatusCode, Detail: errorDetail(respBody)}
	}

	var result cutResponse
	if err := json.Unmarshal(respBody, &result); err != nil || result.PublicURL == "" {
		return "", ErrNoResultLocator
	}

	return c.normalizeLocator(result.PublicURL)
}

// Info fetches title, thumbnail, playable URL, and duration for a source URL.
// It is a single-attempt call; failures are non-fatal to the caller.
func (c *Client) Info(ctx context.Context, sourceURL string) (*VideoInfo, error) {
	body, err := json.Marshal(infoRequest{URL: sourceURL})
	if err != nil {
		return nil, fmt.Errorf("marshal info request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/info", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Detail: errorDetail(respBody)}
	}

	var info VideoInfo
	if err := json.Unmarshal(respBody, &info); err != nil {
		return nil, fmt.Errorf("decode info response: %w", err)
	}
	return &info, nil
}

// normalizeLocator resolves a service-relative locator against the base URL
// and forces the https scheme.
func (c *Client) normalizeLocator(locator string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	ref, err := url.Parse(locator)
	if err != nil {
		return "", fmt.Errorf("parse result locator %q: %w", locator, err)
	}
	abs := base.ResolveReference(ref)
	abs.Scheme = "https"
	return abs.String(), nil
}

// errorDetail extracts the detail field from an error body, falling back to
// the raw text for non-JSON bodies.
func errorDetail(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Detail != "" {
		return er.Detail
	}
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = "(empty response body)"
	}
	return detail
}
