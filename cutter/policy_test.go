package cutter

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 4, BaseDelay: time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 0},
		{2, time.Second},
		{3, 2 * time.Second},
		{4, 3 * time.Second},
	}

	for _, tt := range tests {
		if got := p.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}

	serverErr := &ServiceError{StatusCode: http.StatusInternalServerError}
	clientErr := &ServiceError{StatusCode: http.StatusBadRequest}
	transportErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name    string
		attempt int
		err     error
		want    bool
	}{
		{"5xx with attempts left", 1, serverErr, true},
		{"5xx at last attempt", 3, serverErr, false},
		{"4xx never retried", 1, clientErr, false},
		{"transport error retried", 2, transportErr, true},
		{"missing locator never retried", 1, ErrNoResultLocator, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ShouldRetry(tt.attempt, tt.err); got != tt.want {
				t.Errorf("ShouldRetry(%d, %v) = %v, want %v", tt.attempt, tt.err, got, tt.want)
			}
		})
	}
}

func TestServiceError_IsRetryable(t *testing.T) {
	if !(&ServiceError{StatusCode: http.StatusServiceUnavailable}).IsRetryable() {
		t.Error("expected 503 to be retryable")
	}
	if (&ServiceError{StatusCode: http.StatusNotFound}).IsRetryable() {
		t.Error("expected 404 to be terminal")
	}
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json detail", `{"detail":"bad input"}`, "bad input"},
		{"opaque text", "gateway timeout", "gateway timeout"},
		{"empty body", "", "(empty response body)"},
		{"json without detail", `{"error":"x"}`, `{"error":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorDetail([]byte(tt.body)); got != tt.want {
				t.Errorf("errorDetail(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
