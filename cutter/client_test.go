package cutter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/user/cliphunter-tui/logging"
)

func testPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: maxAttempts, BaseDelay: time.Millisecond}
}

func TestCut_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.URL.Path != "/api/cut" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.VideoURL != "https://cdn.example.com/source.mp4" {
			t.Errorf("video_url = %q", req.VideoURL)
		}
		if req.StartTime != 5 || req.EndTime != 20 {
			t.Errorf("interval = [%v, %v], want [5, 20]", req.StartTime, req.EndTime)
		}
		json.NewEncoder(w).Encode(map[string]string{"public_url": "/static/x.mp4"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	got, err := client.Cut(context.Background(), "https://cdn.example.com/source.mp4", 5, 20, "Sad scene")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if !strings.HasPrefix(got, "https://") {
		t.Errorf("result %q is not a secure absolute URL", got)
	}
	if !strings.HasSuffix(got, "/static/x.mp4") {
		t.Errorf("result %q does not end in /static/x.mp4", got)
	}
}

func TestCut_ClientErrorIsTerminal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"bad input"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	_, err := client.Cut(context.Background(), "https://cdn.example.com/v.mp4", 0, 10, "t")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry on 4xx)", attempts)
	}
	if !strings.Contains(err.Error(), "bad input") {
		t.Errorf("error %q does not contain server detail", err)
	}
	if !strings.Contains(err.Error(), "1 attempt") {
		t.Errorf("error %q does not report attempt count", err)
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T", err)
	}
	if svcErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", svcErr.StatusCode)
	}
}

func TestCut_ServerErrorExhaustsAttempts(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	_, err := client.Cut(context.Background(), "https://cdn.example.com/v.mp4", 0, 10, "t")
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if !strings.Contains(err.Error(), "3 attempt") {
		t.Errorf("error %q does not report attempt count", err)
	}
}

func TestCut_TransportFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from the first attempt

	client := NewClient(server.URL, testPolicy(2), logging.Discard())

	_, err := client.Cut(context.Background(), "https://cdn.example.com/v.mp4", 0, 10, "t")
	if err == nil {
		t.Fatal("expected error for unreachable service")
	}
	if !strings.Contains(err.Error(), "2 attempt") {
		t.Errorf("error %q does not report attempt count", err)
	}
}

func TestCut_MissingResultLocatorIsTerminal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	_, err := client.Cut(context.Background(), "https://cdn.example.com/v.mp4", 0, 10, "t")
	if !errors.Is(err, ErrNoResultLocator) {
		t.Fatalf("err = %v, want ErrNoResultLocator", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry on malformed success)", attempts)
	}
}

func TestCut_AbsoluteLocatorForcedSecure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"public_url": "http://media.example.com/static/y.mp4"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(1), logging.Discard())

	got, err := client.Cut(context.Background(), "https://cdn.example.com/v.mp4", 0, 10, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://media.example.com/static/y.mp4" {
		t.Errorf("result = %q, want https scheme preserved host", got)
	}
}

func TestCut_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	_, err := client.Cut(context.Background(), "https://cdn.example.com/v.mp4", 0, 10, "t")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("error %q does not carry the opaque body text", err)
	}
}

func TestCut_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Hour}, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Cut(ctx, "https://cdn.example.com/v.mp4", 0, 10, "t")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestInfo_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/info" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["url"] != "https://youtu.be/abc123def45" {
			t.Errorf("url = %q", req["url"])
		}
		json.NewEncoder(w).Encode(VideoInfo{
			Title:     "Up: Married Life",
			Thumbnail: "https://i.ytimg.com/vi/abc/hq.jpg",
			VideoURL:  "https://cdn.example.com/abc.mp4",
			Duration:  263,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	info, err := client.Info(context.Background(), "https://youtu.be/abc123def45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Title != "Up: Married Life" {
		t.Errorf("title = %q", info.Title)
	}
	if info.Duration != 263 {
		t.Errorf("duration = %v, want 263", info.Duration)
	}
}

func TestInfo_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail":"extractor unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testPolicy(3), logging.Discard())

	_, err := client.Info(context.Background(), "https://youtu.be/abc123def45")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "extractor unavailable") {
		t.Errorf("error %q does not contain detail", err)
	}
}
