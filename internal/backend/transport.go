package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Default transport tuning. Matches the conservative rates the engines
// tolerate without serving CAPTCHA pages.
const (
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRequestsPerSecond = 0.5
	DefaultRetryAttempts     = 3
	DefaultRetryDelay        = 2 * time.Second
)

// defaultUserAgents is the rotation pool used when the caller does not
// provide one.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Version/17.1 Safari/605.1.15",
}

// TransportConfig tunes the shared HTTP scaffolding of the scrapers.
type TransportConfig struct {
	// RequestTimeout bounds a single HTTP request.
	RequestTimeout time.Duration

	// RequestsPerSecond throttles outgoing requests per backend instance.
	RequestsPerSecond float64

	// RetryAttempts is the total number of tries per Search call.
	RetryAttempts int

	// RetryDelay is the base delay between retries. The delay grows
	// linearly with the attempt number on 429 responses.
	RetryDelay time.Duration

	// UserAgents is the User-Agent rotation pool.
	UserAgents []string
}

// DefaultTransportConfig returns the default transport tuning.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		RequestTimeout:    DefaultRequestTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
		RetryAttempts:     DefaultRetryAttempts,
		RetryDelay:        DefaultRetryDelay,
		UserAgents:        defaultUserAgents,
	}
}

// transport is the HTTP plumbing shared by the scraping backends:
// per-instance rate limiting, User-Agent rotation and bounded retries
// with 429 handling.
type transport struct {
	client *http.Client
	cfg    TransportConfig

	mu       sync.Mutex
	lastReq  time.Time
	uaRandom *rand.Rand
}

func newTransport(cfg TransportConfig) *transport {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = defaultUserAgents
	}
	return &transport{
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		cfg:      cfg,
		uaRandom: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// get fetches a URL, applying the rate limit and retry policy.
// The returned body is fully read and the response closed.
func (t *transport) get(ctx context.Context, op, url string) ([]byte, error) {
	if err := t.waitRateLimit(ctx); err != nil {
		return nil, NewError(KindNetwork, op, err)
	}

	var lastErr error
	for attempt := 0; attempt < t.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, t.retryDelay(attempt, lastErr)); err != nil {
				return nil, NewError(KindNetwork, op, err)
			}
		}

		body, err := t.doRequest(ctx, op, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if be, ok := err.(*Error); ok && !be.Retryable {
			return nil, err
		}
		slog.Warn("backend request retry",
			slog.String("op", op),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
	}
	return nil, lastErr
}

// doRequest executes a single HTTP GET with a rotated User-Agent.
func (t *transport) doRequest(ctx context.Context, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewError(KindConfig, op, err)
	}
	req.Header.Set("User-Agent", t.pickUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.7,en;q=0.3")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, NewError(KindNetwork, op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, NewError(KindNetwork, op, err)
		}
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewError(KindRateLimit, op, fmt.Errorf("HTTP 429"))
	default:
		return nil, NewError(KindNetwork, op, fmt.Errorf("HTTP %d", resp.StatusCode))
	}
}

// waitRateLimit blocks until the minimum inter-request interval has passed.
func (t *transport) waitRateLimit(ctx context.Context) error {
	t.mu.Lock()
	minInterval := time.Duration(float64(time.Second) / t.cfg.RequestsPerSecond)
	wait := minInterval - time.Since(t.lastReq)
	t.lastReq = time.Now().Add(wait)
	t.mu.Unlock()

	if wait > 0 {
		return sleepCtx(ctx, wait)
	}
	return nil
}

// retryDelay returns the pause before the given attempt. Rate-limit
// responses back off harder than plain network failures.
func (t *transport) retryDelay(attempt int, lastErr error) time.Duration {
	if ErrKind(lastErr) == KindRateLimit {
		return t.cfg.RetryDelay * time.Duration(attempt+1)
	}
	return t.cfg.RetryDelay
}

func (t *transport) pickUserAgent() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg.UserAgents[t.uaRandom.Intn(len(t.cfg.UserAgents))]
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
