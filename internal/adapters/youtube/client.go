// Package youtube is a small YouTube Data API v3 client covering comment thread
// listing and comment deletion
package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"commentsweep/internal/core/version"
	perr "commentsweep/internal/platform/errors"
	"commentsweep/internal/platform/logger"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	baseURLDefault     = "https://www.googleapis.com"
	defaultCallTimeout = 10 * time.Second
	defaultRetryMin    = 500 * time.Millisecond
	defaultRetryMax    = 5 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	// APIKey authorizes quota-metered calls. Both endpoints send it
	APIKey string

	// CallTimeout bounds every remote call including any retries
	CallTimeout time.Duration

	Retry RetryOptions

	// Transport replaces the pooled default, mostly for tests
	Transport http.RoundTripper
}

// RetryOptions is the only retry hook. The zero value never retries
type RetryOptions struct {
	Max     int
	WaitMin time.Duration
	WaitMax time.Duration
	// Policy decides per attempt, nil means NoRetry
	Policy retryablehttp.CheckRetry
}

// Client talks to the platform over a traced, optionally retrying http.Client
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with defaults filled in
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = version.UserAgent()
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = defaultCallTimeout
	}
	if o.Retry.WaitMin <= 0 {
		o.Retry.WaitMin = defaultRetryMin
	}
	if o.Retry.WaitMax <= 0 {
		o.Retry.WaitMax = defaultRetryMax
	}
	if o.Retry.Policy == nil {
		o.Retry.Policy = NoRetry
	}
	if o.Retry.Max < 0 {
		o.Retry.Max = 0
	}

	log := *logger.Named("youtube")

	base := o.Transport
	if base == nil {
		base = cleanhttp.DefaultPooledTransport()
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient.Transport = otelhttp.NewTransport(base)
	rc.RetryMax = o.Retry.Max
	rc.RetryWaitMin = o.Retry.WaitMin
	rc.RetryWaitMax = o.Retry.WaitMax
	rc.CheckRetry = o.Retry.Policy
	// hand the last response back untouched so error payloads can be decoded
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = retryablehttp.LeveledLogger(leveledZerolog{inner: log})

	return &Client{
		http: rc.StandardClient(),
		opts: o,
		log:  log,
		now:  time.Now,
	}
}

// HasAPIKey reports whether an API key is configured
func (c *Client) HasAPIKey() bool { return c.opts.APIKey != "" }

// NoRetry never retries. It still surfaces context cancellation
func NoRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// TransientPolicy retries connection errors and 5xx like retryablehttp's default,
// but never 403 or 429 since the platform reports quota exhaustion that way
func TransientPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden) {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// do issues one logical call under the per-call budget. A 2xx body is handed to out,
// anything else comes back as *APIError and transport failures as *TransportError
func (c *Client) do(ctx context.Context, method, path string, q url.Values, bearer string, out func(io.Reader) error) error {
	if !c.HasAPIKey() {
		return ErrNoAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.CallTimeout)
	defer cancel()

	q.Set("key", c.opts.APIKey)
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "youtube new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		err = redactURLError(err)
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Dur("latency", lat).Msg("youtube transport error")
		return &TransportError{Err: err}
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("youtube close body failed")
		}
	}()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("youtube http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return out(io.LimitReader(resp.Body, maxBody))
}

// redactURLError strips the query, and with it the API key, from a *url.Error
func redactURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		if u, pe := url.Parse(ue.URL); pe == nil {
			u.RawQuery = ""
			ue.URL = u.String()
		}
	}
	return err
}

// leveledZerolog adapts zerolog to retryablehttp.LeveledLogger.
// Intermediate failures are expected while retrying so ERROR is logged as WARN
type leveledZerolog struct {
	inner logger.Logger
}

func (l leveledZerolog) Error(msg string, kv ...any) { l.inner.Warn().Fields(redactKV(kv)).Msg(msg) }
func (l leveledZerolog) Warn(msg string, kv ...any)  { l.inner.Warn().Fields(redactKV(kv)).Msg(msg) }
func (l leveledZerolog) Info(msg string, kv ...any)  { l.inner.Debug().Fields(redactKV(kv)).Msg(msg) }
func (l leveledZerolog) Debug(msg string, kv ...any) { l.inner.Debug().Fields(redactKV(kv)).Msg(msg) }

// redactKV drops query strings from logged urls, they carry the API key
func redactKV(kv []any) []any {
	out := make([]any, len(kv))
	copy(out, kv)
	for i := 1; i < len(out); i += 2 {
		switch v := out[i].(type) {
		case *url.URL:
			if v != nil {
				u := *v
				u.RawQuery = ""
				out[i] = u.String()
			}
		case string:
			if k, _ := out[i-1].(string); k == "url" {
				if u, err := url.Parse(v); err == nil {
					u.RawQuery = ""
					out[i] = u.String()
				}
			}
		}
	}
	return out
}
