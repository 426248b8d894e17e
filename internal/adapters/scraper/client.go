// Package scraper is a rate limit aware client for the social media scraper API
package scraper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 5
	defaultUnit       = time.Second
	maxBodyBytes      = 16 << 20

	// pacing in time units
	okCooldownUnits     = 2
	otherStatusUnits    = 4
	initialBackoffUnits = 2
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	APIHost string
	Timeout time.Duration

	// MaxRetries bounds the number of attempts spent on 429 answers
	MaxRetries int

	// Unit is one pacing time unit, cooldowns and backoff are multiples of it
	Unit time.Duration

	PostsPath     string
	ReelsPath     string
	FollowingPath string
	ProfilePath   string
}

// Request describes one upstream call, Path is joined to Options.BaseURL unless URL is set
type Request struct {
	Method string
	URL    string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is a fully read upstream answer
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports whether the upstream answered 200
func (r *Response) OK() bool { return r != nil && r.Status == http.StatusOK }

// Client wraps net/http with cooldown pacing and 429 backoff
type Client struct {
	http  *http.Client
	opts  Options
	pacer Pacer
	log   logger.Logger
	now   func() time.Time
}

// Option customises a Client
type Option func(*Client)

// WithPacer swaps the pacer, tests use it to record pauses instead of sleeping
func WithPacer(p Pacer) Option {
	return func(c *Client) {
		if p != nil {
			c.pacer = p
		}
	}
}

// WithHTTPClient swaps the underlying http client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient creates a Client with defaults applied
func NewClient(o Options, opts ...Option) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetries
	}
	if o.Unit <= 0 {
		o.Unit = defaultUnit
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.PostsPath == "" {
		o.PostsPath = "/user/posts"
	}
	if o.ReelsPath == "" {
		o.ReelsPath = "/user/reels"
	}
	if o.FollowingPath == "" {
		o.FollowingPath = "/following"
	}
	if o.ProfilePath == "" {
		o.ProfilePath = "/user/info"
	}
	c := &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		pacer: TimerPacer{},
		log:   *logger.Named("scraper"),
		now:   time.Now,
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// Options returns the effective options after defaults
func (c *Client) Options() Options { return c.opts }

// Pacer returns the pacer the client sleeps on
func (c *Client) Pacer() Pacer { return c.pacer }

// Units converts a number of pacing units to a duration
func (c *Client) Units(n int) time.Duration { return time.Duration(n) * c.opts.Unit }

// Do issues req, pacing after every answer and backing off on 429
// 200 returns after a short cooldown
// any other non 429 status returns after a longer pause so the caller can inspect it
// a transport failure is not retried
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	target, err := c.target(req)
	if err != nil {
		return nil, err
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	backoff := c.Units(initialBackoffUnits)
	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, lat, err := c.roundTrip(ctx, method, target, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scraper %s %s failed", method, req.Path)
		}

		c.log.Debug().
			Str("method", method).
			Str("path", req.Path).
			Int("status", resp.Status).
			Int("attempt", attempt).
			Dur("latency", lat).
			Msg("scraper http response")

		switch resp.Status {
		case http.StatusOK:
			if err := c.pacer.Pause(ctx, c.Units(okCooldownUnits)); err != nil {
				return nil, err
			}
			return resp, nil
		case http.StatusTooManyRequests:
			wait := backoff
			// Retry-After seconds count as pacing units
			if secs, ok := retryAfter(resp.Header); ok {
				wait = c.Units(secs)
			}
			c.log.Warn().Dur("sleep", wait).Int("attempt", attempt).Msg("scraper rate limited backing off")
			if err := c.pacer.Pause(ctx, wait); err != nil {
				return nil, err
			}
			backoff *= 2
		default:
			if err := c.pacer.Pause(ctx, c.Units(otherStatusUnits)); err != nil {
				return nil, err
			}
			return resp, nil
		}
	}
	return nil, perr.TooManyRequestsf("scraper rate limit persisted after %d attempts", c.opts.MaxRetries)
}

func (c *Client) target(req Request) (string, error) {
	raw := req.URL
	if raw == "" {
		raw = c.opts.BaseURL + req.Path
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", perr.InvalidArgf("scraper target %q is not an absolute url", raw)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, in Request) (*Response, time.Duration, error) {
	var body io.Reader
	if len(in.Body) > 0 {
		body = bytes.NewReader(in.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, 0, err
	}
	for k, vs := range in.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.opts.APIKey != "" {
		req.Header.Set("x-rapidapi-key", c.opts.APIKey)
	}
	if c.opts.APIHost != "" {
		req.Header.Set("x-rapidapi-host", c.opts.APIHost)
	}
	if len(in.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, lat, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Debug().Err(cerr).Msg("scraper close body")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, lat, err
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header.Clone(), Body: b}, lat, nil
}

// retryAfter parses an integer seconds Retry-After header
func retryAfter(h http.Header) (int, bool) {
	s := strings.TrimSpace(h.Get("Retry-After"))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
