// Package classifier calls the niche classification service
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"creatorscout/internal/core/niche"
	"creatorscout/internal/platform/config"
	perr "creatorscout/internal/platform/errors"
	"creatorscout/internal/platform/logger"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second
	maxAnswerBytes = 1 << 20
)

// Options configures the Client
type Options struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// FromConfig reads CORE_CLASSIFIER_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_CLASSIFIER_")
	return Options{
		URL:     c.MayString("URL", ""),
		Model:   c.MayString("MODEL", defaultModel),
		Timeout: c.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Query is one classification request
type Query struct {
	Message string
	Niche   string
	Level   string
}

// Answer is the interpreted classifier response
type Answer struct {
	Outcome niche.Outcome
	Status  int
}

type payload struct {
	Model   string `json:"model"`
	Message string `json:"message"`
	Niche   string `json:"niche"`
	Level   string `json:"level"`
}

// Client posts digests to the classifier, it never retries
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with defaults applied
func NewClient(o Options) *Client {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	o.URL = strings.TrimSpace(o.URL)
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("classifier"),
	}
}

// Classify sends q and interprets the answer
// A transport failure is Unavailable and an unreadable 200 body is a JSON error,
// in both cases the returned Answer is Skipped
func (c *Client) Classify(ctx context.Context, q Query) (Answer, error) {
	if c.opts.URL == "" {
		return Answer{}, perr.InvalidArgf("classifier url is not configured")
	}
	body, err := json.Marshal(payload{Model: c.opts.Model, Message: q.Message, Niche: q.Niche, Level: q.Level})
	if err != nil {
		return Answer{}, perr.Wrapf(err, perr.ErrorCodeJSON, "encode classifier query")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.URL, bytes.NewReader(body))
	if err != nil {
		return Answer{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "classifier new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Answer{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "classifier post failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Debug().Err(cerr).Msg("classifier close body")
		}
	}()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAnswerBytes))
	if err != nil {
		return Answer{Status: resp.StatusCode}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "classifier read failed")
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Int("bytes", len(raw)).
		Msg("classifier http response")

	out, err := niche.Interpret(resp.StatusCode, raw)
	return Answer{Outcome: out, Status: resp.StatusCode}, err
}
