package scraper

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	perr "creatorscout/internal/platform/errors"
)

// Posts fetches the most recent posts of username
func (c *Client) Posts(ctx context.Context, username string, count int) (*Response, error) {
	return c.userList(ctx, c.opts.PostsPath, username, count)
}

// Reels fetches the most recent reels of username
func (c *Client) Reels(ctx context.Context, username string, count int) (*Response, error) {
	return c.userList(ctx, c.opts.ReelsPath, username, count)
}

// Following lists the accounts username follows
func (c *Client) Following(ctx context.Context, username string, count int) (*Response, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, perr.Validationf("username is required")
	}
	q := url.Values{}
	q.Set("username_or_id", username)
	q.Set("count", strconv.Itoa(count))
	q.Set("version", "v2")
	return c.Do(ctx, Request{Method: http.MethodGet, Path: c.opts.FollowingPath, Query: q})
}

// Profile fetches the public profile of username
func (c *Client) Profile(ctx context.Context, username string) (*Response, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, perr.Validationf("username is required")
	}
	return c.Do(ctx, Request{Method: http.MethodGet, Path: joinPath(c.opts.ProfilePath, username)})
}

func (c *Client) userList(ctx context.Context, base, username string, count int) (*Response, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, perr.Validationf("username is required")
	}
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	return c.Do(ctx, Request{Method: http.MethodGet, Path: joinPath(base, username), Query: q})
}

func joinPath(base, username string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(username)
}
