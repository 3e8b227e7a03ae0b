// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/tidwall/gjson"

	mylog "github.com/staranto/curvenotego/internal/log"
	"github.com/staranto/curvenotego/internal/store"
	"github.com/staranto/curvenotego/internal/version"
)

const (
	DefaultAPIURL  = "https://api.curvenote.com"
	DefaultSiteURL = "https://curvenote.com"
)

// Sentinel errors so callers can detect token and response problems with
// errors.Is.
var (
	ErrTokenInvalid    = errors.New("could not decode session token, please ensure that the API token is valid")
	ErrTokenExpired    = errors.New("the API token has expired")
	ErrInvalidResponse = errors.New("response body is not valid JSON")
)

type options struct {
	apiURL  string
	siteURL string
	logger  log.Interface
	client  *http.Client
	now     func() time.Time
}

// Option customizes a Session.
type Option func(*options)

// WithAPIURL overrides DefaultAPIURL. A trailing slash is dropped.
func WithAPIURL(u string) Option {
	return func(o *options) { o.apiURL = u }
}

// WithSiteURL overrides DefaultSiteURL.
func WithSiteURL(u string) Option {
	return func(o *options) { o.siteURL = u }
}

// WithLogger replaces the default info level logger.
func WithLogger(l log.Interface) Option {
	return func(o *options) { o.logger = l }
}

// WithHTTPClient replaces the default cleanhttp client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.client = c }
}

// WithClock replaces time.Now for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Session carries the request context shared by all API calls made during
// one process invocation.
type Session struct {
	apiURL  string
	siteURL string
	headers map[string]string
	store   *store.Store
	log     log.Interface
	client  *http.Client
	expiry  time.Time
}

// Response is the raw outcome of a GET or POST. Non-2xx statuses are not
// errors; callers inspect Status.
type Response struct {
	Status int
	Body   gjson.Result
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if r.Body.Raw == "" {
		return fmt.Errorf("failed to decode response: %w", ErrInvalidResponse)
	}
	if err := json.Unmarshal([]byte(r.Body.Raw), v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// New builds a Session. A non-empty token is checked before use and sent as
// a bearer token on every request.
func New(token string, opts ...Option) (*Session, error) {
	o := options{
		apiURL:  DefaultAPIURL,
		siteURL: DefaultSiteURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = mylog.New(os.Stderr, log.InfoLevel)
	}
	if o.client == nil {
		o.client = cleanhttp.DefaultClient()
	}

	s := &Session{
		apiURL:  strings.TrimSuffix(o.apiURL, "/"),
		siteURL: strings.TrimSuffix(o.siteURL, "/"),
		headers: map[string]string{
			"X-Client-Name":    version.ClientName,
			"X-Client-Version": version.Version,
		},
		store:  store.New(),
		log:    o.logger,
		client: o.client,
	}

	if token != "" {
		exp, err := checkToken(token, o.now(), s.log)
		if err != nil {
			return nil, err
		}
		s.expiry = exp
		s.headers["Authorization"] = "Bearer " + token
	}

	return s, nil
}

// APIURL is the base URL relative paths are resolved against.
func (s *Session) APIURL() string { return s.apiURL }

// SiteURL is the base URL of the web site.
func (s *Session) SiteURL() string { return s.siteURL }

// Headers returns a copy of the headers sent with every request.
func (s *Session) Headers() map[string]string {
	h := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		h[k] = v
	}
	return h
}

// IsAnonymous is true when no token was supplied.
func (s *Session) IsAnonymous() bool {
	_, ok := s.headers["Authorization"]
	return !ok
}

// TokenExpiry returns the decoded token expiry, false when anonymous.
func (s *Session) TokenExpiry() (time.Time, bool) {
	return s.expiry, !s.IsAnonymous()
}

// Log returns the session logger.
func (s *Session) Log() log.Interface { return s.log }

// Store returns the entity cache shared by every transfer on this session.
func (s *Session) Store() *store.Store { return s.store }

// Get issues a GET. path is resolved against the API URL unless it is
// already absolute. query values are URL-encoded and appended.
func (s *Session) Get(ctx context.Context, path string, query map[string]string) (*Response, error) {
	target := path
	if !strings.HasPrefix(path, s.apiURL) && !isAbsolute(path) {
		target = s.apiURL + path
	}
	return s.do(ctx, http.MethodGet, withQuery(target, query), nil)
}

// Post issues a POST with payload encoded as JSON. Any leading API URL on
// path is stripped and re-prepended, so path is always sent to the API host.
func (s *Session) Post(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	path = strings.TrimPrefix(path, s.apiURL)
	return s.do(ctx, http.MethodPost, s.apiURL+path, body)
}

func (s *Session) do(ctx context.Context, method string, target string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	s.log.WithField("method", method).WithField("url", target).Debug("request")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	result := &Response{Status: resp.StatusCode}
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
	case gjson.ValidBytes(raw):
		result.Body = gjson.ParseBytes(raw)
	case result.OK():
		return result, fmt.Errorf("%s %s: %w", method, target, ErrInvalidResponse)
	default:
		// Error pages are often HTML; the status is what matters.
		s.log.WithField("status", resp.StatusCode).Debug("discarding non-JSON error body")
	}

	return result, nil
}

func isAbsolute(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// withQuery appends query to target in key order. Values are escaped the way
// a browser's encodeURIComponent would, so spaces become %20.
func withQuery(target string, query map[string]string) string {
	if len(query) == 0 {
		return target
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]string, 0, len(keys))
	for _, k := range keys {
		v := strings.ReplaceAll(url.QueryEscape(query[k]), "+", "%20")
		params = append(params, k+"="+v)
	}

	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + strings.Join(params, "&")
}
