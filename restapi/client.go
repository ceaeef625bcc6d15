// Package restapi provides a small base for JSON REST API clients: host
// argument parsing, default headers, a Host override for tunneled
// connections, and typed call errors.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

const (
	DefaultScheme = "https"

	defaultContentType = "application/json"
)

// successStatuses are the response codes treated as a successful call.
var successStatuses = map[int]struct{}{
	200: {}, 201: {}, 202: {}, 203: {}, 204: {}, 205: {}, 206: {}, 207: {},
}

type settings struct {
	scheme   string
	port     int
	basePath string
	realHost string
	httpc    *http.Client
	headers  http.Header
	logger   zerolog.Logger
	logURLs  bool
}

type Option func(*settings)

// WithScheme overrides the default https scheme for bare host arguments.
func WithScheme(scheme string) Option {
	return func(s *settings) { s.scheme = scheme }
}

// WithDefaultPort appends the port to host arguments that carry none.
func WithDefaultPort(port int) Option {
	return func(s *settings) { s.port = port }
}

// WithBasePath prefixes every endpoint for bare host arguments.
func WithBasePath(path string) Option {
	return func(s *settings) { s.basePath = path }
}

// WithRealHost addresses requests at host while keeping the base URL's
// name in place, for connections tunneled e.g. via SSH.
func WithRealHost(host string) Option {
	return func(s *settings) { s.realHost = host }
}

func WithHTTPClient(httpc *http.Client) Option {
	return func(s *settings) { s.httpc = httpc }
}

// WithHeader adds a default header sent on every request.
func WithHeader(name, value string) Option {
	return func(s *settings) { s.headers.Set(name, value) }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithoutURLLogging keeps request URLs out of debug logs, for endpoints
// that embed secrets.
func WithoutURLLogging() Option {
	return func(s *settings) { s.logURLs = false }
}

// Client calls a JSON REST API.
type Client struct {
	baseURL  string
	realHost string
	headers  http.Header
	httpc    *http.Client
	logger   zerolog.Logger
	logURLs  bool
}

func New(host string, opts ...Option) (*Client, error) {
	s := settings{
		scheme:  DefaultScheme,
		httpc:   http.DefaultClient,
		headers: http.Header{},
		logger:  zerolog.Nop(),
		logURLs: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	baseURL, realHost, err := parseHostArg(host, s.realHost, hostDefaults{
		scheme:   s.scheme,
		port:     s.port,
		basePath: s.basePath,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:  baseURL,
		realHost: realHost,
		headers:  s.headers,
		httpc:    s.httpc,
		logger:   s.logger,
		logURLs:  s.logURLs,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) RealHost() string {
	return c.realHost
}

// JoinURL appends an endpoint to the base URL.
func (c *Client) JoinURL(endpoint string) string {
	if endpoint == "" {
		return c.baseURL
	}

	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// SetHeader sets a default header sent on every subsequent request.
func (c *Client) SetHeader(name, value string) {
	c.headers.Set(name, value)
}

// UnsetHeader removes a default header; missing headers are ignored.
func (c *Client) UnsetHeader(name string) {
	c.headers.Del(name)
}

// Do performs one API call. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded JSON response. Responses outside the
// success range yield a *CallError.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	callURL := c.JoinURL(endpoint)

	req, err := http.NewRequestWithContext(ctx, method, callURL, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Content-Type", defaultContentType)
	req.Header.Set("Accept", defaultContentType)
	for name, values := range c.headers {
		req.Header[name] = values
	}
	if c.realHost != "" {
		req.Host = c.realHost
	}

	c.logger.Debug().Str("method", method).Str("url", c.loggedURL(callURL)).Msg("api request")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, c.loggedURL(callURL))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", c.loggedURL(callURL)).
		Int("status", resp.StatusCode).
		Msg("api response")

	if _, ok := successStatuses[resp.StatusCode]; !ok {
		return &CallError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "failed to decode response body")
		}
	}

	return nil
}

func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) loggedURL(callURL string) string {
	if !c.logURLs {
		return "NOT_LOGGING_URL"
	}

	return callURL
}
