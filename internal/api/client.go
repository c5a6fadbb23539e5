package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/birdsong/birdsong-cli/internal/debug"
)

const (
	// DefaultBaseURL is the endpoint the original deployment targeted.
	DefaultBaseURL = "https://twitter.com"

	DefaultTimeout = 30 * time.Second
)

// Client identity headers, sent on every POST when the corresponding
// ClientIdentity field is set. Header names are wire-compatible with
// systems expecting the classic client signature.
const (
	headerClientName    = "X-Twitter-Client"
	headerClientVersion = "X-Twitter-Version"
	headerClientURL     = "X-Twitter-URL"
)

// Credentials is a basic-auth username/password pair, supplied per call
// rather than stored on the client. Incomplete credentials mean GETs go out
// unauthenticated and POSTs become a silent no-op (see executePost).
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) complete() bool {
	return c.Username != "" && c.Password != ""
}

// ClientIdentity is the optional (name, version, url) triple identifying the
// calling application, attached as headers on every POST.
type ClientIdentity struct {
	Name    string
	Version string
	URL     string
}

// Response is the outcome of a dispatched request. Callers branch three ways:
// body present, NoContent (GET 404 — the resource is absent, not an error),
// or an error returned alongside a nil Response.
type Response struct {
	Body       []byte
	StatusCode int
	NoContent  bool
}

// Client dispatches requests against a single base endpoint.
//
// Identity and Source are read during request construction; they may be
// mutated between calls but not concurrently with them. Concurrent
// independent calls on one Client are otherwise safe.
type Client struct {
	BaseURL   string
	HTTP      *http.Client
	UserAgent string

	// Identity is attached as X-Twitter-* headers on every POST.
	Identity ClientIdentity

	// Source is appended last to every POST body as source=<value>.
	Source string
}

// New creates a client for the given base URL. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12
	// The target server mishandles the Expect: 100-continue handshake, so
	// the client never waits on it. Transport-wide, not per call.
	transport.ExpectContinueTimeout = 0

	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
	}
}

// executeGet performs one GET. A 404 is normalized to Response.NoContent;
// any other non-2xx status surfaces as *APIError.
func (c *Client) executeGet(ctx context.Context, reqURL string, creds Credentials) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if creds.complete() {
		req.SetBasicAuth(creds.Username, creds.Password)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return c.roundTrip(req, true)
}

// executePost performs one form-encoded POST. Without complete credentials it
// performs no network call and returns (nil, nil) — a quirk preserved from
// the original client; callers cannot distinguish "not attempted" from an
// empty body, so the CLI warns on it separately.
func (c *Client) executePost(ctx context.Context, reqURL string, creds Credentials, form []Param) (*Response, error) {
	if !creds.complete() {
		return nil, nil
	}

	body := encodeParams(form)
	if c.Source != "" {
		if body != "" {
			body += "&"
		}
		body += "source=" + url.QueryEscape(c.Source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Password)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Identity.Name != "" {
		req.Header.Set(headerClientName, c.Identity.Name)
	}
	if c.Identity.Version != "" {
		req.Header.Set(headerClientVersion, c.Identity.Version)
	}
	if c.Identity.URL != "" {
		req.Header.Set(headerClientURL, c.Identity.URL)
	}
	return c.roundTrip(req, false)
}

// roundTrip sends the request, reads the full body, and maps the status code
// to the three-way outcome. normalize404 applies only to GETs.
func (c *Client) roundTrip(req *http.Request, normalize404 bool) (*Response, error) {
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	debug.LogRequest(req.Context(), req.Method, req.URL.String(), resp.StatusCode, time.Since(start))

	if normalize404 && resp.StatusCode == http.StatusNotFound {
		return &Response{StatusCode: resp.StatusCode, NoContent: true}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return &Response{Body: respBody, StatusCode: resp.StatusCode}, nil
}
