// Package api implements the driven.Gateway port against the redten
// REST API: plain JSON over HTTPS with a bearer token header and
// optional mutual TLS.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Gateway = (*Client)(nil)

// Per-endpoint request timeouts. Login and job-status polls get the
// longer budget; everything else fails fast.
const (
	timeoutShort = 5 * time.Second
	timeoutLong  = 10 * time.Second
)

// Options configure the API client.
type Options struct {
	// BaseURL is the service base, e.g. https://api.redten.io/v1/dev.
	BaseURL string

	// CAFile is the CA bundle verifying the server certificate.
	// When empty, verification is DISABLED. This mirrors the
	// historical self-signed deployment mode and is logged loudly;
	// it is not a recommended security default.
	CAFile string

	// CertFile and KeyFile are the optional mutual-TLS client pair.
	CertFile string
	KeyFile  string

	// Debug widens failure logging to full request/response context.
	Debug bool
}

// Client talks to the redten REST API. It is stateless across calls:
// the bearer token is taken from the user argument on every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	debug      bool
}

// New creates an API client. The TLS material is loaded once here;
// a missing CA downgrades to unverified TLS with a warning.
func New(opts Options) (*Client, error) {
	tlsCfg := &tls.Config{}

	if opts.CAFile == "" {
		logger.Warn("tls config - no ca set - server verification disabled")
		tlsCfg.InsecureSkipVerify = true
	} else {
		pem, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, fmt.Errorf("reading ca bundle %s: %w", opts.CAFile, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", opts.CAFile)
		}
		tlsCfg.RootCAs = pool
	}

	if opts.CertFile != "" && opts.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("loading client cert pair: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		},
		debug: opts.Debug,
	}, nil
}

// NewForTesting creates a client pointed at a test double, trusting
// whatever transport the default client uses.
func NewForTesting(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}
}

// StatusError reports a response that did not carry the expected
// status code. The body is retained for logging and for the
// body-substring predicates the server forces on us.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

// request describes one call for do.
type request struct {
	method     string
	path       string
	body       any
	user       *domain.User
	timeout    time.Duration
	wantStatus int
}

// do issues the request and returns the status code and raw body.
// A nil error is returned only for the expected status; any other
// status comes back as a *StatusError alongside the body so callers
// can apply their endpoint-specific predicates.
func (c *Client) do(ctx context.Context, r request) (int, []byte, error) {
	var bodyReader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshalling request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	timeout := r.timeout
	if timeout == 0 {
		timeout = timeoutShort
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := c.baseURL + r.path
	req, err := http.NewRequestWithContext(reqCtx, r.method, url, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.user != nil {
		// The service reads the token from a header literally named
		// Bearer, not from a standard Authorization header.
		req.Header.Set("Bearer", r.user.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("executing request %s %s: %w", r.method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	if resp.StatusCode != r.wantStatus {
		return resp.StatusCode, raw, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}
	return resp.StatusCode, raw, nil
}

// decode parses a response body into out, converting shape mismatches
// into a single structured error instead of silently defaulting.
func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// logStatusError records a failed call with full context when debug
// logging is on, and a terse line otherwise.
func (c *Client) logStatusError(op string, serr *StatusError) {
	if c.debug {
		logger.Error("%s failed:\n  url: %s\n  code: %d\n  body: %s",
			op, serr.URL, serr.StatusCode, serr.Body)
		return
	}
	logger.Error("%s failed: %d from %s", op, serr.StatusCode, serr.URL)
}
