package warlight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/warlight-go/internal/logging"
)

// CallRecorder observes every operation the client performs.
type CallRecorder interface {
	RecordCall(operation string, duration time.Duration, err error)
}

// Config controls how the client reaches the API and which credentials it sends.
type Config struct {
	BaseURL    string
	Email      string
	APIToken   string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Recorder   CallRecorder
}

// Client issues authenticated calls against the Warlight API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	baseURL    string
	email      string
	token      string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   CallRecorder
	now        func() time.Time
	newID      func() string
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		email:      cfg.Email,
		token:      cfg.APIToken,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// GetAPIToken exchanges an email and password for an API token.
// Only the transport settings of cfg are used.
func GetAPIToken(ctx context.Context, cfg Config, email, password string) (string, error) {
	c := NewClient(Config{BaseURL: cfg.BaseURL, HTTPClient: cfg.HTTPClient, Logger: cfg.Logger, Recorder: cfg.Recorder})
	return c.fetchAPIToken(ctx, email, password)
}

// Login fetches an API token and returns a client using it.
func Login(ctx context.Context, cfg Config, email, password string) (*Client, error) {
	token, err := GetAPIToken(ctx, cfg, email, password)
	if err != nil {
		return nil, err
	}
	cfg.Email = email
	cfg.APIToken = token
	return NewClient(cfg), nil
}

// Email returns the account email the client authenticates with.
func (c *Client) Email() string {
	return c.email
}

func (c *Client) fetchAPIToken(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", c.reject(argError(OpGetAPIToken, "email", "must not be empty"))
	}
	resp, err := c.do(ctx, call{
		op:       OpGetAPIToken,
		endpoint: endpointAPIToken,
		query:    url.Values{"Email": {email}, "Password": {password}},
	})
	if err != nil {
		return "", err
	}
	var token string
	if err := resp.fields.field("APIToken", &token); err != nil {
		return "", c.decodeFailure(OpGetAPIToken, err)
	}
	return token, nil
}

// credentials returns the query parameters identifying the account.
func (c *Client) credentials() url.Values {
	return url.Values{
		"Email":    {c.email},
		"APIToken": {c.token},
	}
}

type call struct {
	op       string
	endpoint string
	query    url.Values
	// body is sent as JSON when non-nil.
	body any
	// notFoundMarker turns matching API errors into not-found errors.
	notFoundMarker string
}

type response struct {
	statusCode int
	raw        []byte
	fields     envelope
}

func (c *Client) do(ctx context.Context, cl call) (*response, error) {
	requestID := c.newID()
	start := c.now()

	resp, err := c.roundTrip(ctx, cl)
	elapsed := c.now().Sub(start)

	status := 0
	if resp != nil {
		status = resp.statusCode
	}
	c.observe(cl, requestID, status, elapsed, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, cl call) (*response, error) {
	req, err := c.buildRequest(ctx, cl)
	if err != nil {
		return nil, fmt.Errorf("warlight: %s: build request: %w", cl.op, err)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("warlight: %s: %w", cl.op, c.redact(cl, err))
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("warlight: %s: read response: %w", cl.op, err)
	}

	resp := &response{statusCode: httpResp.StatusCode, raw: raw}
	var fields envelope
	if decodeErr := wire.Unmarshal(raw, &fields); decodeErr != nil || fields == nil {
		if httpResp.StatusCode != http.StatusOK {
			return resp, &StatusError{Op: cl.op, StatusCode: httpResp.StatusCode, Body: snippet(raw)}
		}
		if decodeErr == nil {
			decodeErr = errors.New("response is not a JSON object")
		}
		return resp, fmt.Errorf("warlight: %s: decode response: %w", cl.op, decodeErr)
	}
	resp.fields = fields

	if msg, ok := fields.apiError(); ok {
		apiErr := &APIError{Op: cl.op, StatusCode: httpResp.StatusCode, Message: msg}
		if cl.notFoundMarker != "" && strings.Contains(msg, cl.notFoundMarker) {
			apiErr.notFound = true
		}
		return resp, apiErr
	}
	if httpResp.StatusCode != http.StatusOK {
		return resp, &StatusError{Op: cl.op, StatusCode: httpResp.StatusCode, Body: snippet(raw)}
	}
	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, cl call) (*http.Request, error) {
	var body io.Reader
	if cl.body != nil {
		payload, err := wire.Marshal(cl.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+cl.endpoint, body)
	if err != nil {
		return nil, err
	}
	if len(cl.query) > 0 {
		req.URL.RawQuery = cl.query.Encode()
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

func (c *Client) observe(cl call, requestID string, status int, elapsed time.Duration, err error) {
	if c.recorder != nil {
		c.recorder.RecordCall(cl.op, elapsed, err)
	}
	args := logging.CallArgs(cl.op, requestID, cl.endpoint, status, elapsed)
	if err != nil {
		logging.Warn(c.logger, "warlight call failed", append(args, logging.FieldError, err)...)
		return
	}
	logging.Debug(c.logger, "warlight call", args...)
}

// reject records an argument error for an operation that never reached the wire.
func (c *Client) reject(err *ArgumentError) error {
	if c.recorder != nil {
		c.recorder.RecordCall(err.Op, 0, err)
	}
	logging.Debug(c.logger, "warlight call rejected", logging.FieldOperation, err.Op, logging.FieldError, err)
	return err
}

// redact strips the query string, which carries credentials, from URLs
// embedded in transport errors.
func (c *Client) redact(cl call, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = c.baseURL + "/" + cl.endpoint
	}
	return err
}

func (c *Client) decodeFailure(op string, err error) error {
	return fmt.Errorf("warlight: %s: decode response: %w", op, err)
}
