// Package client is the single gateway to the Duke Farm REST API. It owns
// base-URL resolution, bearer auth, the request timeout, the response
// envelope convention, and the error taxonomy. It never retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/koard/DukeFarm-Admin-sub000/internal/session"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  session.TokenProvider
	timeout time.Duration
}

// Options tunes a single request.
type Options struct {
	// Timeout overrides the client default when > 0.
	Timeout time.Duration
	// SkipAuth leaves the Authorization header off (login only).
	SkipAuth bool
	// Header entries are added to the request verbatim.
	Header http.Header
}

func New(baseURL string, tokens session.TokenProvider) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the default per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.timeout = d
	}
	return c
}

// WithHTTPClient swaps the underlying transport (tests).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.httpc = h
	return c
}

// do issues one request and returns the raw response body. A nil body slice
// with nil error means 204 No Content. All failures come back as *Error.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, opt *Options) ([]byte, error) {
	if opt == nil {
		opt = &Options{}
	}

	timeout := c.timeout
	if opt.Timeout > 0 {
		timeout = opt.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, newUnknownError(err)
		}
		payload = bytes.NewReader(raw)
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, newUnknownError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if !opt.SkipAuth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, vs := range opt.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, newTimeoutError()
		}
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newUnknownError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, raw)
	}
	return raw, nil
}

// serverError prefers the message the server supplied.
func serverError(status int, raw []byte) *Error {
	var body struct {
		Message string   `json:"message"`
		Error   string   `json:"error"`
		Errors  []string `json:"errors"`
	}
	_ = json.Unmarshal(raw, &body)
	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = "เกิดข้อผิดพลาดจากเซิร์ฟเวอร์"
	}
	return &Error{Message: msg, Status: status, Errors: body.Errors}
}

// decode applies the envelope convention: an object carrying a "data" key
// (and no sibling "pagination") is unwrapped to its data; anything else is
// decoded verbatim. Pure with respect to the body, so repeating a request
// with the same body yields the same result.
func decode[T any](raw []byte) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if data, ok := envelope["data"]; ok {
			if _, paginated := envelope["pagination"]; !paginated {
				raw = data
			}
		}
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, newUnknownError(err)
	}
	return out, nil
}

// Get issues a GET and decodes the (possibly enveloped) response into T.
func Get[T any](ctx context.Context, c *Client, endpoint string, opt *Options) (T, error) {
	raw, err := c.do(ctx, http.MethodGet, endpoint, nil, opt)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}

func Post[T any](ctx context.Context, c *Client, endpoint string, body any, opt *Options) (T, error) {
	raw, err := c.do(ctx, http.MethodPost, endpoint, body, opt)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}

func Put[T any](ctx context.Context, c *Client, endpoint string, body any, opt *Options) (T, error) {
	raw, err := c.do(ctx, http.MethodPut, endpoint, body, opt)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, endpoint string, opt *Options) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, opt)
	return err
}

// GetRaw fetches bytes without JSON decoding (file downloads).
func (c *Client) GetRaw(ctx context.Context, endpoint string, opt *Options) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, opt)
}
