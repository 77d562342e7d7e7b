package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/avast/retry-go"

	"github.com/neelammkw/elearning-client/config"
	"github.com/neelammkw/elearning-client/session"
	"github.com/neelammkw/elearning-client/utils"
)

// Cache tags. GET endpoints provide them, mutations invalidate them.
const (
	TagCourses       = "Courses"
	TagOrders        = "Orders"
	TagUsers         = "Users"
	TagNotifications = "Notifications"
	TagAnalytics     = "Analytics"
	TagEnrollment    = "Enrollment"
)

// APIError carries the server-provided message so call sites can prefer it
// over a generic failure string.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// ErrorMessage extracts the server message from err, falling back to the
// given generic text.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client wraps the remote platform API: cookie-based credentials on every
// request, tag-invalidated response caching for reads, and transparent
// retries for idempotent GETs only. Mutations are never retried.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	cache   *tagCache
	retries uint
}

func NewClient(cfg *config.Config, sess *session.Session, logger *log.Logger) *Client {
	jar, _ := cookiejar.New(nil)

	transport := &utils.LoggingTransport{Logger: logger, Colors: logger != nil}

	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http: &http.Client{
			Jar:       jar,
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		session: sess,
		cache:   newTagCache(),
		retries: 3,
	}
}

func (c *Client) Session() *session.Session {
	return c.session
}

// InvalidateTags drops every cached response provided under any of the tags.
func (c *Client) InvalidateTags(tags ...string) {
	c.cache.Invalidate(tags...)
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s: %w", req.URL.Path, err)
		}
	}
	return nil
}

// serverMessage digs the message out of an error body, preferring "message"
// over "error" the way the front end does.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// get reads through the tag cache. A cache hit decodes the stored body
// without a network round trip; a miss fetches (with retries — GETs are
// idempotent) and provides the response under the given tags.
func (c *Client) get(ctx context.Context, path string, out interface{}, tags ...string) error {
	if data, ok := c.cache.Get(path); ok {
		return json.Unmarshal(data, out)
	}

	var data []byte
	err := retry.Do(
		func() error {
			req, err := c.newRequest(ctx, http.MethodGet, path, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 500 {
				return &APIError{StatusCode: resp.StatusCode, Message: serverMessage(body)}
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return retry.Unrecoverable(&APIError{StatusCode: resp.StatusCode, Message: serverMessage(body)})
			}
			data = body
			return nil
		},
		retry.Attempts(c.retries),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	c.cache.Provide(path, data, tags...)
	return nil
}

// mutate sends a write request exactly once and invalidates the tags on
// success.
func (c *Client) mutate(ctx context.Context, method, path string, body interface{}, out interface{}, invalidates ...string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if err := c.do(req, out); err != nil {
		return err
	}

	c.cache.Invalidate(invalidates...)
	return nil
}

// mutateWithRequest sends a prepared request (callers that need extra
// headers) with a JSON body attached.
func (c *Client) mutateWithRequest(req *http.Request, body interface{}, out interface{}, invalidates ...string) error {
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req.Body = io.NopCloser(bytes.NewReader(data))
		req.ContentLength = int64(len(data))
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.do(req, out); err != nil {
		return err
	}
	c.cache.Invalidate(invalidates...)
	return nil
}

// mutateMultipart sends a multipart payload (course create/edit uploads).
func (c *Client) mutateMultipart(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}, invalidates ...string) error {
	req, err := c.newRequest(ctx, method, path, nil)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(body)
	req.Header.Set("Content-Type", contentType)

	if err := c.do(req, out); err != nil {
		return err
	}

	c.cache.Invalidate(invalidates...)
	return nil
}
