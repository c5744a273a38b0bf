package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient implements Client over the backend's JSON API.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
}

// NewHTTPClient constructs an HTTPClient for the given base URL. Each call
// gets its own deadline of timeout, in addition to whatever deadline the
// caller's context carries.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		hc:      &http.Client{},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type saveCoursesRequest struct {
	UserID          string   `json:"user_id"`
	SelectedCourses []string `json:"selected_courses"`
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// errorResponse is the backend's failure envelope ({"detail": "..."}).
type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*Account, error) {
	req := loginRequest{Email: email, Password: string(password)}

	var acct Account
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email string, password []byte) (*Account, error) {
	req := registerRequest{Username: username, Email: email, Password: string(password)}

	var acct Account
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (c *HTTPClient) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.doJSON(ctx, http.MethodGet, "/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) SaveSelectedCourses(ctx context.Context, userID string, courses []string) error {
	req := saveCoursesRequest{UserID: userID, SelectedCourses: courses}
	return c.doJSON(ctx, http.MethodPost, "/save_selected_courses", req, nil)
}

func (c *HTTPClient) Chat(ctx context.Context, userID, message string) (string, error) {
	req := chatRequest{UserID: userID, Message: message}

	var resp chatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/", nil, nil)
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// doJSON sends a single JSON request and decodes the response into out
// (out may be nil when the body does not matter). Transport and status
// failures come back already mapped to sentinel errors.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrUnavailable, path, err)
	}
	return nil
}

// mapStatus translates an HTTP error status into a sentinel error, keeping
// the server's own reason when it sent one.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&er)

	reason := er.Detail
	if reason == "" {
		reason = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrAuthRejected, reason)
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, reason)
	}
}
