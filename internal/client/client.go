// Package client talks to the tracker's HTTP API.
package client

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

	"github.com/Gulur101/quran-toolkit/internal/api"
	"github.com/Gulur101/quran-toolkit/internal/model"
	"github.com/Gulur101/quran-toolkit/internal/mushaf"
)

// DefaultBaseURL is where "serve" listens without configuration.
const DefaultBaseURL = "http://localhost:5000"

// API is what the terminal front end needs from the server.
type API interface {
	ListUsers(ctx context.Context) ([]model.Standing, error)
	CreateUser(ctx context.Context, name string) (model.Participant, error)
	UpdatePage(ctx context.Context, id, page int) (model.Participant, error)
	DeleteUser(ctx context.Context, id int) (model.Participant, error)
	Leaderboard(ctx context.Context) (api.Leaderboard, error)
}

var _ API = (*Client)(nil)

// Client handles requests to a tracker server.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// do sends a request and decodes a JSON answer into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

func (c *Client) ListUsers(ctx context.Context) ([]model.Standing, error) {
	var out []model.Standing
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	fillPercent(out)
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (model.Standing, error) {
	var out model.Standing
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &out)
	out.Percent = mushaf.Percent(out.CurrentPage)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, name string) (model.Participant, error) {
	var out model.Participant
	err := c.do(ctx, http.MethodPost, "/users", map[string]string{"name": name}, &out)
	return out, err
}

// UpdatePage sets a participant's current page.
func (c *Client) UpdatePage(ctx context.Context, id, page int) (model.Participant, error) {
	var out model.Participant
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), map[string]int{"currentPage": page}, &out)
	return out, err
}

func (c *Client) RenameUser(ctx context.Context, id int, name string) (model.Participant, error) {
	var out model.Participant
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int) (model.Participant, error) {
	var out model.Participant
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, &out)
	return out, err
}

func (c *Client) Leaderboard(ctx context.Context) (api.Leaderboard, error) {
	var out api.Leaderboard
	if err := c.do(ctx, http.MethodGet, "/leaderboard", nil, &out); err != nil {
		return api.Leaderboard{}, err
	}
	for i := range out.Standings {
		out.Standings[i].Percent = mushaf.Percent(out.Standings[i].CurrentPage)
	}
	return out, nil
}

func (c *Client) Page(ctx context.Context, page int) (mushaf.PageInfo, error) {
	var out mushaf.PageInfo
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pages/%d", page), nil, &out)
	return out, err
}

func (c *Client) Surahs(ctx context.Context) ([]mushaf.Section, error) {
	var out []mushaf.Section
	err := c.do(ctx, http.MethodGet, "/surahs", nil, &out)
	return out, err
}

// Health returns nil when the server answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

// Percent is not on the wire; rebuild it from the page.
func fillPercent(standings []model.Standing) {
	for i := range standings {
		standings[i].Percent = mushaf.Percent(standings[i].CurrentPage)
	}
}
