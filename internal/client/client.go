package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"forest-ca/pkg/forest"
)

const (
	randomFieldPath = "/v1/field/random"
	stepPath        = "/v1/simulation/step"
	censusPath      = "/v1/field/census"
)

// Client talks to a forest-server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// RandomField requests a freshly seeded field.
func (c *Client) RandomField(ctx context.Context, s forest.Seeding) (forest.Field, error) {
	q := url.Values{}
	q.Set("size", strconv.Itoa(s.Size))
	q.Set("grass", strconv.Itoa(s.Grass))
	q.Set("trees", strconv.Itoa(s.Trees))
	q.Set("flames", strconv.Itoa(s.Flames))
	q.Set("seed", strconv.FormatUint(s.Seed, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+randomFieldPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var f forest.Field
	if err := c.do(req, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("client: random field: %w", err)
	}
	return f, nil
}

// Step submits f and returns the field one tick later.
func (c *Client) Step(ctx context.Context, f forest.Field) (forest.Field, error) {
	req, err := c.postField(ctx, stepPath, f)
	if err != nil {
		return nil, err
	}
	var next forest.Field
	if err := c.do(req, &next); err != nil {
		return nil, err
	}
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("client: step: %w", err)
	}
	if len(next) != len(f) {
		return nil, fmt.Errorf("client: step returned %d cells, sent %d", len(next), len(f))
	}
	return next, nil
}

// Census asks the server to count the cells of f.
func (c *Client) Census(ctx context.Context, f forest.Field) (forest.Counts, error) {
	var counts forest.Counts
	req, err := c.postField(ctx, censusPath, f)
	if err != nil {
		return counts, err
	}
	err = c.do(req, &counts)
	return counts, err
}

func (c *Client) postField(ctx context.Context, path string, f forest.Field) (*http.Request, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("client: encode field: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(req, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("client: %s: %d %s", e.Path, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("client: %s: %d %s: %s", e.Path, e.Code, http.StatusText(e.Code), e.Message)
}

func statusError(req *http.Request, resp *http.Response) error {
	e := &StatusError{Path: req.URL.Path, Code: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		e.Message = body.Error
	}
	return e
}
