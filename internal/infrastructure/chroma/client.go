package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

const (
	heartbeatPath   = "/api/v1/heartbeat"
	collectionsPath = "/api/v1/collections"

	// maxErrorBody bounds how much of an error response is echoed back.
	maxErrorBody = 512
)

// Client talks to the vector database HTTP API.
type Client struct {
	baseURL          string
	http             *retryablehttp.Client
	heartbeatTimeout time.Duration
	requestTimeout   time.Duration
}

// NewClient builds a client for the configured endpoint.
func NewClient(cfg domain.VectorDBSettings) *Client {
	return &Client{
		baseURL:          strings.TrimRight(cfg.URL, "/"),
		http:             newRetryableClient(cfg.RetryMax),
		heartbeatTimeout: cfg.HeartbeatTimeout,
		requestTimeout:   cfg.RequestTimeout,
	}
}

func newRetryableClient(retryMax int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.Logger = nil
	client.CheckRetry = retryConnectionErrors
	return client
}

// retryConnectionErrors retries only when no response was received, so every
// HTTP status reaches the caller unchanged.
func retryConnectionErrors(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if resp != nil {
		return false, nil
	}
	return err != nil, nil
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Heartbeat reports whether the service answers 200 within the heartbeat timeout.
func (c *Client) Heartbeat(ctx context.Context) domain.HeartbeatResult {
	result := domain.HeartbeatResult{URL: c.baseURL}

	ctx, cancel := context.WithTimeout(ctx, c.heartbeatTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.do(ctx, http.MethodGet, heartbeatPath, nil)
	result.Latency = time.Since(start)
	if err != nil {
		result.Message = fmt.Sprintf("not reachable: %v", err)
		return result
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		result.Message = fmt.Sprintf("unexpected status %s", resp.Status)
		return result
	}
	result.Reachable = true
	return result
}

// CreateCollection creates def. A conflict means the collection already exists,
// which is reported as success.
func (c *Client) CreateCollection(ctx context.Context, def domain.CollectionDefinition) (domain.CreateOutcome, error) {
	body := map[string]interface{}{"name": def.Name}
	if meta := def.Metadata(); len(meta) > 0 {
		body["metadata"] = meta
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodPost, collectionsPath, body)
	if err != nil {
		return "", fmt.Errorf("create collection %s: %w", def.Name, err)
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return domain.CollectionCreated, nil
	case http.StatusConflict:
		return domain.CollectionExisted, nil
	default:
		return "", fmt.Errorf("create collection %s: %w", def.Name, newStatusError(resp))
	}
}

// ListCollections returns every collection. A response that is not a JSON
// array yields an empty list.
func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, collectionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list collections: %w", newStatusError(resp))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return []domain.Collection{}, nil
	}
	var collections []domain.Collection
	if err := json.Unmarshal(raw, &collections); err != nil {
		return nil, fmt.Errorf("list collections: decode: %w", err)
	}
	return collections, nil
}

// GetCollection fetches a single collection by name.
func (c *Client) GetCollection(ctx context.Context, name string) (domain.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, collectionPath(name), nil)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("get collection %s: %w", name, err)
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.Collection{}, fmt.Errorf("get collection %s: %w", name, ErrCollectionNotFound)
	default:
		return domain.Collection{}, fmt.Errorf("get collection %s: %w", name, newStatusError(resp))
	}

	var coll domain.Collection
	if err := json.NewDecoder(resp.Body).Decode(&coll); err != nil {
		return domain.Collection{}, fmt.Errorf("get collection %s: decode: %w", name, err)
	}
	if coll.Name == "" {
		coll.Name = name
	}
	return coll, nil
}

// AddDocuments inserts batch into the named collection.
func (c *Client) AddDocuments(ctx context.Context, collection string, batch domain.DocumentBatch) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodPost, collectionPath(collection)+"/add", batch)
	if err != nil {
		return fmt.Errorf("add documents to %s: %w", collection, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("add documents to %s: %w", collection, newStatusError(resp))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	var body interface{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = raw
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

func collectionPath(name string) string {
	return collectionsPath + "/" + url.PathEscape(name)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

var _ ports.CollectionAdmin = (*Client)(nil)
