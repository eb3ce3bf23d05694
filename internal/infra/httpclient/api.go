package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

// APIClient talks to a running NSMS server.
type APIClient struct {
	baseURL string
	exec    *Executor
}

var _ ports.StatsClient = (*APIClient)(nil)

func NewAPIClient(baseURL string, exec *Executor) *APIClient {
	if exec == nil {
		exec = NewExecutor()
	}
	return &APIClient{baseURL: baseURL, exec: exec}
}

// Stats fetches the raw stats document of a newspaper or subscriber.
func (c *APIClient) Stats(ctx context.Context, kind ports.StatsKind, id domain.ID) ([]byte, error) {
	var path string
	switch kind {
	case ports.NewspaperStats:
		path = fmt.Sprintf("/newspaper/%d/stats", id)
	case ports.SubscriberStats:
		path = fmt.Sprintf("/subscriber/%d/stats", id)
	default:
		return nil, domain.InvalidInput("httpclient.stats", "kind", fmt.Sprintf("unsupported stats kind %q", kind))
	}
	return c.get(ctx, path)
}

// Health reports whether the server answers its health check.
func (c *APIClient) Health(ctx context.Context) error {
	_, err := c.get(ctx, "/health")
	return err
}

func (c *APIClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := BuildRequest(ctx, c.baseURL, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.exec.Do(ctx, req)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.get",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	if resp.Status >= 200 && resp.Status < 300 {
		return resp.BodyBytes, nil
	}
	return nil, statusError(path, resp)
}

// statusError maps an API error response back onto the domain error kinds.
func statusError(path string, resp ResponseData) error {
	var body struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(resp.BodyBytes))
	if err := json.Unmarshal(resp.BodyBytes, &body); err == nil && body.Message != "" {
		msg = body.Message
	}

	kind, sentinel := domain.KindExecution, domain.ErrExecution
	switch resp.Status {
	case http.StatusNotFound:
		kind, sentinel = domain.KindNotFound, domain.ErrNotFound
	case http.StatusConflict:
		kind, sentinel = domain.KindDuplicateKey, domain.ErrDuplicateKey
	case http.StatusBadRequest:
		kind, sentinel = domain.KindInvalidInput, domain.ErrInvalidInput
	}

	return &domain.OpError{
		Op:   "httpclient.get",
		Kind: kind,
		Path: path,
		Err:  fmt.Errorf("status %d: %s: %w", resp.Status, msg, sentinel),
	}
}
