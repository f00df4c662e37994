package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ridawn928/hr-connect/internal/models"
)

// DefaultTimeout bounds every remote call made by HTTPHandler.
// A timeout is a retryable failure, not a crash.
const DefaultTimeout = 30 * time.Second

// HTTPHandler is a JSON-over-HTTP AggregateHandler for backends exposing
// the aggregate REST convention:
//
//	GET    {base}/api/v1/aggregates/{type}/{id}
//	PUT    {base}/api/v1/aggregates/{type}/{id}
//	DELETE {base}/api/v1/aggregates/{type}/{id}
type HTTPHandler struct {
	httpClient    *http.Client
	baseURL       string
	aggregateType string
}

// NewHTTPHandler создает HTTP handler для одного aggregate type.
func NewHTTPHandler(baseURL, aggregateType string) *HTTPHandler {
	return &HTTPHandler{
		baseURL:       baseURL,
		aggregateType: aggregateType,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Переносим Authorization при редиректе.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// FetchRemote returns the current remote payload snapshot for the aggregate
func (h *HTTPHandler) FetchRemote(ctx context.Context, aggregateID string) (models.Value, error) {
	url := h.aggregateURL(aggregateID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Value{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return models.Value{}, &Error{Op: "fetch", Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.Value{}, ErrNotFound
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Читаем дальше.
	default:
		return models.Value{}, h.statusError("fetch", resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Value{}, &Error{Op: "fetch", Retryable: true, Err: err}
	}

	var payload models.Value
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.Value{}, fmt.Errorf("failed to decode remote payload: %w", err)
	}
	return payload, nil
}

// Apply writes the resolved payload to the remote system
func (h *HTTPHandler) Apply(ctx context.Context, op *models.Operation, resolved models.Value) error {
	url := h.aggregateURL(op.AggregateID)

	var (
		req *http.Request
		err error
	)
	if op.Kind == models.KindDelete {
		req, err = http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	} else {
		body, merr := json.Marshal(resolved)
		if merr != nil {
			return fmt.Errorf("failed to marshal resolved payload: %w", merr)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	}
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if op.Kind != models.KindDelete {
		req.Header.Set("Content-Type", "application/json")
	}
	// Op id дедуплицирует повторные попытки, request id трассирует каждую.
	req.Header.Set("X-Idempotency-Key", op.ID)
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return &Error{Op: "apply", Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return h.statusError("apply", resp)
}

func (h *HTTPHandler) aggregateURL(aggregateID string) string {
	return fmt.Sprintf("%s/api/v1/aggregates/%s/%s", h.baseURL, h.aggregateType, aggregateID)
}

// statusError classifies a non-2xx response: 5xx and 429 are retryable,
// other 4xx are rejections.
func (h *HTTPHandler) statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
	return &Error{
		Op:         op,
		StatusCode: resp.StatusCode,
		Retryable:  retryable,
		Err:        fmt.Errorf("server returned %q", bytes.TrimSpace(body)),
	}
}
