package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridawn928/hr-connect/internal/models"
)

func TestHTTPHandler_FetchRemote_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/aggregates/attendance/att-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hours": 8, "approved": true}`))
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "attendance")

	payload, err := h.FetchRemote(context.Background(), "att-1")
	require.NoError(t, err)

	hours, ok := payload.Get("hours")
	require.True(t, ok)
	assert.Equal(t, float64(8), hours.Number)
}

func TestHTTPHandler_FetchRemote_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "attendance")

	_, err := h.FetchRemote(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPHandler_FetchRemote_ServerErrorRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db down", http.StatusInternalServerError)
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "attendance")

	_, err := h.FetchRemote(context.Background(), "att-1")
	require.Error(t, err)
	assert.True(t, IsRetryable(err))

	var remoteErr *Error
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
}

func TestHTTPHandler_FetchRemote_TransportErrorRetryable(t *testing.T) {
	// Сервер закрыт: ошибка транспорта, а не статуса.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	h := NewHTTPHandler(server.URL, "attendance")

	_, err := h.FetchRemote(context.Background(), "att-1")
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}

func TestHTTPHandler_Apply_Put(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotIdempotency string
		gotRequestID   string
		gotBody        map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotIdempotency = r.Header.Get("X-Idempotency-Key")
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "profile")
	op := &models.Operation{
		ID:            "op-42",
		Kind:          models.KindUpdate,
		AggregateType: "profile",
		AggregateID:   "emp-7",
	}
	resolved := models.MapValue(map[string]models.Value{
		"name": models.StringValue("John"),
	})

	require.NoError(t, h.Apply(context.Background(), op, resolved))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/aggregates/profile/emp-7", gotPath)
	assert.Equal(t, "op-42", gotIdempotency)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "John", gotBody["name"])
}

func TestHTTPHandler_Apply_Delete(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "attendance")
	op := &models.Operation{
		ID:            "op-1",
		Kind:          models.KindDelete,
		AggregateType: "attendance",
		AggregateID:   "att-9",
	}

	require.NoError(t, h.Apply(context.Background(), op, models.Null()))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestHTTPHandler_Apply_RejectionNotRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "validation failed", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "attendance")
	op := &models.Operation{ID: "op-1", Kind: models.KindUpdate, AggregateID: "att-1"}

	err := h.Apply(context.Background(), op, models.Null())
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
}

func TestHTTPHandler_Apply_TooManyRequestsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	h := NewHTTPHandler(server.URL, "attendance")
	op := &models.Operation{ID: "op-1", Kind: models.KindUpdate, AggregateID: "att-1"}

	err := h.Apply(context.Background(), op, models.Null())
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}
