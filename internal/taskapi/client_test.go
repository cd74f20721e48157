package taskapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskhub/internal/core/attach"
	"github.com/colonyops/taskhub/internal/core/task"
)

var fixedNow = time.Date(2026, time.October, 16, 9, 30, 15, 123_000_000, time.UTC)

func essayDraft() task.Draft {
	d := task.New()
	d.Title = "Essay"
	d.DueDate = "2099-01-01"
	return d
}

type captured struct {
	method  string
	path    string
	headers http.Header
	body    map[string]any
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured, *atomic.Int32) {
	t.Helper()

	var (
		got   captured
		calls atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		got.method = r.Method
		got.path = r.URL.Path
		got.headers = r.Header.Clone()

		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(data, &got.body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)

	return srv, &got, &calls
}

func newClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	c, err := New(baseURL, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Endpoint(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8080", "http://localhost:8080/api/tasks"},
		{"http://localhost:8080/", "http://localhost:8080/api/tasks"},
		{"https://example.com/hub", "https://example.com/hub/api/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			c, err := New(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Endpoint())
		})
	}

	t.Run("invalid base", func(t *testing.T) {
		_, err := New("://nope")
		require.Error(t, err)
	})
}

func TestClient_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv, got, calls := newServer(t, http.StatusCreated, `{"id":7,"title":"Essay","status":"open"}`)
		c := newClient(t, srv.URL, WithHeaders(map[string]string{"X-Student": "sam"}))

		resp, err := c.Create(context.Background(), essayDraft())
		require.NoError(t, err)

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, TasksPath, got.path)
		assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
		assert.Equal(t, "sam", got.headers.Get("X-Student"))
		assert.NotEmpty(t, got.headers.Get("X-Request-ID"))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, got.headers.Get("X-Request-ID"), resp.RequestID)
		body, ok := resp.Body.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "open", body["status"])
	})

	t.Run("payload carries every draft field plus createdAt", func(t *testing.T) {
		srv, got, _ := newServer(t, http.StatusCreated, `{}`)
		c := newClient(t, srv.URL)

		_, err := c.Create(context.Background(), essayDraft())
		require.NoError(t, err)

		keys := make([]string, 0, len(got.body))
		for k := range got.body {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, []string{
			"title", "description1", "description2", "dueDate", "priority",
			"category", "attachments1", "attachments2", "createdAt",
		}, keys)

		assert.Equal(t, "Essay", got.body["title"])
		assert.Equal(t, "2099-01-01", got.body["dueDate"])
		assert.Equal(t, "", got.body["priority"])
		assert.Equal(t, "academic", got.body["category"])
		assert.Equal(t, []any{}, got.body["attachments1"])
		assert.Equal(t, "2026-10-16T09:30:15.123Z", got.body["createdAt"])
	})

	t.Run("attachments are sent as metadata", func(t *testing.T) {
		srv, got, _ := newServer(t, http.StatusOK, `{"ok":true}`)
		c := newClient(t, srv.URL)

		d := essayDraft()
		require.NoError(t, d.AddAttachments(task.Slot2, attach.File{
			Name:      "graph.png",
			Path:      "/home/sam/graph.png",
			Size:      2048,
			MediaType: "image/png",
			ModTime:   time.UnixMilli(1_700_000_000_000),
		}))

		_, err := c.Create(context.Background(), d)
		require.NoError(t, err)

		list, ok := got.body["attachments2"].([]any)
		require.True(t, ok)
		require.Len(t, list, 1)
		assert.Equal(t, map[string]any{
			"name":         "graph.png",
			"size":         float64(2048),
			"type":         "image/png",
			"lastModified": float64(1_700_000_000_000),
		}, list[0])
	})

	t.Run("non-2xx statuses fail", func(t *testing.T) {
		for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusMultipleChoices} {
			srv, _, calls := newServer(t, status, `{"error":"nope"}`)
			c := newClient(t, srv.URL)

			_, err := c.Create(context.Background(), essayDraft())
			require.ErrorIs(t, err, ErrSubmit, "status %d", status)
			assert.Equal(t, int32(1), calls.Load(), "no retry on %d", status)
		}
	})

	t.Run("malformed response body fails", func(t *testing.T) {
		srv, _, _ := newServer(t, http.StatusCreated, `<html>`)
		c := newClient(t, srv.URL)

		_, err := c.Create(context.Background(), essayDraft())
		require.ErrorIs(t, err, ErrSubmit)
	})

	t.Run("unreachable server fails", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := newClient(t, url)
		_, err := c.Create(context.Background(), essayDraft())
		require.ErrorIs(t, err, ErrSubmit)
	})
}

func TestNewPayload(t *testing.T) {
	d := essayDraft()
	d.Priority = task.PriorityHigh
	d.Category = task.CategoryPersonal
	d.Description1 = "first"
	d.Description2 = "second"

	local := time.Date(2026, time.October, 16, 11, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	p := NewPayload(d, local)

	assert.Equal(t, "2026-10-16T09:00:00.000Z", p.CreatedAt)
	assert.Equal(t, task.PriorityHigh, p.Priority)
	assert.Equal(t, task.CategoryPersonal, p.Category)
	assert.Equal(t, "first", p.Description1)
	assert.Equal(t, "second", p.Description2)
	assert.NotNil(t, p.Attachments1)
	assert.NotNil(t, p.Attachments2)
}
