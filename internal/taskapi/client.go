// Package taskapi submits task drafts to the remote task API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/colonyops/taskhub/internal/core/logging"
	"github.com/colonyops/taskhub/internal/core/task"
)

// TasksPath is the task creation endpoint, relative to the API base URL.
const TasksPath = "/api/tasks"

const tracerName = "github.com/colonyops/taskhub/internal/taskapi"

// ErrSubmit is returned for every failed submission. Callers do not get to
// distinguish transport errors, error statuses and malformed responses.
var ErrSubmit = errors.New("create task failed")

// Response is a successful task creation response.
type Response struct {
	StatusCode int
	RequestID  string
	Body       any // decoded JSON, not interpreted
}

// Client posts tasks to the API. The zero timeout of the default HTTP client
// is kept: a request runs until the server answers or the context ends.
type Client struct {
	endpoint string
	http     *http.Client
	headers  map[string]string
	now      func() time.Time
	tracer   trace.Tracer
	log      zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithHeaders adds static headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) { c.headers = headers }
}

// WithClock replaces the clock used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	endpoint, err := url.JoinPath(baseURL, TasksPath)
	if err != nil {
		return nil, fmt.Errorf("build endpoint: %w", err)
	}

	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		now:      time.Now,
		tracer:   otel.Tracer(tracerName),
		log:      logging.Component("taskapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL tasks are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Create sends a single POST for the draft. It does not validate the draft
// and never retries.
func (c *Client) Create(ctx context.Context, d task.Draft) (Response, error) {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)

	ctx, span := c.tracer.Start(ctx, "taskapi.Create",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.full", c.endpoint),
			attribute.String("taskhub.request_id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.create(ctx, requestID, d)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Error().Ctx(ctx).Err(err).Dur("elapsed", time.Since(start)).Msg("create task failed")
		return Response{}, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.log.Info().Ctx(ctx).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("task created")
	return resp, nil
}

func (c *Client) create(ctx context.Context, requestID string, d task.Draft) (Response, error) {
	body, err := json.Marshal(NewPayload(d, c.now()))
	if err != nil {
		return Response{}, fmt.Errorf("%w: encode payload: %w", ErrSubmit, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("%w: create request: %w", ErrSubmit, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debug().Ctx(ctx).Str("url", c.endpoint).Int("bytes", len(body)).Msg("posting task")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Ctx(ctx).Err(err).Msg("close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, fmt.Errorf("%w: unexpected status %d", ErrSubmit, resp.StatusCode)
	}

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Response{}, fmt.Errorf("%w: decode response: %w", ErrSubmit, err)
	}

	return Response{
		StatusCode: resp.StatusCode,
		RequestID:  requestID,
		Body:       decoded,
	}, nil
}
