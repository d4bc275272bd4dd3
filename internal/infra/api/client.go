// Package api implements the domain services on top of the marketplace REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"otobiznes/config"
	deliverycontext "otobiznes/internal/delivery/context"
	domainerrors "otobiznes/internal/domain/errors"

	"github.com/pkg/errors"
)

const maxDetailLength = 512

// StatusError is returned for every non-2xx API response.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Detail)
}

// DecodeError is returned when a 2xx response body does not match the expected shape.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %s response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Client performs JSON calls against the API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client from the api config section.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		logger: logger,
	}
}

// Do performs one HTTP call. body is JSON encoded when non-nil and a 2xx
// response is decoded into out when out is non-nil and the body is not empty.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := deliverycontext.GetAPIToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("[API] Request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	logger.Debug("[API] Request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.WithStack(&StatusError{StatusCode: resp.StatusCode, Detail: extractDetail(data)})
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.WithStack(&DecodeError{Method: method, Path: path, Err: err})
	}

	return nil
}

// extractDetail reads {"detail": ...}, {"message": ...} or {"error": ...}, or falls back to the raw body.
func extractDetail(data []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			switch v := payload[key].(type) {
			case string:
				return truncate(v)
			case nil:
			default:
				encoded, _ := json.Marshal(v)
				return truncate(string(encoded))
			}
		}
	}

	return truncate(strings.TrimSpace(string(data)))
}

func truncate(s string) string {
	if len(s) <= maxDetailLength {
		return s
	}

	cut := maxDetailLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// mapError translates a client error into the application error taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return errors.Wrap(domainerrors.ErrUpstreamFailure.WithDetails(decodeErr.Error()), "api response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		if errors.Is(err, context.Canceled) {
			return err
		}

		return errors.Wrap(domainerrors.ErrAPIUnavailable.WithDetails(err.Error()), "api call")
	}

	var appErr *domainerrors.BaseError
	switch {
	case statusErr.StatusCode == http.StatusBadRequest, statusErr.StatusCode == http.StatusUnprocessableEntity:
		appErr = domainerrors.ErrValidationFailed
	case statusErr.StatusCode == http.StatusUnauthorized:
		appErr = domainerrors.ErrUnauthorized
	case statusErr.StatusCode == http.StatusForbidden:
		appErr = domainerrors.ErrForbidden
	case statusErr.StatusCode == http.StatusNotFound:
		appErr = domainerrors.ErrNotFound
	case statusErr.StatusCode == http.StatusConflict:
		appErr = domainerrors.ErrConflict
	default:
		appErr = domainerrors.ErrUpstreamFailure
	}

	return errors.Wrap(appErr.WithDetails(statusErr.Detail), statusErr.Error())
}

func resourcePath(resource string, id int64, suffix ...string) string {
	parts := append([]string{resource, fmt.Sprint(id)}, suffix...)

	return "/" + strings.Join(parts, "/")
}
