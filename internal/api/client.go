package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"grocery_admin/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrNetwork      = errors.New("network error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError carries the backend's structured error body. Validation
// failures arrive as field-name-keyed arrays of messages, everything
// else as a plain detail string.
type APIError struct {
	StatusCode  int
	Status      string
	Detail      string
	FieldErrors map[string][]string
}

func (e *APIError) Error() string {
	if msg := e.FirstMessage(); msg != "" {
		return fmt.Sprintf("api error: %s: %s", e.Status, msg)
	}
	return fmt.Sprintf("api error: %s", e.Status)
}

// FirstMessage returns the first message of the first offending field,
// falling back to the detail string. Fields are walked in sorted order
// so the pick is deterministic.
func (e *APIError) FirstMessage() string {
	keys := make([]string, 0, len(e.FieldErrors))
	for key := range e.FieldErrors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if len(e.FieldErrors[key]) > 0 {
			return e.FieldErrors[key][0]
		}
	}
	return e.Detail
}

// ErrorMessage derives a user-facing message from any error returned by
// this package.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.FirstMessage(); msg != "" {
			return msg
		}
		return "The server rejected the request. Please try again."
	}
	if errors.Is(err, ErrNetwork) {
		return "Network error. Please try again."
	}
	return err.Error()
}

// Client issues one HTTP call per operation against the admin backend.
// It never retries; a create called twice creates two resources.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &Client{
		http:   httpClient,
		logger: logger.Named("api"),
	}
}

// BaseURL reports the configured backend root, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, result any) error {
	req := c.http.R().SetContext(ctx)
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return c.finish(req.Get(path))
}

func (c *Client) postJSON(ctx context.Context, path string, body, result any) error {
	req := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(body)
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}
	return c.finish(req.Post(path))
}

func (c *Client) putJSON(ctx context.Context, path string, body, result any) error {
	req := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(body)
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}
	return c.finish(req.Put(path))
}

func (c *Client) patchJSON(ctx context.Context, path string, body, result any) error {
	req := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(body)
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}
	return c.finish(req.Patch(path))
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.finish(c.http.R().SetContext(ctx).Delete(path))
}

// Upload is a staged file attachment for a multipart submission.
type Upload struct {
	FieldName string
	FileName  string
	Content   []byte
}

func (c *Client) submitForm(ctx context.Context, method, path string, fields map[string]string, files []Upload, result any) error {
	req := c.http.R().SetContext(ctx)
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}
	if len(fields) > 0 {
		req.SetMultipartFormData(fields)
	}
	for _, file := range files {
		req.SetMultipartField(file.FieldName, file.FileName, "application/octet-stream", bytes.NewReader(file.Content))
	}

	switch method {
	case http.MethodPost:
		return c.finish(req.Post(path))
	case http.MethodPut:
		return c.finish(req.Put(path))
	case http.MethodPatch:
		return c.finish(req.Patch(path))
	default:
		return fmt.Errorf("unsupported multipart method %q", method)
	}
}

func (c *Client) finish(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.IsError() {
		apiErr := errorFromResponse(resp)
		c.logger.Warn("request rejected",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
		)
		return apiErr
	}
	return nil
}

func errorFromResponse(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
	}

	var body map[string]json.RawMessage
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil {
		for key, raw := range body {
			var messages []string
			if err := json.Unmarshal(raw, &messages); err == nil {
				if apiErr.FieldErrors == nil {
					apiErr.FieldErrors = map[string][]string{}
				}
				apiErr.FieldErrors[key] = messages
				continue
			}
			var message string
			if err := json.Unmarshal(raw, &message); err == nil && (key == "detail" || key == "message" || key == "error") {
				apiErr.Detail = message
			}
		}
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error())
	default:
		return apiErr
	}
}
