// Package backend contains typed clients for the rental platform backend.
// Each client method is a single REST call: no retries, no caching, no
// batching. Business rules are enforced server-side; these clients pass
// requests and responses through untouched.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/you/rentalfront/domain"
)

const maxBodyBytes = 10 * 1024 * 1024 // 10 MiB

// Client is the shared HTTP plumbing behind every resource client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client for the given base URL. The timeout is
// the only client-enforced deadline; individual calls also honor ctx.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// errorPayload matches the backend's error body shape. Some endpoints use
// "message", others "error".
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeAPIError(status int, body []byte) *domain.APIError {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return &domain.APIError{Status: status, Message: payload.Message}
		}
		if payload.Error != "" {
			return &domain.APIError{Status: status, Message: payload.Error}
		}
	}
	return &domain.APIError{Status: status}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// doJSON issues a JSON request and decodes a JSON response into out when
// out is non-nil. Any non-2xx response becomes a domain.APIError.
func (c *Client) doJSON(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, token, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, respBytes)
	}

	if out != nil && len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("parsing response JSON: %w", err)
		}
	}
	return nil
}

// doStream issues a request and hands the raw body to the caller, for
// binary downloads. The caller owns closing the reader.
func (c *Client) doStream(ctx context.Context, method, path, token string) (io.ReadCloser, string, error) {
	req, err := c.newRequest(ctx, method, path, token, nil, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("HTTP request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		respBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return nil, "", decodeAPIError(resp.StatusCode, respBytes)
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// doMultipart uploads a single file under the given form field.
func (c *Client) doMultipart(ctx context.Context, method, path, token, field string, file domain.StagedFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, file.Name)
	if err != nil {
		return fmt.Errorf("creating multipart form: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("writing multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, token, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, respBytes)
	}

	if out != nil && len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("parsing response JSON: %w", err)
		}
	}
	return nil
}
