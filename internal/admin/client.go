// Package admin implements the control layer behind the admin dashboard: a
// persisted session, a typed request client, a bounded retry policy, and
// per-entity list and form controllers that keep local state synchronized
// with the content API.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// networkErrorMessage is the fixed diagnostic for transport failures. It is
// deliberately distinct from server-reported errors so the retry policy and
// the UI can tell "could not reach server" from "server rejected request".
const networkErrorMessage = "Network error: could not reach the server."

// NetworkError is a transport-level failure; no response was received.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string { return networkErrorMessage }

func (e *NetworkError) Unwrap() error { return e.Cause }

// APIError is a non-2xx response from the content API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

const defaultRequestTimeout = 30 * time.Second

// Client issues HTTP calls against the content API and normalizes
// success/failure into a single error contract. It performs no retries;
// retrying is the caller's decision.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given API base URL. A nil httpClient
// gets a default with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// RequestParams groups parameters for a single API call.
type RequestParams struct {
	Method string
	Path   string
	Token  string
	Body   any
}

// Do performs one API call. Empty and 204-style responses return nil raw
// JSON; every failure is either a *NetworkError or an *APIError.
func (c *Client) Do(ctx context.Context, p RequestParams) (json.RawMessage, error) {
	var body io.Reader
	if p.Body != nil {
		buf, err := json.Marshal(p.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, c.baseURL+p.Path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if p.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, payload)}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(payload)) == 0 {
		return nil, nil
	}
	return json.RawMessage(payload), nil
}

// DoJSON performs one API call and decodes the response body into T.
func DoJSON[T any](ctx context.Context, c *Client, p RequestParams) (T, error) {
	var out T
	raw, err := c.Do(ctx, p)
	if err != nil {
		return out, err
	}
	if raw == nil {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response body: %w", err)
	}
	return out, nil
}

// UploadResult mirrors the upload endpoint's response payload.
type UploadResult struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// Upload posts one file as a multipart "file" field to the upload endpoint.
// It shares the Do error contract: *NetworkError or *APIError on failure.
func (c *Client) Upload(ctx context.Context, token string, fileName string, r io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, payload)}
	}

	var out UploadResult
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return &out, nil
}

// errorMessage extracts the server's message field from an error body, or
// synthesizes one embedding the status code.
func errorMessage(status int, payload []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fmt.Sprintf("Request failed (%d)", status)
}
