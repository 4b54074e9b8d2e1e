// Package api provides the HTTP client for the transaction-categorization
// backend. All endpoints are relative to a single base URL; responses are
// JSON whose raw bytes are preserved for verbatim display.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/mkarlsen/txcat/internal/common"
	"github.com/mkarlsen/txcat/internal/model"
)

// Client talks to the categorization backend.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a client for the backend at baseURL. No request timeout
// is installed; cancellation is driven entirely by the caller's context.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: api base URL is required", common.ErrMissingConfig)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: api base URL: %v", common.ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: api base URL has unsupported scheme %q", common.ErrInvalidConfig, u.Scheme)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default().With("component", "api"),
	}, nil
}

// GetTaxonomy fetches the current taxonomy.
func (c *Client) GetTaxonomy(ctx context.Context) (*model.Taxonomy, error) {
	body, err := c.get(ctx, "/taxonomy")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTaxonomyLoad, err)
	}

	var taxonomy model.Taxonomy
	if err := json.Unmarshal(body, &taxonomy); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", common.ErrTaxonomyLoad, err)
	}

	return &taxonomy, nil
}

// GetSettings fetches the backend settings as raw JSON.
func (c *Client) GetSettings(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "/config")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return json.RawMessage(body), nil
}

// Predict submits a single transaction description and returns the decoded
// prediction. The verbatim response body is kept in Prediction.Raw.
func (c *Client) Predict(ctx context.Context, transaction string) (*model.Prediction, error) {
	form := url.Values{}
	form.Set("transaction", transaction)

	body, err := c.postForm(ctx, "/predict", form)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}

	var prediction model.Prediction
	if err := json.Unmarshal(body, &prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction: %w", err)
	}
	prediction.Raw = json.RawMessage(body)

	return &prediction, nil
}

// PredictBatch uploads a CSV file for batch prediction. The file is sent
// verbatim; any client-side preview is cosmetic only.
func (c *Client) PredictBatch(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	body, err := c.postFile(ctx, "/predict_batch", filename, file)
	if err != nil {
		return nil, fmt.Errorf("batch prediction request failed: %w", err)
	}
	return json.RawMessage(body), nil
}

// UploadTaxonomy uploads a replacement taxonomy file.
func (c *Client) UploadTaxonomy(ctx context.Context, filename string, file io.Reader) (json.RawMessage, error) {
	body, err := c.postFile(ctx, "/upload_taxonomy", filename, file)
	if err != nil {
		return nil, fmt.Errorf("taxonomy upload failed: %w", err)
	}
	return json.RawMessage(body), nil
}

// RebuildIndex asks the backend to rebuild its search index. The request
// carries no body.
func (c *Client) RebuildIndex(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rebuild_index", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("index rebuild failed: %w", err)
	}
	return json.RawMessage(body), nil
}

// Correct submits a (transaction, correct label) pair.
func (c *Client) Correct(ctx context.Context, correction model.Correction) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("transaction", correction.Transaction)
	form.Set("correct_label", correction.CorrectLabel)

	body, err := c.postForm(ctx, "/correct", form)
	if err != nil {
		return nil, fmt.Errorf("correction failed: %w", err)
	}
	return json.RawMessage(body), nil
}

// AddToIndex asks the backend to add a corrected transaction to its search
// index. The endpoint is optional; callers treat any failure here as a soft
// condition, not a hard error.
func (c *Client) AddToIndex(ctx context.Context, correction model.Correction) error {
	form := url.Values{}
	form.Set("transaction", correction.Transaction)
	form.Set("correct_label", correction.CorrectLabel)

	if _, err := c.postForm(ctx, "/add_to_index", form); err != nil {
		return fmt.Errorf("add to index failed: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) postFile(ctx context.Context, path, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	c.logger.Debug("Calling categorizer API",
		"method", req.Method,
		"path", req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrAPIUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("categorizer API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
