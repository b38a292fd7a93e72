package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// OCRClient talks to the external nutrition-analysis microservice. The
// upstream is treated as unreliable: every call has a timeout and
// transient failures are retried with exponential backoff.
type OCRClient struct {
	baseURL    string
	client     *http.Client
	maxRetries int
	backoff    time.Duration
	log        *zap.Logger
}

func NewOCRClient(baseURL string, log *zap.Logger) *OCRClient {
	return &OCRClient{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 15 * time.Second},
		maxRetries: 2,
		backoff:    500 * time.Millisecond,
		log:        log,
	}
}

// Predict uploads the image as multipart form data to /predict and
// returns the decoded nutrition payload.
func (c *OCRClient) Predict(ctx context.Context, filename string, file io.Reader) (map[string]any, error) {
	// Buffer once so retries can resend the same bytes.
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	backoff := c.backoff
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result, retryable, err := c.predictOnce(ctx, filename, data)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable || attempt == c.maxRetries {
			break
		}

		c.log.Warn("ocr predict failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, lastErr
}

func (c *OCRClient) predictOnce(ctx context.Context, filename string, data []byte) (map[string]any, bool, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, false, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, false, err
	}
	if err := writer.Close(); err != nil {
		return nil, false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("calling ocr service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 5xx may be transient; anything else will not get better.
		retryable := resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("decoding ocr response: %w", err)
	}
	return result, false, nil
}
