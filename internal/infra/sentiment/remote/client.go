package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harborview/concierge/internal/domain/sentiment"
)

// Client calls an externally hosted sentiment model server. The model's
// storage format is its own concern; the wire contract is a single predict
// endpoint returning a label and a score.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a model server client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	// Label may be a canonical name or the numeric class index the model
	// was trained with.
	Label      any     `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Predict implements sentiment.Classifier.
func (c *Client) Predict(ctx context.Context, text string) (sentiment.Prediction, error) {
	payload, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return sentiment.Prediction{}, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return sentiment.Prediction{}, fmt.Errorf("predict request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var raw predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return sentiment.Prediction{}, fmt.Errorf("decode predict response: %w", err)
	}

	label, ok := sentiment.NormalizeLabel(fmt.Sprint(raw.Label))
	if !ok {
		return sentiment.Prediction{}, fmt.Errorf("model returned unknown label %q", fmt.Sprint(raw.Label))
	}
	score := raw.Score
	if score == 0 {
		score = raw.Confidence
	}
	return sentiment.Prediction{Label: label, Score: score}, nil
}

var _ sentiment.Classifier = (*Client)(nil)
