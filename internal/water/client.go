package water

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrRemote marks every failure of the prediction endpoint.
var ErrRemote = errors.New("prediction service error")

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Predict posts reading to the endpoint and decodes its verdict.
func (c *Client) Predict(ctx context.Context, reading Reading) (Prediction, error) {
	body, err := json.Marshal(reading)
	if err != nil {
		return Prediction{}, fmt.Errorf("marshal reading: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: read response: %v", ErrRemote, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("%w: %s", ErrRemote, errorDetail(resp.StatusCode, data))
	}

	var p Prediction
	if err := json.Unmarshal(data, &p); err != nil {
		return Prediction{}, fmt.Errorf("%w: decode response: %v", ErrRemote, err)
	}
	if p.RiskLevel == "" || p.ModelUsed == "" {
		return Prediction{}, fmt.Errorf("%w: response lacks risk_level or model_used", ErrRemote)
	}
	return p, nil
}

// errorDetail prefers the server's "detail" field. Validation failures
// carry a list there, which is passed through as raw JSON.
func errorDetail(status int, data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 && string(body.Detail) != "null" {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		} else {
			return string(body.Detail)
		}
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}
