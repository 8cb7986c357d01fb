package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// ChatProxy forwards assistant questions to the external chat API.
// The portal adds nothing beyond a timeout; the upstream payload is
// passed through untouched.
type ChatProxy struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// Forward posts body to the configured endpoint and returns the
// upstream status and response bytes.
func (p ChatProxy) Forward(ctx context.Context, body []byte) (int, []byte, error) {
	if p.URL == "" {
		return 0, nil, ErrUnavailable("Chat service is not configured")
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return 0, nil, WrapError(err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, WrapError(err, "chat request")
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, WrapError(err, "read chat response")
	}
	return resp.StatusCode, data, nil
}
