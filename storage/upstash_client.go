package storage

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

// UpstashClient talks to an Upstash Redis database over its REST API.
// Every command is a POST of the JSON-encoded argument list to the base URL.
type UpstashClient struct {
	baseURL string
	token   string
	http    *http.Client
}

type upstashResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// NewUpstashClient creates a REST client for baseURL authenticated with token
func NewUpstashClient(baseURL, token string, timeout time.Duration) *UpstashClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &UpstashClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *UpstashClient) Set(ctx context.Context, key, value string) error {
	var status string
	if err := c.do(ctx, &status, "SET", key, value); err != nil {
		return err
	}
	if status != "OK" {
		return fmt.Errorf("upstash: unexpected SET reply %q", status)
	}
	return nil
}

func (c *UpstashClient) Get(ctx context.Context, key string) (string, bool, error) {
	var value *string
	if err := c.do(ctx, &value, "GET", key); err != nil {
		return "", false, err
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (c *UpstashClient) MGet(ctx context.Context, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var values []*string
	if err := c.do(ctx, &values, append([]string{"MGET"}, keys...)...); err != nil {
		return nil, err
	}
	out := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = *v
		}
	}
	return out, nil
}

func (c *UpstashClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	if err := c.do(ctx, &keys, "KEYS", pattern); err != nil {
		return nil, err
	}
	return keys, nil
}

func (c *UpstashClient) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	var removed int64
	if err := c.do(ctx, &removed, append([]string{"DEL"}, keys...)...); err != nil {
		return 0, err
	}
	return removed, nil
}

func (c *UpstashClient) Ping(ctx context.Context) error {
	var pong string
	if err := c.do(ctx, &pong, "PING"); err != nil {
		return err
	}
	if pong != "PONG" {
		return fmt.Errorf("upstash: unexpected PING reply %q", pong)
	}
	return nil
}

// Close releases idle HTTP connections
func (c *UpstashClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *UpstashClient) do(ctx context.Context, out any, args ...string) error {
	payload, err := json.Marshal(args)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstash %s: %w", args[0], err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return fmt.Errorf("upstash %s: read response: %w", args[0], err)
	}

	var parsed upstashResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 300 {
			return fmt.Errorf("upstash %s: status %d: %s", args[0], resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return fmt.Errorf("upstash %s: decode response: %w", args[0], err)
	}
	if parsed.Error != "" {
		return fmt.Errorf("upstash %s: %s", args[0], parsed.Error)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("upstash %s: status %d", args[0], resp.StatusCode)
	}
	if out == nil || len(parsed.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(parsed.Result, out); err != nil {
		return errors.Join(fmt.Errorf("upstash %s: unexpected result %s", args[0], parsed.Result), err)
	}
	return nil
}
