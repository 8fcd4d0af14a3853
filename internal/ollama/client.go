// internal/ollama/client.go

// Package ollama talks to an Ollama host over its HTTP API.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mwiater/farmprompts/internal/logging"
)

// Client is a minimal Ollama API client.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient returns a Client for baseURL, e.g. "http://localhost:11434".
// timeout bounds each request end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout),
		logger:  logging.Component("ollama"),
	}
}

// BaseURL returns the host the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateEvent struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Response  string    `json:"response"` // chunk text, may be empty on the final event
	Done      bool      `json:"done"`
	Error     string    `json:"error,omitempty"`

	// Only set when done=true.
	DoneReason         string `json:"done_reason,omitempty"`
	TotalDuration      int64  `json:"total_duration,omitempty"` // ns
	LoadDuration       int64  `json:"load_duration,omitempty"`  // ns
	PromptEvalCount    int    `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration int64  `json:"prompt_eval_duration,omitempty"` // ns
	EvalCount          int    `json:"eval_count,omitempty"`
	EvalDuration       int64  `json:"eval_duration,omitempty"` // ns
}

// Meta holds the server-reported timings of a generation.
type Meta struct {
	Model              string
	DoneReason         string
	TotalDuration      time.Duration
	LoadDuration       time.Duration
	PromptEvalCount    int
	PromptEvalDuration time.Duration
	EvalCount          int
	EvalDuration       time.Duration
}

// Result is a completed generation.
type Result struct {
	Text string
	Meta Meta
	// Elapsed is measured on the client.
	Elapsed time.Duration
}

// Generate streams /api/generate and returns the concatenated text.
func (c *Client) Generate(ctx context.Context, model, prompt string, options map[string]any) (Result, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: true, Options: options})
	if err != nil {
		return Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("ollama is not accessible on %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("ollama error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var (
		text  strings.Builder
		final generateEvent
	)
	reader := bufio.NewReader(resp.Body)
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var ev generateEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				c.logger.Debug().Err(err).Msg("skipping malformed stream line")
			} else {
				if ev.Error != "" {
					return Result{}, fmt.Errorf("ollama error: %s", ev.Error)
				}
				text.WriteString(ev.Response)
				if ev.Done {
					final = ev
					break
				}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return Result{}, readErr
		}
	}

	res := Result{
		Text:    text.String(),
		Elapsed: time.Since(start),
		Meta: Meta{
			Model:              final.Model,
			DoneReason:         final.DoneReason,
			TotalDuration:      time.Duration(final.TotalDuration),
			LoadDuration:       time.Duration(final.LoadDuration),
			PromptEvalCount:    final.PromptEvalCount,
			PromptEvalDuration: time.Duration(final.PromptEvalDuration),
			EvalCount:          final.EvalCount,
			EvalDuration:       time.Duration(final.EvalDuration),
		},
	}
	c.logger.Debug().
		Str("model", model).
		Dur("elapsed", res.Elapsed).
		Int("eval_count", res.Meta.EvalCount).
		Msg("generate finished")
	return res, nil
}

type modelList struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ListModels returns the models installed on the host (/api/tags).
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	return c.modelNames(ctx, "/api/tags")
}

// LoadedModels returns the models currently in memory (/api/ps).
func (c *Client) LoadedModels(ctx context.Context) ([]string, error) {
	return c.modelNames(ctx, "/api/ps")
}

func (c *Client) modelNames(ctx context.Context, path string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama is not accessible on %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned non-200 status: %s", resp.Status)
	}

	var list modelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("error parsing models from %s: %w", c.baseURL, err)
	}
	names := make([]string, len(list.Models))
	for i, m := range list.Models {
		names[i] = m.Name
	}
	return names, nil
}

// newHTTPClient returns a client with keep-alives and a per-request timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
