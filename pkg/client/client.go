// Package client is the Go consumer of the Fiction Fusion API. Every call
// degrades to a locally simulated reply when the backend is unreachable or
// errors, so callers always get a usable response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"fusion/pkg/schema"
	"fusion/pkg/simulate"
)

const DefaultBaseURL = "http://localhost:8080"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Simulator  *simulate.Simulator
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Simulator:  simulate.Default(),
	}
}

// NewWithTable builds a client whose fallback replies come from a response
// table file instead of the built-in one.
func NewWithTable(baseURL, tablePath string) (*Client, error) {
	table, err := simulate.LoadTable(tablePath)
	if err != nil {
		return nil, fmt.Errorf("loading response table: %w", err)
	}
	c := New(baseURL)
	c.Simulator = simulate.New(table, nil, nil)
	return c, nil
}

// Chat requests a single-character reply, simulating one on any failure.
func (c *Client) Chat(ctx context.Context, req schema.ChatRequest) schema.Reply {
	var reply schema.Reply
	if err := c.post(ctx, "/api/chat", req, &reply); err != nil {
		log.Warn("Chat request failed, using simulated response", "err", err)
		return c.Simulator.Chat(req)
	}
	return reply
}

// RolePlay requests a scene-driven reply, simulating one on any failure.
func (c *Client) RolePlay(ctx context.Context, req schema.RolePlayRequest) schema.Reply {
	var reply schema.Reply
	if err := c.post(ctx, "/api/roleplay", req, &reply); err != nil {
		log.Warn("Role-play request failed, using simulated response", "err", err)
		return c.Simulator.RolePlay(req)
	}
	return reply
}

// Story requests multi-character replies, simulating them on any failure.
func (c *Client) Story(ctx context.Context, req schema.StoryRequest) schema.StoryReply {
	var reply schema.StoryReply
	if err := c.post(ctx, "/api/story", req, &reply); err != nil {
		log.Warn("Story request failed, using simulated response", "err", err)
		return c.Simulator.Story(req)
	}
	return reply
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
