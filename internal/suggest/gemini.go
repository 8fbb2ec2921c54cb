package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/boozedog/smoovboard/internal/directory"
)

// DefaultBaseURL is the Gemini REST endpoint root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client proposes tasks for a project description against the current
// directory roster.
type Client interface {
	GenerateTasks(ctx context.Context, description string, departments []directory.Department) ([]SuggestedTask, error)
}

// GeminiClient calls the Gemini generateContent API, asking for
// strictly-typed JSON matching the SuggestedTask shape.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiClient creates a client. The API key check is deferred to the
// first call so a missing credential surfaces as a per-request error rather
// than at startup.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL overrides the endpoint root. Used in tests.
func (c *GeminiClient) WithBaseURL(url string) *GeminiClient {
	c.baseURL = url
	return c
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Items      *schema            `json:"items,omitempty"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// taskSchema constrains the model to a JSON array of SuggestedTask objects.
var taskSchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"title":               {Type: "STRING"},
			"description":         {Type: "STRING"},
			"suggestedDepartment": {Type: "STRING"},
			"suggestedAssigneeId": {Type: "STRING"},
			"suggestedDueDate":    {Type: "STRING"},
			"priority":            {Type: "STRING"},
			"storyPoints":         {Type: "INTEGER"},
		},
		Required: []string{
			"title", "description", "suggestedDepartment",
			"suggestedAssigneeId", "suggestedDueDate", "priority", "storyPoints",
		},
	},
}

// GenerateTasks sends the prompt and parses the model's JSON array. The
// returned tasks are raw proposals; callers run Validate before showing
// them.
func (c *GeminiClient) GenerateTasks(ctx context.Context, description string, departments []directory.Department) ([]SuggestedTask, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	prompt := BuildPrompt(description, departments, time.Now())
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   taskSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model returned %s: %s", resp.Status, truncate(body, 200))
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("model returned no candidates")
	}

	var tasks []SuggestedTask
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &tasks); err != nil {
		return nil, fmt.Errorf("AI response was not in the expected format: %w", err)
	}
	return tasks, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
