package gemini

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

	"hotwords/internal/prompt"
)

// ErrMissingAPIKey is returned before any network I/O when the client
// was built without a credential.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY is not set, keyword extraction is unavailable")

// Client handles Gemini API operations
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
	prompts    *prompt.Loader
}

// NewClient creates a new Gemini API client
func NewClient(apiKey, model string, prompts *prompt.Loader) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		prompts: prompts,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// geminiRequest represents the request structure for Gemini API
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse represents the response structure from Gemini API
type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// ExtractKeywords sends the text to the Gemini API and parses the
// comma-separated response into a keyword list. The returned list is
// never nil on success and every entry is trimmed and non-empty.
func (c *Client) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	responseText, err := c.generateContent(ctx, c.buildPrompt(text))
	if err != nil {
		return nil, err
	}

	return ParseKeywords(responseText), nil
}

// buildPrompt substitutes the text into the keyword extraction template.
// The substitution is a single pass: a placeholder token inside the text
// itself is not expanded again.
func (c *Client) buildPrompt(text string) string {
	tpl := prompt.DefaultKeywordTemplate
	if c.prompts != nil {
		tpl = c.prompts.Load(prompt.KeywordExtraction, prompt.DefaultKeywordTemplate)
	}
	return strings.ReplaceAll(tpl, prompt.Placeholder, text)
}

// generateContent calls the Gemini generateContent endpoint and returns
// the first candidate's text.
func (c *Client) generateContent(ctx context.Context, promptText string) (string, error) {
	geminiReq := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: promptText},
				},
			},
		},
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(geminiReq)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// ParseKeywords splits a comma-separated model response into trimmed,
// non-empty keywords, preserving the model's emission order. Duplicates
// are kept as-is.
func ParseKeywords(text string) []string {
	parts := strings.Split(strings.TrimSpace(text), ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if keyword := strings.TrimSpace(part); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}
