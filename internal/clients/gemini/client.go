package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/ctxutil"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

// promptPrefixLimit bounds the request size; only this many characters
// (runes, not bytes) of the extracted document text are sent upstream.
const promptPrefixLimit = 3000

const modulePromptTemplate = `Based on the following text, create a structured learning module with:
1. A clear title
2. Organized content summary (key points)
3. 5 multiple choice questions with 4 options each and correct answer index (0-3)

Text: %s

Return in this JSON format:
{
  "title": "Module Title",
  "content": "Detailed summary...",
  "mcqs": [
    {"question": "Q1?", "options": ["A", "B", "C", "D"], "correct": 0}
  ]
}`

// GeneratedModule is the structured payload expected inside a completion.
type GeneratedModule struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	MCQs    []types.MCQ `json:"mcqs"`
}

// Client talks to the generative-text service. One outbound call per request,
// bounded timeout, no retries: a failed call is a failed request end-to-end.
type Client interface {
	GenerateModule(ctx context.Context, extractedText string) (*GeneratedModule, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = "gemini-2.5-flash"
	}

	timeoutSec := 30
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &client{
		log:        log.With("service", "GeminiClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *client) GenerateModule(ctx context.Context, extractedText string) (*GeneratedModule, error) {
	text := firstRunes(extractedText, promptPrefixLimit)
	completion, err := c.complete(ctx, fmt.Sprintf(modulePromptTemplate, text))
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(completion)
	if err != nil {
		return nil, err
	}

	var module GeneratedModule
	if err := json.Unmarshal([]byte(raw), &module); err != nil {
		return nil, fmt.Errorf("%w: completion is not valid JSON: %v", apperr.ErrUpstream, err)
	}
	return &module, nil
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt)
}

func (c *client) complete(ctx context.Context, prompt string) (string, error) {
	ctx = ctxutil.Default(ctx)

	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", err
	}

	// The key travels in a header, never in the URL: transport errors
	// quote the full URL and end up in logs and error chains.
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: generative-text call failed: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading completion: %v", apperr.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("Generative-text API error", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: generative-text API returned HTTP %d", apperr.ErrUpstream, resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed completion envelope: %v", apperr.ErrUpstream, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: completion has no candidates", apperr.ErrUpstream)
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// firstRunes truncates on a rune boundary so a multi-byte character is never
// split at the prompt limit.
func firstRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// ExtractJSON pulls the JSON object embedded in a free-text completion by
// taking the substring between the first '{' and the last '}'. Best effort:
// malformed output is surfaced as an upstream error, never repaired.
func ExtractJSON(completion string) (string, error) {
	start := strings.Index(completion, "{")
	end := strings.LastIndex(completion, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON object found in completion", apperr.ErrUpstream)
	}
	return completion[start : end+1], nil
}
