package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deokisok/ootd/internal/domain"
)

const (
	openAIChatURL = "https://api.openai.com/v1/chat/completions"
	visionModel   = "gpt-4o-mini"

	requestTimeout = 20 * time.Second
)

const classifyPrompt = `You are a clothing attribute classifier. Look at the
garment photo%s and answer with a single JSON object, no markdown:
{"color": one of [black, white, gray, navy, beige, brown, red, blue, green, yellow, pink, purple, multi],
 "pattern": one of [solid, stripe, check, dot, floral, graphic],
 "warmth": one of [thin, mid, thick],
 "vibe": one of [casual, formal, sporty, minimal, street, dandy, cute],
 "description": one short sentence}
If you cannot tell a field, use "unknown".`

type OpenAIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// chat types for the OpenAI API; content parts carry the image inline.
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ClassifyGarment sends the photo to the vision model and parses the
// attribute record. The returned fields are raw strings; the caller is
// responsible for normalizing them against the closed vocabularies.
func (c *OpenAIClient) ClassifyGarment(ctx context.Context, image []byte, nameHint string) (domain.Classification, error) {
	hint := ""
	if nameHint != "" {
		hint = fmt.Sprintf(" (the owner calls it %q)", nameHint)
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	body, err := json.Marshal(chatRequest{
		Model: visionModel,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: fmt.Sprintf(classifyPrompt, hint)},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			},
		}},
		Temperature: 0.1,
	})
	if err != nil {
		return domain.Classification{}, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewReader(body))
	if err != nil {
		return domain.Classification{}, fmt.Errorf("create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("classify request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("read classify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.Classification{}, fmt.Errorf("vision API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return domain.Classification{}, fmt.Errorf("unmarshal classify response: %w", err)
	}

	if result.Error != nil {
		return domain.Classification{}, fmt.Errorf("vision API error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return domain.Classification{}, fmt.Errorf("vision API returned no choices")
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)

	// Strip markdown fences if present
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var classification domain.Classification
	if err := json.Unmarshal([]byte(content), &classification); err != nil {
		return domain.Classification{}, fmt.Errorf("parse classification: %w (raw: %s)", err, content)
	}

	return classification, nil
}
