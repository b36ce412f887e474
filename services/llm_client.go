// event-match-system/services/llm_client.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"event-match-system/utils"
)

const defaultLLMBaseURL = "https://api.openai.com/v1"
const defaultLLMModel = "gpt-4o-mini"

type LLMClient struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

func NewLLMClient() *LLMClient {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultLLMBaseURL
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = defaultLLMModel
	}
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  LLM_API_KEY not set — summary requests will be rejected upstream")
	}

	return &LLMClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  utils.HTTPClient,
	}
}

// CreateCompletion calls /chat/completions and returns the first choice's text.
func (c *LLMClient) CreateCompletion(messages []ChatMessage) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", c.BaseURL)

	reqBody := map[string]interface{}{
		"model":    c.Model,
		"messages": messages,
	}
	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("LLM /chat/completions returned %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("llm completion failed: %d", resp.StatusCode)
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}

	return out.Choices[0].Message.Content, nil
}
