// Package llm talks to the Groq chat-completion API (OpenAI wire
// format) for the meal planner and the health assistant.
package llm

import (
	"context"
	"fmt"

	"backend/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

// completionAPI is the slice of the OpenAI client we use. Tests stub it.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	api   completionAPI
	model string
	log   *logger.Logger
}

func NewClient(apiKey, baseURL, model string, log *logger.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		log:   log,
	}
}

func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// complete runs one system+user exchange and returns the raw text.
func (c *Client) complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   1024,
		Temperature: 0.7,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
		req.Temperature = 0.3
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from completion API")
	}
	return resp.Choices[0].Message.Content, nil
}
