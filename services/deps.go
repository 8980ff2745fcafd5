package services

import "backend/llm"

// Process-wide generative client, set once at startup.
var llmClient *llm.Client

func InitLLM(c *llm.Client) {
	llmClient = c
}

func LLM() *llm.Client {
	return llmClient
}
