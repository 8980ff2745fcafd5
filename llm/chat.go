package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"backend/models"
)

// The assistant's scope and guardrails. The pregnancy/menstruation
// split and the disclaimer are prompt-level constraints; the returned
// text is not re-validated against them.
const chatSystemPrompt = "You are an AI health assistant for women, providing expert advice on " +
	"menstrual health, general women's health, diet, and well-being. " +
	"If the user's profile indicates she is pregnant, do not discuss menstruation-related topics; " +
	"if it indicates she is not pregnant, do not discuss pregnancy-related topics. " +
	"Always remind the user to consult a doctor for medical concerns."

// Chat answers a single free-text turn grounded in the user's health
// profile. Stateless across turns; the profile is the only context.
func (c *Client) Chat(ctx context.Context, message string, details *models.UserDetail) (string, error) {
	profile, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("marshal user details: %w", err)
	}

	user := fmt.Sprintf("%s\n\nUser health profile:\n%s", message, profile)
	reply, err := c.complete(ctx, chatSystemPrompt, user, false)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}
