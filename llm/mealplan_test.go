package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"backend/models"
	"backend/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	replies []string
	err     error
	reqs    []openai.ChatCompletionRequest
}

func (s *stubAPI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	reply := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: reply}},
		},
	}, nil
}

func stubClient(api *stubAPI) *Client {
	return &Client{api: api, model: "llama3-8b-8192", log: logger.NewNop()}
}

func testDetails() *models.UserDetail {
	return &models.UserDetail{Age: "28", Height: "165", Weight: "63", DietType: "Vegetarian"}
}

func TestGenerateDayParsesCompleteResponse(t *testing.T) {
	api := &stubAPI{replies: []string{
		`{"Breakfast": "poha with peanuts", "Lunch": "dal and rice", "Dinner": "vegetable soup"}`,
	}}
	c := stubClient(api)

	plan := c.GenerateDay(context.Background(), "Monday", testDetails(), "low sugar")

	assert.Equal(t, "poha with peanuts", plan.Breakfast)
	assert.Equal(t, "dal and rice", plan.Lunch)
	assert.Equal(t, "vegetable soup", plan.Dinner)

	require.Len(t, api.reqs, 1)
	user := api.reqs[0].Messages[1].Content
	assert.Contains(t, user, "Monday")
	assert.Contains(t, user, "Vegetarian")
	assert.Contains(t, user, "low sugar")
}

func TestGenerateDayMissingMealFallsBack(t *testing.T) {
	// A partial day is a failure, not a partial acceptance.
	api := &stubAPI{replies: []string{`{"Breakfast": "oats"}`}}
	c := stubClient(api)

	plan := c.GenerateDay(context.Background(), "Tuesday", testDetails(), "")

	assert.Contains(t, plan.Breakfast, "Tuesday")
	assert.NotContains(t, plan.Breakfast, "oats")
	assert.NotEmpty(t, plan.Lunch)
	assert.NotEmpty(t, plan.Dinner)
}

func TestGenerateDayMalformedJSONFallsBack(t *testing.T) {
	api := &stubAPI{replies: []string{"here is your meal plan!"}}
	c := stubClient(api)

	plan := c.GenerateDay(context.Background(), "Friday", testDetails(), "")

	assert.Contains(t, plan.Breakfast, "Friday")
	assert.NotEmpty(t, plan.Lunch)
	assert.NotEmpty(t, plan.Dinner)
}

func TestGenerateDayCallErrorFallsBack(t *testing.T) {
	api := &stubAPI{err: errors.New("rate limited")}
	c := stubClient(api)

	plan := c.GenerateDay(context.Background(), "Sunday", testDetails(), "")

	assert.Contains(t, plan.Breakfast, "Sunday")
	assert.NotEmpty(t, plan.Lunch)
	assert.NotEmpty(t, plan.Dinner)
}

func TestGenerateDayDefaultPreferenceText(t *testing.T) {
	api := &stubAPI{replies: []string{
		`{"Breakfast": "a", "Lunch": "b", "Dinner": "c"}`,
	}}
	c := stubClient(api)

	c.GenerateDay(context.Background(), "Monday", testDetails(), "")

	require.Len(t, api.reqs, 1)
	assert.Contains(t, api.reqs[0].Messages[1].Content, noPreferences)
}

func TestParseDayPlanStripsCodeFence(t *testing.T) {
	plan, err := parseDayPlan("```json\n{\"Breakfast\": \"a\", \"Lunch\": \"b\", \"Dinner\": \"c\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, DayPlan{Breakfast: "a", Lunch: "b", Dinner: "c"}, plan)
}

func TestWeekPlanRoundTrip(t *testing.T) {
	var week WeekPlan
	for i, day := range Weekdays {
		week.Set(day, DayPlan{
			Breakfast: fmt.Sprintf("b%d", i),
			Lunch:     fmt.Sprintf("l%d", i),
			Dinner:    fmt.Sprintf("d%d", i),
		})
	}

	data, err := json.Marshal(&week)
	require.NoError(t, err)

	var decoded map[string]DayPlan
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 7)
	for i, day := range Weekdays {
		assert.Equal(t, fmt.Sprintf("b%d", i), decoded[day].Breakfast)
		assert.Equal(t, week.Day(day), decoded[day])
	}
}
