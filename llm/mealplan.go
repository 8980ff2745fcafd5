package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"backend/models"
)

// Weekdays is the fixed key set of a weekly plan, in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayPlan is one day's three meal slots.
type DayPlan struct {
	Breakfast string `json:"Breakfast"`
	Lunch     string `json:"Lunch"`
	Dinner    string `json:"Dinner"`
}

// WeekPlan is the full 7-day structure persisted as a meal plan's
// plan_data. The field order fixes the JSON key order for display.
type WeekPlan struct {
	Monday    DayPlan `json:"Monday"`
	Tuesday   DayPlan `json:"Tuesday"`
	Wednesday DayPlan `json:"Wednesday"`
	Thursday  DayPlan `json:"Thursday"`
	Friday    DayPlan `json:"Friday"`
	Saturday  DayPlan `json:"Saturday"`
	Sunday    DayPlan `json:"Sunday"`
}

// Set assigns a day's plan by weekday name.
func (w *WeekPlan) Set(day string, plan DayPlan) {
	switch day {
	case "Monday":
		w.Monday = plan
	case "Tuesday":
		w.Tuesday = plan
	case "Wednesday":
		w.Wednesday = plan
	case "Thursday":
		w.Thursday = plan
	case "Friday":
		w.Friday = plan
	case "Saturday":
		w.Saturday = plan
	case "Sunday":
		w.Sunday = plan
	}
}

// Day returns a day's plan by weekday name.
func (w *WeekPlan) Day(day string) DayPlan {
	switch day {
	case "Monday":
		return w.Monday
	case "Tuesday":
		return w.Tuesday
	case "Wednesday":
		return w.Wednesday
	case "Thursday":
		return w.Thursday
	case "Friday":
		return w.Friday
	case "Saturday":
		return w.Saturday
	case "Sunday":
		return w.Sunday
	}
	return DayPlan{}
}

const mealSystemPrompt = "You are a meal planning assistant for a woman. " +
	"Generate meals in strict JSON. Respond with a JSON object containing exactly three keys: " +
	`"Breakfast", "Lunch" and "Dinner", each a short descriptive meal string. ` +
	"Ensure all values are realistic for the user's diet type. Eggs are considered non-veg."

const noPreferences = "No specific preferences provided."

// GenerateDay produces one day's meals from the user's profile and an
// optional free-text preference. It never fails: any call error or
// malformed response falls back to a deterministic plan for that day,
// logged as a soft condition.
func (c *Client) GenerateDay(ctx context.Context, day string, details *models.UserDetail, preference string) DayPlan {
	if preference == "" {
		preference = noPreferences
	}

	profile, err := json.Marshal(details)
	if err != nil {
		c.log.Warnw("meal day generation failed, using fallback", "day", day, "error", err)
		return fallbackDay(day)
	}

	user := fmt.Sprintf(
		"Create the %s meal plan for this user.\n\nUser details:\n%s\n\nPreferences: %s",
		day, profile, preference,
	)

	raw, err := c.complete(ctx, mealSystemPrompt, user, true)
	if err != nil {
		c.log.Warnw("meal day generation failed, using fallback", "day", day, "error", err)
		return fallbackDay(day)
	}

	plan, err := parseDayPlan(raw)
	if err != nil {
		c.log.Warnw("meal day response malformed, using fallback", "day", day, "error", err)
		return fallbackDay(day)
	}
	return plan
}

// parseDayPlan requires all three meal keys to be present and
// non-empty. A partial day is a failure, not a partial acceptance.
func parseDayPlan(raw string) (DayPlan, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var plan DayPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return DayPlan{}, fmt.Errorf("parse day plan: %w", err)
	}
	if plan.Breakfast == "" || plan.Lunch == "" || plan.Dinner == "" {
		return DayPlan{}, fmt.Errorf("day plan missing one or more meals")
	}
	return plan, nil
}

func fallbackDay(day string) DayPlan {
	return DayPlan{
		Breakfast: fmt.Sprintf("%s breakfast: oatmeal with fresh fruit and a handful of nuts", day),
		Lunch:     fmt.Sprintf("%s lunch: grilled vegetables with whole grains and a protein of choice", day),
		Dinner:    fmt.Sprintf("%s dinner: leafy green salad with lentil soup and whole wheat bread", day),
	}
}
