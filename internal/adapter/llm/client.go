// Package llm implements the structured-extraction client. It sends journal
// text to the Anthropic Messages API with a fixed instruction prompt and
// returns the model's raw text output. It never retries on its own: retries
// are an explicit user action handled by the journal service.
package llm

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/arjunbhatia/healthlog-backend/internal/config"
)

// Client calls the extraction service for one journal entry at a time.
type Client struct {
	api         anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewClient creates an extraction client from AI config.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		api:         anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Extract sends the raw journal text to the model and returns its raw text
// output. Transport problems (network, auth, non-success status) surface as
// errors; interpreting the output is the decoder's job, not ours.
func (c *Client) Extract(ctx context.Context, rawText string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(rawText))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("extraction api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response from extraction service")
	}

	return msg.Content[0].Text, nil
}

// buildPrompt creates the fixed instruction prompt for one journal entry.
// The schema here must stay in sync with domain.ParsedData.
func buildPrompt(rawText string) string {
	return fmt.Sprintf(`You are a health data extraction assistant.

Convert the following health journal text into structured JSON data.

Journal text:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "meals": [
    {"time": "<morning|noon|evening|night or free text>", "items": ["<food item>"], "quantity": "<amount or empty>", "calories": <number or null>}
  ],
  "medicines": [
    {"name": "<medicine name>", "time": "<when taken>", "dosage": "<dosage or empty>"}
  ],
  "bodyStats": {"weightKg": <number or null>, "waterIntakeLiters": <number or null>, "sleepHours": <number or null>, "stepsCount": <number or null>},
  "tests": [
    {"name": "<test name>", "result": "<textual result>", "value": <number or null>, "unit": "<unit>", "referenceRange": {"min": <number or null>, "max": <number or null>}}
  ],
  "notes": "<anything that does not fit the above, or null>"
}

Rules:
- Only include data explicitly mentioned in the text; never invent values
- Omit empty arrays and null objects entirely
- Group food items eaten at the same time into one meal block
- Output ONLY the JSON, no markdown, no explanations`, rawText)
}
