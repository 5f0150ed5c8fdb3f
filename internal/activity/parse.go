// Package activity handles freeform activity logging: an LLM parse of the
// user's text into a structured eco-action, heuristic CO2 and money
// estimates, and feed presentation helpers.
package activity

import (
	"context"
	"encoding/json"
	"log"

	"github.com/kaptinlin/jsonrepair"

	"github.com/sproutapp/carbon-coach/internal/llm"
	"github.com/sproutapp/carbon-coach/internal/prompts"
)

// MinConfidence is the threshold below which a parse is rejected as not
// recognizably eco-friendly.
const MinConfidence = 50

// summaryMaxLen truncates the fallback summary built from raw user input.
const summaryMaxLen = 50

// Estimate is the structured descriptor the model extracts for CO2 math.
type Estimate struct {
	ActivityType string         `json:"activity_type"`
	Details      map[string]any `json:"details"`
}

// Parsed is the structured result of analyzing one freeform activity.
type Parsed struct {
	Summary    string   `json:"summary"`
	Category   string   `json:"category"`
	Emoji      string   `json:"emoji"`
	Estimate   Estimate `json:"climatiq_estimate"`
	Confidence int      `json:"confidence"`
}

// Recognized reports whether the model was confident this is a real
// eco-action.
func (p *Parsed) Recognized() bool {
	return p.Confidence >= MinConfidence
}

// Parser extracts structured activities from user text via the lite model.
type Parser struct {
	client llm.Client
}

// NewParser creates a Parser. client may be nil; parses then return the
// low-confidence fallback.
func NewParser(client llm.Client) *Parser {
	return &Parser{client: client}
}

// Parse analyzes one freeform description. It never returns an error: any
// model or decode failure yields a low-confidence record the caller will
// reject via Recognized.
func (p *Parser) Parse(ctx context.Context, text string) *Parsed {
	if p.client == nil {
		return fallbackParse(text)
	}

	system := prompts.MustGet("activity.json", "parse-activity-system")
	template := prompts.MustGet("activity.json", "parse-activity-user")
	prompt := prompts.Format(template, map[string]string{"ActivityText": text})

	raw, err := p.client.GenerateJSON(ctx, system, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[activity] parse call failed: %v", err)
		return fallbackParse(text)
	}

	cleaned := llm.CleanJSONBlock(raw)
	var parsed Parsed
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)
		if repairErr != nil || json.Unmarshal([]byte(repaired), &parsed) != nil {
			log.Printf("[activity] unparseable model response: %v", err)
			return fallbackParse(text)
		}
	}
	return &parsed
}

// fallbackParse is the record returned when the model cannot be consulted.
// Confidence 30 keeps it below MinConfidence so it is never silently scored.
func fallbackParse(text string) *Parsed {
	summary := text
	if len(summary) > summaryMaxLen {
		summary = summary[:summaryMaxLen]
	}
	return &Parsed{
		Summary:    summary,
		Category:   "energy",
		Emoji:      "🌱",
		Estimate:   Estimate{ActivityType: "energy", Details: map[string]any{}},
		Confidence: 30,
	}
}
