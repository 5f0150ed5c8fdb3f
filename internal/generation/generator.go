// Package generation turns a populated pipeline state into 8-12 personalized
// missions by prompting the generation model, then parsing, validating and
// repairing whatever comes back. Unrecoverable failures surface as errors so
// the orchestrator can substitute the static fallback set.
package generation

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/xeipuuv/gojsonschema"

	"github.com/sproutapp/carbon-coach/internal/llm"
	"github.com/sproutapp/carbon-coach/internal/prompts"
	"github.com/sproutapp/carbon-coach/internal/types"
	"github.com/sproutapp/carbon-coach/internal/validation"
)

// MinMissions is the smallest usable generated list. Fewer than this is an
// unrecoverable failure, not something worth repairing.
const MinMissions = 8

//go:embed schema.json
var missionSchemaJSON []byte

var missionSchema = gojsonschema.NewBytesLoader(missionSchemaJSON)

// Generator produces personalized missions through an LLM client.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator. The client may be nil; Generate then
// fails immediately and the caller falls back to the static set.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate prompts the model with the user's profile, baseline and
// opportunity areas and returns at least MinMissions repaired mission
// records. Any returned error means the caller should use FallbackMissions.
func (g *Generator) Generate(ctx context.Context, state *types.PipelineState) ([]types.Mission, error) {
	if g.client == nil {
		return nil, &APICallError{Message: "no generation client configured"}
	}

	system := prompts.MustGet("generation.json", "mission-system")
	prompt := buildMissionPrompt(state)

	raw, err := g.client.GenerateJSON(ctx, system, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate missions",
			Cause:   err,
		}
	}

	missions, err := ParseMissions(raw)
	if err != nil {
		return nil, err
	}

	if len(missions) < MinMissions {
		return nil, &ResultError{
			Message: fmt.Sprintf("model returned %d missions, need at least %d", len(missions), MinMissions),
		}
	}

	RepairMissions(missions, state.FirstOpportunity())
	return missions, nil
}

// buildMissionPrompt fills the user-context template from the pipeline state.
func buildMissionPrompt(state *types.PipelineState) string {
	areas := make([]string, len(state.OpportunityAreas))
	for i, a := range state.OpportunityAreas {
		areas[i] = string(a)
	}

	template := prompts.MustGet("generation.json", "mission-user")
	return prompts.Format(template, map[string]string{
		"ProfileType":   string(state.ProfileType),
		"BaselineCO2":   strconv.FormatFloat(state.BaselineCO2Kg, 'f', 2, 64),
		"Opportunities": strings.Join(areas, ", "),
		"Survey":        state.Survey.PromptJSON(),
	})
}

// ParseMissions decodes the model response into mission records. Code fences
// are stripped first; if the text is near-JSON it is repaired before a second
// decode attempt. The decoded array is then checked against the mission
// schema, with mismatches logged (enum problems are fixed later by
// RepairMissions, not here).
func ParseMissions(raw string) ([]types.Mission, error) {
	text := llm.CleanJSONBlock(raw)

	var missions []types.Mission
	if err := json.Unmarshal([]byte(text), &missions); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return nil, &ParseError{
				Message: "response is not a JSON mission array",
				Cause:   err,
			}
		}
		if err := json.Unmarshal([]byte(repaired), &missions); err != nil {
			return nil, &ParseError{
				Message: "repaired response is not a JSON mission array",
				Cause:   err,
			}
		}
		log.Printf("[generation] repaired malformed JSON response")
		text = repaired
	}

	result, err := gojsonschema.Validate(missionSchema, gojsonschema.NewStringLoader(text))
	if err == nil && !result.Valid() {
		for _, desc := range result.Errors() {
			log.Printf("[generation] schema mismatch: %s", desc)
		}
	}

	return missions, nil
}

// RepairMissions fixes repairable violations in place: an invalid
// mission_type becomes one_time, an invalid category becomes the user's top
// opportunity area. Advisory violations are logged and the record is kept as
// generated.
func RepairMissions(missions []types.Mission, defaultCategory types.Category) {
	for _, v := range validation.CheckMissions(missions) {
		if !v.Repairable {
			log.Printf("[generation] %s", v)
			continue
		}
		switch v.Field {
		case "mission_type":
			log.Printf("[generation] %s, defaulting to %s", v, types.MissionOneTime)
			missions[v.Index].MissionType = types.MissionOneTime
		case "category":
			log.Printf("[generation] %s, defaulting to %s", v, defaultCategory)
			missions[v.Index].Category = defaultCategory
		}
	}
}
