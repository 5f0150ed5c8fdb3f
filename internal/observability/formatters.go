// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sproutapp/carbon-coach/internal/progress"
	"github.com/sproutapp/carbon-coach/internal/types"
	"github.com/sproutapp/carbon-coach/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBaseline outputs the estimated baseline footprint.
func (p *Printer) PrintBaseline(state *types.PipelineState) {
	if state == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Monthly baseline:  %.2f kg CO2\n", state.BaselineCO2Kg))
	sb.WriteString(fmt.Sprintf("Yearly estimate:   %.1f kg CO2", state.BaselineCO2Kg*12))

	p.printBox("BASELINE FOOTPRINT", sb.String())
}

// PrintProfile outputs the classification and ranked opportunity areas.
func (p *Printer) PrintProfile(state *types.PipelineState) {
	if state == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profile type:  %s\n", state.ProfileType))

	if len(state.OpportunityAreas) > 0 {
		sb.WriteString("\nOpportunity areas:\n")
		for i, area := range state.OpportunityAreas {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, area))
		}
	}

	p.printBox("USER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMissions outputs the generated mission set.
func (p *Printer) PrintMissions(state *types.PipelineState) {
	if state == nil || len(state.Missions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d missions:\n\n", len(state.Missions)))

	count := min(len(state.Missions), maxItemsToShow)
	for i := 0; i < count; i++ {
		mission := state.Missions[i]
		title := mission.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		sb.WriteString(fmt.Sprintf("  %s | %.1f kg | %d XP | %s\n",
			mission.Category, mission.CO2SavedKg, mission.XPReward, mission.MissionType))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(state.Missions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more missions", len(state.Missions)-maxItemsToShow))
	}

	if state.Error != "" {
		sb.WriteString("\n\n⚠ fallback set used: generation failed")
	}

	p.printBox("GENERATED MISSIONS", sb.String())
}

// PrintProgress outputs the XP and level a mission set is worth.
func (p *Printer) PrintProgress(state *types.PipelineState) {
	if state == nil || len(state.Missions) == 0 {
		return
	}

	totalXP := 0
	totalCO2 := 0.0
	for _, mission := range state.Missions {
		totalXP += mission.XPReward
		totalCO2 += mission.CO2SavedKg
	}

	level := progress.CalculateLevel(totalXP)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total XP available:   %d\n", totalXP))
	sb.WriteString(fmt.Sprintf("Total CO2 potential:  %.1f kg\n", totalCO2))
	sb.WriteString(fmt.Sprintf("Level if completed:   %d (%s)",
		level, progress.PlantStageName(progress.PlantStage(level))))

	p.printBox("PROGRESS POTENTIAL", sb.String())
}

// PrintViolations outputs any mission validation violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []validation.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		message := v.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ mission %d: %s\n", v.Index, v.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MISSION VIOLATIONS", sb.String())
}
