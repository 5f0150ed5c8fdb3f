package types

// PipelineState is the record threaded through the four generation stages.
// Each stage writes exactly one field; later stages read but never mutate
// earlier output. A state lives for one run and is then discarded.
type PipelineState struct {
	Survey           *SurveyResponse `json:"survey"`
	BaselineCO2Kg    float64         `json:"baseline_co2_kg"`
	ProfileType      ProfileType     `json:"profile_type"`
	OpportunityAreas []Category      `json:"opportunity_areas"`
	Missions         []Mission       `json:"missions"`
	// Error is a non-fatal diagnostic set when the generation stage fell
	// back to the static mission set. The run itself still succeeds.
	Error string `json:"error,omitempty"`
}

// NewPipelineState creates a fresh state for one pipeline run.
func NewPipelineState(survey *SurveyResponse) *PipelineState {
	if survey == nil {
		survey = &SurveyResponse{}
	}
	return &PipelineState{
		Survey:      survey,
		ProfileType: ProfileBeginner,
	}
}

// FirstOpportunity returns the top opportunity area, or CategoryEnergy when
// the ranker produced none. Used as the repair default for bad categories.
func (s *PipelineState) FirstOpportunity() Category {
	if len(s.OpportunityAreas) > 0 {
		return s.OpportunityAreas[0]
	}
	return CategoryEnergy
}
