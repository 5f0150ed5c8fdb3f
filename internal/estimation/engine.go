package estimation

import (
	"context"
	"log"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// Engine computes the monthly baseline footprint for a survey.
// It never fails: every estimation-service error degrades to the
// closed-form fallback tables. A nil client means fallback-only.
type Engine struct {
	client Client
}

// NewEngine creates an estimation engine. client may be nil.
func NewEngine(client Client) *Engine {
	return &Engine{client: client}
}

// EstimateBaseline returns the non-negative monthly CO2-kg estimate for a
// survey, rounded to 2 decimal places. The commute, flight, and food
// sub-estimates are independent and computed concurrently; summation is
// commutative so the result does not depend on completion order.
func (e *Engine) EstimateBaseline(ctx context.Context, survey *types.SurveyResponse) float64 {
	var commute, flight, food float64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		commute = e.commuteKg(gCtx, survey)
		return nil
	})
	g.Go(func() error {
		flight = e.flightKg(gCtx, survey)
		return nil
	})
	g.Go(func() error {
		food = foodKg(survey)
		return nil
	})
	// Sub-estimates never return errors; Wait only joins the goroutines.
	_ = g.Wait()

	total := commute + flight + food
	if total < 0 {
		total = 0
	}
	return math.Round(total*100) / 100
}

// commuteKg estimates monthly commute emissions. Zero-emission modes are 0.
// The service path converts one-way miles to a monthly round-trip km figure;
// any service error falls back to the per-mile rate table.
func (e *Engine) commuteKg(ctx context.Context, survey *types.SurveyResponse) float64 {
	if survey.CommuteMethod == "" || survey.CommuteDistance == 0 {
		return 0
	}

	activityID, known := commuteActivityIDs[survey.CommuteMethod]
	if known && activityID == "" {
		return 0 // bike/walk/home
	}
	if !known {
		activityID = activityCar
	}

	if e.client == nil {
		return fallbackCommuteKg(survey)
	}

	monthlyKm := float64(survey.CommuteDistance) * milesToKm * 2 * workdaysPerMonth
	co2e, err := e.client.Estimate(ctx, activityID, monthlyKm)
	if err != nil {
		log.Printf("[estimation] commute estimate failed, using fallback: %v", err)
		return fallbackCommuteKg(survey)
	}
	return co2e
}

// flightKg estimates flight emissions from the frequency bucket. Unknown
// labels map to the zero bucket.
func (e *Engine) flightKg(ctx context.Context, survey *types.SurveyResponse) float64 {
	if survey.FlightFrequency == "" {
		return 0
	}

	miles := flightAnnualMiles[survey.FlightFrequency]
	if miles == 0 {
		return 0
	}

	if e.client == nil {
		return fallbackFlightKg(survey)
	}

	km := float64(miles) * milesToKm
	co2e, err := e.client.Estimate(ctx, activityFlight, km)
	if err != nil {
		log.Printf("[estimation] flight estimate failed, using fallback: %v", err)
		return fallbackFlightKg(survey)
	}
	return co2e
}
