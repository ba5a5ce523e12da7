package planner

const mimeJSON = "application/json"

// TripPlanAdapter is the strict-schema adapter.
type TripPlanAdapter struct {
	req TripPlanRequest
}

// NewTripPlanAdapter binds a validated request to the TripPlan contract.
func NewTripPlanAdapter(req TripPlanRequest) TripPlanAdapter {
	return TripPlanAdapter{req: req}
}

func (a TripPlanAdapter) Flow() string   { return "trip-plan" }
func (a TripPlanAdapter) Prompt() string { return BuildTripPlanPrompt(a.req) }

func (a TripPlanAdapter) Format() ResponseFormat {
	return ResponseFormat{MIMEType: mimeJSON, Schema: TripPlanSchemaHint()}
}

func (a TripPlanAdapter) Decode(raw string) (TripPlan, error) {
	data, err := ParseResponse(raw)
	if err != nil {
		return TripPlan{}, err
	}
	return ValidateTripPlan(data)
}

func (a TripPlanAdapter) Fallback(s Synthesizer) TripPlan {
	return s.TripPlan(FallbackFromTripPlanRequest(a.req))
}

// ItineraryAdapter is the free-form adapter used by the lenient flow.
type ItineraryAdapter struct {
	req ItineraryRequest
}

// NewItineraryAdapter binds a lenient request to the FreeformPlan contract.
func NewItineraryAdapter(req ItineraryRequest) ItineraryAdapter {
	return ItineraryAdapter{req: req}
}

func (a ItineraryAdapter) Flow() string   { return "itinerary" }
func (a ItineraryAdapter) Prompt() string { return BuildItineraryPrompt(a.req) }

func (a ItineraryAdapter) Format() ResponseFormat {
	return ResponseFormat{MIMEType: mimeJSON}
}

func (a ItineraryAdapter) Decode(raw string) (FreeformPlan, error) {
	data, err := ParseResponse(raw)
	if err != nil {
		return FreeformPlan{}, err
	}
	plan, err := ValidateFreeformPlan(data)
	if err != nil {
		return FreeformPlan{}, err
	}
	return a.complete(plan), nil
}

func (a ItineraryAdapter) Fallback(s Synthesizer) FreeformPlan {
	return s.Freeform(FallbackFromItineraryRequest(a.req))
}

// complete fills the echo fields the model left empty from the request.
func (a ItineraryAdapter) complete(plan FreeformPlan) FreeformPlan {
	if plan.FromDestination == "" {
		plan.FromDestination = a.req.FromDestination
	}
	if plan.ToDestination == "" {
		plan.ToDestination = a.req.ToDestination
	}
	if plan.Duration == 0 {
		plan.Duration = a.req.Duration
	}
	if plan.Budget == "" {
		plan.Budget = a.req.Budget
		if plan.Budget == "" {
			plan.Budget = string(BudgetMedium)
		}
	}
	plan.Recommendations.Accommodation = nonNil(plan.Recommendations.Accommodation)
	plan.Recommendations.Dining = nonNil(plan.Recommendations.Dining)
	plan.Recommendations.Activities = nonNil(plan.Recommendations.Activities)
	plan.Recommendations.Transportation = nonNil(plan.Recommendations.Transportation)
	plan.Tips = nonNil(plan.Tips)
	return plan
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
