package planner

import (
	"fmt"
	"strings"
)

const tripPlanShape = `{
  "summary": "string",
  "dailyPlan": [
    {
      "day": 1,
      "title": "string",
      "activities": [
        {
          "timeOfDay": "morning | afternoon | evening",
          "name": "string",
          "description": "string",
          "location": "string",
          "tips": "string",
          "estimatedCost": "string"
        }
      ]
    }
  ],
  "packingTips": ["string"],
  "localTips": ["string"],
  "estimatedBudgetBreakdown": [{"category": "string", "amount": "string"}]
}`

const tripPlanExampleDay = `{
  "day": 1,
  "title": "Old Town and Riverside",
  "activities": [
    {"timeOfDay": "morning", "name": "Old Town walking tour", "description": "Guided walk through the historic centre.", "location": "Old Town Square", "tips": "Book the 9am slot to avoid crowds.", "estimatedCost": "~15 EUR"},
    {"timeOfDay": "afternoon", "name": "City museum", "description": "Permanent collection on local history.", "location": "Museum Quarter", "estimatedCost": "~12 EUR"},
    {"timeOfDay": "evening", "name": "Riverside dinner", "description": "Regional dishes at a family-run bistro.", "location": "Riverside promenade", "estimatedCost": "~30 EUR per person"}
  ]
}`

const freeformShape = `{
  "fromDestination": "string",
  "toDestination": "string",
  "duration": 3,
  "budget": "string",
  "itinerary": [
    {"day": 1, "title": "string", "activities": [{"time": "string", "activity": "string"}]}
  ],
  "recommendations": {
    "accommodation": ["string"],
    "dining": ["string"],
    "activities": ["string"],
    "transportation": ["string"]
  },
  "tips": ["string"]
}`

const freeformExampleDay = `{"day": 1, "title": "Arrival and first impressions", "activities": [
  {"time": "09:00", "activity": "Check in and drop bags at the hotel"},
  {"time": "13:00", "activity": "Lunch at a local market hall (~15 EUR)"},
  {"time": "19:00", "activity": "Sunset walk along the waterfront"}
]}`

// pacing describes how many activities a travel style allows per day.
func pacing(style string) string {
	switch TravelStyle(style) {
	case StyleRelaxed:
		return "relaxed: 2-3 activities per day with generous free time"
	case StylePacked:
		return "packed: 4-5 activities per day, starting early"
	default:
		return "balanced: 3-4 activities per day"
	}
}

func writeRules(b *strings.Builder, style, budget string) {
	b.WriteString("\nRules:\n")
	b.WriteString("1. Prefer safe, well-reviewed and publicly accessible attractions.\n")
	fmt.Fprintf(b, "2. Balance the pacing for a %s trip.\n", pacing(style))
	fmt.Fprintf(b, "3. Respect the %s budget in every choice of food, lodging and activities.\n", budget)
	b.WriteString("4. Mark every price as approximate (prefix it with \"~\") and use the local currency.\n")
	b.WriteString("5. Produce exactly one day entry per day of the trip, numbered from 1 without gaps.\n")
}

// BuildTripPlanPrompt renders the strict-flow instruction for req. It is a
// pure function: equal requests yield byte-identical prompts.
func BuildTripPlanPrompt(req TripPlanRequest) string {
	var b strings.Builder
	b.WriteString("You are an experienced travel planner. Create a day-by-day itinerary for the trip below.\n\n")
	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Dates: %s to %s\n", req.StartDate, req.EndDate)
	if req.StartingCity != "" {
		fmt.Fprintf(&b, "- Starting city: %s\n", req.StartingCity)
	}
	fmt.Fprintf(&b, "- Travelers: %d\n", req.Travelers)
	fmt.Fprintf(&b, "- Budget level: %s\n", req.BudgetLevel)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&b, "- Travel style: %s\n", req.TravelStyle)
	fmt.Fprintf(&b, "- Notes: %s\n", req.Notes)

	writeRules(&b, string(req.TravelStyle), string(req.BudgetLevel))

	b.WriteString("\nOutput format:\n")
	b.WriteString("Respond with a single JSON object and nothing else: no markdown, no code fences, no commentary.\n")
	b.WriteString("The object must have exactly this shape (timeOfDay, location, tips, estimatedCost, packingTips, localTips and estimatedBudgetBreakdown are optional):\n")
	b.WriteString(tripPlanShape)
	b.WriteString("\n\nExample of one dailyPlan entry:\n")
	b.WriteString(tripPlanExampleDay)
	b.WriteString("\n")
	return b.String()
}

// BuildItineraryPrompt renders the lenient-flow instruction for req.
func BuildItineraryPrompt(req ItineraryRequest) string {
	budget := req.Budget
	if budget == "" {
		budget = string(BudgetMedium)
	}
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}
	style := req.TravelStyle
	if style == "" {
		style = string(StyleBalanced)
	}

	var b strings.Builder
	b.WriteString("You are an experienced travel planner. Create a day-by-day itinerary for the trip below.\n\n")
	b.WriteString("Trip details:\n")
	if req.FromDestination != "" {
		fmt.Fprintf(&b, "- Travelling from: %s\n", req.FromDestination)
	}
	fmt.Fprintf(&b, "- Destination: %s\n", req.ToDestination)
	fmt.Fprintf(&b, "- Duration: %d day(s)\n", req.Duration)
	fmt.Fprintf(&b, "- Travelers: %d\n", travelers)
	fmt.Fprintf(&b, "- Budget: %s\n", budget)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&b, "- Travel style: %s\n", style)

	writeRules(&b, style, budget)
	if req.FromDestination != "" {
		fmt.Fprintf(&b, "6. Day 1 covers the journey from %s; if the trip is longer than 2 days the last day covers the return.\n", req.FromDestination)
	}

	b.WriteString("\nOutput format:\n")
	b.WriteString("Respond with a single JSON object and nothing else: no markdown, no code fences, no commentary.\n")
	b.WriteString("The object must have exactly this shape:\n")
	b.WriteString(freeformShape)
	b.WriteString("\n\nExample of one itinerary entry:\n")
	b.WriteString(freeformExampleDay)
	b.WriteString("\n")
	return b.String()
}
