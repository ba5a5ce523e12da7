package planner

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMaxFallbackDays is the number of days the fallback synthesizer
// elaborates. Longer trips are capped and flagged through Synthesizer.Capped.
const DefaultMaxFallbackDays = 7

// FallbackInput is everything the synthesizer looks at.
type FallbackInput struct {
	Origin      string
	Destination string
	Duration    int
	Interests   []string
	Notes       string
	Budget      string
	Travelers   int
	TravelStyle string
}

// FallbackFromTripPlanRequest maps a strict-flow request onto FallbackInput.
// The trip length is derived from the date range when both dates parse.
func FallbackFromTripPlanRequest(req TripPlanRequest) FallbackInput {
	return FallbackInput{
		Origin:      req.StartingCity,
		Destination: req.Destination,
		Duration:    daysBetween(req.StartDate, req.EndDate),
		Interests:   req.Interests,
		Notes:       req.Notes,
		Budget:      string(req.BudgetLevel),
		Travelers:   req.Travelers,
		TravelStyle: string(req.TravelStyle),
	}
}

// FallbackFromItineraryRequest maps a lenient-flow request onto FallbackInput.
func FallbackFromItineraryRequest(req ItineraryRequest) FallbackInput {
	return FallbackInput{
		Origin:      req.FromDestination,
		Destination: req.ToDestination,
		Duration:    req.Duration,
		Interests:   req.Interests,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		TravelStyle: req.TravelStyle,
	}
}

// daysBetween counts the calendar days of an inclusive date range. Unparsable
// or inverted ranges count as one day.
func daysBetween(start, end string) int {
	s, err1 := parseDate(start)
	e, err2 := parseDate(end)
	if err1 != nil || err2 != nil || e.Before(s) {
		return 1
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Synthesizer builds template itineraries without calling any external
// service. The zero value uses DefaultMaxFallbackDays.
type Synthesizer struct {
	MaxDays int
}

func (s Synthesizer) maxDays() int {
	if s.MaxDays < 1 {
		return DefaultMaxFallbackDays
	}
	return s.MaxDays
}

// Days returns the number of days that will be elaborated for duration,
// clamped to [1, MaxDays].
func (s Synthesizer) Days(duration int) int {
	if duration < 1 {
		return 1
	}
	if limit := s.maxDays(); duration > limit {
		return limit
	}
	return duration
}

// Capped reports whether duration exceeds the number of days the synthesizer
// elaborates.
func (s Synthesizer) Capped(duration int) bool {
	return duration > s.maxDays()
}

type fallbackDay struct {
	number     int
	title      string
	activities []templateActivity
}

// plan lays out the elaborated days. With an origin, day 1 is the outbound
// journey and, for trips longer than two days, the last requested day is the
// return journey. The return day only appears if it falls within MaxDays.
func (s Synthesizer) plan(in FallbackInput) []fallbackDay {
	dest := in.Destination
	origin := strings.TrimSpace(in.Origin)
	tmpl := selectTemplate(strings.Join(in.Interests, " ") + " " + in.Notes)

	n := s.Days(in.Duration)
	days := make([]fallbackDay, 0, n)
	explored := 0
	for i := 0; i < n; i++ {
		d := fallbackDay{number: i + 1}
		switch {
		case origin != "" && i == 0:
			d.title = fmt.Sprintf("Travel from %s to %s", origin, dest)
			d.activities = []templateActivity{
				{Morning, "08:00", "Depart " + origin, fmt.Sprintf("Leave %s for %s. Keep travel documents and tickets at hand.", origin, dest), "Varies by transport"},
				{Afternoon, "14:00", "Arrive and check in", fmt.Sprintf("Arrive in %s, check in and get your bearings around your accommodation.", dest), "Included in lodging"},
				{Evening, "19:00", "First evening in " + dest, "Easy dinner near your accommodation and an early night.", "~25 per person"},
			}
		case origin != "" && in.Duration > 2 && i == in.Duration-1:
			d.title = "Return Journey"
			d.activities = []templateActivity{
				{Morning, "09:00", "Last look around " + dest, "Pack, check out and grab breakfast at a favourite spot.", "~12 per person"},
				{Afternoon, "13:00", "Travel back to " + origin, fmt.Sprintf("Head back from %s to %s.", dest, origin), "Varies by transport"},
				{Evening, "19:00", "Arrive home", fmt.Sprintf("Arrive in %s and unpack.", origin), "Free"},
			}
		default:
			d.title = fmt.Sprintf("Exploring %s", dest)
			if explored > 0 {
				d.title = fmt.Sprintf("Exploring %s (part %d)", dest, explored+1)
			}
			d.activities = tmpl.days[explored%len(tmpl.days)]
			explored++
		}
		days = append(days, d)
	}
	return days
}

func interpolate(s, destination string) string {
	return strings.ReplaceAll(s, "{destination}", destination)
}

// TripPlan renders a TripPlan that satisfies ValidateTripPlan by construction.
func (s Synthesizer) TripPlan(in FallbackInput) TripPlan {
	days := s.plan(in)
	plan := TripPlan{
		Summary:   summary(in, len(days)),
		DailyPlan: make([]DayPlan, 0, len(days)),
		PackingTips: []string{
			"Comfortable walking shoes",
			"A reusable water bottle",
			"Copies of your travel documents",
			fmt.Sprintf("Clothing suited to the season in %s", in.Destination),
		},
		LocalTips: localTips(in),
		EstimatedBudgetBreakdown: []BudgetItem{
			{Category: "Accommodation", Amount: budgetAmount(in.Budget, "~60", "~120", "~250") + " per night"},
			{Category: "Food", Amount: budgetAmount(in.Budget, "~25", "~50", "~100") + " per person per day"},
			{Category: "Activities", Amount: budgetAmount(in.Budget, "~15", "~35", "~80") + " per person per day"},
			{Category: "Local transport", Amount: budgetAmount(in.Budget, "~5", "~10", "~30") + " per person per day"},
		},
	}
	for _, d := range days {
		dp := DayPlan{Day: d.number, Title: d.title, Activities: make([]Activity, 0, len(d.activities))}
		for _, a := range d.activities {
			dp.Activities = append(dp.Activities, Activity{
				TimeOfDay:     a.timeOfDay,
				Name:          interpolate(a.name, in.Destination),
				Description:   interpolate(a.detail, in.Destination),
				Location:      in.Destination,
				EstimatedCost: a.cost,
			})
		}
		plan.DailyPlan = append(plan.DailyPlan, dp)
	}
	return plan
}

// Freeform renders the lenient-flow plan shape.
func (s Synthesizer) Freeform(in FallbackInput) FreeformPlan {
	days := s.plan(in)
	budget := in.Budget
	if budget == "" {
		budget = string(BudgetMedium)
	}
	plan := FreeformPlan{
		FromDestination: in.Origin,
		ToDestination:   in.Destination,
		Duration:        in.Duration,
		Budget:          budget,
		Itinerary:       make([]FreeformDay, 0, len(days)),
		Recommendations: recommendations(in),
		Tips:            localTips(in),
	}
	for _, d := range days {
		fd := FreeformDay{Day: d.number, Title: d.title, Activities: make([]FreeformActivity, 0, len(d.activities))}
		for _, a := range d.activities {
			fd.Activities = append(fd.Activities, FreeformActivity{
				Time:     a.clock,
				Activity: interpolate(a.name, in.Destination) + ": " + interpolate(a.detail, in.Destination),
			})
		}
		plan.Itinerary = append(plan.Itinerary, fd)
	}
	return plan
}

func summary(in FallbackInput, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A %d-day trip to %s", days, in.Destination)
	if in.Origin != "" {
		fmt.Fprintf(&b, " from %s", in.Origin)
	}
	b.WriteString(" built from a general template. ")
	b.WriteString("Adjust the activities to your own pace and check opening hours before you go.")
	return b.String()
}

func localTips(in FallbackInput) []string {
	tips := []string{
		fmt.Sprintf("Check opening hours and public holidays in %s before you go.", in.Destination),
		"Carry a little local cash for markets and small shops.",
		"Keep digital and paper copies of your bookings.",
		fmt.Sprintf("Learn a few basic phrases used in %s.", in.Destination),
	}
	if in.Origin != "" {
		tips = append(tips, fmt.Sprintf("Compare train, bus and flight options between %s and %s.", in.Origin, in.Destination))
	}
	return tips
}

func recommendations(in FallbackInput) Recommendations {
	dest := in.Destination
	rec := Recommendations{
		Accommodation: []string{
			fmt.Sprintf("Stay in a central neighbourhood of %s to keep travel times short", dest),
			fmt.Sprintf("Compare guesthouses and mid-range hotels in %s", dest),
		},
		Dining: []string{
			fmt.Sprintf("Try the regional specialities of %s", dest),
			"Look for busy places popular with locals",
		},
		Activities: []string{
			fmt.Sprintf("Visit the best-known landmarks of %s early in the day", dest),
			"Leave some unplanned time for discoveries",
		},
		Transportation: []string{
			fmt.Sprintf("Use public transport or walk within %s", dest),
		},
	}
	if in.Origin != "" {
		rec.Transportation = append(rec.Transportation, fmt.Sprintf("Book transport between %s and %s in advance", in.Origin, dest))
	}
	return rec
}

func budgetAmount(level, low, medium, high string) string {
	switch BudgetLevel(strings.ToLower(strings.TrimSpace(level))) {
	case BudgetLow:
		return low
	case BudgetHigh:
		return high
	default:
		return medium
	}
}
