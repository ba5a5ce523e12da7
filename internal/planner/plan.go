package planner

// TimeOfDay buckets an activity within a day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TripPlan is the day-by-day itinerary returned by the strict flow.
type TripPlan struct {
	Summary                  string       `json:"summary" validate:"required"`
	DailyPlan                []DayPlan    `json:"dailyPlan" validate:"required,min=1,dive"`
	PackingTips              []string     `json:"packingTips,omitempty"`
	LocalTips                []string     `json:"localTips,omitempty"`
	EstimatedBudgetBreakdown []BudgetItem `json:"estimatedBudgetBreakdown,omitempty" validate:"omitempty,dive"`
}

// DayPlan is one day of a TripPlan. Day numbers start at 1.
type DayPlan struct {
	Day        int        `json:"day" validate:"min=1"`
	Title      string     `json:"title" validate:"required"`
	Activities []Activity `json:"activities" validate:"required,dive"`
}

// Activity is a single stop or experience within a day.
type Activity struct {
	TimeOfDay     TimeOfDay `json:"timeOfDay,omitempty" validate:"omitempty,oneof=morning afternoon evening"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Location      string    `json:"location,omitempty"`
	Tips          string    `json:"tips,omitempty"`
	EstimatedCost string    `json:"estimatedCost,omitempty"`
}

// BudgetItem is one line of the estimated budget breakdown.
type BudgetItem struct {
	Category string `json:"category" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

// FreeformPlan is the plan shape of the lenient flow. It is a separate
// contract from TripPlan and is never validated against it.
type FreeformPlan struct {
	FromDestination string          `json:"fromDestination"`
	ToDestination   string          `json:"toDestination"`
	Duration        int             `json:"duration"`
	Budget          string          `json:"budget"`
	Itinerary       []FreeformDay   `json:"itinerary" validate:"required,min=1,dive"`
	Recommendations Recommendations `json:"recommendations"`
	Tips            []string        `json:"tips"`
}

// FreeformDay is one day of a FreeformPlan.
type FreeformDay struct {
	Day        int                `json:"day" validate:"min=1"`
	Title      string             `json:"title" validate:"required"`
	Activities []FreeformActivity `json:"activities" validate:"required,dive"`
}

// FreeformActivity pairs a free-text time with a free-text activity.
type FreeformActivity struct {
	Time     string `json:"time"`
	Activity string `json:"activity" validate:"required"`
}

// Recommendations groups suggestions by category.
type Recommendations struct {
	Accommodation  []string `json:"accommodation"`
	Dining         []string `json:"dining"`
	Activities     []string `json:"activities"`
	Transportation []string `json:"transportation"`
}
