package planner

import "context"

// Generator produces raw text for a prompt. Implementations must report
// failures as *BackendError so the pipeline can tell quota exhaustion apart
// from other backend failures.
type Generator interface {
	Generate(ctx context.Context, prompt string, format ResponseFormat) (string, error)
}

// ResponseFormat hints how the backend should shape its answer. Backends that
// cannot honour a schema may ignore it.
type ResponseFormat struct {
	MIMEType string
	Schema   *SchemaHint
}

// Schema hint types, mirroring the OpenAPI subset understood by generation
// backends.
const (
	HintObject  = "OBJECT"
	HintArray   = "ARRAY"
	HintString  = "STRING"
	HintInteger = "INTEGER"
)

// SchemaHint is a provider-neutral description of the expected JSON output.
type SchemaHint struct {
	Type        string
	Description string
	Properties  map[string]*SchemaHint
	Required    []string
	Items       *SchemaHint
	Enum        []string
}

func stringHint(desc string) *SchemaHint {
	return &SchemaHint{Type: HintString, Description: desc}
}

func stringListHint(desc string) *SchemaHint {
	return &SchemaHint{Type: HintArray, Description: desc, Items: &SchemaHint{Type: HintString}}
}

// TripPlanSchemaHint describes TripPlan for backends that support structured
// output.
func TripPlanSchemaHint() *SchemaHint {
	activity := &SchemaHint{
		Type: HintObject,
		Properties: map[string]*SchemaHint{
			"timeOfDay":     {Type: HintString, Enum: []string{string(Morning), string(Afternoon), string(Evening)}},
			"name":          stringHint("Short name of the activity"),
			"description":   stringHint("One or two sentences about the activity"),
			"location":      stringHint("Neighbourhood, venue or address"),
			"tips":          stringHint("Practical advice"),
			"estimatedCost": stringHint("Approximate cost, prefixed with ~"),
		},
		Required: []string{"name", "description"},
	}
	day := &SchemaHint{
		Type: HintObject,
		Properties: map[string]*SchemaHint{
			"day":        {Type: HintInteger, Description: "Day number starting at 1"},
			"title":      stringHint("Theme of the day"),
			"activities": {Type: HintArray, Items: activity},
		},
		Required: []string{"day", "title", "activities"},
	}
	budget := &SchemaHint{
		Type: HintObject,
		Properties: map[string]*SchemaHint{
			"category": stringHint("Budget category"),
			"amount":   stringHint("Approximate amount"),
		},
		Required: []string{"category", "amount"},
	}
	return &SchemaHint{
		Type: HintObject,
		Properties: map[string]*SchemaHint{
			"summary":                  stringHint("Two or three sentence overview of the trip"),
			"dailyPlan":                {Type: HintArray, Items: day},
			"packingTips":              stringListHint("Items worth packing"),
			"localTips":                stringListHint("Local customs and practical tips"),
			"estimatedBudgetBreakdown": {Type: HintArray, Items: budget},
		},
		Required: []string{"summary", "dailyPlan"},
	}
}
