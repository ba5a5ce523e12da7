// Package docs registers the Swagger spec served under /swagger/.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/ai/health": {
            "get": {
                "description": "Reports whether a generation credential is configured. Values are never returned.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Generation credential status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerationHealthResponse"}}
                }
            }
        },
        "/api/ai/itinerary": {
            "post": {
                "description": "Always returns a usable itinerary. fallback is true when the template planner was used.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Generate an itinerary with template fallback",
                "parameters": [
                    {"description": "Trip details", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ItineraryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/ai/trip-plan": {
            "post": {
                "description": "Generates a day-by-day plan. Failures are reported, never replaced by a template plan.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Generate a schema-validated trip plan",
                "parameters": [
                    {"description": "Trip details", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TripPlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/planner.TripPlan"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/trips/{trip_id}/plan": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Fetch the plan attached to a trip",
                "parameters": [
                    {"type": "string", "description": "Trip ID (UUID)", "name": "trip_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TripPlanEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "The plan is validated against the contract named by kind before it is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Attach a generated plan to a trip",
                "parameters": [
                    {"type": "string", "description": "Trip ID (UUID)", "name": "trip_id", "in": "path", "required": true},
                    {"description": "Plan payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SaveTripPlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TripPlanEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Detach the plan from a trip",
                "parameters": [
                    {"type": "string", "description": "Trip ID (UUID)", "name": "trip_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Process health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Process liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness including plan store connectivity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.GenerationHealthResponse": {
            "type": "object",
            "properties": {
                "envVars": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "message": {"type": "string"},
                "status": {"type": "string", "example": "configured"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "status": {"type": "string"}
            }
        },
        "dto.ItineraryRequest": {
            "type": "object",
            "properties": {
                "budget": {"type": "string", "example": "medium"},
                "duration": {"type": "integer", "example": 3},
                "fromDestination": {"type": "string", "example": "London"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "toDestination": {"type": "string", "example": "Paris"},
                "travelStyle": {"type": "string", "example": "balanced"},
                "travelers": {"type": "integer", "example": 2}
            }
        },
        "dto.ItineraryResponse": {
            "type": "object",
            "properties": {
                "budget": {"type": "string"},
                "daysCapped": {"type": "boolean"},
                "duration": {"type": "integer"},
                "fallback": {"type": "boolean"},
                "fromDestination": {"type": "string"},
                "isQuotaError": {"type": "boolean"},
                "itinerary": {"type": "array", "items": {"$ref": "#/definitions/planner.FreeformDay"}},
                "recommendations": {"$ref": "#/definitions/planner.Recommendations"},
                "requestedDays": {"type": "integer"},
                "tips": {"type": "array", "items": {"type": "string"}},
                "toDestination": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.SaveTripPlanRequest": {
            "type": "object",
            "properties": {
                "fallback": {"type": "boolean"},
                "kind": {"type": "string", "enum": ["trip_plan", "itinerary"], "example": "trip_plan"},
                "plan": {"type": "object"}
            }
        },
        "dto.TripPlanEnvelope": {
            "type": "object",
            "properties": {
                "trip_plan": {"$ref": "#/definitions/dto.TripPlanResponse"}
            }
        },
        "dto.TripPlanRequest": {
            "type": "object",
            "properties": {
                "budgetLevel": {"type": "string", "enum": ["low", "medium", "high"], "example": "medium"},
                "destination": {"type": "string", "example": "Paris"},
                "endDate": {"type": "string", "example": "2025-06-03"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"},
                "startDate": {"type": "string", "example": "2025-06-01"},
                "startingCity": {"type": "string", "example": "London"},
                "travelStyle": {"type": "string", "enum": ["relaxed", "balanced", "packed"], "example": "balanced"},
                "travelers": {"type": "integer", "example": 2}
            }
        },
        "dto.TripPlanResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "fallback": {"type": "boolean"},
                "kind": {"type": "string"},
                "owner_id": {"type": "string"},
                "plan": {"type": "object"},
                "trip_id": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "planner.Activity": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "estimatedCost": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "timeOfDay": {"type": "string", "enum": ["morning", "afternoon", "evening"]},
                "tips": {"type": "string"}
            }
        },
        "planner.BudgetItem": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "planner.DayPlan": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"$ref": "#/definitions/planner.Activity"}},
                "day": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "planner.FreeformActivity": {
            "type": "object",
            "properties": {
                "activity": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "planner.FreeformDay": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"$ref": "#/definitions/planner.FreeformActivity"}},
                "day": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "planner.Recommendations": {
            "type": "object",
            "properties": {
                "accommodation": {"type": "array", "items": {"type": "string"}},
                "activities": {"type": "array", "items": {"type": "string"}},
                "dining": {"type": "array", "items": {"type": "string"}},
                "transportation": {"type": "array", "items": {"type": "string"}}
            }
        },
        "planner.TripPlan": {
            "type": "object",
            "properties": {
                "dailyPlan": {"type": "array", "items": {"$ref": "#/definitions/planner.DayPlan"}},
                "estimatedBudgetBreakdown": {"type": "array", "items": {"$ref": "#/definitions/planner.BudgetItem"}},
                "localTips": {"type": "array", "items": {"type": "string"}},
                "packingTips": {"type": "array", "items": {"type": "string"}},
                "summary": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "TravelDiary Backend API",
	Description:      "AI trip planning and plan archive API for TravelDiary",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
