// Package docs holds the OpenAPI description served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/circuits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Circuits"],
                "summary": "List the caller's circuits",
                "parameters": [
                    {"type": "integer", "name": "city_id", "in": "query"},
                    {"type": "string", "name": "X-User-Email", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Circuits"],
                "summary": "Create a circuit",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/circuits/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Circuits"],
                "summary": "Get one circuit with stops and routes",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "tags": ["Circuits"],
                "summary": "Update a circuit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Circuits"],
                "summary": "Delete a circuit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/circuits/{id}/warnings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Circuits"],
                "summary": "Planning warnings for a circuit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/circuits/{id}/stops": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Stops"],
                "summary": "Add a stop to a circuit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/v1/circuits/{id}/stops/{stop_id}": {
            "patch": {
                "consumes": ["application/json"],
                "tags": ["Stops"],
                "summary": "Update a stop",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "stop_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Stops"],
                "summary": "Remove a stop",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "stop_id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/circuits/{id}/routes": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Routes"],
                "summary": "Create or update a route between two stops",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/circuits/ai/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Generate a circuit with AI",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/circuits/{id}/ai/reorder": {
            "post": {
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Reorder a circuit's stops with AI",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/circuits/{id}/ai/suggest-places": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AI"],
                "summary": "Suggest additional places for a circuit",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/api/v1/circuits/{id}/sessions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "List a circuit's sessions",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Schedule a session",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/circuits/{id}/sessions/{session_id}": {
            "patch": {
                "consumes": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Update a session",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Cancel and remove a session",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Tour Planning Service API",
	Description:      "Backend for guide-authored tour circuits: itinerary stops with dense positions, schedules and meal planning, routes with transport options, planning warnings, and AI-assisted generation and reordering.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
