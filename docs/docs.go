// Package docs registers the swagger document served at /swagger/*any.
// Regenerate with `swag init` after changing handler annotations.
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
        "/ping": {
            "get": {
                "description": "Returns a basic message",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Endpoint just pings the server",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/validate-game": {
            "post": {
                "description": "Asks the AI whether the game exists and returns its team rules. Always answers 200; failures come back with isValid=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Validate a game",
                "parameters": [{"description": "Game to validate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ValidateGameRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GameInfo"}}}
            }
        },
        "/generate-teams": {
            "post": {
                "description": "Splits the players into teams and schedules matches between them",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Generate teams and matches",
                "parameters": [{"description": "Players and format", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.GenerateTeamsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GenerateTeamsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.GenerateTeamsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.GenerateTeamsResponse"}}
                }
            }
        },
        "/chat": {
            "post": {
                "description": "Answers a question about the game, taking the previous turns into account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Ask a rules question",
                "parameters": [{"description": "Question and history", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ChatRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ChatResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ChatResponse"}}
                }
            }
        },
        "/chat/session": {
            "get": {
                "description": "Returns the messages of the caller's cookie-bound chat session",
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Get the stored chat",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChatSessionResponse"}}}
            },
            "post": {
                "description": "Appends the question to the session, asks the AI with the stored history and appends the answer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a message in the stored chat",
                "parameters": [{"description": "Question", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ChatSessionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChatSessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ChatSessionResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ChatSessionResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Clear the stored chat",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChatSessionResponse"}}}
            }
        },
        "/share": {
            "post": {
                "description": "Stores the teams and matches and returns a signed token to fetch them later",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["share"],
                "summary": "Share a generation result",
                "parameters": [{"description": "Result to share", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ShareData"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ShareResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ShareResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ShareResponse"}}
                }
            }
        },
        "/share/{token}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["share"],
                "summary": "Fetch a shared result",
                "parameters": [{"type": "string", "description": "Share token", "name": "token", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ShareData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ShareResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ShareResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ValidateGameRequest": {"type": "object", "properties": {"gameName": {"type": "string"}}},
        "models.GameInfo": {
            "type": "object",
            "properties": {
                "isValid": {"type": "boolean"},
                "validationMessage": {"type": "string"},
                "needsToss": {"type": "boolean"},
                "rules": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Team": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "players": {"type": "array", "items": {"type": "string"}},
                "doubleSidedPlayers": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "match": {"type": "integer"},
                "team1": {"type": "string"},
                "team2": {"type": "string"},
                "toss": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "models.GenerateTeamsRequest": {
            "type": "object",
            "properties": {
                "game": {"type": "string"},
                "mode": {"type": "string"},
                "players": {"type": "array", "items": {"type": "string"}},
                "numTeams": {"type": "integer"},
                "teamSize": {"type": "integer"},
                "numMatches": {"type": "integer"},
                "needsToss": {"type": "boolean"}
            }
        },
        "models.GenerateTeamsResponse": {
            "type": "object",
            "properties": {
                "teams": {"type": "array", "items": {"$ref": "#/definitions/models.Team"}},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/models.Match"}},
                "gameRules": {"type": "array", "items": {"type": "string"}},
                "success": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "models.ChatTurn": {"type": "object", "properties": {"role": {"type": "string"}, "content": {"type": "string"}}},
        "models.ChatRequest": {
            "type": "object",
            "properties": {
                "game": {"type": "string"},
                "mode": {"type": "string"},
                "message": {"type": "string"},
                "chatHistory": {"type": "array", "items": {"$ref": "#/definitions/models.ChatTurn"}}
            }
        },
        "models.ChatResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "response": {"type": "string"}, "error": {"type": "string"}}
        },
        "models.ChatMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string"},
                "content": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.ChatSessionRequest": {
            "type": "object",
            "properties": {"game": {"type": "string"}, "mode": {"type": "string"}, "message": {"type": "string"}}
        },
        "models.ChatSessionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "response": {"type": "string"},
                "error": {"type": "string"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/models.ChatMessage"}}
            }
        },
        "models.ShareData": {
            "type": "object",
            "properties": {
                "teams": {"type": "array", "items": {"$ref": "#/definitions/models.Team"}},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/models.Match"}},
                "game": {"type": "string"},
                "mode": {"type": "string"}
            }
        },
        "models.ShareResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "token": {"type": "string"},
                "expiresAt": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PlayMate API",
	Description:      "Gin-Gonic server for the PlayMate team generator",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
