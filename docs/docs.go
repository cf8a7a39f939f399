// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "AccessCode": {"type": "apiKey", "name": "X-Access-Code", "in": "header"}
    },
    "security": [{"AccessCode": []}],
    "paths": {
        "/api/status": {
            "get": {"tags": ["Board"], "summary": "Phase and collection sizes", "responses": {"200": {"description": "OK"}, "401": {"description": "invalid access code"}}}
        },
        "/api/join": {
            "post": {"tags": ["Participants"], "summary": "Join the board", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/JoinRequest"}}],
                "responses": {"200": {"description": "participant"}, "400": {"description": "malformed input"}, "409": {"description": "name already taken"}}}
        },
        "/api/board": {
            "get": {"tags": ["Board"], "summary": "Full board snapshot", "responses": {"200": {"description": "OK"}}}
        },
        "/api/stickies": {
            "post": {"tags": ["Stickies"], "summary": "Add a sticky (GENERATING only)", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/AddStickyRequest"}}],
                "responses": {"201": {"description": "created"}, "400": {"description": "validation failure"}, "403": {"description": "forbidden in current phase"}, "404": {"description": "unknown participant"}}}
        },
        "/api/stickies/{id}/move": {
            "post": {"tags": ["Stickies"], "summary": "Move a sticky", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/MoveStickyRequest"}}],
                "responses": {"200": {"description": "moved"}, "400": {"description": "unknown participant"}, "403": {"description": "board finished"}, "404": {"description": "unknown sticky"}}}
        },
        "/api/stickies/{id}": {
            "delete": {"tags": ["Stickies"], "summary": "Delete own sticky", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/NameRequest"}}],
                "responses": {"200": {"description": "deleted"}, "403": {"description": "not author or board finished"}, "404": {"description": "unknown sticky"}}}
        },
        "/api/phase": {
            "post": {"tags": ["Board"], "summary": "Advance the phase (organizer only)", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/PhaseRequest"}}],
                "responses": {"200": {"description": "new phase"}, "400": {"description": "invalid phase or transition"}, "403": {"description": "not organizer"}}}
        },
        "/api/votes": {
            "post": {"tags": ["Votes"], "summary": "Allocate points to a sticky (VOTING only)", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/VoteRequest"}}],
                "responses": {"200": {"description": "ok"}, "400": {"description": "vote limit exceeded"}, "403": {"description": "forbidden in current phase"}, "404": {"description": "unknown participant or sticky"}}}
        },
        "/api/reset": {
            "post": {"tags": ["Board"], "summary": "Reset the board (organizer only)", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/NameRequest"}}],
                "responses": {"200": {"description": "reset with new access code"}, "403": {"description": "not organizer"}}}
        },
        "/api/archives": {
            "get": {"tags": ["Archives"], "summary": "Recent finished boards", "parameters": [{"in": "query", "name": "limit", "type": "integer"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/archives/{id}": {
            "get": {"tags": ["Archives"], "summary": "One finished board", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Archive not found"}}}
        }
    },
    "definitions": {
        "JoinRequest": {"type": "object", "required": ["name", "is_organizer"], "properties": {"name": {"type": "string"}, "is_organizer": {"type": "boolean"}}},
        "AddStickyRequest": {"type": "object", "required": ["name", "text", "x", "y"], "properties": {"name": {"type": "string"}, "text": {"type": "string", "maxLength": 200}, "x": {"type": "number"}, "y": {"type": "number"}}},
        "MoveStickyRequest": {"type": "object", "required": ["name", "x", "y"], "properties": {"name": {"type": "string"}, "x": {"type": "number"}, "y": {"type": "number"}}},
        "NameRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "PhaseRequest": {"type": "object", "required": ["name", "phase"], "properties": {"name": {"type": "string"}, "phase": {"type": "string", "enum": ["GENERATING", "VOTING", "FINISHED"]}}},
        "VoteRequest": {"type": "object", "required": ["name", "sticky_id", "points"], "properties": {"name": {"type": "string"}, "sticky_id": {"type": "string"}, "points": {"type": "integer", "minimum": 0, "maximum": 5}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Brainstorm Board API",
	Description:      "Shared brainstorming board: join, post stickies, vote, finish.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
