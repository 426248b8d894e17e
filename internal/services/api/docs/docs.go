// Package docs registers the API document served by swaggerkit
// regenerate from the handler annotations with swag init when routes change
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/discovery/seed": {
            "post": {
                "tags": ["Discovery"],
                "summary": "Store the accounts a creator follows as seed candidates",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SeedInput"}}}},
                "responses": {
                    "200": {"description": "ok"},
                    "404": {"description": "no users in the upstream answer"},
                    "502": {"description": "upstream answered non 200"},
                    "503": {"description": "upstream unreachable"}
                }
            }
        },
        "/discovery/{username}/seeds": {
            "get": {
                "tags": ["Discovery"],
                "summary": "Read a stored seed list",
                "parameters": [{"name": "username", "in": "path", "required": true, "schema": {"type": "string"}}],
                "responses": {
                    "200": {"description": "ok"},
                    "404": {"description": "no seed list stored"}
                }
            }
        },
        "/screening/filter": {
            "post": {
                "tags": ["Screening"],
                "summary": "Keep candidates that fit a niche and stay under a follower cap",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FilterInput"}}}},
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/harvest/reels": {
            "post": {
                "tags": ["Harvest"],
                "summary": "Store the recent reels of each creator",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Usernames"}}}},
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/ranking/creators": {
            "post": {
                "tags": ["Ranking"],
                "summary": "Score stored reels and store each creator's top videos",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Usernames"}}}},
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/ranking/aggregate": {
            "post": {
                "tags": ["Ranking"],
                "summary": "Merge creator shortlists and keep the best K",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AggregateInput"}}}},
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/health": {"get": {"tags": ["Meta"], "summary": "Liveness and uptime", "responses": {"200": {"description": "ok"}}}},
        "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness with dependency probes", "responses": {"200": {"description": "ok"}}}},
        "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build info", "responses": {"200": {"description": "ok"}}}},
        "/meta/stages": {"get": {"tags": ["Meta"], "summary": "Pipeline stages and their object keys", "responses": {"200": {"description": "ok"}}}}
    },
    "components": {
        "schemas": {
            "SeedInput": {
                "type": "object",
                "required": ["username"],
                "properties": {
                    "username": {"type": "string", "example": "fit_al"},
                    "count": {"type": "integer", "example": 25}
                }
            },
            "Usernames": {
                "type": "object",
                "required": ["usernames"],
                "properties": {"usernames": {"type": "array", "items": {"type": "string"}}}
            },
            "FilterInput": {
                "type": "object",
                "required": ["usernames", "niche", "level", "followercount"],
                "properties": {
                    "usernames": {"type": "array", "items": {"type": "string"}},
                    "niche": {"type": "string", "example": "fitness"},
                    "level": {"type": "string", "example": "beginner"},
                    "followercount": {"type": "string", "example": "50000"}
                }
            },
            "AggregateInput": {
                "type": "object",
                "required": ["usernames"],
                "properties": {
                    "usernames": {"type": "array", "items": {"type": "string"}},
                    "k": {"type": "integer", "example": 5},
                    "X": {"type": "integer"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "creatorscout API",
	Description:      "Creator discovery pipeline: seed, screen, harvest and rank short form video creators",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
