// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package docs registers the OpenAPI document served under /swagger/.
//
// The document follows the handler annotations in internal/api. Keep both
// in sync when a route or response type changes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/movierec/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "description": "Returns catalog and rating index sizes, warm state, enrichment state and uptime",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthEnvelope"}}
                }
            }
        },
        "/predict": {
            "get": {
                "description": "Content matches for q plus both collaborative sections for the active user. Search entries carry OMDb details when enrichment is enabled.",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Get all recommendation sections",
                "parameters": [
                    {"type": "string", "description": "Exact movie title", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Entries per section (0 = default)", "name": "limit", "in": "query"},
                    {"type": "boolean", "description": "Project entries to titles", "name": "title_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PredictEnvelope"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Unknown title", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/demo": {
            "get": {
                "description": "Returns a fixed prediction for a well-known title",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Canned prediction",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PredictEnvelope"}}
                }
            }
        },
        "/search": {
            "get": {
                "description": "Returns the first search_limit titles in catalog order for autocomplete",
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "List catalog titles",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SearchEnvelope"}}
                }
            }
        },
        "/api/v1/recommendations/content": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Content similarity for one title",
                "parameters": [
                    {"type": "string", "description": "Exact movie title", "name": "title", "in": "query", "required": true},
                    {"type": "integer", "description": "Entries (0 = default)", "name": "limit", "in": "query"},
                    {"type": "boolean", "description": "Project entries to titles", "name": "title_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SectionEnvelope"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Unknown title", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/recommendations/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "User-based collaborative filtering for the active user",
                "parameters": [
                    {"type": "integer", "description": "Entries (0 = default)", "name": "limit", "in": "query"},
                    {"type": "boolean", "description": "Project entries to titles", "name": "title_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SectionEnvelope"}},
                    "503": {"description": "Section not registered", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/recommendations/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Item-based collaborative filtering for the active user",
                "parameters": [
                    {"type": "integer", "description": "Entries (0 = default)", "name": "limit", "in": "query"},
                    {"type": "boolean", "description": "Project entries to titles", "name": "title_only", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SectionEnvelope"}},
                    "503": {"description": "Section not registered", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"type": "object"}
            }
        },
        "models.RecommendationItem": {
            "type": "object",
            "properties": {
                "rank": {"type": "integer"},
                "title": {"type": "string"},
                "score": {"type": "number"},
                "movie": {"type": "object"},
                "details": {"type": "object"}
            }
        },
        "models.PredictResponse": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "search": {"type": "array", "items": {"$ref": "#/definitions/models.RecommendationItem"}},
                "people_liked": {"type": "array", "items": {"$ref": "#/definitions/models.RecommendationItem"}},
                "you_may_like": {"type": "array", "items": {"$ref": "#/definitions/models.RecommendationItem"}}
            }
        },
        "models.SectionResponse": {
            "type": "object",
            "properties": {
                "section": {"type": "string"},
                "algorithm": {"type": "string"},
                "query": {"type": "string"},
                "user_id": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.RecommendationItem"}}
            }
        },
        "models.SearchResponse": {
            "type": "object",
            "properties": {
                "titles": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "integer"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "version": {"type": "string"},
                "movies": {"type": "integer"},
                "vocabulary": {"type": "integer"},
                "users": {"type": "integer"},
                "rated_movies": {"type": "integer"},
                "active_user_id": {"type": "integer"},
                "active_rated": {"type": "integer"},
                "warm": {"type": "boolean"},
                "enrichment": {"type": "string"},
                "requests": {"type": "integer"},
                "errors": {"type": "integer"},
                "uptime_seconds": {"type": "number"}
            }
        },
        "models.PredictEnvelope": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.PredictResponse"}}}
            ]
        },
        "models.SectionEnvelope": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SectionResponse"}}}
            ]
        },
        "models.SearchEnvelope": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.SearchResponse"}}}
            ]
        },
        "models.HealthEnvelope": {
            "allOf": [
                {"$ref": "#/definitions/models.APIResponse"},
                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.HealthResponse"}}}
            ]
        }
    },
    "tags": [
        {"description": "Health checks and service status", "name": "Core"},
        {"description": "Content similarity and collaborative filtering sections", "name": "Recommendations"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "MovieRec API",
	Description:      "Content-based and collaborative movie recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
