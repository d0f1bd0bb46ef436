// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/tracks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tracks"],
                "summary": "List tracks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/router.TrackListResponse"}
                    }
                }
            }
        },
        "/api/v1/tracks/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tracks"],
                "summary": "Load a track",
                "parameters": [
                    {"type": "string", "description": "Track name", "name": "name", "in": "path", "required": true},
                    {"type": "boolean", "description": "Shrink schedules for a smoke run", "name": "test_mode", "in": "query"},
                    {"type": "string", "description": "Return only this challenge", "name": "challenge", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Template variable as key=value", "name": "var", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/track.Track"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/tracks/{name}/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tracks"],
                "summary": "Validate a track",
                "parameters": [
                    {"type": "string", "description": "Track name", "name": "name", "in": "path", "required": true},
                    {"type": "boolean", "description": "Shrink schedules for a smoke run", "name": "test_mode", "in": "query"},
                    {"type": "string", "description": "Return only this challenge", "name": "challenge", "in": "query"},
                    {"description": "Track source", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/router.ValidateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/track.Track"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/catalog/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a catalog entry",
                "parameters": [
                    {"type": "string", "description": "Track name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.Entry"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "router.TrackListResponse": {
            "type": "object",
            "properties": {
                "tracks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "router.ValidateRequest": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "fragments": {"type": "object", "additionalProperties": {"type": "string"}},
                "vars": {"type": "object", "additionalProperties": true}
            }
        },
        "catalog.Entry": {
            "type": "object",
            "properties": {
                "revision": {"type": "string"},
                "track": {"type": "string"},
                "short_description": {"type": "string"},
                "description": {"type": "string"},
                "source_root_url": {"type": "string"},
                "default_challenge": {"type": "string"},
                "challenges": {"type": "array", "items": {"type": "string"}},
                "operations": {"type": "array", "items": {"type": "string"}},
                "indices": {"type": "array", "items": {"type": "string"}},
                "test_mode": {"type": "boolean"},
                "loaded_at": {"type": "string"}
            }
        },
        "track.Track": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "short_description": {"type": "string"},
                "description": {"type": "string"},
                "source_root_url": {"type": "string"},
                "indices": {"type": "array", "items": {"type": "object"}},
                "templates": {"type": "array", "items": {"type": "object"}},
                "operations": {"type": "array", "items": {"type": "object"}},
                "challenges": {"type": "array", "items": {"type": "object"}}
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
	Title:            "Track Loader API",
	Description:      "Resolves benchmark track templates into validated track models",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
