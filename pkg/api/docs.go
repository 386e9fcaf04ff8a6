package api

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
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get the health status of the API",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/cards/inspect": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List the chunks of an image with their checksum status",
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["cards"],
                "summary": "Inspect an image",
                "parameters": [
                    {"description": "Image bytes", "name": "image", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.InspectResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/cards/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Extract the character profile embedded in an image. found is false when the image carries none.",
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["cards"],
                "summary": "Decode an embedded profile",
                "parameters": [
                    {"description": "Image bytes", "name": "image", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DecodeResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/cards/encode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Return a copy of the image with the profile embedded. When profile is omitted it is built from settings.",
                "consumes": ["application/json"],
                "produces": ["image/png"],
                "tags": ["cards"],
                "summary": "Embed a profile",
                "parameters": [
                    {"description": "Image and profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.EncodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "api.ChunkInfo": {
            "type": "object",
            "properties": {
                "offset": {"type": "integer"},
                "type": {"type": "string"},
                "length": {"type": "integer"},
                "crc": {"type": "string"},
                "crc_valid": {"type": "boolean"},
                "keyword": {"type": "string"}
            }
        },
        "api.InspectResponse": {
            "type": "object",
            "properties": {
                "size": {"type": "integer"},
                "chunks": {"type": "array", "items": {"$ref": "#/definitions/api.ChunkInfo"}},
                "has_profile": {"type": "boolean"}
            }
        },
        "api.DecodeResponse": {
            "type": "object",
            "properties": {
                "found": {"type": "boolean"},
                "profile": {"$ref": "#/definitions/card.Profile"},
                "settings": {"$ref": "#/definitions/card.Settings"}
            }
        },
        "api.EncodeRequest": {
            "type": "object",
            "properties": {
                "image": {"type": "string", "format": "byte"},
                "profile": {"$ref": "#/definitions/card.Profile"},
                "settings": {"$ref": "#/definitions/card.Settings"}
            }
        },
        "card.Profile": {
            "type": "object",
            "properties": {
                "spec": {"type": "string"},
                "spec_version": {"type": "string"},
                "data": {"$ref": "#/definitions/card.CharacterData"}
            }
        },
        "card.CharacterData": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "personality": {"type": "string"},
                "scenario": {"type": "string"},
                "first_mes": {"type": "string"},
                "mes_example": {"type": "string"},
                "creator_notes": {"type": "string"},
                "system_prompt": {"type": "string"},
                "post_history_instructions": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "creator": {"type": "string"},
                "character_version": {"type": "string"},
                "extensions": {"type": "object"}
            }
        },
        "card.Settings": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "persona": {"type": "string"},
                "system_prompt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:9300",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "charcard REST API",
	Description:      "Embed and extract character profiles in PNG images.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
