// Package swagger registers the OpenAPI document for the HTTP surface.
package swagger

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
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Network"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "message", "schema": {"type": "object"}}
                }
            }
        },
        "/users/online": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Presence"],
                "summary": "List online users",
                "responses": {
                    "200": {"description": "users", "schema": {"type": "object"}},
                    "500": {"description": "error", "schema": {"type": "object"}}
                }
            }
        },
        "/users/{username}/presence": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Presence"],
                "summary": "Get a user's presence record",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "presence", "schema": {"type": "object"}},
                    "404": {"description": "error", "schema": {"type": "object"}}
                }
            }
        },
        "/invites/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Invites"],
                "summary": "Get pending invites for a user",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "invites", "schema": {"type": "object"}},
                    "500": {"description": "error", "schema": {"type": "object"}}
                }
            }
        },
        "/invites/accept": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invites"],
                "summary": "Accept a pending invite",
                "responses": {
                    "200": {"description": "status", "schema": {"type": "object"}},
                    "404": {"description": "error", "schema": {"type": "object"}}
                }
            }
        },
        "/invites/decline": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Invites"],
                "summary": "Decline a pending invite",
                "responses": {
                    "200": {"description": "status", "schema": {"type": "object"}},
                    "404": {"description": "error", "schema": {"type": "object"}}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Damka API",
	Description:      "Gin server for the Damka realtime game relay",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
