// Package docs registers the Swagger spec served at /swagger/index.html.
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
    "paths": {
        "/results/finalize": {
            "post": {
                "tags": ["Results"],
                "summary": "Finalize a quiz adventure and generate a personality profile",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/results/all": {
            "get": {
                "tags": ["Results"],
                "summary": "List all quiz submissions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/results/ai-profile/{email}": {
            "get": {
                "tags": ["Results"],
                "summary": "Get the most recent generated profile for an email",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/ai-profile/save": {
            "post": {
                "tags": ["Results"],
                "summary": "Persist a personality profile explicitly",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/hobby-entries": {
            "get": {
                "tags": ["Hobby Entries"],
                "summary": "List the most submitted hobbies",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Hobby Entries"],
                "summary": "Submit a free-text hobby",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in with email and password",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "StartHobby API",
	Description:      "Backend for the StartHobby mini-game quiz flow: persists raw answers, generates AI personality profiles and tallies free-text hobbies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
