// Package docs registers the OpenAPI description served under /swagger.
//
// The template is kept by hand in the layout swag emits. When a controller
// annotation changes, regenerate it with:
//
//	swag init -g cmd/todo-api/main.go -o docs --outputTypes go
//
// or edit the matching path below.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Greeting",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Component health",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}}}
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Maximum rows", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserList"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "New user", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UserSchema"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.UserPublic"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserPublic"}},
                    "404": {"description": "User Not Found", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            },
            "put": {
                "security": [{"OAuth2Password": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Replace the caller's own user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "New credentials", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UserSchema"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.UserPublic"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "403": {"description": "Not enough permissions", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "409": {"description": "Username or Email already exists", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            },
            "delete": {
                "security": [{"OAuth2Password": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete the caller's own user and its todos",
                "parameters": [{"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "403": {"description": "Not enough permissions", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            }
        },
        "/auth/token": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange email and password for an access token",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Token"}},
                    "401": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            }
        },
        "/auth/refresh_token": {
            "post": {
                "security": [{"OAuth2Password": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Renew the caller's access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Token"}},
                    "401": {"description": "Could not validate credentials", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            }
        },
        "/todos": {
            "get": {
                "security": [{"OAuth2Password": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "List the caller's todos",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Maximum rows", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Title substring", "name": "title", "in": "query"},
                    {"type": "string", "description": "Description substring", "name": "description", "in": "query"},
                    {"enum": ["draft", "todo", "doing", "done"], "type": "string", "description": "Exact state", "name": "state", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TodoList"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            },
            "post": {
                "security": [{"OAuth2Password": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a todo for the caller",
                "parameters": [
                    {"description": "New todo", "name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.TodoSchema"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TodoPublic"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorDetail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            }
        },
        "/todos/{id}": {
            "patch": {
                "security": [{"OAuth2Password": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Partially update one of the caller's todos",
                "parameters": [
                    {"type": "integer", "description": "Todo id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.TodoUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.TodoPublic"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            },
            "delete": {
                "security": [{"OAuth2Password": []}],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Delete one of the caller's todos",
                "parameters": [{"type": "integer", "description": "Todo id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Message"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/model.ErrorDetail"}}
                }
            }
        }
    },
    "definitions": {
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]}
            }
        },
        "model.ErrorDetail": {"type": "object", "properties": {"detail": {"type": "string"}}},
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "cache": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]}
            }
        },
        "model.Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "model.Token": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}
        },
        "model.TodoList": {
            "type": "object",
            "properties": {"todos": {"type": "array", "items": {"$ref": "#/definitions/model.TodoPublic"}}}
        },
        "model.TodoPublic": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "state": {"type": "string", "enum": ["draft", "todo", "doing", "done"]},
                "title": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.TodoSchema": {
            "type": "object",
            "required": ["state", "title"],
            "properties": {
                "description": {"type": "string", "maxLength": 1024},
                "state": {"type": "string", "enum": ["draft", "todo", "doing", "done"]},
                "title": {"type": "string", "maxLength": 255}
            }
        },
        "model.TodoUpdate": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "maxLength": 1024},
                "state": {"type": "string", "enum": ["draft", "todo", "doing", "done"]},
                "title": {"type": "string", "maxLength": 255, "minLength": 1}
            }
        },
        "model.UserList": {
            "type": "object",
            "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/model.UserPublic"}}}
        },
        "model.UserPublic": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "id": {"type": "integer"}, "username": {"type": "string"}}
        },
        "model.UserSchema": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "maxLength": 72},
                "username": {"type": "string", "maxLength": 50}
            }
        }
    },
    "securityDefinitions": {
        "OAuth2Password": {
            "type": "oauth2",
            "flow": "password",
            "tokenUrl": "/auth/token"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "todo-api",
	Description:      "Users, bearer authentication and per-user todos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
