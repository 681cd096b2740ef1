// Package docs is generated by swag init from the handler annotations.
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
        "/categories": {
            "get": {
                "description": "Returns every category as an id to type map",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List questions of a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryQuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "get": {
                "description": "Returns one page of ten questions with the category map",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuestionListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a question, or searches question text when searchTerm is set",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create or search questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number when searching", "name": "page", "in": "query"},
                    {"description": "Question or search", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CreateQuestionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/search": {
            "post": {
                "description": "Case-insensitive substring search over question text",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Search questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"description": "Search term", "name": "search", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchQuestionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteQuestionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes": {
            "post": {
                "description": "Returns a random unseen question of the category, or null when none is left. Category id 0 means all categories.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Draw the next quiz question",
                "parameters": [
                    {"description": "Quiz state", "name": "quiz", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "success": {"type": "boolean"}
            }
        },
        "dto.CategoryQuestionsResponse": {
            "type": "object",
            "properties": {
                "current_category": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "success": {"type": "boolean"},
                "total_questions": {"type": "integer"}
            }
        },
        "dto.CreateQuestionResponse": {
            "type": "object",
            "properties": {
                "created": {"type": "integer"},
                "success": {"type": "boolean"}
            }
        },
        "dto.DeleteQuestionResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"},
                "success": {"type": "boolean"}
            }
        },
        "dto.ErrorResponse": {
            "description": "Error envelope",
            "type": "object",
            "properties": {
                "error": {"type": "integer"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.QuestionListResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "current_category": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "success": {"type": "boolean"},
                "total_questions": {"type": "integer"}
            }
        },
        "dto.QuestionRequest": {
            "description": "Create a question, or search when searchTerm is set",
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "category": {"type": "integer"},
                "difficulty": {"type": "integer"},
                "question": {"type": "string"},
                "searchTerm": {"type": "string"}
            }
        },
        "dto.QuestionResponse": {
            "description": "Trivia question",
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "category": {"type": "integer"},
                "difficulty": {"type": "integer"},
                "id": {"type": "integer"},
                "question": {"type": "string"}
            }
        },
        "dto.QuizCategory": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}
            }
        },
        "dto.QuizRequest": {
            "description": "Draw the next quiz question",
            "type": "object",
            "properties": {
                "previous_questions": {"type": "array", "items": {"type": "integer"}},
                "quiz_category": {"$ref": "#/definitions/dto.QuizCategory"}
            }
        },
        "dto.QuizResponse": {
            "type": "object",
            "properties": {
                "question": {"$ref": "#/definitions/dto.QuestionResponse"},
                "success": {"type": "boolean"}
            }
        },
        "dto.SearchQuestionsResponse": {
            "type": "object",
            "properties": {
                "current_category": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.QuestionResponse"}},
                "success": {"type": "boolean"},
                "total_questions": {"type": "integer"}
            }
        },
        "dto.SearchRequest": {
            "type": "object",
            "properties": {
                "searchTerm": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Trivia API",
	Description:      "Categories, questions, search and quiz play for the trivia game.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
