// Package docs 由swag生成的API文档注册
// 重新生成:swag init -g cmd/api/main.go
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
        "/api/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书列表/搜索",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query", "description": "书名或作者关键词"},
                    {"type": "string", "name": "genre", "in": "query", "description": "图书类型"},
                    {"type": "string", "name": "author", "in": "query", "description": "作者关键词"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BookResponse"}}},
                    "500": {"description": "服务器错误"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "登记图书",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BookRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "400": {"description": "参数错误"}
                }
            }
        },
        "/api/books/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书详情",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "图书ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "404": {"description": "图书不存在"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "修改图书",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "图书ID"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "400": {"description": "参数错误"},
                    "404": {"description": "图书不存在"}
                }
            },
            "delete": {
                "tags": ["图书"],
                "summary": "删除图书",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true, "description": "图书ID"}
                ],
                "responses": {
                    "204": {"description": "删除成功"},
                    "404": {"description": "图书不存在"}
                }
            }
        }
    },
    "definitions": {
        "dto.BookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Go语言实战"},
                "author": {"type": "string", "example": "威廉·肯尼迪"},
                "publishedDate": {"type": "string", "example": "2017-03-01"},
                "genre": {"type": "string", "example": "计算机"}
            }
        },
        "dto.BookResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Go语言实战"},
                "author": {"type": "string", "example": "威廉·肯尼迪"},
                "publishedDate": {"type": "string", "example": "2017-03-01"},
                "genre": {"type": "string", "example": "计算机"}
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
	Title:            "BookTracker API",
	Description:      "图书目录管理服务,提供图书的登记、查询、修改和删除",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
