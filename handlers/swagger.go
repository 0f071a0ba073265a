package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the resume API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>resume-editor - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "resume-editor", "version": "1.0.0" },
  "components": {
    "schemas": {
      "PersonalInfo": { "type": "object", "required": ["name","email","phone"], "properties": { "name": {"type":"string"}, "email": {"type":"string"}, "phone": {"type":"string"} } },
      "Experience": { "type": "object", "required": ["title","company","duration","description"], "properties": { "title": {"type":"string"}, "company": {"type":"string"}, "duration": {"type":"string"}, "description": {"type":"string"} } },
      "Education": { "type": "object", "required": ["degree","institution","duration","description"], "properties": { "degree": {"type":"string"}, "institution": {"type":"string"}, "duration": {"type":"string"}, "description": {"type":"string"} } },
      "CustomSection": { "type": "object", "required": ["title","content"], "properties": { "title": {"type":"string"}, "content": {"type":"string"} } },
      "Resume": {
        "type": "object",
        "required": ["personal_info","summary","experience","education","skills"],
        "properties": {
          "personal_info": { "$ref": "#/components/schemas/PersonalInfo" },
          "summary": { "type": "string" },
          "experience": { "type": "array", "items": { "$ref": "#/components/schemas/Experience" } },
          "education": { "type": "array", "items": { "$ref": "#/components/schemas/Education" } },
          "skills": { "type": "array", "items": { "type": "string" } },
          "custom_sections": { "type": "array", "items": { "$ref": "#/components/schemas/CustomSection" } }
        }
      }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Service index", "responses": { "200": { "description": "name, version, endpoints and section kinds" } } } },
    "/ai-enhance": {
      "post": {
        "summary": "Enhance section text",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["section","content"],"properties":{"section":{"type":"string"},"content":{"type":"string"}}}}}},
        "responses": { "200": { "description": "enhanced_content returned" }, "422": { "description": "invalid body" } }
      }
    },
    "/save-resume": {
      "post": {
        "summary": "Store a resume under a new id",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Resume" } } } },
        "responses": { "200": { "description": "resume_id returned" }, "422": { "description": "invalid body" } }
      }
    },
    "/resume/{id}": {
      "get": { "summary": "Get a stored resume", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "stored resume" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a stored resume", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/resumes": { "get": { "summary": "List resume summaries keyed by id", "responses": { "200": { "description": "resumes and count" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
