// Package validation checks request bodies against the service's JSON
// schemas before they are decoded into domain types.
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed schemas/resume.schema.json
	resumeSchemaJSON string
	//go:embed schemas/enhance.schema.json
	enhanceSchemaJSON string
)

var (
	// Resume validates a save-resume body.
	Resume = mustCompile("resume", resumeSchemaJSON)
	// Enhance validates an ai-enhance body.
	Enhance = mustCompile("enhance", enhanceSchemaJSON)
)

func mustCompile(name, src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return s
}

// FieldError is one schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when a body is malformed or violates its schema.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Decode validates body against schema and unmarshals it into v. Violations
// and malformed JSON are reported as *Error.
func Decode(schema *gojsonschema.Schema, body []byte, v interface{}) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &Error{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	if !res.Valid() {
		fields := make([]FieldError, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			fields = append(fields, FieldError{Field: fieldPath(e), Message: e.Description()})
		}
		return &Error{Fields: fields}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &Error{Fields: []FieldError{{Field: "body", Message: err.Error()}}}
	}
	return nil
}

// required errors are reported on the parent object; point at the missing
// property instead
func fieldPath(e gojsonschema.ResultError) string {
	field := e.Field()
	if e.Type() != "required" {
		return field
	}
	p, ok := e.Details()["property"].(string)
	if !ok {
		return field
	}
	if field == "(root)" {
		return p
	}
	return field + "." + p
}

// BindJSON reads the request body and decodes it with Decode. On failure it
// writes a 422 response and returns false.
func BindJSON(c *gin.Context, schema *gojsonschema.Schema, v interface{}) bool {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []FieldError{{Field: "body", Message: "unreadable request body"}}})
		return false
	}
	if err := Decode(schema, body, v); err != nil {
		if verr, ok := err.(*Error); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verr.Fields})
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return false
	}
	return true
}
