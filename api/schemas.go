package api

import (
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// Input schemas for the create endpoints. Every domain field is required and
// typed; status fields stay plain strings on purpose, the server does not
// police enum membership.

const inspectionSchemaJSON = `{
	"type": "object",
	"required": ["project_name", "date", "location", "findings", "status"],
	"properties": {
		"project_name": {"type": "string"},
		"date": {"type": "string"},
		"location": {"type": "string"},
		"findings": {"type": "string"},
		"status": {"type": "string"}
	}
}`

const tripReportSchemaJSON = `{
	"type": "object",
	"required": ["destination", "date_start", "date_end", "purpose", "results", "expenses"],
	"properties": {
		"destination": {"type": "string"},
		"date_start": {"type": "string"},
		"date_end": {"type": "string"},
		"purpose": {"type": "string"},
		"results": {"type": "string"},
		"expenses": {"type": "integer"}
	}
}`

const estimateSchemaJSON = `{
	"type": "object",
	"required": ["client_name", "project_name", "amount", "details", "status"],
	"properties": {
		"client_name": {"type": "string"},
		"project_name": {"type": "string"},
		"amount": {"type": "integer"},
		"details": {"type": "string"},
		"status": {"type": "string"}
	}
}`

const minuteSchemaJSON = `{
	"type": "object",
	"required": ["title", "date", "attendees", "content", "action_items"],
	"properties": {
		"title": {"type": "string"},
		"date": {"type": "string"},
		"attendees": {"type": "string"},
		"content": {"type": "string"},
		"action_items": {"type": "string"}
	}
}`

var (
	inspectionSchema = mustSchema(inspectionSchemaJSON)
	tripReportSchema = mustSchema(tripReportSchemaJSON)
	estimateSchema   = mustSchema(estimateSchemaJSON)
	minuteSchema     = mustSchema(minuteSchemaJSON)
)

func mustSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return rs
}
