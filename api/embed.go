// Package api ships the OpenAPI contract with the binary so the running
// service always serves the document it was built against.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3 document describing the HTTP API.
//
//go:embed openapi.yml
var OpenAPISpec []byte
