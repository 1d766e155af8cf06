// Package spec embeds the OpenAPI document for the workout map API.
// cmd/api serves it at /openapi.yaml; internal/handler/gen is generated from it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the document and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
