// Package api holds the HTTP contract of the registry: the OpenAPI document and its wire types.
package api

import (
	_ "embed"
)

// OpenAPI is the OpenAPI 3 document served by the registry.
//
//go:embed discovery.openapi.yaml
var OpenAPI []byte
