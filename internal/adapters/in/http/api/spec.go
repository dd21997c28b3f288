// Package api holds the HTTP contract of the back office: the OpenAPI
// document, the wire types and the ServerInterface the echo server implements.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	registerOnce sync.Once
	registerErr  error
)

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return doc, nil
}

// contractDoc serves the contract to echo-swagger through the swag registry.
type contractDoc struct {
	json string
}

func (d contractDoc) ReadDoc() string {
	return d.json
}

// RegisterSwaggerDoc publishes the contract as the default swag document.
// Safe to call more than once.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	registerOnce.Do(func() {
		b, err := doc.MarshalJSON()
		if err != nil {
			registerErr = err
			return
		}
		swag.Register(swag.Name, contractDoc{json: string(b)})
	})
	return registerErr
}
