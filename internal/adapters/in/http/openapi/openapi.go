// Package openapi embeds the HTTP API description and publishes it for Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

var registerOnce sync.Once

// Load parses the embedded document and validates it against the OpenAPI 3 rules.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// JSON renders doc the way it is served at /openapi.json.
func JSON(doc *openapi3.T) ([]byte, error) {
	return json.Marshal(doc)
}

// Register makes doc the document read by the Swagger UI handler. Only the first
// call in a process has an effect.
func Register(doc *openapi3.T) error {
	data, err := JSON(doc)
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(data))
	})
	return nil
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}
