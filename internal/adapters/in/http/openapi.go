package http

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
var openAPIDocument []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated API document.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openAPIDocument)
		if err != nil {
			swaggerErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}

// swaggerUIDoc feeds the embedded document to the swagger UI handler.
type swaggerUIDoc struct{}

func (swaggerUIDoc) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, swaggerUIDoc{})
}
