// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/emailnotify/pkg/style"
	"github.com/arthur-debert/emailnotify/pkg/ui/json"
	yamlv3 "gopkg.in/yaml.v3"
)

// Renderer provides YAML output for machine consumption
type Renderer struct {
	encoder *yamlv3.Encoder
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := yamlv3.NewEncoder(output)
	encoder.SetIndent(2)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult renders any result type as a YAML document
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as a YAML document
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(json.ErrorObject(err))
}

// RenderMessage renders a simple message as a YAML document
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": style.Strip(msg)})
}
