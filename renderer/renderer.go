// Package renderer provides a way to render decoded programs in different formats.
package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/hexdis/disassembler"
)

// Renderer defines the interface for rendering a decoded program in different formats.
type Renderer interface {
	// Render takes a decoded program and outputs it in the desired format to the provided writer.
	Render(res *disassembler.Result, output io.Writer) error

	// Format returns the name of the output format (e.g., "text", "json", "table").
	Format() string
}

const (
	FormatText      = "text"
	FormatTable     = "table"
	FormatJSON      = "json"
	FormatFlowchart = "flowchart"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatFlowchart}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(), nil
	case FormatTable:
		return NewTableRenderer(), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatFlowchart:
		return NewFlowchartRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
