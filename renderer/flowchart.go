package renderer

import (
	"errors"
	"io"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/ChainSafe/hexdis/flowchart"
)

// ErrNoFlowchart is returned for programs whose control flow cannot be drawn.
var ErrNoFlowchart = errors.New("program contains subroutine calls, no flowchart available")

// FlowchartRenderer writes the flowchart.js description of the code region.
type FlowchartRenderer struct{}

func NewFlowchartRenderer() Renderer {
	return &FlowchartRenderer{}
}

func (r *FlowchartRenderer) Render(res *disassembler.Result, output io.Writer) error {
	chart := flowchart.Build(res.Session, res.Program)
	if chart == nil {
		return ErrNoFlowchart
	}
	_, err := io.WriteString(output, chart.String())
	return err
}

func (r *FlowchartRenderer) Format() string {
	return FormatFlowchart
}
