// Package flowchart builds the control flow graph of a decoded program in the
// flowchart.js text format.
//
// The grammar has no way to express a return to a dynamic location, so
// programs that call subroutines produce no chart at all.
package flowchart

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/hexdis/disassembler"
)

// NoEdge marks a successor that leaves the code region.
const NoEdge = -1

// NodeType is the flowchart.js symbol used for a node.
type NodeType string

const (
	NodeStart     NodeType = "start"
	NodeEnd       NodeType = "end"
	NodeOperation NodeType = "operation"
	NodeCondition NodeType = "condition"
)

const (
	startID = "st"
	endID   = "e"
)

// Node is a symbol declaration, `id=>type: text`.
type Node struct {
	ID   string
	Type NodeType
	Text string
}

func (n Node) String() string {
	return fmt.Sprintf("%s=>%s: %s", n.ID, n.Type, n.Text)
}

// Edge is a connection, `from(label)->to`.
type Edge struct {
	From  string
	To    string
	Label string
}

func (e Edge) String() string {
	if e.Label != "" {
		return fmt.Sprintf("%s(%s)->%s", e.From, e.Label, e.To)
	}
	return fmt.Sprintf("%s->%s", e.From, e.To)
}

// Chart is the graph description handed to the drawing tool.
type Chart struct {
	Nodes []Node
	Edges []Edge
}

// String renders the chart in flowchart.js syntax, declarations first.
func (c *Chart) String() string {
	var sb strings.Builder
	for _, n := range c.Nodes {
		sb.WriteString(n.String())
		sb.WriteByte('\n')
	}
	for _, e := range c.Edges {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("i%d", i)
}

// Build returns the chart of the code region of p, or nil when the session
// saw a subroutine call.
func Build(s *disassembler.Session, p *disassembler.Program) *Chart {
	if s.HasSubroutines() {
		return nil
	}

	chart := &Chart{
		Nodes: []Node{
			{ID: startID, Type: NodeStart, Text: "Start"},
			{ID: endID, Type: NodeEnd, Text: "End"},
		},
		Edges: make([]Edge, 0),
	}
	if len(p.Code) > 0 {
		chart.Edges = append(chart.Edges,
			Edge{From: startID, To: nodeID(0)},
			Edge{From: nodeID(len(p.Code) - 1), To: endID},
		)
	}

	for i, instr := range p.Code {
		next := Successors(s, p, i)

		node := Node{ID: nodeID(i), Type: NodeOperation, Text: instr.Text()}
		if len(next) == 2 {
			node.Type = NodeCondition
		}
		chart.Nodes = append(chart.Nodes, node)

		for j, succ := range next {
			if succ == NoEdge {
				continue
			}
			edge := Edge{From: nodeID(i), To: nodeID(succ)}
			if len(next) == 2 {
				edge.Label = [2]string{"no", "yes"}[j]
			}
			chart.Edges = append(chart.Edges, edge)
		}
	}
	return chart
}

// Successors returns the successors of code[i] as code indices, with NoEdge
// for every successor outside the code region. Node ids are code indices, so
// an address is rebased by the IDT length before it is clipped to the code.
func Successors(s *disassembler.Session, p *disassembler.Program, i int) []int {
	succ := p.Code[i].Successors
	next := make([]int, len(succ))
	for j, address := range succ {
		index := address - s.IDTLength
		if index < 0 || index >= len(p.Code) {
			index = NoEdge
		}
		next[j] = index
	}
	return next
}
