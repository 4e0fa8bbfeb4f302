package flowchart

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChainSafe/hexdis/disassembler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func decode(t *testing.T, idtLength int, input string) *disassembler.Result {
	t.Helper()
	res := disassembler.Disassemble(strings.NewReader(input), idtLength)
	require.NoError(t, res.Err())
	return res
}

func TestGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			var idtLength int
			_, err = fmt.Sscanf(string(ar.Comment), "idt=%d", &idtLength)
			require.NoError(t, err)

			files := make(map[string][]byte)
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}

			res := decode(t, idtLength, string(files["input"]))
			chart := Build(res.Session, res.Program)
			require.NotNil(t, chart)
			assert.Equal(t, string(files["flowchart"]), chart.String())
		})
	}
}

func TestBuildSkipsSubroutinePrograms(t *testing.T) {
	res := decode(t, 0, "00000000\n0600000a\n07000000\n")
	assert.Nil(t, Build(res.Session, res.Program))
	assert.Len(t, res.Warnings(), 1)
}

func TestBuildEmptyProgram(t *testing.T) {
	res := decode(t, 8, "")
	chart := Build(res.Session, res.Program)
	require.NotNil(t, chart)
	assert.Equal(t, "st=>start: Start\ne=>end: End\n", chart.String())
	assert.Empty(t, chart.Edges)
}

func TestBuildIgnoresIDT(t *testing.T) {
	res := decode(t, 2, "02000009\n00000000\n")
	chart := Build(res.Session, res.Program)
	require.NotNil(t, chart)
	assert.Len(t, chart.Nodes, 2)
	assert.Empty(t, chart.Edges)
}

func TestSuccessorsClipped(t *testing.T) {
	// buc -8, bic 0x100-8, huc at the end of the code
	res := decode(t, 0, "02000000\n03000100\n01000000\n")

	assert.Equal(t, []int{NoEdge}, Successors(res.Session, res.Program, 0))
	assert.Equal(t, []int{2, NoEdge}, Successors(res.Session, res.Program, 1))
	assert.Equal(t, []int{NoEdge}, Successors(res.Session, res.Program, 2))

	chart := Build(res.Session, res.Program)
	require.NotNil(t, chart)
	for _, e := range chart.Edges {
		assert.NotContains(t, e.To, "-", e.String())
	}
	assert.Contains(t, chart.Edges, Edge{From: "i1", To: "i2", Label: "no"})
	assert.NotContains(t, chart.Edges, Edge{From: "i1", To: "i-1", Label: "yes"})
}

func TestSuccessorsAreCodeIndices(t *testing.T) {
	// idt of 2, code[0] branches to address 4 (code[2]), code[1] jumps into the idt
	res := decode(t, 2, "00000000\n00000000\n0300000c\n02000009\n01000000\n")

	assert.Equal(t, []int{1, 2}, Successors(res.Session, res.Program, 0))
	assert.Equal(t, []int{NoEdge}, Successors(res.Session, res.Program, 1))
	assert.Equal(t, []int{3, 4}, res.Program.Code[0].Successors)
}

func TestBuildDoesNotMutateProgram(t *testing.T) {
	res := decode(t, 0, "02000000\n")
	Build(res.Session, res.Program)
	assert.Equal(t, []int{-8}, res.Program.Code[0].Successors)
}
