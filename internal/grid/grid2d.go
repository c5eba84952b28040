package grid

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Grid2D is a 3x3 grid stored row-major.
type Grid2D struct {
	*store
}

var _ Grid = (*Grid2D)(nil)

// New2D allocates a zeroed 3x3 grid.
func New2D(opts ...Option) *Grid2D {
	return newGrid2D(Rows, Cols, opts...)
}

func newGrid2D(rows, cols int, opts ...Option) *Grid2D {
	s, fill := newStore("2d", []int{rows, cols}, opts)
	g := &Grid2D{store: s}
	if fill {
		// The default range is never inverted.
		_ = FillDefault(g)
	}
	g.logger.Debug("grid constructed", zap.Bool("fill_random", fill))
	return g
}

func (g *Grid2D) rows() int { return g.dims[0] }
func (g *Grid2D) cols() int { return g.dims[1] }

// InputFromConsole reads the grid row by row. Cells are replaced only once
// every value has been read.
func (g *Grid2D) InputFromConsole() error {
	c := g.console
	c.Println("grid.input.header2d", g.rows(), g.cols())
	next := make([]int, len(g.cells))
	for i := 0; i < g.rows(); i++ {
		for j := 0; j < g.cols(); j++ {
			v, err := c.ReadInt(c.Text("grid.input.cell2d", i, j))
			if err != nil {
				return fmt.Errorf("input A[%d,%d]: %w", i, j, err)
			}
			next[i*g.cols()+j] = v
		}
	}
	copy(g.cells, next)
	g.inputLog.Debug("grid read from console", zap.Int("cells", len(next)))
	return nil
}

// FillRandom fills every cell uniformly from [minValue, maxValue].
func (g *Grid2D) FillRandom(minValue, maxValue int) error {
	return g.fillRandom(minValue, maxValue)
}

// MinElement returns the smallest cell.
func (g *Grid2D) MinElement() (int, error) {
	return g.minElement()
}

// Print writes a header line then one line per row.
func (g *Grid2D) Print() {
	c := g.console
	c.Heading("grid.print.header2d", g.rows(), g.cols())
	writeRows(c.Writer(), g.cells, g.cols())
}

// At returns the cell at row, col.
func (g *Grid2D) At(row, col int) (int, error) {
	return g.at(row, col)
}

// Set stores v at row, col.
func (g *Grid2D) Set(row, col, v int) error {
	return g.set(v, row, col)
}

// writeRows renders cells as lines of cols right-aligned fields.
func writeRows(w io.Writer, cells []int, cols int) {
	var sb strings.Builder
	for i, v := range cells {
		fmt.Fprintf(&sb, "%*d", CellWidth, v)
		if (i+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}
	io.WriteString(w, sb.String())
}
