package grid

import (
	"fmt"

	"go.uber.org/zap"
)

// Grid3D is a 3x3x3 grid. The outer index is the layer; each layer is a
// row-major 3x3 block.
type Grid3D struct {
	*store
}

var _ Grid = (*Grid3D)(nil)

// New3D allocates a zeroed 3x3x3 grid.
func New3D(opts ...Option) *Grid3D {
	return newGrid3D(Layers, Rows, Cols, opts...)
}

func newGrid3D(layers, rows, cols int, opts ...Option) *Grid3D {
	s, fill := newStore("3d", []int{layers, rows, cols}, opts)
	g := &Grid3D{store: s}
	if fill {
		_ = FillDefault(g)
	}
	g.logger.Debug("grid constructed", zap.Bool("fill_random", fill))
	return g
}

func (g *Grid3D) layers() int    { return g.dims[0] }
func (g *Grid3D) rows() int      { return g.dims[1] }
func (g *Grid3D) cols() int      { return g.dims[2] }
func (g *Grid3D) layerSize() int { return g.dims[1] * g.dims[2] }

// InputFromConsole reads layer by layer, each layer row by row.
func (g *Grid3D) InputFromConsole() error {
	c := g.console
	c.Println("grid.input.header3d", g.rows(), g.cols(), g.layers())
	next := make([]int, len(g.cells))
	for k := 0; k < g.layers(); k++ {
		c.Heading("grid.input.layer", k)
		for i := 0; i < g.rows(); i++ {
			for j := 0; j < g.cols(); j++ {
				v, err := c.ReadInt(c.Text("grid.input.cell3d", i, j, k))
				if err != nil {
					return fmt.Errorf("input B[%d,%d,%d]: %w", i, j, k, err)
				}
				next[k*g.layerSize()+i*g.cols()+j] = v
			}
		}
	}
	copy(g.cells, next)
	g.inputLog.Debug("grid read from console", zap.Int("cells", len(next)))
	return nil
}

// FillRandom fills every cell uniformly from [minValue, maxValue].
func (g *Grid3D) FillRandom(minValue, maxValue int) error {
	return g.fillRandom(minValue, maxValue)
}

// MinElement returns the smallest cell.
func (g *Grid3D) MinElement() (int, error) {
	return g.minElement()
}

// Print writes a header line then one labeled block per layer, in ascending
// layer order.
func (g *Grid3D) Print() {
	c := g.console
	c.Heading("grid.print.header3d", g.rows(), g.cols(), g.layers())
	size := g.layerSize()
	for k := 0; k < g.layers(); k++ {
		c.Heading("grid.print.layer", k)
		writeRows(c.Writer(), g.cells[k*size:(k+1)*size], g.cols())
	}
}

// At returns the cell at layer, row, col.
func (g *Grid3D) At(layer, row, col int) (int, error) {
	return g.at(layer, row, col)
}

// Set stores v at layer, row, col.
func (g *Grid3D) Set(layer, row, col, v int) error {
	return g.set(v, layer, row, col)
}

// Layer returns a row-major copy of one layer.
func (g *Grid3D) Layer(layer int) ([]int, error) {
	if layer < 0 || layer >= g.layers() {
		return nil, fmt.Errorf("3d layer %d: %w", layer, ErrOutOfRange)
	}
	size := g.layerSize()
	out := make([]int, size)
	copy(out, g.cells[layer*size:(layer+1)*size])
	return out, nil
}
