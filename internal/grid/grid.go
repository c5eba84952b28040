// Package grid provides fixed-size integer grids (3x3 and 3x3x3) that can be
// populated from a console or a random source, queried for their minimum
// element and printed with fixed-width columns. Both shapes satisfy Grid.
package grid

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Default bounds for FillRandom.
const (
	DefaultMinValue = -50
	DefaultMaxValue = 50
)

// Extents of the fixed grids.
const (
	Rows   = 3
	Cols   = 3
	Layers = 3
)

// Column width used by Print for every value.
const CellWidth = 6

// Errors returned by grid operations. Callers match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrOutOfRange      = errors.New("index out of range")
)

// Grid is the capability shared by every grid shape.
type Grid interface {
	// InputFromConsole reads one integer per cell, re-prompting on bad lines.
	InputFromConsole() error
	// FillRandom fills every cell uniformly from [minValue, maxValue].
	FillRandom(minValue, maxValue int) error
	// MinElement returns the smallest cell value.
	MinElement() (int, error)
	// Print writes the grid to its console.
	Print()
}

// FillDefault fills g over [DefaultMinValue, DefaultMaxValue].
func FillDefault(g Grid) error {
	return g.FillRandom(DefaultMinValue, DefaultMaxValue)
}

// Option configures a grid at construction.
type Option func(*options)

type options struct {
	source   Source
	console  *Console
	logger   *zap.Logger
	fillLog  *zap.Logger
	inputLog *zap.Logger
	fill     bool
}

// WithSource sets the random source used by FillRandom.
func WithSource(s Source) Option {
	return func(o *options) { o.source = s }
}

// WithConsole sets the console used for input and printing.
func WithConsole(c *Console) Option {
	return func(o *options) { o.console = c }
}

// WithLogger sets the logger for lifecycle and fill events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFillLogger sets the logger for FillRandom events. It defaults to the
// WithLogger logger.
func WithFillLogger(l *zap.Logger) Option {
	return func(o *options) { o.fillLog = l }
}

// WithInputLogger sets the logger for InputFromConsole events. It defaults to
// the WithLogger logger.
func WithInputLogger(l *zap.Logger) Option {
	return func(o *options) { o.inputLog = l }
}

// WithRandomFill fills the grid over the default range right after it is
// allocated.
func WithRandomFill() Option {
	return func(o *options) { o.fill = true }
}

// store is the flat row-major backing shared by both shapes.
type store struct {
	kind     string
	dims     []int
	cells    []int
	source   Source
	console  *Console
	logger   *zap.Logger
	fillLog  *zap.Logger
	inputLog *zap.Logger
}

func newStore(kind string, dims []int, opts []Option) (*store, bool) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = SharedSource()
	}
	if o.console == nil {
		o.console = StdConsole()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.fillLog == nil {
		o.fillLog = o.logger
	}
	if o.inputLog == nil {
		o.inputLog = o.logger
	}

	n := 1
	for _, d := range dims {
		n *= d
	}
	s := &store{
		kind:     kind,
		dims:     slices.Clone(dims),
		cells:    make([]int, n),
		source:   o.source,
		console:  o.console,
		logger:   o.logger.With(zap.String("grid", kind)),
		fillLog:  o.fillLog.With(zap.String("grid", kind)),
		inputLog: o.inputLog.With(zap.String("grid", kind)),
	}
	s.logger.Debug("grid allocated", zap.Ints("dims", s.dims))
	return s, o.fill
}

// Rank returns the number of dimensions.
func (s *store) Rank() int { return len(s.dims) }

// Dims returns a copy of the extents, outermost first.
func (s *store) Dims() []int { return slices.Clone(s.dims) }

// Len returns the number of cells.
func (s *store) Len() int { return len(s.cells) }

// Cells returns a row-major copy of every cell.
func (s *store) Cells() []int { return slices.Clone(s.cells) }

func (s *store) fillRandom(minValue, maxValue int) error {
	if minValue > maxValue {
		s.fillLog.Debug("fill rejected", zap.Int("min", minValue), zap.Int("max", maxValue))
		return fmt.Errorf("fill %s: %w: minValue %d must be <= maxValue %d",
			s.kind, ErrInvalidArgument, minValue, maxValue)
	}
	// span wraps to 0 only when the interval covers every int64.
	span := uint64(maxValue) - uint64(minValue) + 1
	for i := range s.cells {
		var off uint64
		if span == 0 {
			off = s.source.Uint64()
		} else {
			off = s.source.Uint64N(span)
		}
		s.cells[i] = minValue + int(off)
	}
	s.fillLog.Debug("grid filled", zap.Int("min", minValue), zap.Int("max", maxValue))
	return nil
}

func (s *store) minElement() (int, error) {
	for _, d := range s.dims {
		if d == 0 {
			return 0, fmt.Errorf("min element of %s: %w: zero-length dimension in %v",
				s.kind, ErrInvalidState, s.dims)
		}
	}
	return slices.Min(s.cells), nil
}

// offset converts an index tuple into a flat offset.
func (s *store) offset(idx ...int) (int, error) {
	if len(idx) != len(s.dims) {
		return 0, fmt.Errorf("%s index %v: %w", s.kind, idx, ErrOutOfRange)
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= s.dims[i] {
			return 0, fmt.Errorf("%s index %v: %w", s.kind, idx, ErrOutOfRange)
		}
		off = off*s.dims[i] + v
	}
	return off, nil
}

func (s *store) at(idx ...int) (int, error) {
	off, err := s.offset(idx...)
	if err != nil {
		return 0, err
	}
	return s.cells[off], nil
}

func (s *store) set(v int, idx ...int) error {
	off, err := s.offset(idx...)
	if err != nil {
		return err
	}
	s.cells[off] = v
	return nil
}
