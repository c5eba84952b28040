package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"griddemo/internal/i18n"
)

// Console is the line-oriented terminal a grid reads from and prints to.
// Grids sharing one input stream must share one Console, since the reader is
// buffered.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
	style   func(string) string
	logger  *zap.Logger
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithPrinter sets the localized printer for prompts and labels.
func WithPrinter(p *message.Printer) ConsoleOption {
	return func(c *Console) { c.printer = p }
}

// WithHeadingStyle decorates header and layer label lines.
func WithHeadingStyle(style func(string) string) ConsoleOption {
	return func(c *Console) { c.style = style }
}

// WithConsoleLogger logs rejected input lines.
func WithConsoleLogger(l *zap.Logger) ConsoleOption {
	return func(c *Console) { c.logger = l }
}

// NewConsole returns a Console reading lines from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.printer == nil {
		c.printer = i18n.NewPrinter(i18n.BaseLocale)
	}
	if c.style == nil {
		c.style = func(s string) string { return s }
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

var (
	stdOnce    sync.Once
	stdConsole *Console
)

// StdConsole returns the Console bound to os.Stdin and os.Stdout.
func StdConsole() *Console {
	stdOnce.Do(func() {
		stdConsole = NewConsole(os.Stdin, os.Stdout)
	})
	return stdConsole
}

// Text formats a catalog message.
func (c *Console) Text(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Println writes a catalog message followed by a newline.
func (c *Console) Println(key string, args ...any) {
	fmt.Fprintln(c.out, c.Text(key, args...))
}

// Heading writes a styled catalog message on its own line.
func (c *Console) Heading(key string, args ...any) {
	fmt.Fprintln(c.out, c.style(c.Text(key, args...)))
}

// Writer returns the console output.
func (c *Console) Writer() io.Writer {
	return c.out
}

// ReadInt writes prompt and reads one base-10 integer per line, repeating
// until a line parses. Lines have no length limit. It fails only when input
// ends or the reader errors.
func (c *Console) ReadInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
			}
			return 0, fmt.Errorf("read input: %w", err)
		}
		v, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr == nil {
			return v, nil
		}
		c.logger.Debug("input rejected",
			zap.String("line", truncate(line, 64)),
			zap.Int("length", len(line)))
		c.Println("grid.input.invalid")
		if err == io.EOF {
			return 0, fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}
	}
}

// truncate trims s of its line ending and cuts it to at most n bytes.
func truncate(s string, n int) string {
	s = strings.TrimRight(s, "\r\n")
	if len(s) > n {
		return s[:n]
	}
	return s
}
