package wui

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrTooNarrowColumn  = errors.New("column too narrow")
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// TooNarrowColumnError reports a required minimum width that the final
// layout cannot honor. It matches ErrTooNarrowColumn with errors.Is.
type TooNarrowColumnError struct {
	Column   int
	Required int
	Width    int
}

func (e *TooNarrowColumnError) Error() string {
	return fmt.Sprintf("%s: column %d needs %d, got %d", ErrTooNarrowColumn, e.Column, e.Required, e.Width)
}

// Is reports whether target is ErrTooNarrowColumn.
func (e *TooNarrowColumnError) Is(target error) bool {
	return target == ErrTooNarrowColumn
}

// Row slots used for decorating the title and its separator line. Data rows
// are numbered from 0.
const (
	TitleRow     = -2
	SeparatorRow = -1
)

// Row is either a literal line printed verbatim or a sequence of cells
// aligned into columns. The zero value is an empty structured row.
type Row struct {
	text    string
	cells   []string
	literal bool
}

// Literal returns a row printed as-is. Literal rows never affect column
// widths.
func Literal(text string) Row {
	return Row{text: text, literal: true}
}

// Cells returns a structured row with one cell per column.
func Cells(cells ...string) Row {
	return Row{cells: cells}
}

// IsLiteral reports whether r was built with Literal.
func (r Row) IsLiteral() bool { return r.literal }

// Text returns the text of a literal row.
func (r Row) Text() string { return r.text }

// Values returns the cells of a structured row.
func (r Row) Values() []string { return r.cells }

// Rower provides row data.
type Rower interface {
	Row() []string
}

// RowsOf converts items to structured rows.
func RowsOf[T Rower](items ...T) []Row {
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = Cells(item.Row()...)
	}
	return rows
}

// Surround is a prefix/suffix pair placed around a rendered row or cell,
// usually a pair of escape sequences.
type Surround struct {
	Prefix string
	Suffix string
}

func (s Surround) wrap(text string) string {
	return s.Prefix + text + s.Suffix
}

// MinWidth requires Column to end up at least Width columns wide.
type MinWidth struct {
	Column int
	Width  int
}

// --- Options ---

type config struct {
	columnSpacing int
	endSpacing    int
	wrapColumns   []int
	titles        []string
	titleSep      string
	titleSepColor string
	surroundRows  map[int]Surround
	columnFormats map[int]Surround
	stripeBg      string
	minWidths     []MinWidth
	termWidth     int
}

func defaultConfig() config {
	return config{
		columnSpacing: 2,
		endSpacing:    2,
		titleSep:      "-",
		titleSepColor: Cyan,
	}
}

// Option configures FormatTable.
type Option func(*config)

// WithColumnSpacing sets the number of spaces between columns.
// Default: 2.
func WithColumnSpacing(n int) Option {
	return func(c *config) { c.columnSpacing = max(n, 0) }
}

// WithEndSpacing reserves n columns at the end of each line when fitting the
// table to the terminal. Default: 2.
func WithEndSpacing(n int) Option {
	return func(c *config) { c.endSpacing = max(n, 0) }
}

// WithWrapColumns marks columns that may be word-wrapped when the table is
// wider than the terminal. Negative indexes count from the last column.
func WithWrapColumns(cols ...int) Option {
	return func(c *config) { c.wrapColumns = append(c.wrapColumns, cols...) }
}

// WithTitles adds a bold header row followed by a separator line.
func WithTitles(titles ...string) Option {
	return func(c *config) { c.titles = titles }
}

// WithTitleSeparator sets the string repeated to build the line under the
// titles and the color it is drawn in. Default: "-" in Cyan. An empty sep
// keeps the default.
func WithTitleSeparator(sep, color string) Option {
	return func(c *config) {
		if sep != "" {
			c.titleSep = sep
		}
		c.titleSepColor = color
	}
}

// WithSurroundRows decorates whole rows by slot. See TitleRow and
// SeparatorRow for the title slots.
func WithSurroundRows(rows map[int]Surround) Option {
	return func(c *config) { c.surroundRows = rows }
}

// WithColumnFormats decorates every cell of a column. Padding is added after
// the decoration so escape sequences never shift alignment.
func WithColumnFormats(cols map[int]Surround) Option {
	return func(c *config) { c.columnFormats = cols }
}

// WithStripedRows applies the background sequence bg to every odd data row.
func WithStripedRows(bg string) Option {
	return func(c *config) { c.stripeBg = bg }
}

// WithRequireMinWidths makes FormatTable fail with ErrTooNarrowColumn when a
// column ends up narrower than required.
func WithRequireMinWidths(widths ...MinWidth) Option {
	return func(c *config) { c.minWidths = append(c.minWidths, widths...) }
}

// WithTerminalWidth fixes the width the table is fitted to instead of
// querying the terminal.
func WithTerminalWidth(n int) Option {
	return func(c *config) { c.termWidth = n }
}
