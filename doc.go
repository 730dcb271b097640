// Package wui lays out rows of text as aligned terminal tables.
//
// The central entry point is [FormatTable], which takes a slice of [Row]
// values and functional options and returns the rendered lines as an
// [iter.Seq]. [Lines] collects them and [WriteTable] writes them to an
// [io.Writer].
//
// # Rows
//
// A row is either structured or literal:
//
//   - [Cells] builds a row with one string per column
//   - [Literal] builds a line printed verbatim, such as a banner or a blank
//     spacer; literal rows never affect column widths
//
// Structured rows shorter than the widest one are padded with empty cells.
// Types implementing [Rower] can be converted with [RowsOf].
//
// # Width
//
// Column widths are measured with [VisibleLength], which ignores SGR escape
// sequences, so cells may be colored freely. When the table is wider than the
// terminal (see [TerminalSize] and [WithTerminalWidth]), columns named with
// [WithWrapColumns] are word-wrapped to share the remaining space. Columns
// listed in [WithRequireMinWidths] must stay at least as wide as required or
// FormatTable fails with [ErrTooNarrowColumn] before producing any line:
//
//	seq, err := wui.FormatTable(rows,
//		wui.WithWrapColumns(-1),
//		wui.WithRequireMinWidths(wui.MinWidth{Column: -1, Width: 20}),
//	)
//	if errors.Is(err, wui.ErrTooNarrowColumn) {
//		// fall back to a plainer layout
//	}
//
// # Decoration
//
//   - [WithTitles] — bold header row and a separator line
//   - [WithSurroundRows] — prefix/suffix per row slot
//   - [WithColumnFormats] — prefix/suffix per column, applied before padding
//   - [WithStripedRows] — background on every other data row
//
// The escape sequences themselves are plain constants ([Bold], [Cyan],
// [Reset], ...) and constructors ([SGR], [RGBFg], [RGBBg]). The package does
// not probe terminal capabilities.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrTooNarrowColumn] — a required minimum width cannot be met
//   - [ErrColumnOutOfRange] — a wrap or min-width column does not exist
package wui
