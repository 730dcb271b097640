package wui

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

// FormatTable lays out rows as left-aligned columns and returns the rendered
// lines as a lazy sequence.
//
// Everything that needs the whole table (padding, column widths, fitting wrap
// columns to the terminal and checking required widths) happens before
// FormatTable returns, so an ErrTooNarrowColumn failure is reported before any
// line exists. Lines are rendered one at a time as the sequence is consumed.
//
// An empty rows slice without titles yields no lines and no error.
func FormatTable(rows []Row, opts ...Option) (iter.Seq[string], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t, err := newTable(rows, cfg)
	if err != nil {
		return nil, err
	}
	return t.lines, nil
}

// Lines is FormatTable collected into a slice.
func Lines(rows []Row, opts ...Option) ([]string, error) {
	seq, err := FormatTable(rows, opts...)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// table is the fully measured layout of a single FormatTable call.
type table struct {
	rows      []Row
	widths    []int
	wrap      map[int]bool
	surround  map[int]Surround
	columns   map[int]Surround
	spacing   int
	stripeBg  string
	firstSlot int
}

func newTable(rows []Row, cfg config) (*table, error) {
	titled := len(cfg.titles) > 0
	all := make([]Row, 0, len(rows)+2)
	if titled {
		all = append(all, Cells(cfg.titles...))
	}
	all = append(all, rows...)
	if len(all) == 0 {
		return &table{}, nil
	}

	numCols := colCount(all)
	all = padRows(all, numCols)
	widths := computeWidths(numCols, all)

	wrapCols, err := resolveColumns(cfg.wrapColumns, numCols)
	if err != nil {
		return nil, err
	}

	spacing := max(numCols-1, 0)*cfg.columnSpacing + cfg.endSpacing
	termWidth := cfg.termWidth
	if termWidth <= 0 {
		termWidth, _ = TerminalSize()
	}

	wrap := map[int]bool{}
	if sum(widths)+spacing > termWidth && len(wrapCols) > 0 {
		for _, n := range fitWrapColumns(widths, wrapCols, termWidth-spacing) {
			wrap[n] = true
		}
	}

	for _, mw := range cfg.minWidths {
		col, err := resolveColumn(mw.Column, numCols)
		if err != nil {
			return nil, err
		}
		if widths[col] < mw.Width {
			return nil, &TooNarrowColumnError{Column: col, Required: mw.Width, Width: widths[col]}
		}
	}

	surround := make(map[int]Surround, len(cfg.surroundRows)+2)
	for slot, s := range cfg.surroundRows {
		surround[slot] = s
	}
	firstSlot := 0
	if titled {
		firstSlot = TitleRow
		sep := Literal(separatorLine(cfg.titleSep, sum(widths)+spacing))
		all = slices.Insert(all, 1, sep)
		if _, ok := surround[TitleRow]; !ok {
			surround[TitleRow] = Surround{Prefix: Bold, Suffix: Reset}
		}
		if _, ok := surround[SeparatorRow]; !ok {
			surround[SeparatorRow] = Surround{Prefix: cfg.titleSepColor, Suffix: Reset}
		}
	}

	return &table{
		rows:      all,
		widths:    widths,
		wrap:      wrap,
		surround:  surround,
		columns:   cfg.columnFormats,
		spacing:   cfg.columnSpacing,
		stripeBg:  cfg.stripeBg,
		firstSlot: firstSlot,
	}, nil
}

func colCount(rows []Row) int {
	n := 0
	for _, row := range rows {
		if !row.literal {
			n = max(n, ElementCount(row.cells))
		}
	}
	return n
}

// padRows returns a copy of rows where every structured row has exactly
// numCols cells. The caller's slices are not modified.
func padRows(rows []Row, numCols int) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		if row.literal || len(row.cells) == numCols {
			out[i] = row
			continue
		}
		cells := make([]string, numCols)
		copy(cells, row.cells)
		out[i] = Cells(cells...)
	}
	return out
}

func computeWidths(numCols int, rows []Row) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		if row.literal {
			continue
		}
		for i, cell := range row.cells {
			if w := VisibleLength(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// resolveColumns normalizes negative indexes against numCols and drops
// duplicates. The result is sorted.
func resolveColumns(cols []int, numCols int) ([]int, error) {
	var out []int
	for _, c := range cols {
		n, err := resolveColumn(c, numCols)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out, nil
}

func resolveColumn(c, numCols int) (int, error) {
	n := c
	if n < 0 {
		n += numCols
	}
	if n < 0 || n >= numCols {
		return 0, fmt.Errorf("%w: %d (table has %d columns)", ErrColumnOutOfRange, c, numCols)
	}
	return n, nil
}

// fitWrapColumns shares avail columns, minus the width of every column not in
// wrapCols, evenly between the wrap columns. A wrap column already narrower
// than its share keeps its natural width and gives its slack back to the
// others; this repeats until no more columns drop out. The wrap columns left
// are clamped to the final share in widths and returned.
func fitWrapColumns(widths, wrapCols []int, avail int) []int {
	space := avail
	for n, w := range widths {
		if !slices.Contains(wrapCols, n) {
			space -= w
		}
	}

	active := slices.Clone(wrapCols)
	share := space / len(active)
	for {
		kept := make([]int, 0, len(active))
		for _, n := range active {
			if widths[n] < share {
				space -= widths[n]
				continue
			}
			kept = append(kept, n)
		}
		if len(kept) == len(active) || len(kept) == 0 {
			active = kept
			break
		}
		active = kept
		share = space / len(active)
	}

	share = max(share, 1)
	for _, n := range active {
		widths[n] = share
	}
	return active
}

// separatorLine repeats sep until it covers width columns, then cuts it to
// exactly width.
func separatorLine(sep string, width int) string {
	sw := VisibleLength(sep)
	if sw == 0 || width <= 0 {
		return ""
	}
	line := strings.Repeat(sep, (width+sw-1)/sw)
	return runewidth.Truncate(line, width, "")
}

func (t *table) lines(yield func(string) bool) {
	for i, row := range t.rows {
		slot := i + t.firstSlot
		s := t.surround[slot]
		if row.literal {
			if !yield(s.wrap(row.text)) {
				return
			}
			continue
		}

		cells := make([][]string, len(row.cells))
		height := 1
		for n, cell := range row.cells {
			if t.wrap[n] {
				cells[n] = wrapText(cell, t.widths[n])
			} else {
				cells[n] = []string{cell}
			}
			height = max(height, len(cells[n]))
		}

		striped := t.stripeBg != "" && slot%2 == 1
		for line := range height {
			text := t.formatLine(cells, line)
			if striped {
				text = t.stripeBg + text + DefaultBg
			}
			if !yield(s.wrap(text)) {
				return
			}
		}
	}
}

// formatLine renders the line-th physical line of a row whose cells have been
// split into sub-lines. Cells with fewer sub-lines contribute empty text.
func (t *table) formatLine(cells [][]string, line int) string {
	var sb strings.Builder
	gap := strings.Repeat(" ", t.spacing)
	for n, sub := range cells {
		if n > 0 {
			sb.WriteString(gap)
		}
		text := ""
		if line < len(sub) {
			text = sub[line]
		}
		pad := t.widths[n] - VisibleLength(text)
		if f, ok := t.columns[n]; ok {
			text = f.wrap(text)
		}
		sb.WriteString(text)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}

// --- Cell wrapping ---

// wrapText word-wraps s to width visible columns. Surrounding whitespace is
// dropped from each line, words longer than width are split, and a blank cell
// wraps to no lines at all. SGR sequences take no width, and an attribute
// still open at the end of a line is closed there and reopened on the next.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	active := ""
	for _, line := range wrapWords(s, width) {
		for _, piece := range splitCell(strings.TrimSpace(line), width) {
			piece = strings.TrimSpace(piece)
			text := active + piece
			active = sgrState(active, piece)
			if VisibleLength(piece) == 0 {
				continue
			}
			if active != "" {
				text += Reset
			}
			lines = append(lines, text)
		}
	}
	return lines
}

// wrapWords runs the word wrapper over s with its escape sequences lifted
// out, then puts every sequence back in front of the rune it preceded.
// Whitespace the wrapper dropped at a break keeps its sequences on the line
// before the break.
func wrapWords(s string, width int) []string {
	src, codes := liftEscapes(s)
	var lines []string
	var sb strings.Builder
	i := 0
	for _, r := range wordwrap.WrapString(string(src), uint(width)) {
		for i < len(src) && src[i] != r && unicode.IsSpace(src[i]) {
			sb.WriteString(codes[i])
			i++
		}
		if i < len(src) && src[i] == r {
			sb.WriteString(codes[i])
			i++
			if r != '\n' {
				sb.WriteRune(r)
				continue
			}
		}
		if r == '\n' {
			lines = append(lines, sb.String())
			sb.Reset()
			continue
		}
		sb.WriteRune(r)
	}
	for ; i < len(codes); i++ {
		sb.WriteString(codes[i])
	}
	return append(lines, sb.String())
}

// liftEscapes splits s into its visible runes and the SGR sequences found
// before each of them. codes has one more entry than runes, holding the
// sequences after the last rune.
func liftEscapes(s string) (runes []rune, codes []string) {
	var pending strings.Builder
	for len(s) > 0 {
		if loc := leadingEscape.FindStringIndex(s); loc != nil {
			pending.WriteString(s[:loc[1]])
			s = s[loc[1]:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		runes = append(runes, r)
		codes = append(codes, pending.String())
		pending.Reset()
		s = s[size:]
	}
	return runes, append(codes, pending.String())
}

// sgrState returns the attributes in effect after s when active were in
// effect before it.
func sgrState(active, s string) string {
	for _, code := range escapePattern.FindAllString(s, -1) {
		if code == Reset || code == "\x1b[m" {
			active = ""
			continue
		}
		active += code
	}
	return active
}

// splitCell hard-splits s into pieces no wider than width. Escape sequences
// stay with the piece they follow.
func splitCell(s string, width int) []string {
	if width <= 0 || VisibleLength(s) <= width {
		return []string{s}
	}
	var lines []string
	var sb strings.Builder
	w := 0
	for len(s) > 0 {
		if loc := leadingEscape.FindStringIndex(s); loc != nil {
			sb.WriteString(s[:loc[1]])
			s = s[loc[1]:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		rw := runewidth.RuneWidth(r)
		// A rune wider than width still goes on a line of its own.
		if w > 0 && w+rw > width {
			lines = append(lines, sb.String())
			sb.Reset()
			w = 0
		}
		sb.WriteString(s[:size])
		s = s[size:]
		w += rw
	}
	return append(lines, sb.String())
}

func sum(vals []int) int {
	n := 0
	for _, v := range vals {
		n += v
	}
	return n
}
