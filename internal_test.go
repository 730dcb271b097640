package wui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCellWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is a full-width character (2 columns). With width=1, Truncate
	// returns "" because the char doesn't fit, so one rune is taken anyway.
	lines := splitCell("你好", 1)
	assert.Equal(t, []string{"你", "好"}, lines)
}

func TestSplitCellNoWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, splitCell("hi", 0))
}

func TestSplitCellFits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, splitCell("hi", 5))
}

func TestSplitCellBasic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Hel", "lo"}, splitCell("Hello", 3))
}

func TestSplitCellEscapesTakeNoWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{Red + "ab" + Reset}, splitCell(Red+"ab"+Reset, 2))
	assert.Equal(t, []string{"ab" + Red, "cd" + Reset}, splitCell("ab"+Red+"cd"+Reset, 2))
}

func TestSGRState(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Red+Bold, sgrState(Red, "x"+Bold+"y"))
	assert.Equal(t, "", sgrState(Red, "x"+Reset))
	assert.Equal(t, Cyan, sgrState("", Red+"\x1b[m"+Cyan))
}

func TestWrapText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in    string
		width int
		want  []string
	}{
		"fits":           {in: "hello world", width: 20, want: []string{"hello world"}},
		"words":          {in: "the quick brown fox jumps", width: 12, want: []string{"the quick", "brown fox", "jumps"}},
		"long word":      {in: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		"surrounding ws": {in: "  padded  ", width: 20, want: []string{"padded"}},
		"newline":        {in: "one\ntwo", width: 20, want: []string{"one", "two"}},
		"empty":          {in: "", width: 5, want: nil},
		"blank":          {in: "   ", width: 5, want: nil},
		"no width":       {in: "as is", width: 0, want: []string{"as is"}},
		"color fits":     {in: Red + "ok" + Reset, width: 2, want: []string{Red + "ok" + Reset}},
		"color words":    {in: Red + "ok fine" + Reset, width: 4, want: []string{Red + "ok" + Reset, Red + "fine" + Reset}},
		"color closed":   {in: Red + "ok" + Reset + " fine", width: 4, want: []string{Red + "ok" + Reset, "fine"}},
		"color split":    {in: Red + "okay" + Reset, width: 3, want: []string{Red + "oka" + Reset, Red + "y" + Reset}},
		"color middle":   {in: "aa " + Bold + "bb" + Reset + " cc", width: 3, want: []string{"aa", Bold + "bb" + Reset, "cc"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.in, tt.width))
		})
	}
}

func TestFitWrapColumns(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		widths     []int
		wrap       []int
		avail      int
		wantWidths []int
		wantActive []int
	}{
		"even share": {
			widths:     []int{10, 30, 30},
			wrap:       []int{1, 2},
			avail:      40,
			wantWidths: []int{10, 15, 15},
			wantActive: []int{1, 2},
		},
		"narrow column gives slack back": {
			widths:     []int{10, 3, 30},
			wrap:       []int{1, 2},
			avail:      36,
			wantWidths: []int{10, 3, 23},
			wantActive: []int{2},
		},
		"drops cascade": {
			// The first share (12) keeps column 1; once column 0 leaves the
			// share grows to 17 and column 1 drops out as well.
			widths:     []int{2, 12, 40},
			wrap:       []int{0, 1, 2},
			avail:      36,
			wantWidths: []int{2, 12, 22},
			wantActive: []int{2},
		},
		"share floors at one": {
			widths:     []int{50, 20},
			wrap:       []int{1},
			avail:      30,
			wantWidths: []int{50, 1},
			wantActive: []int{1},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			widths := append([]int(nil), tt.widths...)
			active := fitWrapColumns(widths, tt.wrap, tt.avail)
			assert.Equal(t, tt.wantWidths, widths)
			assert.Equal(t, tt.wantActive, active)
		})
	}
}

func TestResolveColumns(t *testing.T) {
	t.Parallel()
	got, err := resolveColumns([]int{-1, 0, 2, -3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)

	_, err = resolveColumns([]int{4}, 3)
	require.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestSeparatorLine(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		sep   string
		width int
		want  string
	}{
		"single":     {sep: "-", width: 5, want: "-----"},
		"multi":      {sep: "=-", width: 5, want: "=-=-="},
		"zero width": {sep: "-", width: 0, want: ""},
		"escape sep": {sep: Red, width: 3, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, separatorLine(tt.sep, tt.width))
		})
	}
}

func TestTerminalSize(t *testing.T) {
	t.Parallel()
	tty := func() (int, int, error) { return 100, 30, nil }
	noTTY := func() (int, int, error) { return 0, 0, errors.New("not a terminal") }
	tests := map[string]struct {
		env        map[string]string
		query      func() (int, int, error)
		wantWidth  int
		wantHeight int
	}{
		"terminal":        {query: tty, wantWidth: 100, wantHeight: 30},
		"fallback":        {query: noTTY, wantWidth: 80, wantHeight: 24},
		"env overrides":   {env: map[string]string{"COLUMNS": "40", "LINES": "10"}, query: tty, wantWidth: 40, wantHeight: 10},
		"columns only":    {env: map[string]string{"COLUMNS": "40"}, query: tty, wantWidth: 40, wantHeight: 30},
		"env without tty": {env: map[string]string{"COLUMNS": "132", "LINES": "50"}, query: noTTY, wantWidth: 132, wantHeight: 50},
		"invalid env":     {env: map[string]string{"COLUMNS": "wide", "LINES": "-4"}, query: noTTY, wantWidth: 80, wantHeight: 24},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w, h := terminalSize(func(k string) string { return tt.env[k] }, tt.query)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}
