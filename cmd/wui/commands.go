package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bjaus/wui"
	"github.com/bjaus/wui/cli"
)

// stripeBg is the background of every other row with --stripe.
var stripeBg = wui.RGBBg(48, 48, 48)

type program struct {
	in  io.Reader
	app *cli.App
}

func newProgram(in io.Reader, out, errOut io.Writer) *program {
	p := &program{in: in}
	p.app = &cli.App{
		Name:   "wui",
		Stdout: out,
		Stderr: errOut,
		Commands: []cli.Command{
			{
				Name:    "table",
				Abbrevs: []string{"t"},
				Run:     p.runTable,
				Help: cli.CommandHelp{
					Description: "read comma or tab separated records and print them as an aligned table",
					Usage:       "[<options>] [<file>]",
					Options: []cli.OptionHelp{
						{Spec: "--tsv", Description: "split fields on tabs instead of commas"},
						{Spec: "--titles", Description: "use the first record as column titles"},
						{Spec: "--wrap <column>", Description: "allow wrapping a column when the table is wider than the terminal; negative columns count from the end"},
						{Spec: "--min <column>:<width>", Description: "fail over to a plain listing if the column would end up narrower than width"},
						{Spec: "--stripe", Description: "shade every other row"},
					},
				},
			},
			{
				Name:    "colors",
				Abbrevs: []string{"c"},
				Run:     p.runColors,
				Help: cli.CommandHelp{
					Description: "show the available colors",
				},
			},
		},
	}
	return p
}

func (p *program) runTable(_ context.Context, args *cli.Args) error {
	comma := ','
	titled := false
	var path string
	var opts []wui.Option
	for args.Len() > 0 {
		arg, _ := args.Pop()
		switch arg {
		case "--tsv":
			comma = '\t'
		case "--titles":
			titled = true
		case "--stripe":
			opts = append(opts, wui.WithStripedRows(stripeBg))
		case "--wrap":
			col, err := args.Int("wrap column")
			if err != nil {
				return err
			}
			opts = append(opts, wui.WithWrapColumns(col))
		case "--min":
			spec, err := args.Positional("minimum width", 0, false)
			if err != nil {
				return err
			}
			mw, err := parseMinWidth(spec)
			if err != nil {
				return err
			}
			opts = append(opts, wui.WithRequireMinWidths(mw))
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return cli.UnknownOptional(arg)
			}
			if path != "" {
				return fmt.Errorf("%w: %q", cli.ErrTrailingArguments, arg)
			}
			path = arg
		}
	}

	in := p.in
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	rows, err := wui.ReadDelimited(in, comma)
	if err != nil {
		return err
	}
	var titles []string
	if titled && len(rows) > 0 {
		titles = rows[0].Values()
		rows = rows[1:]
		opts = append(opts, wui.WithTitles(titles...))
	}

	err = p.app.WriteTable(rows, opts...)
	if errors.Is(err, wui.ErrTooNarrowColumn) {
		p.app.Warn("terminal too narrow for a table, listing records instead")
		p.writeRecords(titles, rows)
		return nil
	}
	return err
}

// writeRecords prints each record as "title: value" lines separated by blank
// lines.
func (p *program) writeRecords(titles []string, rows []wui.Row) {
	for i, row := range rows {
		if i > 0 {
			p.app.Printf("\n")
		}
		for n, cell := range row.Values() {
			label := strconv.Itoa(n)
			if n < len(titles) {
				label = titles[n]
			}
			p.app.Printf("%s: %s\n", wui.Colorize(label, wui.Bold), cell)
		}
	}
}

func parseMinWidth(spec string) (wui.MinWidth, error) {
	colText, widthText, ok := strings.Cut(spec, ":")
	if !ok {
		return wui.MinWidth{}, fmt.Errorf("minimum width %q: want <column>:<width>", spec)
	}
	col, err := strconv.Atoi(colText)
	if err != nil {
		return wui.MinWidth{}, fmt.Errorf("minimum width column: %w", err)
	}
	width, err := strconv.Atoi(widthText)
	if err != nil {
		return wui.MinWidth{}, fmt.Errorf("minimum width: %w", err)
	}
	return wui.MinWidth{Column: col, Width: width}, nil
}

var palette = []struct {
	name string
	code string
}{
	{"black", wui.Black},
	{"red", wui.Red},
	{"green", wui.Green},
	{"yellow", wui.Yellow},
	{"blue", wui.Blue},
	{"magenta", wui.Magenta},
	{"cyan", wui.Cyan},
	{"white", wui.White},
}

func (p *program) runColors(_ context.Context, args *cli.Args) error {
	if err := args.DisallowTrailing(); err != nil {
		return err
	}
	rows := make([]wui.Row, 0, len(palette)+2)
	for _, c := range palette {
		code := strings.Trim(c.code, "\x1b[m")
		rows = append(rows, wui.Cells(c.name, code, c.code+"sample"+wui.DefaultFg))
	}
	rows = append(rows,
		wui.Literal(""),
		wui.Cells("truecolor", "38;2;r;g;b", wui.RGBFg(255, 135, 0)+"sample"+wui.DefaultFg),
	)
	return p.app.WriteTable(rows,
		wui.WithTitles("Color", "Code", "Sample"),
		wui.WithColumnFormats(map[int]wui.Surround{1: {Prefix: wui.Bold, Suffix: wui.NoBold}}),
	)
}
