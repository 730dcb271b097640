package wui

import (
	"fmt"
	"io"
	"iter"
)

// WriteTable formats rows and writes each line to w followed by a newline.
// Layout errors are returned before anything is written.
func WriteTable(w io.Writer, rows []Row, opts ...Option) error {
	seq, err := FormatTable(rows, opts...)
	if err != nil {
		return err
	}
	return WriteLines(w, seq)
}

// WriteLines writes lines from seq to w as they arrive and stops at the first
// write error.
func WriteLines(w io.Writer, seq iter.Seq[string]) error {
	for line := range seq {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteChan writes lines received from ch until it is closed.
// It is a thin wrapper around [WriteLines].
func WriteChan(w io.Writer, ch <-chan string) error {
	return WriteLines(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
