package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type table struct {
	w *tabwriter.Writer
}

// newTable writes tab separated rows to w. The header is only written when w
// is a terminal.
func newTable(w io.Writer, header ...string) *table {
	t := &table{w: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}

	if isTerminal(w) {
		fmt.Fprintf(t.w, "%s\t\n", strings.Join(header, "\t"))
	}

	return t
}

func (t *table) row(values ...any) {
	for _, v := range values {
		fmt.Fprintf(t.w, "%v\t", v)
	}

	fmt.Fprintln(t.w)
}

func (t *table) flush() error {
	return t.w.Flush()
}
