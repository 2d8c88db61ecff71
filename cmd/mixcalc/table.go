package main

import (
	"bytes"
	"io"
	"strings"
	"text/tabwriter"
)

// table aligns tab-separated rows and prints the first line in bold. The
// header is coloured after alignment so escape codes never count as width.
type table struct {
	out io.Writer
	buf bytes.Buffer
	tw  *tabwriter.Writer
}

func newTable(out io.Writer) *table {
	t := &table{out: out}
	t.tw = tabwriter.NewWriter(&t.buf, 0, 0, 2, ' ', 0)
	return t
}

func (t *table) Write(p []byte) (int, error) {
	return t.tw.Write(p)
}

// Flush writes the aligned table to the underlying writer.
func (t *table) Flush() error {
	if err := t.tw.Flush(); err != nil {
		return err
	}
	head, body, _ := strings.Cut(t.buf.String(), "\n")
	if _, err := headColor.Fprintln(t.out, head); err != nil {
		return err
	}
	_, err := io.WriteString(t.out, body)
	return err
}
