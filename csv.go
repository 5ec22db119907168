package pastetab

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Writer writes rows as delimiter-separated text with minimal quoting: a
// cell is quoted only when it contains the delimiter, a double quote, or a
// line break, and embedded quotes are doubled.
//
// As with encoding/csv, output is buffered; call [Writer.Flush] and check
// [Writer.Error] when done.
type Writer struct {
	Comma   rune // Field delimiter (set to ',' by NewWriter)
	UseCRLF bool // True to terminate records with \r\n (set by NewWriter)

	w *bufio.Writer
}

// NewWriter returns a Writer that writes comma-separated records
// terminated by \r\n to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{Comma: ',', UseCRLF: true, w: bufio.NewWriter(w)}
}

// Write writes a single row.
func (cw *Writer) Write(row Row) error {
	if !ValidDelimiter(cw.Comma) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, cw.Comma)
	}
	// A lone empty cell would otherwise vanish as a blank line.
	if len(row) == 1 && row[0] == "" {
		if _, err := cw.w.WriteString(`""`); err != nil {
			return err
		}
		return cw.writeNewline()
	}
	for i, cell := range row {
		if i > 0 {
			if _, err := cw.w.WriteRune(cw.Comma); err != nil {
				return err
			}
		}
		if err := cw.writeCell(cell); err != nil {
			return err
		}
	}
	return cw.writeNewline()
}

// WriteAll writes every row of t and flushes. The delimiter is checked
// even when t is empty.
func (cw *Writer) WriteAll(t Table) error {
	if !ValidDelimiter(cw.Comma) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, cw.Comma)
	}
	for _, row := range t {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (cw *Writer) Flush() {
	_ = cw.w.Flush()
}

// Error reports any error from a previous Write or Flush.
func (cw *Writer) Error() error {
	_, err := cw.w.Write(nil)
	return err
}

func (cw *Writer) writeCell(cell string) error {
	if !cw.needsQuotes(cell) {
		_, err := cw.w.WriteString(cell)
		return err
	}
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
	sb.WriteByte('"')
	_, err := cw.w.WriteString(sb.String())
	return err
}

func (cw *Writer) needsQuotes(cell string) bool {
	return strings.ContainsRune(cell, cw.Comma) || strings.ContainsAny(cell, "\"\r\n")
}

func (cw *Writer) writeNewline() error {
	var err error
	if cw.UseCRLF {
		_, err = cw.w.WriteString("\r\n")
	} else {
		err = cw.w.WriteByte('\n')
	}
	return err
}

// ValidDelimiter reports whether r can separate fields: it must be a valid
// rune other than NUL, U+FFFD, a double quote, or a line break.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Serialize renders t as delimiter-separated text with \r\n line endings.
// Zero rows produce empty output.
func Serialize(t Table, delim rune) ([]byte, error) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	cw.Comma = delim
	if err := cw.WriteAll(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCSV(w io.Writer, t Table, o options) error {
	cw := NewWriter(w)
	cw.Comma = o.delimiter
	cw.UseCRLF = o.crlf
	return cw.WriteAll(t)
}
