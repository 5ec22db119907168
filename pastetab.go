package pastetab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoDelimiter       = errors.New("could not determine delimiter")
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	ErrInvalidDelimiter  = errors.New("invalid delimiter")
)

// Row is one line of the input split into cells. Rows in a [Table] may have
// different lengths.
type Row []string

// Table is the ordered sequence of rows produced by [Detect].
type Table []Row

// Width returns the largest number of cells in any row.
func (t Table) Width() int {
	n := 0
	for _, row := range t {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Format represents an output format.
type Format string

const (
	CSV       Format = "csv"
	TSV       Format = "tsv"
	JSON      Format = "json"
	JSONL     Format = "jsonl"
	YAML      Format = "yaml"
	Markdown  Format = "markdown"
	TextTable Format = "table"
	HTML      Format = "html"
)

var formats = []Format{CSV, TSV, JSON, JSONL, YAML, Markdown, TextTable, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

type options struct {
	delimiter rune
	header    bool
	border    BorderStyle
	crlf      bool
}

// Option customizes rendering in [Write] and [Marshal].
type Option func(*options)

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delimiter = r }
}

// WithHeader treats the first row as a header for Table, Markdown and HTML.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithBorder sets the border style for Table. Default: [BorderRounded].
func WithBorder(b BorderStyle) Option {
	return func(o *options) { o.border = b }
}

// WithLF terminates CSV and TSV records with "\n" instead of "\r\n".
func WithLF() Option {
	return func(o *options) { o.crlf = false }
}

func newOptions(opts []Option) options {
	o := options{delimiter: ',', border: BorderRounded, crlf: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// splitHeader returns the header row (if requested) and the remaining rows.
func (o options) splitHeader(t Table) (Row, Table) {
	if !o.header || len(t) == 0 {
		return nil, t
	}
	return t[0], t[1:]
}

// Write renders t in format f to w.
func Write(w io.Writer, f Format, t Table, opts ...Option) error {
	o := newOptions(opts)
	switch f {
	case CSV:
		return writeCSV(w, t, o)
	case TSV:
		return writeTSV(w, t, o)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	case Markdown:
		return writeMarkdown(w, t, o)
	case TextTable:
		return writeTable(w, t, o)
	case HTML:
		return writeHTML(w, t, o)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
