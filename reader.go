package pastetab

import (
	"fmt"
	"strings"
)

type readState int

const (
	fieldStart readState = iota
	inField
	inQuoted
	quoteInQuoted
)

// Read parses newline-separated records written in dialect d. Quoted
// fields may contain the delimiter and line breaks. Rows keep however many
// fields their record has; an empty record yields an empty row.
func (d Dialect) Read(text string) (Table, error) {
	var (
		t       Table
		row     Row
		field   strings.Builder
		state   = fieldStart
		pending bool // a field has started on the current record
		line    = 1
		opened  int // line of the last opening quote
	)
	endField := func() {
		row = append(row, field.String())
		field.Reset()
		pending = false
	}
	endRecord := func() {
		if row == nil {
			row = Row{}
		}
		t = append(t, row)
		row = nil
	}

	for _, c := range text {
		switch state {
		case fieldStart:
			switch {
			case c == d.Quote && d.Quote != 0:
				state, pending, opened = inQuoted, true, line
			case c == d.Delimiter:
				endField()
			case c == '\n':
				if pending || len(row) > 0 {
					endField()
				}
				endRecord()
			case c == ' ' && d.SkipInitialSpace:
			default:
				field.WriteRune(c)
				state, pending = inField, true
			}
		case inField:
			switch c {
			case d.Delimiter:
				endField()
				state = fieldStart
			case '\n':
				endField()
				endRecord()
				state = fieldStart
			default:
				field.WriteRune(c)
			}
		case inQuoted:
			if c == d.Quote {
				state = quoteInQuoted
				continue
			}
			if c == '\n' {
				line++
			}
			field.WriteRune(c)
		case quoteInQuoted:
			switch {
			case c == d.Quote && d.DoubleQuote:
				field.WriteRune(c)
				state = inQuoted
			case c == d.Delimiter:
				endField()
				state = fieldStart
			case c == '\n':
				endField()
				endRecord()
				state = fieldStart
			default:
				field.WriteRune(c)
				state = inField
			}
		}
		if c == '\n' && state == fieldStart {
			line++
		}
	}

	if state == inQuoted {
		return nil, fmt.Errorf("%w: line %d", ErrUnterminatedQuote, opened)
	}
	if pending || len(row) > 0 {
		endField()
		endRecord()
	}
	return t, nil
}
