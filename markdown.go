package pastetab

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "<br>")

// writeMarkdown renders a GitHub-flavored Markdown table. Markdown needs a
// header row, so without WithHeader the columns are numbered from 1.
func writeMarkdown(w io.Writer, t Table, o options) error {
	if len(t) == 0 {
		return nil
	}
	header, body := o.splitHeader(t)
	numCols := colCount(header, body)
	if header == nil {
		header = make(Row, numCols)
		for i := range header {
			header[i] = strconv.Itoa(i + 1)
		}
	}
	header = escapeMarkdown(header)
	rows := make(Table, len(body))
	for i, row := range body {
		rows[i] = escapeMarkdown(row)
	}

	// Calculate column widths (minimum 3 for the separator dashes).
	widths := computeWidths(numCols, header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells Row, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// escapeMarkdown keeps pipes and line breaks inside cells from breaking
// the table.
func escapeMarkdown(row Row) Row {
	out := make(Row, len(row))
	for i, cell := range row {
		out[i] = markdownEscaper.Replace(cell)
	}
	return out
}
