// Package pastetab turns pasted tabular text into rows of cells and writes
// them back out as delimiter-separated text.
//
// The central entry point is [Detect], which accepts the raw text of a
// spreadsheet copy-paste, a delimited file, or a plain-text table aligned
// with spaces, and returns a [Table]. [Analyze] runs the same detection and
// also reports which [Strategy] produced the table.
//
// # Detection
//
// Blank lines are dropped, then the following steps are tried in order and
// the first one that applies wins:
//
//   - [StrategyTab]: a tab anywhere in the first 20 lines means a
//     spreadsheet paste; every line is split on tabs and cells are kept
//     exactly as pasted.
//   - [StrategySniffed]: [Sniff] looks for a consistent comma, semicolon,
//     or pipe delimiter (in that priority) and the quoting convention; lines
//     are then parsed with [Dialect.Read].
//   - [StrategyAligned]: columns aligned with spaces; lines are split on
//     runs of two or more spaces and cells are trimmed. A single space never
//     splits a cell.
//
// Rows are never padded or truncated, so a [Table] may be ragged.
//
//	t := pastetab.Detect("Name    Age  City\nAlice   30   Paris")
//	// [[Name Age City] [Alice 30 Paris]]
//
// # Writing
//
// [Writer] and [Serialize] produce CSV or TSV with minimal quoting: a cell
// is quoted only when it holds the delimiter, a double quote, or a line
// break.
//
//	out, err := pastetab.Serialize(t, ';')
//
// [Write] and [Marshal] render a table in any [Format]: CSV, TSV, JSON,
// JSONL, YAML, Markdown, a terminal table, or HTML. Use [ParseFormat] to
// turn a flag value into a [Format].
//
// # Errors
//
// Detection never fails. The package exports sentinel errors for the
// lower-level pieces:
//
//   - [ErrNoDelimiter]: [Sniff] found no consistent delimiter
//   - [ErrUnterminatedQuote]: [Dialect.Read] hit end of input inside quotes
//   - [ErrInvalidDelimiter]: [Writer] delimiter cannot be written unquoted
//   - [ErrUnsupportedFormat]: unknown format string
package pastetab
