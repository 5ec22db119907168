package pastetab

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sampleLines is how many retained lines the tab check and the sniffer
// look at.
const sampleLines = 20

// Delimiters are the candidates handed to the sniffer, in priority order.
const Delimiters = ",;|"

// alignedGap matches a column gap. \p{Zs} adds the no-break and ideographic
// spaces found in pasted web tables.
var alignedGap = regexp.MustCompile(`[\s\p{Zs}]{2,}`)

// Strategy identifies which detection step produced a table.
type Strategy int

const (
	StrategyNone    Strategy = iota // empty input
	StrategyTab                     // spreadsheet paste, split on tabs
	StrategySniffed                 // delimited text with a sniffed dialect
	StrategyAligned                 // columns aligned with runs of spaces
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyTab:
		return "tab"
	case StrategySniffed:
		return "sniffed"
	case StrategyAligned:
		return "aligned"
	default:
		return "none"
	}
}

// Detection is the outcome of [Analyze]. Dialect is only set when Strategy
// is [StrategySniffed].
type Detection struct {
	Table    Table
	Strategy Strategy
	Dialect  Dialect
}

// strategy either produces a table or reports that it does not apply.
type strategy struct {
	kind  Strategy
	apply func(lines []string, sample string) (Table, Dialect, bool)
}

// cascade is tried in order; the aligned split after it always applies.
var cascade = []strategy{
	{kind: StrategyTab, apply: splitTabs},
	{kind: StrategySniffed, apply: readSniffed},
}

// Detect parses pasted text into rows of cells. It never fails: text with
// no recognizable structure comes back as one single-cell row per line.
func Detect(text string) Table {
	return Analyze(text).Table
}

// Analyze runs the same detection as [Detect] and also reports which
// strategy fired and, for delimited text, the sniffed dialect.
func Analyze(text string) Detection {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return Detection{Table: Table{}, Strategy: StrategyNone}
	}
	sample := strings.Join(lines[:min(len(lines), sampleLines)], "\n")
	for _, s := range cascade {
		if t, d, ok := s.apply(lines, sample); ok {
			return Detection{Table: t, Strategy: s.kind, Dialect: d}
		}
	}
	return Detection{Table: splitAligned(lines), Strategy: StrategyAligned}
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, ln := range SplitLines(strings.TrimSpace(text)) {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

func splitTabs(lines []string, sample string) (Table, Dialect, bool) {
	if !strings.Contains(sample, "\t") {
		return nil, Dialect{}, false
	}
	t := make(Table, len(lines))
	for i, ln := range lines {
		t[i] = strings.Split(ln, "\t")
	}
	return t, Dialect{}, true
}

func readSniffed(lines []string, sample string) (Table, Dialect, bool) {
	d, err := Sniff(sample, Delimiters)
	if err != nil {
		return nil, Dialect{}, false
	}
	t, err := d.Read(strings.Join(lines, "\n"))
	if err != nil {
		return nil, Dialect{}, false
	}
	return t, d, true
}

func splitAligned(lines []string) Table {
	t := make(Table, len(lines))
	for i, ln := range lines {
		cells := alignedGap.Split(strings.TrimSpace(ln), -1)
		for j, c := range cells {
			cells[j] = strings.TrimSpace(c)
		}
		t[i] = cells
	}
	return t
}

// SplitLines splits text on every line-break sequence: "\r\n", "\n", "\r",
// vertical tab, form feed, the file/group/record separators, NEL, and the
// Unicode line and paragraph separators. A trailing break does not produce
// an empty final line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
