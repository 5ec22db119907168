package pastetab

import (
	"fmt"
	"strings"
)

const (
	sniffChunk       = 10
	sniffConsistency = 1.0
	sniffThreshold   = 0.9
)

var quoteCandidates = []rune{'"', '\''}

// Dialect describes delimited text: the field delimiter plus its quoting
// conventions.
type Dialect struct {
	Delimiter        rune
	Quote            rune
	DoubleQuote      bool
	SkipInitialSpace bool
}

// DefaultDialect returns comma-separated text with double-quoted fields and
// doubled embedded quotes.
func DefaultDialect() Dialect {
	return Dialect{Delimiter: ',', Quote: '"', DoubleQuote: true}
}

// Sniff infers the dialect of sample, considering only the runes in
// delimiters (earlier runes win ties). It first looks for quoted fields
// next to a delimiter; failing that, it accepts a delimiter that occurs the
// same non-zero number of times on (almost) every line, and failing that,
// the delimiter present on every line with the steadiest count.
func Sniff(sample string, delimiters string) (Dialect, error) {
	cands := []rune(delimiters)
	var lines []string
	for _, ln := range strings.Split(sample, "\n") {
		if ln != "" {
			lines = append(lines, ln)
		}
	}

	g := guessQuote(lines, cands)
	if g.delimiter != 0 {
		return Dialect{
			Delimiter:        g.delimiter,
			Quote:            g.quote,
			DoubleQuote:      hasDoubledQuote(lines, g.delimiter, g.quote),
			SkipInitialSpace: g.skipSpace,
		}, nil
	}

	delim, ok := guessDelimiter(lines, cands)
	if !ok {
		return Dialect{}, fmt.Errorf("%w: no consistent delimiter among %q", ErrNoDelimiter, delimiters)
	}
	d := DefaultDialect()
	if g.quote != 0 {
		d.Quote = g.quote
	}
	d.Delimiter = delim
	// Checked over the whole sample so one spaced line does not decide.
	d.SkipInitialSpace = strings.Count(sample, string(delim)) == strings.Count(sample, string(delim)+" ")
	return d, nil
}

type quoteGuess struct {
	quote     rune
	delimiter rune
	skipSpace bool
}

// quoteField is one quoted field found on a line together with the
// delimiter it is attached to (0 when it touches a line edge instead).
type quoteField struct {
	quote rune
	delim rune
	space bool
}

// guessQuote looks for quoted fields. Fields are classified, from most to
// least telling, as delimiter-bounded on both sides, starting a line,
// ending a line, or filling a whole line; only the first non-empty class is
// counted.
func guessQuote(lines []string, cands []rune) quoteGuess {
	var classes [4][]quoteField
	for _, ln := range lines {
		for _, q := range quoteCandidates {
			for _, f := range scanQuoted([]rune(ln), q, cands) {
				classes[f.class] = append(classes[f.class], f.field)
			}
		}
	}

	var found []quoteField
	for _, c := range classes {
		if len(c) > 0 {
			found = c
			break
		}
	}
	if len(found) == 0 {
		return quoteGuess{}
	}

	quoteCount := map[rune]int{}
	delimCount := map[rune]int{}
	spaces := 0
	for _, f := range found {
		quoteCount[f.quote]++
		if f.delim != 0 {
			delimCount[f.delim]++
			if f.space {
				spaces++
			}
		}
	}

	var g quoteGuess
	for _, q := range quoteCandidates {
		if quoteCount[q] > quoteCount[g.quote] {
			g.quote = q
		}
	}
	for _, d := range cands {
		if delimCount[d] > delimCount[g.delimiter] {
			g.delimiter = d
		}
	}
	if g.delimiter != 0 {
		g.skipSpace = delimCount[g.delimiter] == spaces
	}
	return g
}

type classifiedField struct {
	class int
	field quoteField
}

func scanQuoted(line []rune, q rune, cands []rune) []classifiedField {
	var out []classifiedField
	for open := 0; open < len(line); open++ {
		if line[open] != q {
			continue
		}
		var (
			before   rune
			space    bool
			lineHead = open == 0
		)
		switch {
		case open >= 1 && isCandidate(line[open-1], cands):
			before = line[open-1]
		case open >= 2 && line[open-1] == ' ' && isCandidate(line[open-2], cands):
			before, space = line[open-2], true
		}
		if before == 0 && !lineHead {
			continue
		}

		closing := -1
		var after rune
		for c := open + 1; c < len(line); c++ {
			if line[c] != q {
				continue
			}
			if c == len(line)-1 {
				closing = c
				break
			}
			if isCandidate(line[c+1], cands) && (before == 0 || line[c+1] == before) {
				closing, after = c, line[c+1]
				break
			}
		}
		if closing < 0 {
			continue
		}

		lineTail := closing == len(line)-1
		switch {
		case before != 0 && after == before:
			out = append(out, classifiedField{0, quoteField{quote: q, delim: before, space: space}})
		case lineHead && after != 0:
			trailing := closing+2 < len(line) && line[closing+2] == ' '
			out = append(out, classifiedField{1, quoteField{quote: q, delim: after, space: trailing}})
		case before != 0 && lineTail:
			out = append(out, classifiedField{2, quoteField{quote: q, delim: before, space: space}})
		case lineHead && lineTail:
			out = append(out, classifiedField{3, quoteField{quote: q}})
		}
		open = closing
	}
	return out
}

// hasDoubledQuote reports whether some delimiter-bounded field in lines
// holds at least three quote characters, i.e. a quoted field with an
// embedded doubled quote.
func hasDoubledQuote(lines []string, delim, q rune) bool {
	for _, ln := range lines {
		for _, field := range strings.Split(ln, string(delim)) {
			field = strings.TrimSpace(field)
			if strings.HasPrefix(field, string(q)) && strings.Count(field, string(q)) >= 3 {
				return true
			}
		}
	}
	return false
}

// guessDelimiter looks for a candidate whose per-line count is the same on
// (nearly) every line. The sample is examined in growing chunks so a
// consistent delimiter in the first lines wins before noisier lines are
// added.
func guessDelimiter(lines []string, cands []rune) (rune, bool) {
	if len(lines) == 0 {
		return 0, false
	}
	freq := make(map[rune]*histogram, len(cands))
	for _, c := range cands {
		freq[c] = &histogram{}
	}

	accepted := map[rune]bool{}
	for start, iteration := 0, 1; start < len(lines); start, iteration = start+sniffChunk, iteration+1 {
		end := min(start+sniffChunk, len(lines))
		for _, ln := range lines[start:end] {
			for _, c := range cands {
				freq[c].add(strings.Count(ln, string(c)))
			}
		}

		total := float64(min(sniffChunk*iteration, len(lines)))
		for consistency := sniffConsistency; len(accepted) == 0 && consistency >= sniffThreshold; consistency -= 0.01 {
			for _, c := range cands {
				count, weight := freq[c].mode()
				if count > 0 && weight > 0 && float64(weight)/total >= consistency {
					accepted[c] = true
				}
			}
		}
		if len(accepted) == 1 {
			break
		}
	}

	for _, c := range cands {
		if accepted[c] {
			return c, true
		}
	}
	return steadiestDelimiter(lines, cands)
}

// steadiestDelimiter accepts ragged delimited text: among candidates that
// occur on every line it picks the one whose per-line count varies least.
// Lines holding a run of two or more spaces look like an aligned table, so
// they are left to the aligned split.
func steadiestDelimiter(lines []string, cands []rune) (rune, bool) {
	for _, ln := range lines {
		if alignedGap.MatchString(strings.TrimSpace(ln)) {
			return 0, false
		}
	}
	var (
		best     rune
		bestVar  float64
		haveBest bool
	)
	for _, c := range cands {
		counts := make([]float64, 0, len(lines))
		for _, ln := range lines {
			n := strings.Count(ln, string(c))
			if n == 0 {
				break
			}
			counts = append(counts, float64(n))
		}
		if len(counts) < len(lines) {
			continue
		}
		if v := variance(counts); !haveBest || v < bestVar {
			best, bestVar, haveBest = c, v, true
		}
	}
	return best, haveBest
}

func variance(xs []float64) float64 {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var v float64
	for _, x := range xs {
		v += (x - mean) * (x - mean)
	}
	return v / float64(len(xs))
}

// histogram counts how many lines had each occurrence count, in order of
// first appearance.
type histogram struct {
	counts []int
	lines  []int
}

func (h *histogram) add(count int) {
	for i, c := range h.counts {
		if c == count {
			h.lines[i]++
			return
		}
	}
	h.counts = append(h.counts, count)
	h.lines = append(h.lines, 1)
}

// mode returns the most common occurrence count and its weight: the lines
// at that count minus all other lines.
func (h *histogram) mode() (count, weight int) {
	best := -1
	others := 0
	for i, n := range h.lines {
		if best < 0 || n > h.lines[best] {
			best = i
		}
		others += n
	}
	if best < 0 {
		return 0, 0
	}
	others -= h.lines[best]
	return h.counts[best], h.lines[best] - others
}

func isCandidate(r rune, cands []rune) bool {
	for _, c := range cands {
		if r == c {
			return true
		}
	}
	return false
}
