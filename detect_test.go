package pastetab_test

import (
	"strings"
	"testing"

	"github.com/bjaus/pastetab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input    string
		want     pastetab.Table
		strategy pastetab.Strategy
	}{
		"empty": {
			input:    "",
			want:     pastetab.Table{},
			strategy: pastetab.StrategyNone,
		},
		"whitespace only": {
			input:    "  \n\t\n   \r\n",
			want:     pastetab.Table{},
			strategy: pastetab.StrategyNone,
		},
		"comma": {
			input:    "a,b,c\n1,2,3\n",
			want:     pastetab.Table{{"a", "b", "c"}, {"1", "2", "3"}},
			strategy: pastetab.StrategySniffed,
		},
		"semicolon": {
			input:    "a;b;c\n1;2;3",
			want:     pastetab.Table{{"a", "b", "c"}, {"1", "2", "3"}},
			strategy: pastetab.StrategySniffed,
		},
		"pipe": {
			input:    "a|b\n1|2",
			want:     pastetab.Table{{"a", "b"}, {"1", "2"}},
			strategy: pastetab.StrategySniffed,
		},
		"comma preferred over semicolon": {
			input:    "a,b;c\n1,2;3",
			want:     pastetab.Table{{"a", "b;c"}, {"1", "2;3"}},
			strategy: pastetab.StrategySniffed,
		},
		"ragged rows": {
			input:    "a,b\nc,d,e\n",
			want:     pastetab.Table{{"a", "b"}, {"c", "d", "e"}},
			strategy: pastetab.StrategySniffed,
		},
		"space after delimiter skipped": {
			input:    "a, b, c\n1, 2, 3",
			want:     pastetab.Table{{"a", "b", "c"}, {"1", "2", "3"}},
			strategy: pastetab.StrategySniffed,
		},
		"quoted delimiter and doubled quote": {
			input:    "name,quote\n\"Smith, J\",\"said \"\"hi\"\"\"",
			want:     pastetab.Table{{"name", "quote"}, {"Smith, J", `said "hi"`}},
			strategy: pastetab.StrategySniffed,
		},
		"single quotes and pipes": {
			input:    "'a'|'b'\n'c'|'d'",
			want:     pastetab.Table{{"a", "b"}, {"c", "d"}},
			strategy: pastetab.StrategySniffed,
		},
		"tabs": {
			input:    "x\ty\tz\n1\t2\t3\n",
			want:     pastetab.Table{{"x", "y", "z"}, {"1", "2", "3"}},
			strategy: pastetab.StrategyTab,
		},
		"tabs keep cell whitespace": {
			input:    "a \t b\nc\td ",
			want:     pastetab.Table{{"a ", " b"}, {"c", "d"}},
			strategy: pastetab.StrategyTab,
		},
		"tabs win over commas": {
			input:    "a,b\tc\nd,e\tf",
			want:     pastetab.Table{{"a,b", "c"}, {"d,e", "f"}},
			strategy: pastetab.StrategyTab,
		},
		"aligned": {
			input:    "Name    Age  City\nAlice   30   Paris",
			want:     pastetab.Table{{"Name", "Age", "City"}, {"Alice", "30", "Paris"}},
			strategy: pastetab.StrategyAligned,
		},
		"aligned multi-word cells": {
			input:    "  New York     8.3\nLos Angeles  3.9  ",
			want:     pastetab.Table{{"New York", "8.3"}, {"Los Angeles", "3.9"}},
			strategy: pastetab.StrategyAligned,
		},
		"aligned cells holding commas": {
			input:    "Smith, John    Paris, France\nDoe, Jane      Rome",
			want:     pastetab.Table{{"Smith, John", "Paris, France"}, {"Doe, Jane", "Rome"}},
			strategy: pastetab.StrategyAligned,
		},
		"aligned with no-break spaces": {
			input:    "Name\u00a0\u00a0Age\nAlice\u3000\u300030",
			want:     pastetab.Table{{"Name", "Age"}, {"Alice", "30"}},
			strategy: pastetab.StrategyAligned,
		},
		"single space never splits": {
			input:    "hello world\nfoo bar",
			want:     pastetab.Table{{"hello world"}, {"foo bar"}},
			strategy: pastetab.StrategyAligned,
		},
		"delimiter missing on a line": {
			input:    "a,b\nc  d",
			want:     pastetab.Table{{"a,b"}, {"c", "d"}},
			strategy: pastetab.StrategyAligned,
		},
		"blank lines dropped": {
			input:    "a,b\n\n   \nc,d",
			want:     pastetab.Table{{"a", "b"}, {"c", "d"}},
			strategy: pastetab.StrategySniffed,
		},
		"crlf line endings": {
			input:    "a,b\r\nc,d\r\n",
			want:     pastetab.Table{{"a", "b"}, {"c", "d"}},
			strategy: pastetab.StrategySniffed,
		},
		"unicode line separator": {
			input:    "a,b\u2028c,d",
			want:     pastetab.Table{{"a", "b"}, {"c", "d"}},
			strategy: pastetab.StrategySniffed,
		},
	}
	for name, tt := range tests {
		name := name
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := pastetab.Analyze(tt.input)
			assert.Equal(t, tt.want, got.Table)
			assert.Equal(t, tt.strategy, got.Strategy)
			assert.Equal(t, tt.want, pastetab.Detect(tt.input))
		})
	}
}

func TestDetectTabOutsideSampleIgnored(t *testing.T) {
	t.Parallel()
	lines := make([]string, 0, 25)
	for i := 0; i < 24; i++ {
		lines = append(lines, "a,b")
	}
	lines = append(lines, "c\td")
	got := pastetab.Analyze(strings.Join(lines, "\n"))
	require.Equal(t, pastetab.StrategySniffed, got.Strategy)
	assert.Len(t, got.Table, 25)
	assert.Equal(t, pastetab.Row{"c\td"}, got.Table[24])
}

func TestDetectTabInSampleSplitsEveryLine(t *testing.T) {
	t.Parallel()
	lines := []string{"a\tb"}
	for i := 0; i < 30; i++ {
		lines = append(lines, "c,d")
	}
	got := pastetab.Analyze(strings.Join(lines, "\n"))
	require.Equal(t, pastetab.StrategyTab, got.Strategy)
	assert.Len(t, got.Table, 31)
	assert.Equal(t, pastetab.Row{"c,d"}, got.Table[30])
}

func TestDetectOneRowPerLine(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"a,b,c\n1,2,3\n4,5,6",
		"x|y\n\n1|2",
		"a\tb\nc",
		"free text\nmore   text\n\n\nend",
	}
	for _, in := range inputs {
		nonBlank := 0
		for _, ln := range pastetab.SplitLines(in) {
			if strings.TrimSpace(ln) != "" {
				nonBlank++
			}
		}
		assert.Len(t, pastetab.Detect(in), nonBlank, "input %q", in)
	}
}

func TestDetectCellCountMatchesDelimiters(t *testing.T) {
	t.Parallel()
	for _, delim := range []string{",", ";", "|"} {
		in := strings.Join([]string{
			"a" + delim + "b" + delim + "c",
			"d" + delim + "e" + delim + "f",
			"g" + delim + "h" + delim + "i",
		}, "\n")
		got := pastetab.Analyze(in)
		require.Equal(t, pastetab.StrategySniffed, got.Strategy, "delimiter %q", delim)
		assert.Equal(t, delim, string(got.Dialect.Delimiter))
		for _, row := range got.Table {
			assert.Len(t, row, 3)
		}
	}
}

func TestAnalyzeReportsDialect(t *testing.T) {
	t.Parallel()
	got := pastetab.Analyze("a; b\nc; d")
	assert.Equal(t, pastetab.Dialect{Delimiter: ';', Quote: '"', DoubleQuote: true, SkipInitialSpace: true}, got.Dialect)

	got = pastetab.Analyze("a\tb")
	assert.Equal(t, pastetab.Dialect{}, got.Dialect)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	table := pastetab.Table{
		{"Name", "Age", "City"},
		{"Alice", "30", "New York"},
		{"Bob", "25", "Paris"},
	}
	for _, delim := range []rune{',', ';', '|'} {
		out, err := pastetab.Serialize(table, delim)
		require.NoError(t, err)
		got := pastetab.Analyze(string(out))
		assert.Equal(t, pastetab.StrategySniffed, got.Strategy, "delimiter %q", delim)
		assert.Equal(t, table, got.Table, "delimiter %q", delim)
	}
}

func TestDetectThenSerialize(t *testing.T) {
	t.Parallel()
	out, err := pastetab.Serialize(pastetab.Detect("a,b,c\n1,2,3\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\r\n1,2,3\r\n", string(out))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"empty":            {input: "", want: nil},
		"no break":         {input: "abc", want: []string{"abc"}},
		"trailing newline": {input: "a\n", want: []string{"a"}},
		"mixed endings":    {input: "a\r\nb\rc\nd", want: []string{"a", "b", "c", "d"}},
		"blank line kept":  {input: "a\n\nb", want: []string{"a", "", "b"}},
		"cr then crlf":     {input: "a\r\r\nb", want: []string{"a", "", "b"}},
		"control breaks":   {input: "a\vb\fc\x1cd\x1de\x1ef", want: []string{"a", "b", "c", "d", "e", "f"}},
		"unicode breaks":   {input: "a\u0085b\u2028c\u2029d", want: []string{"a", "b", "c", "d"}},
	}
	for name, tt := range tests {
		name := name
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pastetab.SplitLines(tt.input))
		})
	}
}

func TestStrategyString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "none", pastetab.StrategyNone.String())
	assert.Equal(t, "tab", pastetab.StrategyTab.String())
	assert.Equal(t, "sniffed", pastetab.StrategySniffed.String())
	assert.Equal(t, "aligned", pastetab.StrategyAligned.String())
}
