package pastetab

import "io"

// writeTSV uses the same minimal quoting as CSV so cells holding tabs or
// line breaks survive a round trip.
func writeTSV(w io.Writer, t Table, o options) error {
	if len(t) == 0 {
		return nil
	}
	cw := NewWriter(w)
	cw.Comma = '\t'
	cw.UseCRLF = o.crlf
	return cw.WriteAll(t)
}
