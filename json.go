package pastetab

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if t == nil {
		t = Table{}
	}
	return enc.Encode(t)
}
