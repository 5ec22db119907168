package pastetab

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range t {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
