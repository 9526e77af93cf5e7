package template

import (
	"io"
)

// Instantiate writes the reconstructed template to w: for each span in
// order, the raw bytes of plain text and the trimmed body bytes of tags.
// Delimiter tokens are never written. No escaping, no evaluation; the first
// sink failure aborts the pass and is returned unchanged.
func (t *ParsedTemplate) Instantiate(w io.Writer) error {
	for _, span := range t.spans {
		out := span.Output()
		if len(out) == 0 {
			continue
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}
